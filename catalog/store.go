package catalog

import (
	"fmt"
	"sync"

	"github.com/pavich5/AutoMK/models"
)

// ErrDuplicateID is returned by Add when a listing with the same
// identifier already exists. The store never silently overwrites.
var ErrDuplicateID = fmt.Errorf("catalog: duplicate listing id")

// Store is the authoritative in-memory set of listings. New listings
// are prepended, so iteration order is newest-first insertion order.
// There is no remove or update path; listings are immutable once added.
type Store struct {
	mu   sync.RWMutex
	cars []models.Car
	byID map[string]models.Car
}

func NewStore() *Store {
	return &Store{byID: make(map[string]models.Car)}
}

// Add prepends a new listing. Fails with ErrDuplicateID if the
// identifier is already present.
func (s *Store) Add(car models.Car) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[car.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, car.ID)
	}

	s.cars = append([]models.Car{car}, s.cars...)
	s.byID[car.ID] = car
	return nil
}

// All returns the current listings in insertion order, newest first.
// The returned slice is a copy; callers can filter and sort it freely
// without touching the store.
func (s *Store) All() []models.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Car, len(s.cars))
	copy(out, s.cars)
	return out
}

// Get looks up a single listing by id.
func (s *Store) Get(id string) (models.Car, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	car, ok := s.byID[id]
	return car, ok
}

// Len reports the number of listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cars)
}
