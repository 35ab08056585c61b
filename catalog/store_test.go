package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavich5/AutoMK/models"
)

func testCar(id string) models.Car {
	return models.Car{
		ID:        id,
		Brand:     "Toyota",
		Model:     "Corolla",
		Year:      2018,
		Price:     750000,
		Images:    []string{"https://example.com/" + id + ".jpg"},
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestAddPrependsNewestFirst(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(testCar("a")))
	require.NoError(t, s.Add(testCar("b")))
	require.NoError(t, s.Add(testCar("c")))

	all := s.All()
	require.Len(t, all, 3)
	assert.Equal(t, "c", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, "a", all[2].ID)
}

func TestAddRejectsDuplicateID(t *testing.T) {
	s := NewStore()

	require.NoError(t, s.Add(testCar("a")))
	err := s.Add(testCar("a"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)

	// the original survives untouched
	assert.Equal(t, 1, s.Len())
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Toyota", got.Brand)
}

func TestRoundTripIdentity(t *testing.T) {
	s := NewStore()
	in := testCar("a")
	in.Equipment = []string{"navigation", "leather_seats"}
	require.NoError(t, s.Add(in))

	all := s.All()
	require.Len(t, all, 1)
	assert.Equal(t, in, all[0])

	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, in, got)
}

func TestAllReturnsACopy(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Add(testCar("a")))
	require.NoError(t, s.Add(testCar("b")))

	view := s.All()
	view[0], view[1] = view[1], view[0]

	fresh := s.All()
	assert.Equal(t, "b", fresh[0].ID, "mutating a returned slice must not affect the store")
}

func TestGetMiss(t *testing.T) {
	s := NewStore()
	_, ok := s.Get("nope")
	assert.False(t, ok)
}
