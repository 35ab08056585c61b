package sessions

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavich5/AutoMK/models"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager(time.Hour)

	s := m.Create()
	require.NotEmpty(t, s.ID)
	assert.Equal(t, models.DefaultSort, s.Sort())

	got, ok := m.Get(s.ID)
	require.True(t, ok)
	assert.Same(t, s, got)

	_, ok = m.Get("missing")
	assert.False(t, ok)
}

func TestSessionsAreIndependent(t *testing.T) {
	m := NewManager(time.Hour)
	a := m.Create()
	b := m.Create()

	a.ToggleFavorite("car-1")
	a.SetSort(models.SortPriceLow)

	assert.False(t, b.IsFavorite("car-1"))
	assert.Equal(t, models.DefaultSort, b.Sort())
}

func TestFavoriteAndCompareAreIndependentSets(t *testing.T) {
	s := NewManager(time.Hour).Create()

	s.ToggleFavorite("car-1")
	s.ToggleCompare("car-1")
	assert.True(t, s.IsFavorite("car-1"))
	assert.True(t, s.IsComparing("car-1"))

	s.ToggleFavorite("car-1")
	assert.False(t, s.IsFavorite("car-1"))
	assert.True(t, s.IsComparing("car-1"), "removing a favorite must not touch compare")
}

func TestUpdateFiltersReplacesWholeValue(t *testing.T) {
	s := NewManager(time.Hour).Create()

	err := s.UpdateFilters(func(f *models.CarFilters) error {
		f.Brands = []string{"Opel"}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Opel"}, s.Filters().Brands)

	// a failing update leaves the spec untouched
	err = s.UpdateFilters(func(f *models.CarFilters) error {
		f.Brands = nil
		return assert.AnError
	})
	require.Error(t, err)
	assert.Equal(t, []string{"Opel"}, s.Filters().Brands)

	s.ClearFilters()
	assert.Equal(t, models.CarFilters{}, s.Filters())
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	m := NewManager(time.Minute)
	stale := m.Create()
	fresh := m.Create()

	stale.touch(time.Now().Add(-10 * time.Minute))

	evicted := m.Sweep(time.Now())
	assert.Equal(t, 1, evicted)
	assert.Equal(t, 1, m.Len())

	_, ok := m.Get(stale.ID)
	assert.False(t, ok)
	_, ok = m.Get(fresh.ID)
	assert.True(t, ok)
}
