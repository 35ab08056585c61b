package metadata_cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pavich5/AutoMK/models"
)

func TestMetadataCacheRoundTrip(t *testing.T) {
	Invalidate()

	_, ok := Get()
	assert.False(t, ok, "empty cache should miss")

	Set(models.FilterMetadata{Total: 7})
	got, ok := Get()
	assert.True(t, ok)
	assert.Equal(t, 7, got.Total)

	Invalidate()
	_, ok = Get()
	assert.False(t, ok, "invalidated cache should miss")
}
