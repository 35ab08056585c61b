package metadata_cache

import (
	"sync"
	"time"

	"github.com/pavich5/AutoMK/models"
)

const TTL = 5 * time.Minute

// ── Filter metadata cache ────────────────────────────────────────────────────
// Stores the assembled filters-panel payload (vocabularies + catalog
// price/year bounds). Invalidated whenever a listing is published.

type metaEntry struct {
	data      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func Get() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.data, true
	}
	return models.FilterMetadata{}, false
}

func Set(data models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{data: data, fetchedAt: time.Now()}
}

// Invalidate drops the cached payload (call on any listing publish).
func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
