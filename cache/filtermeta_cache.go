package store_cache

import (
	"sync"
	"time"

	"github.com/Hieubkav/wincellarCloneBackend-sub000/models"
)

const metaTTL = 5 * time.Minute

// ── Filter-metadata cache ────────────────────────────────────────────────────
// The filter sidebar (attribute groups + terms, types, categories, ranges)
// changes only on admin edits, so it lives in-process with a short TTL.

type metaEntry struct {
	data      *models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func GetFilterMetadata() (*models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < metaTTL {
		return metaCache.data, true
	}
	return nil, false
}

func SetFilterMetadata(data *models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate (call on any taxonomy create/update/delete) ───────────────────

func InvalidateFilterMetadata() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
