package cache

import (
	"sync"
	"time"
)

const TTL = 5 * time.Minute

// ── Storefront category list ─────────────────────────────────────────────────
// Distinct product categories. Invalidated on any product write.

type categoryEntry struct {
	names     []string
	fetchedAt time.Time
}

var (
	categoryMu    sync.RWMutex
	categoryCache *categoryEntry
)

func GetCategories() ([]string, bool) {
	categoryMu.RLock()
	defer categoryMu.RUnlock()
	if categoryCache != nil && time.Since(categoryCache.fetchedAt) < TTL {
		return categoryCache.names, true
	}
	return nil, false
}

func SetCategories(names []string) {
	categoryMu.Lock()
	defer categoryMu.Unlock()
	categoryCache = &categoryEntry{names: names, fetchedAt: time.Now()}
}

func InvalidateCategories() {
	categoryMu.Lock()
	categoryCache = nil
	categoryMu.Unlock()
}
