package cache

import (
	"sync"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/analytics"
)

// ── Last profit calculation ──────────────────────────────────────────────────
// Only successful runs are stored; a rejected run leaves the previous
// result in place. No TTL.

var (
	profitMu   sync.RWMutex
	lastProfit *analytics.ProfitResult
)

func GetLastProfit() (analytics.ProfitResult, bool) {
	profitMu.RLock()
	defer profitMu.RUnlock()
	if lastProfit == nil {
		return analytics.ProfitResult{}, false
	}
	return *lastProfit, true
}

func SetLastProfit(res analytics.ProfitResult) {
	profitMu.Lock()
	defer profitMu.Unlock()
	lastProfit = &res
}

func ResetLastProfit() {
	profitMu.Lock()
	lastProfit = nil
	profitMu.Unlock()
}
