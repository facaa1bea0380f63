package analytics

import (
	"strings"
	"time"

	"github.com/Lumiere-Jewelry/lumiere-storefront-backend/models"
)

// Window is a named date range relative to "now".
type Window string

const (
	WindowAll   Window = "all"
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
)

// ParseWindow maps a query value to a Window. Unknown values fall back to all.
func ParseWindow(s string) Window {
	switch Window(strings.ToLower(strings.TrimSpace(s))) {
	case WindowToday:
		return WindowToday
	case WindowWeek:
		return WindowWeek
	case WindowMonth:
		return WindowMonth
	default:
		return WindowAll
	}
}

// Start returns the inclusive lower bound of the window, or the zero time
// for all. today uses the calendar date in now's location, week is a
// rolling 7×24h window and month starts on the first day of the previous
// calendar month.
func (w Window) Start(now time.Time) time.Time {
	switch w {
	case WindowToday:
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	case WindowWeek:
		return now.Add(-7 * 24 * time.Hour)
	case WindowMonth:
		y, m, _ := now.Date()
		return time.Date(y, m-1, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Time{}
	}
}

// Contains reports whether t falls inside the window.
func (w Window) Contains(t, now time.Time) bool {
	switch w {
	case WindowToday:
		ty, tm, td := t.In(now.Location()).Date()
		ny, nm, nd := now.Date()
		return ty == ny && tm == nm && td == nd
	case WindowWeek, WindowMonth:
		return !t.Before(w.Start(now))
	default:
		return true
	}
}

// FilterOrders returns the orders created inside the window. The input is
// never modified.
func FilterOrders(orders []models.Order, w Window, now time.Time) []models.Order {
	if w == WindowAll || w == "" {
		return orders
	}
	out := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if w.Contains(o.CreatedAt, now) {
			out = append(out, o)
		}
	}
	return out
}
