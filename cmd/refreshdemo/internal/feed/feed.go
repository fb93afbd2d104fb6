// Package feed is the demo's data source: a list of timestamped items that
// gains a row on every refresh.
package feed

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/refresh/pkg/platform"
)

// Item is one list row.
type Item struct {
	ID uuid.UUID
	At time.Time
}

// Title is the row text.
func (i Item) Title() string {
	return i.At.Format("15:04:05.000")
}

// Feed holds the items, newest first. It is owned by the UI thread; only
// Load touches it from elsewhere, and only through platform.Dispatch.
type Feed struct {
	items     []Item
	updatedAt time.Time

	mu      sync.Mutex
	loading bool
}

// New returns a feed with n items spaced a minute apart, ending at now.
func New(n int, now time.Time) *Feed {
	f := &Feed{}
	for i := range n {
		f.items = append(f.items, Item{ID: uuid.New(), At: now.Add(-time.Duration(i) * time.Minute)})
	}
	if n > 0 {
		f.updatedAt = now
	}
	return f
}

// Items returns the rows, newest first.
func (f *Feed) Items() []Item {
	return f.items
}

// Len returns the number of rows.
func (f *Feed) Len() int {
	return len(f.items)
}

// UpdatedAt returns the time of the last prepend, or zero.
func (f *Feed) UpdatedAt() time.Time {
	return f.updatedAt
}

// Prepend inserts a row stamped at.
func (f *Feed) Prepend(at time.Time) Item {
	item := Item{ID: uuid.New(), At: at}
	f.items = append([]Item{item}, f.items...)
	f.updatedAt = at
	return item
}

// Loading reports whether a Load is in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Load simulates fetching new rows: after delay, done runs on the UI thread
// through platform.Dispatch. A Load while another is in flight returns an
// error and does not call done.
func (f *Feed) Load(delay time.Duration, done func()) error {
	f.mu.Lock()
	if f.loading {
		f.mu.Unlock()
		return fmt.Errorf("feed: load already in progress")
	}
	f.loading = true
	f.mu.Unlock()

	finish := func() {
		f.mu.Lock()
		f.loading = false
		f.mu.Unlock()
		done()
	}
	go func() {
		if delay > 0 {
			time.Sleep(delay)
		}
		if !platform.Dispatch(finish) {
			// No UI thread registered: nobody is left to finish on.
			f.mu.Lock()
			f.loading = false
			f.mu.Unlock()
		}
	}()
	return nil
}
