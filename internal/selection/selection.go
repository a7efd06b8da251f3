// Package selection holds the country the user most recently clicked.
package selection

import (
	"sync"
	"time"

	"countrymap/internal/models"
)

// Cell stores at most one country record. It starts empty and is only ever
// replaced, never cleared. The last call to Set wins.
type Cell struct {
	mu        sync.RWMutex
	record    *models.CountryRecord
	updatedAt time.Time
	now       func() time.Time
}

// NewCell creates an empty selection.
func NewCell() *Cell {
	return &Cell{now: time.Now}
}

// Set replaces the selected country with a copy of record.
func (c *Cell) Set(record models.CountryRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record = &record
	c.updatedAt = c.now()
}

// Get returns the selected country and when it was set.
// ok is false until the first Set.
func (c *Cell) Get() (record models.CountryRecord, updatedAt time.Time, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.record == nil {
		return models.CountryRecord{}, time.Time{}, false
	}
	return *c.record, c.updatedAt, true
}
