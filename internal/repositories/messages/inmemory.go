package messages

import (
	"context"
	"sync"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// InMemoryCatalog keeps every table in a map
type InMemoryCatalog struct {
	mu     sync.RWMutex
	tables map[Table]map[int]string
}

// NewInMemoryCatalog creates an empty catalog
func NewInMemoryCatalog() *InMemoryCatalog {
	return &InMemoryCatalog{
		tables: make(map[Table]map[int]string),
	}
}

// Set stores text; existing entries are overwritten
func (c *InMemoryCatalog) Set(ctx context.Context, table Table, id int, text string) error {
	if table == "" {
		return megaerr.InvalidArgument("message table is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entries, ok := c.tables[table]
	if !ok {
		entries = make(map[int]string)
		c.tables[table] = entries
	}
	entries[id] = text
	return nil
}

// Get returns the text for id
func (c *InMemoryCatalog) Get(ctx context.Context, table Table, id int) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	text, ok := c.tables[table][id]
	if !ok {
		return "", megaerr.NotFoundf("no %s entry for id %d", table, id).
			WithMeta("table", string(table)).
			WithMeta("id", id)
	}
	return text, nil
}
