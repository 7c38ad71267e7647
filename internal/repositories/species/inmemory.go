package species

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// InMemoryTable is a Table backed by a map
type InMemoryTable struct {
	mu    sync.RWMutex
	byDex map[int]*Species
}

// NewInMemoryTable creates a table from records; later duplicates of a dex replace earlier ones
func NewInMemoryTable(records ...Species) *InMemoryTable {
	t := &InMemoryTable{
		byDex: make(map[int]*Species, len(records)),
	}
	for i := range records {
		rec := records[i]
		t.byDex[rec.Dex] = &rec
	}
	return t
}

// Get returns a copy of the species at dex
func (t *InMemoryTable) Get(dex int) (*Species, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rec, ok := t.byDex[dex]
	if !ok {
		return nil, false
	}
	recCopy := *rec
	return &recCopy, true
}

// Put adds or replaces a record
func (t *InMemoryTable) Put(rec Species) error {
	if rec.Dex <= 0 {
		return megaerr.InvalidArgumentf("species dex must be positive, got %d", rec.Dex)
	}
	if rec.Token == "" {
		return megaerr.InvalidArgument("species token is required")
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.byDex[rec.Dex] = &rec
	return nil
}

// Len returns the number of records
func (t *InMemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.byDex)
}

// LoadYAMLFile reads a list of species records from a YAML file
func LoadYAMLFile(path string) (*InMemoryTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read species file %s: %w", path, err)
	}

	var records []Species
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, megaerr.WrapWithCode(err, megaerr.CodeValidation, "failed to parse species file")
	}

	table := NewInMemoryTable()
	for _, rec := range records {
		if err := table.Put(rec); err != nil {
			return nil, megaerr.Wrapf(err, "species file %s", path)
		}
	}
	return table, nil
}
