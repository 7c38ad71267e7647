// Package registry assigns numeric ids to catalog stones the host item store does not know
// yet. A Registrar completes at most one pass; until then every call retries.
package registry

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/diagnostics"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	"github.com/KirkDiggler/megastones/internal/helditem"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/repositories/messages"
)

// DefaultStartID is the first id handed out to a new stone
const DefaultStartID = catalog.StartIDNumber

// ErrHostNotReady is returned while the item store or text catalog is unavailable
var ErrHostNotReady = megaerr.Unavailable("host item store is not ready")

// Assignment pairs a stone token with its id
type Assignment struct {
	Token string
	ID    int
}

// Report summarizes a registration pass
type Report struct {
	// AlreadyDone is true when an earlier pass completed and nothing ran
	AlreadyDone bool

	Registered []Assignment
	Skipped    []Assignment
	Failed     []string
}

// Config holds configuration for the registrar
type Config struct {
	// StartID is the lowest id scanned; zero means DefaultStartID
	StartID int

	// Sink receives SKIP/OK/DONE lines and per-entry errors; nil discards them
	Sink diagnostics.Sink
}

// Registrar owns the registration state for one process
type Registrar struct {
	startID int
	sink    diagnostics.Sink

	registered bool
	used       map[int]bool
	byID       map[int]string
	byToken    map[string]int
}

// New creates a registrar that has not run yet
func New(cfg *Config) *Registrar {
	r := &Registrar{
		startID: DefaultStartID,
		sink:    diagnostics.Nop{},
		byID:    make(map[int]string),
		byToken: make(map[string]int),
	}
	if cfg == nil {
		return r
	}
	if cfg.StartID > 0 {
		r.startID = cfg.StartID
	}
	if cfg.Sink != nil {
		r.sink = cfg.Sink
	}
	return r
}

// Registered reports whether a pass has completed
func (r *Registrar) Registered() bool {
	return r.registered
}

// RegisterAll registers every stone of cat that store does not already hold.
// Per-entry failures are logged and skipped; the pass still counts as complete.
func (r *Registrar) RegisterAll(ctx context.Context, cat *catalog.Catalog, store items.Store, text messages.Catalog) (*Report, error) {
	if r.registered {
		return &Report{AlreadyDone: true}, nil
	}
	if cat == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if store == nil || text == nil {
		return nil, ErrHostNotReady
	}

	existing, err := store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list registered items: %w", err)
	}

	r.used = make(map[int]bool, len(existing))
	for _, def := range existing {
		r.used[def.IDNumber] = true
		r.remember(def.Token, def.IDNumber)
	}

	report := &Report{}
	for _, stone := range cat.Stones() {
		assignment, skipped, err := r.registerOne(ctx, stone, store, text)
		switch {
		case err != nil:
			r.sink.Error(err, fmt.Sprintf("register %s", stone.Token))
			report.Failed = append(report.Failed, stone.Token)
		case skipped:
			r.sink.Logf("SKIP %s: exists (id_number=%d)", stone.Token, assignment.ID)
			report.Skipped = append(report.Skipped, assignment)
		default:
			r.sink.Logf("OK %s: id_number=%d", stone.Token, assignment.ID)
			report.Registered = append(report.Registered, assignment)
		}
	}

	r.registered = true
	r.sink.Logf("DONE registration")
	return report, nil
}

func (r *Registrar) registerOne(ctx context.Context, stone *catalog.Stone, store items.Store, text messages.Catalog) (Assignment, bool, error) {
	exists, err := store.Exists(ctx, stone.Token)
	if err != nil {
		return Assignment{}, false, fmt.Errorf("failed to check %s: %w", stone.Token, err)
	}
	if exists {
		id, _ := r.IDFor(stone.Token)
		if def, getErr := store.Get(ctx, stone.Token); getErr == nil {
			id = def.IDNumber
			r.remember(def.Token, def.IDNumber)
		}
		return Assignment{Token: stone.Token, ID: id}, true, nil
	}

	id := r.nextFreeID()
	// Claimed before Register; a failed entry keeps its id out of later scans
	r.used[id] = true

	def := &items.Definition{
		Token:       stone.Token,
		IDNumber:    id,
		Name:        stone.Name,
		NamePlural:  stone.Name + "s",
		Pocket:      1,
		Price:       0,
		Description: stone.Description,
	}
	if err := store.Register(ctx, def); err != nil {
		return Assignment{}, false, fmt.Errorf("failed to register %s as %d: %w", stone.Token, id, err)
	}
	r.remember(stone.Token, id)

	texts := []struct {
		table messages.Table
		value string
	}{
		{messages.ItemNames, def.Name},
		{messages.ItemPlurals, def.NamePlural},
		{messages.ItemDescriptions, def.Description},
	}
	for _, t := range texts {
		if err := text.Set(ctx, t.table, id, t.value); err != nil {
			return Assignment{}, false, fmt.Errorf("failed to set %s text for %s: %w", t.table, stone.Token, err)
		}
	}

	return Assignment{Token: stone.Token, ID: id}, false, nil
}

func (r *Registrar) nextFreeID() int {
	id := r.startID
	for r.used[id] {
		id++
	}
	return id
}

func (r *Registrar) remember(token string, id int) {
	if token == "" || id == 0 {
		return
	}
	r.byID[id] = token
	r.byToken[token] = id
}

// TokenFor implements helditem.IDIndex
func (r *Registrar) TokenFor(id int) (string, bool) {
	token, ok := r.byID[id]
	return token, ok
}

// IDFor returns the id a token was registered or found under
func (r *Registrar) IDFor(token string) (int, bool) {
	id, ok := r.byToken[token]
	return id, ok
}

// Index returns a copy of the id to token table
func (r *Registrar) Index() helditem.IDMap {
	out := make(helditem.IDMap, len(r.byID))
	for id, token := range r.byID {
		out[id] = token
	}
	return out
}
