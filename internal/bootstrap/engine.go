// Package bootstrap runs the one-time passes from the host's per-frame callback.
// Every pass is guarded by a flag on the Engine and a panic never escapes Tick.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/diagnostics"
	"github.com/KirkDiggler/megastones/internal/helditem"
	"github.com/KirkDiggler/megastones/internal/icons"
	"github.com/KirkDiggler/megastones/internal/registry"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/repositories/messages"
	"github.com/KirkDiggler/megastones/internal/repositories/party"
	"github.com/KirkDiggler/megastones/internal/services/autoequip"
)

// Config holds the engine's collaborators. Items and Text may be attached later with AttachHost.
type Config struct {
	Catalog   *catalog.Catalog
	Registrar *registry.Registrar
	AutoEquip *autoequip.Policy
	Icons     *icons.Installer

	Items items.Store
	Text  messages.Catalog

	Party   party.Repository
	OwnerID string

	Sink diagnostics.Sink
}

// Engine carries the per-process state of the one-time passes
type Engine struct {
	catalog   *catalog.Catalog
	registrar *registry.Registrar
	autoEquip *autoequip.Policy
	icons     *icons.Installer
	items     items.Store
	text      messages.Catalog
	party     party.Repository
	ownerID   string
	sink      diagnostics.Sink
	now       func() time.Time

	notReadyLogged bool
	dumped         bool
}

// New creates an engine
func New(cfg *Config) *Engine {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Registrar == nil {
		panic("registrar is required")
	}
	sink := cfg.Sink
	if sink == nil {
		sink = diagnostics.Nop{}
	}
	return &Engine{
		catalog:   cfg.Catalog,
		registrar: cfg.Registrar,
		autoEquip: cfg.AutoEquip,
		icons:     cfg.Icons,
		items:     cfg.Items,
		text:      cfg.Text,
		party:     cfg.Party,
		ownerID:   cfg.OwnerID,
		sink:      sink,
		now:       time.Now,
	}
}

// AttachHost supplies the item store and text catalog once the host has loaded them
func (e *Engine) AttachHost(store items.Store, text messages.Catalog) {
	e.items = store
	e.text = text
}

// Tick is called once per host frame
func (e *Engine) Tick(ctx context.Context) {
	defer e.recoverPanic("bootstrap tick")

	e.register(ctx)
	e.installIcons()
	e.dumpPartyItems(ctx)
	e.equipParty(ctx)
}

// AfterDataLoad is for hosts that announce when their item data finished loading
func (e *Engine) AfterDataLoad(ctx context.Context) {
	defer e.recoverPanic("bootstrap after data load")

	e.register(ctx)
	e.installIcons()
}

func (e *Engine) register(ctx context.Context) {
	if e.registrar.Registered() {
		return
	}

	report, err := e.registrar.RegisterAll(ctx, e.catalog, e.items, e.text)
	switch {
	case errors.Is(err, registry.ErrHostNotReady):
		if !e.notReadyLogged {
			e.sink.Logf("register_once! ready?=false")
			e.notReadyLogged = true
		}
	case err != nil:
		e.sink.Error(err, "registry register all")
	case !report.AlreadyDone:
		e.sink.Boot("registration done: %d registered, %d skipped, %d failed",
			len(report.Registered), len(report.Skipped), len(report.Failed))
	}
}

// installIcons waits for the host; icons are useless before items exist
func (e *Engine) installIcons() {
	if e.icons == nil || e.icons.Done() || e.items == nil {
		return
	}
	e.icons.EnsurePresent(e.catalog.Tokens())
}

func (e *Engine) dumpPartyItems(ctx context.Context) {
	if e.dumped || e.party == nil || e.ownerID == "" {
		return
	}
	members, err := e.party.ListByOwner(ctx, e.ownerID)
	if err != nil {
		e.sink.Error(err, "bootstrap dump party items")
		return
	}
	if len(members) == 0 {
		return
	}

	normalizer := helditem.Normalizer{IDs: e.registrar}
	lines := []string{fmt.Sprintf("Time: %s", e.now().Format(time.RFC3339))}
	for i, m := range members {
		held := normalizer.Normalize(m.Item)
		lines = append(lines,
			fmt.Sprintf("[%d] %s species=%q", i, m.DisplayName(), m.Species),
			fmt.Sprintf("  raw_item=%#v type=%T", m.Item, m.Item),
			fmt.Sprintf("  item_token=%q kind=%s", held.Token, held.Kind),
		)
		if held.Kind == helditem.KindToken && !e.catalog.Has(held.Token) {
			if near, dist := e.catalog.Suggest(held.Token); near != "" {
				lines = append(lines, fmt.Sprintf("  nearest_stone=%s distance=%d", near, dist))
			}
		}
	}

	e.sink.Dump(diagnostics.ItemDebugFile, lines)
	e.dumped = true
}

// equipParty waits for registration so assigned stones are known to the host
func (e *Engine) equipParty(ctx context.Context) {
	if e.autoEquip == nil || e.party == nil || e.ownerID == "" || !e.registrar.Registered() {
		return
	}
	if _, err := e.autoEquip.ProcessParty(ctx, e.party, e.ownerID); err != nil {
		e.sink.Error(err, "autoequip process party")
	}
}

func (e *Engine) recoverPanic(where string) {
	if r := recover(); r != nil {
		err, ok := r.(error)
		if !ok {
			err = fmt.Errorf("panic: %v", r)
		}
		e.sink.Error(err, where)
	}
}
