// Package autoequip grants self-fusions their canonical stone once per creature.
package autoequip

import (
	"context"
	"fmt"
	"slices"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/diagnostics"
	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/fusion"
	"github.com/KirkDiggler/megastones/internal/helditem"
	"github.com/KirkDiggler/megastones/internal/repositories/bag"
	"github.com/KirkDiggler/megastones/internal/repositories/party"
)

// Holder is a creature auto-equip can inspect and change
type Holder interface {
	SpeciesCode() string
	HeldItem() any
	SetHeldItem(item any) error
	ProcessedSelfFusion() bool
	MarkSelfFusionProcessed()
}

// IDLookup translates between stone tokens and registered ids
type IDLookup interface {
	helditem.IDIndex
	IDFor(token string) (int, bool)
}

// Status is what ProcessOnce did
type Status int

const (
	// StatusNotApplicable means the creature is not a mapped self-fusion
	StatusNotApplicable Status = iota

	// StatusAlreadyProcessed means the mark was already set
	StatusAlreadyProcessed

	// StatusSkipped means an unrelated item is held; nothing changed and the creature is retried later
	StatusSkipped

	// StatusEquipped means the primary stone was put in the empty slot
	StatusEquipped

	// StatusKept means a candidate stone was already held
	StatusKept

	// StatusAssignFailed means the slot was empty and could not be filled; the creature is still marked
	StatusAssignFailed
)

func (s Status) String() string {
	switch s {
	case StatusNotApplicable:
		return "not_applicable"
	case StatusAlreadyProcessed:
		return "already_processed"
	case StatusSkipped:
		return "skipped"
	case StatusEquipped:
		return "equipped"
	case StatusKept:
		return "kept"
	case StatusAssignFailed:
		return "assign_failed"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Outcome reports a single ProcessOnce call
type Outcome struct {
	Status  Status
	Species string
	Held    string
	Granted []string
}

// Changed reports whether the creature record needs saving
func (o Outcome) Changed() bool {
	switch o.Status {
	case StatusEquipped, StatusKept, StatusAssignFailed:
		return true
	}
	return false
}

// Config holds the policy's collaborators
type Config struct {
	Catalog *catalog.Catalog
	Codec   *fusion.Codec

	// IDs enables the numeric retry when a holder rejects a token
	IDs IDLookup

	// Depositors are tried in order for every alternate stone; silent ones go first
	Depositors []bag.Depositor

	Sink diagnostics.Sink
}

// Policy is the self-fusion auto-equip policy
type Policy struct {
	catalog    *catalog.Catalog
	codec      *fusion.Codec
	ids        IDLookup
	normalizer helditem.Normalizer
	depositors []bag.Depositor
	sink       diagnostics.Sink
}

// New creates a policy
func New(cfg *Config) *Policy {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}
	if cfg.Codec == nil {
		panic("fusion codec is required")
	}
	p := &Policy{
		catalog:    cfg.Catalog,
		codec:      cfg.Codec,
		ids:        cfg.IDs,
		depositors: cfg.Depositors,
		sink:       cfg.Sink,
	}
	if cfg.IDs != nil {
		p.normalizer = helditem.Normalizer{IDs: cfg.IDs}
	}
	if p.sink == nil {
		p.sink = diagnostics.Nop{}
	}
	return p
}

// ProcessOnce runs the policy for one creature. Failures are logged, never returned.
func (p *Policy) ProcessOnce(ctx context.Context, c Holder) Outcome {
	if c == nil {
		return Outcome{Status: StatusNotApplicable}
	}

	species, ok := p.codec.SelfFusionSpecies(c.SpeciesCode())
	if !ok {
		return Outcome{Status: StatusNotApplicable}
	}
	candidates := p.catalog.StonesFor(species)
	if len(candidates) == 0 {
		return Outcome{Status: StatusNotApplicable, Species: species}
	}
	if c.ProcessedSelfFusion() {
		return Outcome{Status: StatusAlreadyProcessed, Species: species}
	}

	out := Outcome{Species: species}
	held := p.normalizer.Normalize(c.HeldItem())
	switch {
	case held.Empty():
		if p.assign(c, candidates[0]) {
			out.Status = StatusEquipped
			out.Held = candidates[0]
		} else {
			out.Status = StatusAssignFailed
		}
	case slices.Contains(candidates, held.Token):
		out.Status = StatusKept
		out.Held = held.Token
	default:
		return Outcome{Status: StatusSkipped, Species: species}
	}

	for _, token := range candidates {
		if token == out.Held || slices.Contains(out.Granted, token) {
			continue
		}
		if p.deposit(ctx, token) {
			out.Granted = append(out.Granted, token)
		}
	}

	c.MarkSelfFusionProcessed()
	p.logOutcome(c, out, candidates)
	return out
}

// assign tries the token first and the registered numeric id second
func (p *Policy) assign(c Holder, token string) bool {
	err := c.SetHeldItem(token)
	if err == nil {
		return true
	}
	p.sink.Error(err, fmt.Sprintf("autoequip set item %s", token))

	if p.ids == nil {
		return false
	}
	id, ok := p.ids.IDFor(token)
	if !ok {
		return false
	}
	if err := c.SetHeldItem(id); err != nil {
		p.sink.Error(err, fmt.Sprintf("autoequip set item %s as %d", token, id))
		return false
	}
	return true
}

func (p *Policy) deposit(ctx context.Context, token string) bool {
	for _, d := range p.depositors {
		if d == nil {
			continue
		}
		err := d.StoreItem(ctx, token, 1)
		if err == nil {
			return true
		}
		p.sink.Error(err, fmt.Sprintf("autoequip deposit %s", token))
	}
	return false
}

func (p *Policy) logOutcome(c Holder, out Outcome, candidates []string) {
	if out.Status == StatusAssignFailed {
		p.sink.Logf("AUTOEQUIP FAILED self-fusion (%s) desired=%v", out.Species, candidates)
		return
	}
	name := "?"
	if named, ok := c.(interface{ DisplayName() string }); ok {
		name = named.DisplayName()
	}
	if len(candidates) > 1 {
		p.sink.Logf("AUTOEQUIP self-fusion: %s (%s) -> hold %s ; gave %v", name, out.Species, out.Held, out.Granted)
		return
	}
	p.sink.Logf("AUTOEQUIP self-fusion: %s (%s) -> %s", name, out.Species, out.Held)
}

// ProcessParty runs the policy over an owner's party and saves every creature it changed
func (p *Policy) ProcessParty(ctx context.Context, repo party.Repository, ownerID string) ([]Outcome, error) {
	members, err := repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list party for %s: %w", ownerID, err)
	}

	outcomes := make([]Outcome, 0, len(members))
	for _, member := range members {
		out := p.ProcessOnce(ctx, member)
		outcomes = append(outcomes, out)
		if !out.Changed() {
			continue
		}
		if err := repo.Update(ctx, member); err != nil {
			p.sink.Error(err, fmt.Sprintf("autoequip save %s", member.ID))
		}
	}
	return outcomes, nil
}

var _ Holder = (*creature.Creature)(nil)
