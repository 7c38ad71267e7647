// Package effects decides whether a held stone overrides a creature and computes the
// overridden types, ability and base stats.
package effects

import (
	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/fusion"
	"github.com/KirkDiggler/megastones/internal/helditem"
)

// Subject is the part of a creature the resolver reads
type Subject interface {
	SpeciesCode() string
	HeldItem() any
}

// Context describes an override that applies right now. It is computed per query.
type Context struct {
	Token string
	Stone *catalog.Stone
	Rule  catalog.Rule

	IsFusion    bool
	HeadApplies bool
	BodyApplies bool
}

// ResolverConfig holds the resolver's collaborators
type ResolverConfig struct {
	Catalog *catalog.Catalog
	Codec   *fusion.Codec

	// IDs resolves numeric held items; usually the registrar
	IDs helditem.IDIndex
}

// Resolver matches held stones against creatures
type Resolver struct {
	catalog    *catalog.Catalog
	codec      *fusion.Codec
	normalizer helditem.Normalizer
}

// NewResolver creates a resolver
func NewResolver(cfg *ResolverConfig) *Resolver {
	if cfg == nil || cfg.Catalog == nil {
		panic("catalog is required")
	}
	codec := cfg.Codec
	if codec == nil {
		codec = fusion.NewCodec(nil)
	}
	return &Resolver{
		catalog:    cfg.Catalog,
		codec:      codec,
		normalizer: helditem.Normalizer{IDs: cfg.IDs},
	}
}

// Normalize exposes the resolver's held item normalization
func (r *Resolver) Normalize(item any) helditem.Result {
	return r.normalizer.Normalize(item)
}

// Resolve returns the override for c, or false when none applies
func (r *Resolver) Resolve(c Subject) (*Context, bool) {
	if c == nil {
		return nil, false
	}

	held := r.normalizer.Normalize(c.HeldItem())
	if held.Kind != helditem.KindToken {
		return nil, false
	}
	stone, ok := r.catalog.Stone(held.Token)
	if !ok {
		return nil, false
	}

	target := stone.Rule.Species
	species := c.SpeciesCode()
	if species == target {
		return &Context{
			Token:       stone.Token,
			Stone:       stone,
			Rule:        stone.Rule,
			HeadApplies: true,
			BodyApplies: true,
		}, true
	}

	if _, isFusion := fusion.Decode(species); !isFusion {
		return nil, false
	}
	head, _ := r.codec.HeadSpecies(species)
	body, _ := r.codec.BodySpecies(species)
	headMatches := head == target
	bodyMatches := body == target
	if !headMatches && !bodyMatches {
		return nil, false
	}

	return &Context{
		Token:       stone.Token,
		Stone:       stone,
		Rule:        stone.Rule,
		IsFusion:    true,
		HeadApplies: headMatches,
		BodyApplies: bodyMatches,
	}, true
}

// IsMegaActive reports whether any override applies to c.
// Battle displays use it to decide whether to draw the mega marker.
func (r *Resolver) IsMegaActive(c Subject) bool {
	_, ok := r.Resolve(c)
	return ok
}
