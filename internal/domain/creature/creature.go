package creature

import (
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

// Creature is a party member as the host saves it.
// Species is a plain species token or a fusion code such as B6H6.
type Creature struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`
	Name    string `json:"name"`
	Species string `json:"species"`

	// Item is the held item in whatever shape the host stored it
	Item any `json:"item,omitempty"`

	Base          shared.StatSet     `json:"base_stats"`
	PrimaryType   shared.ElementType `json:"type1"`
	SecondaryType shared.ElementType `json:"type2,omitempty"`
	Ability       shared.Ability     `json:"ability,omitempty"`
	IsEgg         bool               `json:"is_egg,omitempty"`

	// Stats is the last computed stat block, refreshed by CalcStats
	Stats shared.StatSet `json:"stats,omitempty"`

	// SelfFusionStonesProcessed is set once auto-equip has run for this creature
	SelfFusionStonesProcessed bool `json:"self_fusion_stones_processed,omitempty"`
}

func (c *Creature) SpeciesCode() string {
	return c.Species
}

func (c *Creature) HeldItem() any {
	return c.Item
}

// SetHeldItem replaces the held item. Eggs cannot hold items.
func (c *Creature) SetHeldItem(item any) error {
	if c.IsEgg {
		return megaerr.InvalidArgumentf("%s is an egg and cannot hold an item", c.DisplayName()).
			WithMeta("creature_id", c.ID)
	}
	c.Item = item
	return nil
}

// BaseStats returns a copy of the stored base stats
func (c *Creature) BaseStats() shared.StatSet {
	return c.Base.Clone()
}

func (c *Creature) Type1() shared.ElementType {
	return c.PrimaryType
}

// Type2 falls back to Type1 for mono-type creatures
func (c *Creature) Type2() shared.ElementType {
	if c.SecondaryType == shared.TypeNone {
		return c.PrimaryType
	}
	return c.SecondaryType
}

func (c *Creature) Types() []shared.ElementType {
	if c.SecondaryType == shared.TypeNone || c.SecondaryType == c.PrimaryType {
		return shared.CompactTypes(c.PrimaryType)
	}
	return shared.CompactTypes(c.PrimaryType, c.SecondaryType)
}

func (c *Creature) AbilityID() shared.Ability {
	return c.Ability
}

// CalcStats stores base as the creature's current stat block
func (c *Creature) CalcStats(base shared.StatSet) {
	c.Stats = base.Clone()
}

// ProcessedSelfFusion reports whether auto-equip already ran
func (c *Creature) ProcessedSelfFusion() bool {
	return c.SelfFusionStonesProcessed
}

// MarkSelfFusionProcessed sets the auto-equip mark; it is never cleared
func (c *Creature) MarkSelfFusionProcessed() {
	c.SelfFusionStonesProcessed = true
}

// Clone returns a deep copy; the held item value is shared
func (c *Creature) Clone() *Creature {
	if c == nil {
		return nil
	}
	out := *c
	if c.Base != nil {
		out.Base = c.Base.Clone()
	}
	if c.Stats != nil {
		out.Stats = c.Stats.Clone()
	}
	return &out
}

// DisplayName is the nickname, or the species when there is none
func (c *Creature) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Species
}
