package effects

import (
	"github.com/KirkDiggler/megastones/internal/domain/shared"
)

// Attributes is everything the engine reads or writes on a host creature
type Attributes interface {
	Subject

	SetHeldItem(item any) error
	BaseStats() shared.StatSet
	Type1() shared.ElementType
	Type2() shared.ElementType
	Types() []shared.ElementType
	AbilityID() shared.Ability
}

// StatCalculator is implemented by creatures that cache computed stats
type StatCalculator interface {
	CalcStats(base shared.StatSet)
}

// Creature answers every accessor of the wrapped value with the held stone applied
type Creature struct {
	Attributes

	resolver *Resolver
}

// Wrap decorates c with r
func Wrap(c Attributes, r *Resolver) *Creature {
	return &Creature{Attributes: c, resolver: r}
}

// Unwrap returns the decorated value
func (c *Creature) Unwrap() Attributes {
	return c.Attributes
}

// Resolve returns the override currently in effect
func (c *Creature) Resolve() (*Context, bool) {
	return c.resolver.Resolve(c.Attributes)
}

func (c *Creature) Type1() shared.ElementType {
	ctx, _ := c.Resolve()
	return Type1(c.Attributes.Type1(), ctx)
}

func (c *Creature) Type2() shared.ElementType {
	ctx, _ := c.Resolve()
	return Type2(c.Attributes.Type2(), ctx)
}

func (c *Creature) Types() []shared.ElementType {
	ctx, ok := c.Resolve()
	if !ok {
		return c.Attributes.Types()
	}
	return Types(c.Attributes.Type1(), c.Attributes.Type2(), ctx)
}

func (c *Creature) AbilityID() shared.Ability {
	ctx, _ := c.Resolve()
	return Ability(c.Attributes.AbilityID(), ctx)
}

func (c *Creature) BaseStats() shared.StatSet {
	base := c.Attributes.BaseStats()
	ctx, ok := c.Resolve()
	if !ok {
		return base
	}
	return ApplyBaseStats(base, ctx.Rule)
}

// IsMegaActive reports whether a stone currently applies
func (c *Creature) IsMegaActive() bool {
	_, ok := c.Resolve()
	return ok
}

// SetHeldItem stores the item, then recomputes stats when the wrapped value caches them
func (c *Creature) SetHeldItem(item any) error {
	if err := c.Attributes.SetHeldItem(item); err != nil {
		return err
	}
	c.CalcStats()
	return nil
}

// CalcStats pushes the effective base stats into the wrapped value
func (c *Creature) CalcStats() {
	if calc, ok := c.Attributes.(StatCalculator); ok {
		calc.CalcStats(c.BaseStats())
	}
}
