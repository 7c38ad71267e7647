package effects

import (
	"math"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
)

// Type1 returns the effective first type slot
func Type1(orig shared.ElementType, ctx *Context) shared.ElementType {
	if ctx == nil || !ctx.HeadApplies {
		return orig
	}
	return slotOr(ctx.Rule.Types[0], orig)
}

// Type2 returns the effective second type slot
func Type2(orig shared.ElementType, ctx *Context) shared.ElementType {
	if ctx == nil || !ctx.BodyApplies {
		return orig
	}
	return slotOr(ctx.Rule.Types[1], orig)
}

// Types resolves each slot on its own and drops empty ones.
// A mono-type rule yields the same type twice.
func Types(orig1, orig2 shared.ElementType, ctx *Context) []shared.ElementType {
	return shared.CompactTypes(Type1(orig1, ctx), Type2(orig2, ctx))
}

// Ability returns the rule's ability whenever any side matched
func Ability(orig shared.Ability, ctx *Context) shared.Ability {
	if ctx == nil || ctx.Rule.Ability == shared.AbilityNone {
		return orig
	}
	return ctx.Rule.Ability
}

// ApplyBaseStats returns a copy of base with rule applied: every additive delta first,
// then every factor, rounded to the nearest integer.
func ApplyBaseStats(base shared.StatSet, rule catalog.Rule) shared.StatSet {
	out := base.Clone()
	for stat, delta := range rule.Add {
		out[shared.NormalizeStat(stat)] += delta
	}
	for stat, factor := range rule.Mul {
		key := shared.NormalizeStat(stat)
		out[key] = int(math.Round(float64(out[key]) * factor))
	}
	return out
}

func slotOr(slot, orig shared.ElementType) shared.ElementType {
	if slot == shared.TypeNone {
		return orig
	}
	return slot
}
