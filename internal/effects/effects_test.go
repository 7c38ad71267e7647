package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	"github.com/KirkDiggler/megastones/internal/fusion"
	"github.com/KirkDiggler/megastones/internal/helditem"
	"github.com/KirkDiggler/megastones/internal/repositories/species"
)

type ResolverTestSuite struct {
	suite.Suite
	resolver *Resolver
}

func (s *ResolverTestSuite) SetupTest() {
	table := species.NewInMemoryTable(
		species.Species{Dex: 6, Token: "CHARIZARD"},
		species.Species{Dex: 25, Token: "PIKACHU"},
		species.Species{Dex: 94, Token: "GENGAR"},
	)
	s.resolver = NewResolver(&ResolverConfig{
		Catalog: catalog.Default(),
		Codec:   fusion.NewCodec(table),
		IDs:     helditem.IDMap{6017: "GENGARITE"},
	})
}

func (s *ResolverTestSuite) TestDirectMatch() {
	ctx, ok := s.resolver.Resolve(&creature.Creature{Species: "GENGAR", Item: "GENGARITE"})
	s.Require().True(ok)
	s.False(ctx.IsFusion)
	s.True(ctx.HeadApplies)
	s.True(ctx.BodyApplies)
	s.Equal("GENGAR", ctx.Rule.Species)
}

func (s *ResolverTestSuite) TestHeldItemShapes() {
	for _, item := range []any{":GENGARITE", 6017, float64(6017)} {
		s.True(s.resolver.IsMegaActive(&creature.Creature{Species: "GENGAR", Item: item}), "%v", item)
	}
}

func (s *ResolverTestSuite) TestNoMatch() {
	cases := map[string]*creature.Creature{
		"no item":          {Species: "GENGAR"},
		"unknown item":     {Species: "GENGAR", Item: "LEFTOVERS"},
		"unknown id":       {Species: "GENGAR", Item: 42},
		"wrong species":    {Species: "PIKACHU", Item: "GENGARITE"},
		"unrelated fusion": {Species: "B25H25", Item: "GENGARITE"},
		"bad fusion code":  {Species: "B94X6", Item: "GENGARITE"},
	}
	for name, c := range cases {
		s.Run(name, func() {
			_, ok := s.resolver.Resolve(c)
			s.False(ok)
		})
	}
	_, ok := s.resolver.Resolve(nil)
	s.False(ok)
}

func (s *ResolverTestSuite) TestFusionHalves() {
	headOnly, ok := s.resolver.Resolve(&creature.Creature{Species: "B25H94", Item: "GENGARITE"})
	s.Require().True(ok)
	s.True(headOnly.IsFusion)
	s.True(headOnly.HeadApplies)
	s.False(headOnly.BodyApplies)

	bodyOnly, ok := s.resolver.Resolve(&creature.Creature{Species: "b94h25", Item: "GENGARITE"})
	s.Require().True(ok)
	s.False(bodyOnly.HeadApplies)
	s.True(bodyOnly.BodyApplies)

	self, ok := s.resolver.Resolve(&creature.Creature{Species: "B94H94", Item: "GENGARITE"})
	s.Require().True(ok)
	s.True(self.HeadApplies)
	s.True(self.BodyApplies)
}

func TestResolverSuite(t *testing.T) {
	suite.Run(t, new(ResolverTestSuite))
}

func TestApplyBaseStats_AddsBeforeMultiplying(t *testing.T) {
	rule := catalog.Rule{
		Add: map[shared.Stat]int{"ATTACK": 20, "SPATK": 5},
		Mul: map[shared.Stat]float64{"attack": 1.5, "SPDEF": 1.25},
	}
	base := shared.StatSet{shared.StatAttack: 100, shared.StatSpecialDefense: 81}

	got := ApplyBaseStats(base, rule)

	assert.Equal(t, 180, got[shared.StatAttack])
	assert.Equal(t, 5, got[shared.StatSpecialAttack])
	assert.Equal(t, 101, got[shared.StatSpecialDefense])
	assert.Equal(t, 0, got[shared.StatHP])
	assert.Equal(t, 100, base[shared.StatAttack])
}

func TestTypes_PerSlot(t *testing.T) {
	rule := catalog.Rule{Types: [2]shared.ElementType{"DRAGON", "DRAGON"}}

	full := &Context{Rule: rule, HeadApplies: true, BodyApplies: true}
	assert.Equal(t, []shared.ElementType{"DRAGON", "DRAGON"}, Types("FIRE", "FLYING", full))

	headOnly := &Context{Rule: rule, IsFusion: true, HeadApplies: true}
	assert.Equal(t, shared.ElementType("DRAGON"), Type1("FIRE", headOnly))
	assert.Equal(t, shared.ElementType("ELECTRIC"), Type2("ELECTRIC", headOnly))
	assert.Equal(t, []shared.ElementType{"DRAGON", "ELECTRIC"}, Types("FIRE", "ELECTRIC", headOnly))

	partial := &Context{Rule: catalog.Rule{Types: [2]shared.ElementType{"FIRE", shared.TypeNone}}, HeadApplies: true, BodyApplies: true}
	assert.Equal(t, []shared.ElementType{"FIRE", "FLYING"}, Types("WATER", "FLYING", partial))

	assert.Equal(t, []shared.ElementType{"WATER"}, Types("WATER", shared.TypeNone, nil))
}

func TestAbility(t *testing.T) {
	ctx := &Context{Rule: catalog.Rule{Ability: "SHADOWTAG"}, IsFusion: true, BodyApplies: true}
	assert.Equal(t, shared.Ability("SHADOWTAG"), Ability("CURSEDBODY", ctx))
	assert.Equal(t, shared.Ability("CURSEDBODY"), Ability("CURSEDBODY", &Context{}))
	assert.Equal(t, shared.Ability("CURSEDBODY"), Ability("CURSEDBODY", nil))
}

func TestCreature_Decorates(t *testing.T) {
	table := species.NewInMemoryTable(species.Species{Dex: 94, Token: "GENGAR"}, species.Species{Dex: 25, Token: "PIKACHU"})
	r := NewResolver(&ResolverConfig{Catalog: catalog.Default(), Codec: fusion.NewCodec(table)})

	raw := &creature.Creature{
		Species:       "B25H94",
		PrimaryType:   "GHOST",
		SecondaryType: "ELECTRIC",
		Ability:       "CURSEDBODY",
		Base:          shared.StatSet{shared.StatSpecialAttack: 100},
	}
	c := Wrap(raw, r)

	assert.False(t, c.IsMegaActive())
	assert.Equal(t, []shared.ElementType{"GHOST", "ELECTRIC"}, c.Types())

	require.NoError(t, c.SetHeldItem("GENGARITE"))
	assert.True(t, c.IsMegaActive())
	assert.Equal(t, []shared.ElementType{"GHOST", "ELECTRIC"}, c.Types())
	assert.Equal(t, shared.Ability("SHADOWTAG"), c.AbilityID())
	assert.Equal(t, 140, c.BaseStats()[shared.StatSpecialAttack])
	assert.Equal(t, 100, raw.BaseStats()[shared.StatSpecialAttack])

	// SetHeldItem refreshed the cached stat block with the override applied
	assert.Equal(t, 140, raw.Stats[shared.StatSpecialAttack])
	assert.Same(t, raw, c.Unwrap())
}

func TestCreature_MonoTypeHeadOnlyFusion(t *testing.T) {
	table := species.NewInMemoryTable(species.Species{Dex: 94, Token: "GENGAR"}, species.Species{Dex: 25, Token: "PIKACHU"})
	r := NewResolver(&ResolverConfig{Catalog: catalog.Default(), Codec: fusion.NewCodec(table)})

	raw := &creature.Creature{Species: "B25H94", PrimaryType: "ELECTRIC", Item: "GENGARITE"}
	c := Wrap(raw, r)

	assert.Equal(t, []shared.ElementType{"ELECTRIC"}, raw.Types())
	// The body half keeps the creature's second slot, which mirrors the first on a mono type
	assert.Equal(t, shared.ElementType("GHOST"), c.Type1())
	assert.Equal(t, shared.ElementType("ELECTRIC"), c.Type2())
	assert.Equal(t, []shared.ElementType{"GHOST", "ELECTRIC"}, c.Types())
}

func TestCreature_SetHeldItemError(t *testing.T) {
	r := NewResolver(&ResolverConfig{Catalog: catalog.Default()})
	egg := &creature.Creature{Species: "GENGAR", IsEgg: true}

	assert.Error(t, Wrap(egg, r).SetHeldItem("GENGARITE"))
	assert.Nil(t, egg.Stats)
}
