package autoequip_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/megastones/internal/catalog"
	"github.com/KirkDiggler/megastones/internal/diagnostics"
	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/fusion"
	"github.com/KirkDiggler/megastones/internal/repositories/bag"
	mockbag "github.com/KirkDiggler/megastones/internal/repositories/bag/mock"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/repositories/party"
	mockparty "github.com/KirkDiggler/megastones/internal/repositories/party/mock"
	"github.com/KirkDiggler/megastones/internal/repositories/species"
	"github.com/KirkDiggler/megastones/internal/services/autoequip"
	"github.com/KirkDiggler/megastones/internal/uuid"
)

type idTable map[string]int

func (t idTable) IDFor(token string) (int, bool) {
	id, ok := t[token]
	return id, ok
}

func (t idTable) TokenFor(id int) (string, bool) {
	for token, v := range t {
		if v == id {
			return token, true
		}
	}
	return "", false
}

// numericOnly mimics hosts whose item slot only takes ids
type numericOnly struct {
	*creature.Creature
}

func (n numericOnly) SetHeldItem(item any) error {
	if _, ok := item.(int); !ok {
		return errors.New("item must be an id")
	}
	return n.Creature.SetHeldItem(item)
}

type PolicyTestSuite struct {
	suite.Suite
	ctx    context.Context
	bag    *bag.InMemoryBag
	sink   *diagnostics.Recorder
	codec  *fusion.Codec
	policy *autoequip.Policy
}

func (s *PolicyTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.bag = bag.NewInMemoryBag()
	s.sink = &diagnostics.Recorder{}
	s.codec = fusion.NewCodec(species.NewInMemoryTable(
		species.Species{Dex: 6, Token: "CHARIZARD"},
		species.Species{Dex: 25, Token: "PIKACHU"},
		species.Species{Dex: 94, Token: "GENGAR"},
		species.Species{Dex: 150, Token: "MEWTWO"},
	))
	s.policy = autoequip.New(&autoequip.Config{
		Catalog:    catalog.Default(),
		Codec:      s.codec,
		IDs:        idTable{"MEWTWONITE_Y": 6100, "MEWTWONITE_X": 6101, "GENGARITE": 6017},
		Depositors: []bag.Depositor{s.bag},
		Sink:       s.sink,
	})
}

func TestPolicyTestSuite(t *testing.T) {
	suite.Run(t, new(PolicyTestSuite))
}

func (s *PolicyTestSuite) quantity(token string) int {
	n, err := s.bag.Quantity(s.ctx, token)
	s.Require().NoError(err)
	return n
}

func (s *PolicyTestSuite) TestEquipsPrimaryAndGrantsAlternate() {
	c := &creature.Creature{Name: "Mewtwins", Species: "B150H150"}

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusEquipped, out.Status)
	s.Equal("MEWTWONITE_Y", c.Item)
	s.Equal([]string{"MEWTWONITE_X"}, out.Granted)
	s.Equal(1, s.quantity("MEWTWONITE_X"))
	s.Zero(s.quantity("MEWTWONITE_Y"))
	s.True(c.ProcessedSelfFusion())
	s.True(s.sink.Contains("AUTOEQUIP self-fusion: Mewtwins (MEWTWO) -> hold MEWTWONITE_Y ; gave [MEWTWONITE_X]"))

	again := s.policy.ProcessOnce(s.ctx, c)
	s.Equal(autoequip.StatusAlreadyProcessed, again.Status)
	s.Equal(1, s.quantity("MEWTWONITE_X"))
}

func (s *PolicyTestSuite) TestSingleStoneSpecies() {
	c := &creature.Creature{Name: "Twingar", Species: "B94H94", Item: ":NONE"}

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusEquipped, out.Status)
	s.Empty(out.Granted)
	s.True(s.sink.Contains("AUTOEQUIP self-fusion: Twingar (GENGAR) -> GENGARITE"))
}

func (s *PolicyTestSuite) TestKeepsHeldCandidate() {
	c := &creature.Creature{Species: "B150H150", Item: 6101}

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusKept, out.Status)
	s.Equal("MEWTWONITE_X", out.Held)
	s.Equal(6101, c.Item)
	s.Equal(1, s.quantity("MEWTWONITE_Y"))
	s.Zero(s.quantity("MEWTWONITE_X"))
	s.True(c.ProcessedSelfFusion())
}

func (s *PolicyTestSuite) TestUnrelatedItemIsLeftAlone() {
	c := &creature.Creature{Species: "B150H150", Item: "LEFTOVERS"}

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusSkipped, out.Status)
	s.False(out.Changed())
	s.Equal("LEFTOVERS", c.Item)
	s.False(c.ProcessedSelfFusion())
	s.Empty(s.bag.Tokens())
}

// reload mimics a save and load through the party repository's JSON encoding
func (s *PolicyTestSuite) reload(c *creature.Creature) *creature.Creature {
	data, err := json.Marshal(c)
	s.Require().NoError(err)
	var out creature.Creature
	s.Require().NoError(json.Unmarshal(data, &out))
	return &out
}

func (s *PolicyTestSuite) TestSavedItemRecordIsLeftAlone() {
	c := s.reload(&creature.Creature{
		Species: "B150H150",
		Item:    &items.Definition{Token: "LEFTOVERS", IDNumber: 234, Name: "Leftovers"},
	})
	s.Require().IsType(map[string]any{}, c.Item)

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusSkipped, out.Status)
	s.Equal("LEFTOVERS", c.Item.(map[string]any)["id"])
	s.False(c.ProcessedSelfFusion())
	s.Empty(s.bag.Tokens())
}

func (s *PolicyTestSuite) TestSavedStoneRecordIsKept() {
	c := s.reload(&creature.Creature{
		Species: "B150H150",
		Item:    &items.Definition{Token: "MEWTWONITE_X", IDNumber: 6101},
	})

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusKept, out.Status)
	s.Equal("MEWTWONITE_X", out.Held)
	s.Equal(1, s.quantity("MEWTWONITE_Y"))
	s.True(c.ProcessedSelfFusion())
}

func (s *PolicyTestSuite) TestNotApplicable() {
	cases := map[string]*creature.Creature{
		"plain species":        {Species: "MEWTWO"},
		"cross fusion":         {Species: "B6H150"},
		"unmapped self":        {Species: "B25H25"},
		"unknown dex":          {Species: "B999H999"},
		"marked plain species": {Species: "GENGAR", SelfFusionStonesProcessed: true},
	}
	for name, c := range cases {
		s.Run(name, func() {
			out := s.policy.ProcessOnce(s.ctx, c)
			s.Equal(autoequip.StatusNotApplicable, out.Status)
			s.Nil(c.Item)
		})
	}
	s.Equal(autoequip.StatusNotApplicable, s.policy.ProcessOnce(s.ctx, nil).Status)
}

func (s *PolicyTestSuite) TestFallsBackToNumericID() {
	c := numericOnly{&creature.Creature{Species: "B150H150"}}

	out := s.policy.ProcessOnce(s.ctx, c)

	s.Equal(autoequip.StatusEquipped, out.Status)
	s.Equal(6100, c.Item)
	s.Len(s.sink.Errors, 1)
}

func (s *PolicyTestSuite) TestAssignFailureStillMarks() {
	egg := &creature.Creature{Species: "B150H150", IsEgg: true}

	out := s.policy.ProcessOnce(s.ctx, egg)

	s.Equal(autoequip.StatusAssignFailed, out.Status)
	s.Equal([]string{"MEWTWONITE_Y", "MEWTWONITE_X"}, out.Granted)
	s.True(egg.ProcessedSelfFusion())
	s.True(s.sink.Contains("AUTOEQUIP FAILED self-fusion (MEWTWO) desired=[MEWTWONITE_Y MEWTWONITE_X]"))
}

func TestDepositorPreferenceOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	silent := mockbag.NewMockDepositor(ctrl)
	fallback := mockbag.NewMockDepositor(ctrl)
	noisy := mockbag.NewMockDepositor(ctrl)

	gomock.InOrder(
		silent.EXPECT().StoreItem(gomock.Any(), "CHARIZARDITE_Y", 1).Return(errors.New("pocket full")),
		fallback.EXPECT().StoreItem(gomock.Any(), "CHARIZARDITE_Y", 1).Return(nil),
	)
	noisy.EXPECT().StoreItem(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	sink := &diagnostics.Recorder{}
	policy := autoequip.New(&autoequip.Config{
		Catalog:    catalog.Default(),
		Codec:      fusion.NewCodec(species.NewInMemoryTable(species.Species{Dex: 6, Token: "CHARIZARD"})),
		Depositors: []bag.Depositor{silent, fallback, noisy},
		Sink:       sink,
	})

	out := policy.ProcessOnce(context.Background(), &creature.Creature{Species: "B6H6"})

	assert.Equal(t, autoequip.StatusEquipped, out.Status)
	assert.Equal(t, []string{"CHARIZARDITE_Y"}, out.Granted)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0], "autoequip deposit CHARIZARDITE_Y")
}

func TestDepositFailureStillMarks(t *testing.T) {
	ctrl := gomock.NewController(t)
	broken := mockbag.NewMockDepositor(ctrl)
	broken.EXPECT().StoreItem(gomock.Any(), "CHARIZARDITE_Y", 1).Return(errors.New("no bag"))

	policy := autoequip.New(&autoequip.Config{
		Catalog:    catalog.Default(),
		Codec:      fusion.NewCodec(species.NewInMemoryTable(species.Species{Dex: 6, Token: "CHARIZARD"})),
		Depositors: []bag.Depositor{broken},
	})

	c := &creature.Creature{Species: "B6H6"}
	out := policy.ProcessOnce(context.Background(), c)

	assert.Equal(t, autoequip.StatusEquipped, out.Status)
	assert.Empty(t, out.Granted)
	assert.True(t, c.ProcessedSelfFusion())
}

func TestProcessParty(t *testing.T) {
	ctx := context.Background()
	repo := party.NewInMemoryRepository(&uuid.SequenceGenerator{Prefix: "mon"})
	require.NoError(t, repo.Create(ctx, &creature.Creature{OwnerID: "ash", Species: "B6H6"}))
	require.NoError(t, repo.Create(ctx, &creature.Creature{OwnerID: "ash", Species: "B6H6", Item: "LEFTOVERS"}))
	require.NoError(t, repo.Create(ctx, &creature.Creature{OwnerID: "ash", Species: "GENGAR"}))

	b := bag.NewInMemoryBag()
	policy := autoequip.New(&autoequip.Config{
		Catalog:    catalog.Default(),
		Codec:      fusion.NewCodec(species.NewInMemoryTable(species.Species{Dex: 6, Token: "CHARIZARD"})),
		Depositors: []bag.Depositor{b},
	})

	outcomes, err := policy.ProcessParty(ctx, repo, "ash")
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	assert.Equal(t, autoequip.StatusEquipped, outcomes[0].Status)
	assert.Equal(t, autoequip.StatusSkipped, outcomes[1].Status)
	assert.Equal(t, autoequip.StatusNotApplicable, outcomes[2].Status)

	saved, err := repo.Get(ctx, "mon-1")
	require.NoError(t, err)
	assert.Equal(t, "CHARIZARDITE_X", saved.Item)
	assert.True(t, saved.ProcessedSelfFusion())

	skipped, err := repo.Get(ctx, "mon-2")
	require.NoError(t, err)
	assert.False(t, skipped.ProcessedSelfFusion())

	again, err := policy.ProcessParty(ctx, repo, "ash")
	require.NoError(t, err)
	assert.Equal(t, autoequip.StatusAlreadyProcessed, again[0].Status)
	n, _ := b.Quantity(ctx, "CHARIZARDITE_Y")
	assert.Equal(t, 1, n)
}

func TestProcessParty_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mockparty.NewMockRepository(ctrl)
	sink := &diagnostics.Recorder{}
	policy := autoequip.New(&autoequip.Config{
		Catalog: catalog.Default(),
		Codec:   fusion.NewCodec(species.NewInMemoryTable(species.Species{Dex: 94, Token: "GENGAR"})),
		Sink:    sink,
	})

	repo.EXPECT().ListByOwner(gomock.Any(), "ash").Return(nil, errors.New("redis down"))
	_, err := policy.ProcessParty(context.Background(), repo, "ash")
	assert.Error(t, err)

	member := &creature.Creature{ID: "mon-1", OwnerID: "ash", Species: "B94H94"}
	repo.EXPECT().ListByOwner(gomock.Any(), "ash").Return([]*creature.Creature{member}, nil)
	repo.EXPECT().Update(gomock.Any(), member).Return(errors.New("redis down"))

	outcomes, err := policy.ProcessParty(context.Background(), repo, "ash")
	require.NoError(t, err)
	assert.Equal(t, autoequip.StatusEquipped, outcomes[0].Status)
	require.Len(t, sink.Errors, 1)
	assert.Contains(t, sink.Errors[0], "autoequip save mon-1")
}
