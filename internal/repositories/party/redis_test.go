package party

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/megastones/internal/domain/creature"
	"github.com/KirkDiggler/megastones/internal/domain/shared"
	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	mockuuid "github.com/KirkDiggler/megastones/internal/uuid/mock"
)

type RedisRepoTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	mock redismock.ClientMock
	uuid *mockuuid.MockGenerator
	repo *redisRepo
	now  time.Time
}

func (s *RedisRepoTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uuid = mockuuid.NewMockGenerator(s.ctrl)
	client, mock := redismock.NewClientMock()
	s.mock = mock
	s.now = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	s.repo = NewRedisRepository(&RedisRepoConfig{
		Client:        client,
		UUIDGenerator: s.uuid,
	}).(*redisRepo)
	s.repo.now = func() time.Time { return s.now }
}

func (s *RedisRepoTestSuite) TearDownTest() {
	s.NoError(s.mock.ExpectationsWereMet())
}

func TestRedisRepoTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepoTestSuite))
}

func (s *RedisRepoTestSuite) twinzard() *creature.Creature {
	return &creature.Creature{
		OwnerID:     "ash",
		Name:        "Twinzard",
		Species:     "B6H6",
		PrimaryType: "FIRE",
		Base:        shared.StatSet{shared.StatAttack: 84},
	}
}

func (s *RedisRepoTestSuite) encode(c *creature.Creature, created, updated time.Time) string {
	data, err := json.Marshal(CreatureData{Creature: c, CreatedAt: created, UpdatedAt: updated})
	s.Require().NoError(err)
	return string(data)
}

func (s *RedisRepoTestSuite) TestCreate() {
	c := s.twinzard()
	s.uuid.EXPECT().New().Return("mon-1")

	expected := c.Clone()
	expected.ID = "mon-1"

	s.mock.ExpectExists("creature:mon-1").SetVal(0)
	s.mock.ExpectSet("creature:mon-1", s.encode(expected, s.now, s.now), 0).SetVal("OK")
	s.mock.ExpectRPush("owner:ash:party", "mon-1").SetVal(1)

	s.NoError(s.repo.Create(context.Background(), c))
	s.Equal("mon-1", c.ID)
}

func (s *RedisRepoTestSuite) TestCreate_AlreadyExists() {
	c := s.twinzard()
	c.ID = "mon-1"
	s.mock.ExpectExists("creature:mon-1").SetVal(1)

	s.True(megaerr.IsAlreadyExists(s.repo.Create(context.Background(), c)))
}

func (s *RedisRepoTestSuite) TestGet() {
	stored := s.twinzard()
	stored.ID = "mon-1"
	stored.Item = "CHARIZARDITE_X"
	s.mock.ExpectGet("creature:mon-1").SetVal(s.encode(stored, s.now, s.now))

	got, err := s.repo.Get(context.Background(), "mon-1")
	s.Require().NoError(err)
	s.Equal("Twinzard", got.Name)
	s.Equal("CHARIZARDITE_X", got.Item)
	s.Equal(84, got.Base[shared.StatAttack])
}

func (s *RedisRepoTestSuite) TestGet_NotFound() {
	s.mock.ExpectGet("creature:mon-9").RedisNil()

	_, err := s.repo.Get(context.Background(), "mon-9")
	s.True(megaerr.IsNotFound(err))
}

func (s *RedisRepoTestSuite) TestUpdate_PreservesCreatedAt() {
	created := s.now.Add(-time.Hour)
	stored := s.twinzard()
	stored.ID = "mon-1"
	s.mock.ExpectGet("creature:mon-1").SetVal(s.encode(stored, created, created))

	updated := stored.Clone()
	updated.Item = "CHARIZARDITE_X"
	updated.MarkSelfFusionProcessed()
	s.mock.ExpectSet("creature:mon-1", s.encode(updated, created, s.now), 0).SetVal("OK")

	s.NoError(s.repo.Update(context.Background(), updated))
}

func (s *RedisRepoTestSuite) TestUpdate_WriteFails() {
	stored := s.twinzard()
	stored.ID = "mon-1"
	s.mock.ExpectGet("creature:mon-1").SetVal(s.encode(stored, s.now, s.now))
	s.mock.ExpectSet("creature:mon-1", s.encode(stored, s.now, s.now), 0).SetErr(errors.New("redis error"))

	s.Error(s.repo.Update(context.Background(), stored))
}

func (s *RedisRepoTestSuite) TestListByOwner() {
	stored := s.twinzard()
	stored.ID = "mon-1"
	s.mock.ExpectLRange("owner:ash:party", 0, -1).SetVal([]string{"mon-1"})
	s.mock.ExpectGet("creature:mon-1").SetVal(s.encode(stored, s.now, s.now))

	party, err := s.repo.ListByOwner(context.Background(), "ash")
	s.Require().NoError(err)
	s.Require().Len(party, 1)
	s.Equal("B6H6", party[0].Species)
}

func (s *RedisRepoTestSuite) TestListByOwner_SkipsVanishedMembers() {
	s.mock.ExpectLRange("owner:ash:party", 0, -1).SetVal([]string{"mon-2"})
	s.mock.ExpectGet("creature:mon-2").RedisNil()

	party, err := s.repo.ListByOwner(context.Background(), "ash")
	s.Require().NoError(err)
	s.Empty(party)
}
