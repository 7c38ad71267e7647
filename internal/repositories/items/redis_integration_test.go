//go:build integration

package items_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
	"github.com/KirkDiggler/megastones/internal/repositories/items"
	"github.com/KirkDiggler/megastones/internal/testutils"
)

func TestRedisStore_Integration(t *testing.T) {
	ctx := context.Background()
	store := items.NewRedisStore(testutils.RedisForTest(t))

	require.NoError(t, store.Register(ctx, &items.Definition{Token: "GENGARITE", IDNumber: 6000, Name: "Gengarite"}))
	require.NoError(t, store.Register(ctx, &items.Definition{Token: "ABSOLITE", IDNumber: 6001, Name: "Absolite"}))

	err := store.Register(ctx, &items.Definition{Token: "BANETTITE", IDNumber: 6000})
	assert.True(t, megaerr.IsAlreadyExists(err), "id 6000 is taken")

	exists, err := store.Exists(ctx, "BANETTITE")
	require.NoError(t, err)
	assert.False(t, exists)

	all, err := store.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "GENGARITE", all[0].Token)
	assert.Equal(t, "ABSOLITE", all[1].Token)
}
