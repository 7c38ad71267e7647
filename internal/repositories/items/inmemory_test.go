package items

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	megaerr "github.com/KirkDiggler/megastones/internal/errors"
)

func TestInMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewInMemoryStore(&Definition{Token: "POTION", IDNumber: 1, Name: "Potion"})

	t.Run("exists", func(t *testing.T) {
		ok, err := store.Exists(ctx, "POTION")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = store.Exists(ctx, "GENGARITE")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("register and get", func(t *testing.T) {
		err := store.Register(ctx, &Definition{Token: "GENGARITE", IDNumber: 6000, Name: "Gengarite"})
		require.NoError(t, err)

		def, err := store.Get(ctx, "GENGARITE")
		require.NoError(t, err)
		assert.Equal(t, 6000, def.IDNumber)
		assert.Equal(t, "GENGARITE", def.ItemToken())
	})

	t.Run("duplicate token", func(t *testing.T) {
		err := store.Register(ctx, &Definition{Token: "GENGARITE", IDNumber: 6001})
		assert.True(t, megaerr.IsAlreadyExists(err))
	})

	t.Run("duplicate id number", func(t *testing.T) {
		err := store.Register(ctx, &Definition{Token: "ABSOLITE", IDNumber: 6000})
		assert.True(t, megaerr.IsAlreadyExists(err))
	})

	t.Run("missing", func(t *testing.T) {
		_, err := store.Get(ctx, "ABSOLITE")
		assert.True(t, megaerr.IsNotFound(err))

		_, err = store.Get(ctx, "")
		assert.True(t, megaerr.IsInvalidArgument(err))
		assert.True(t, megaerr.IsInvalidArgument(store.Register(ctx, nil)))
	})

	t.Run("all is ordered by id", func(t *testing.T) {
		all, err := store.All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, "POTION", all[0].Token)
		assert.Equal(t, "GENGARITE", all[1].Token)
	})
}
