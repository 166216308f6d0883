package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jphuse/nuskell/pkg/compiler"
	"github.com/jphuse/nuskell/pkg/domain"
)

// RunSystemStoreContract runs a suite of tests to verify that a SystemStore
// implementation adheres to the defined interface contract.
func RunSystemStoreContract(t *testing.T, store SystemStore) {
	ctx := context.Background()
	id := "contract-test-system-" + time.Now().Format("20060102150405")

	system, err := compiler.New().Compile(&domain.CRN{Reactions: []domain.Reaction{
		{Reactants: []string{"A"}, Products: []string{"B"}},
	}})
	require.NoError(t, err, "fixture compilation should succeed")

	t.Run("Save and Load", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, system), "Save should not return error")

		loaded, err := store.Load(ctx, id)
		require.NoError(t, err, "Load should not return error")
		require.Len(t, loaded.Complexes, len(system.Complexes))
		for i, c := range loaded.Complexes {
			assert.Equal(t, system.Complexes[i].Key(), c.Key())
		}
		assert.Len(t, loaded.Species, len(system.Species))
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+id)
		assert.ErrorIs(t, err, domain.ErrSystemNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id, system))
		require.NoError(t, store.Delete(ctx, id), "Delete should not return error")

		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrSystemNotFound, "Load after Delete should return ErrSystemNotFound")
	})

	t.Run("List", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, id+"-1", system))
		require.NoError(t, store.Save(ctx, id+"-2", system))

		ids, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, ids, id+"-1")
		assert.Contains(t, ids, id+"-2")
	})
}
