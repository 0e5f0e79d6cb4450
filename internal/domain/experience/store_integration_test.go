//go:build integration

package experience_test

import (
	"context"
	"testing"

	"folio/internal/db/dbtest"
	"folio/internal/domain/experience"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_CRUD(t *testing.T) {
	pg := dbtest.NewPool(t)
	repo := experience.NewRepository(pg)
	ctx := context.Background()

	older := &experience.Experience{Role: "Intern", Company: "Acme", Description: []string{"Wrote tests"}}
	require.NoError(t, repo.Create(ctx, older))
	newer := &experience.Experience{Role: "Engineer", Company: "Initech", Type: "work"}
	require.NoError(t, repo.Create(ctx, newer))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Engineer", list[0].Role)
	assert.Equal(t, []string{}, list[0].Description)

	desc := []string{"Led migration", "Mentored"}
	updated, err := repo.Update(ctx, older.ID, experience.Patch{Description: &desc})
	require.NoError(t, err)
	assert.Equal(t, desc, updated.Description)
	assert.Equal(t, "Intern", updated.Role)

	require.NoError(t, repo.Delete(ctx, older.ID))
	assert.ErrorIs(t, repo.Delete(ctx, older.ID), experience.ErrNotFound)
}
