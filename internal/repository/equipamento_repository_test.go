package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEquipamentoRepoCRUD(t *testing.T) {
	repo := NewEquipamentoRepo(newTestDB(t))
	ctx := context.Background()

	eq := &Equipamento{NmEquipamento: "Mesa de som 16 canais", Disponivel: "S"}
	require.NoError(t, repo.Insert(ctx, eq))
	require.NotZero(t, eq.ID)

	got, err := repo.FindByID(ctx, eq.ID)
	require.NoError(t, err)
	assert.Equal(t, eq, got)
	// The availability code survives as the literal character.
	assert.Equal(t, "S", got.Disponivel)

	eq.Disponivel = "N"
	qtd, err := repo.Update(ctx, eq)
	require.NoError(t, err)
	assert.Equal(t, int64(1), qtd)

	got, err = repo.FindByID(ctx, eq.ID)
	require.NoError(t, err)
	assert.Equal(t, "N", got.Disponivel)

	qtd, err = repo.Delete(ctx, eq.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), qtd)

	_, err = repo.FindByID(ctx, eq.ID)
	assert.ErrorIs(t, err, ErrEquipamentoNotFound)
}

func TestEquipamentoRepoFindAllEmpty(t *testing.T) {
	repo := NewEquipamentoRepo(newTestDB(t))

	out, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestEquipamentoRepoMutationsOnMissingRow(t *testing.T) {
	repo := NewEquipamentoRepo(newTestDB(t))
	ctx := context.Background()

	qtd, err := repo.Update(ctx, &Equipamento{ID: 999, NmEquipamento: "Cavaquinho", Disponivel: "S"})
	require.NoError(t, err)
	assert.Zero(t, qtd)

	qtd, err = repo.Delete(ctx, 999)
	require.NoError(t, err)
	assert.Zero(t, qtd)
}
