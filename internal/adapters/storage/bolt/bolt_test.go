package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animal-registry/internal/domain/animals"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func TestAnimalsRepo_EmptyList(t *testing.T) {
	repo := NewAnimalsRepo(openTestStore(t))

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.NotNil(t, list)
}

func TestAnimalsRepo_ReplaceRoundTrip(t *testing.T) {
	repo := NewAnimalsRepo(openTestStore(t))
	ctx := context.Background()

	nascimento := time.Date(2023, 10, 5, 0, 0, 0, 0, time.UTC)
	in := []animals.Animal{
		{
			ID:             "id-1",
			Categoria:      "Peixe",
			Especie:        "Betta",
			Quantidade:     2,
			DataCompra:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			DataNascimento: &nascimento,
			Valor:          15.5,
			Tamanho:        4,
			Origem:         "Loja X",
			Observacao:     "água doce",
			ImageURL:       "https://example.com/betta.jpg",
		},
		{
			ID:         "id-2",
			Categoria:  "Ave",
			Especie:    "Calopsita",
			Quantidade: 1,
			DataCompra: time.Date(2022, 11, 20, 0, 0, 0, 0, time.UTC),
			Valor:      250,
			Tamanho:    30,
			Origem:     "Criador",
		},
	}

	require.NoError(t, repo.Replace(ctx, in))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	// orden preservado y campos fieles, fechas incluidas
	assert.Equal(t, "id-1", got[0].ID)
	assert.Equal(t, "id-2", got[1].ID)
	assert.Equal(t, "água doce", got[0].Observacao)
	assert.True(t, got[0].DataCompra.Equal(in[0].DataCompra))
	require.NotNil(t, got[0].DataNascimento)
	assert.True(t, got[0].DataNascimento.Equal(nascimento))
	assert.Nil(t, got[1].DataNascimento)

	// Replace pisa el valor entero
	require.NoError(t, repo.Replace(ctx, got[1:]))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "id-2", got[0].ID)
}

func TestAnimalsRepo_PersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "registry.db")
	ctx := context.Background()

	store, err := Open(path)
	require.NoError(t, err)

	repo := NewAnimalsRepo(store)
	require.NoError(t, repo.Replace(ctx, []animals.Animal{{
		ID: "id-1", Categoria: "Peixe", Especie: "Betta", Quantidade: 1,
		DataCompra: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Valor:      10, Tamanho: 3, Origem: "Loja X",
	}}))
	require.NoError(t, store.Close())

	store, err = Open(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := NewAnimalsRepo(store).List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Betta", got[0].Especie)
}

func TestPrefsRepo(t *testing.T) {
	store := openTestStore(t)
	repo := NewPrefsRepo(store)
	ctx := context.Background()

	_, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.Set(ctx, "theme", []byte(`"dark"`)))

	raw, found, err := repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"dark"`, string(raw))

	// las prefs conviven con la lista de animales sin pisarse
	animalsRepo := NewAnimalsRepo(store)
	require.NoError(t, animalsRepo.Replace(ctx, []animals.Animal{}))

	raw, found, err = repo.Get(ctx, "theme")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `"dark"`, string(raw))
}
