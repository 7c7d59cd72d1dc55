package carreira

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func novoBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedPopulaCatalogoVazio(t *testing.T) {
	db := novoBancoTeste(t)
	require.NoError(t, Seed(db))

	repo := NewRepository(db)
	niveis, err := repo.ListarOrdenados()
	require.NoError(t, err)
	require.Len(t, niveis, 5)
	require.Equal(t, "recruta", niveis[0].ID)
	require.Equal(t, "master", niveis[4].ID)
}

func TestSeedNaoDuplicaCatalogoExistente(t *testing.T) {
	db := novoBancoTeste(t)
	require.NoError(t, db.Create(&NivelCarreira{ID: "custom", Nivel: "Custom", Ordem: 1}).Error)

	require.NoError(t, Seed(db))

	var count int64
	require.NoError(t, db.Model(&NivelCarreira{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestProximaOrdem(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository(db)

	ordem, err := repo.ProximaOrdem()
	require.NoError(t, err)
	require.Equal(t, 1, ordem)

	require.NoError(t, Seed(db))

	ordem, err = repo.ProximaOrdem()
	require.NoError(t, err)
	require.Equal(t, 6, ordem)
}

func TestDeletarNivel(t *testing.T) {
	db := novoBancoTeste(t)
	require.NoError(t, Seed(db))
	repo := NewRepository(db)

	require.NoError(t, repo.Deletar("master"))

	_, err := repo.BuscarPorID("master")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
