package gamificacao

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

func TestBuscarOuCriarCriaPlacarZerado(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	g, criado, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.True(t, criado)
	require.Zero(t, g.TotalPontos)
	require.Empty(t, g.Badges)

	_, criado, err = repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.False(t, criado)
}

func TestConcederSomaPontosDoCatalogo(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	b, err := repo.Conceder(1, "rising_star")
	require.NoError(t, err)
	require.Equal(t, 100, b.Pontos)

	g, _, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.Equal(t, 100, g.TotalPontos)
	require.Len(t, g.Badges, 1)
}

func TestConcederIdempotente(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	_, err := repo.Conceder(1, "first_sale")
	require.NoError(t, err)
	_, err = repo.Conceder(1, "first_sale")
	require.NoError(t, err)

	g, _, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.Equal(t, 50, g.TotalPontos)
	require.Len(t, g.Badges, 1)
}

func TestConcederAcumulaBadgesDistintas(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	_, err := repo.Conceder(1, "first_sale")
	require.NoError(t, err)
	_, err = repo.Conceder(1, "goal_crusher")
	require.NoError(t, err)

	g, _, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.Equal(t, 200, g.TotalPontos)
	require.Len(t, g.Badges, 2)
}

func TestConcederBadgeForaDoCatalogo(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository(db)

	_, err := repo.Conceder(1, "badge_inexistente")
	require.ErrorIs(t, err, ErrBadgeInvalida)

	// Id inválido não pode ter criado placar como efeito colateral.
	var count int64
	require.NoError(t, db.Model(&Gamificacao{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestRemoverPorUsuarioApagaBadges(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository(db)

	_, err := repo.Conceder(1, "first_sale")
	require.NoError(t, err)
	_, err = repo.Conceder(2, "veteran")
	require.NoError(t, err)

	require.NoError(t, RemoverPorUsuario(db, 1))

	var badges int64
	require.NoError(t, db.Model(&BadgeConquistada{}).Count(&badges).Error)
	require.EqualValues(t, 1, badges)

	var placares int64
	require.NoError(t, db.Model(&Gamificacao{}).Where("usuario_id = ?", 1).Count(&placares).Error)
	require.Zero(t, placares)
}
