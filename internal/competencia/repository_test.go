package competencia

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

func TestRecalcularMedia(t *testing.T) {
	c := Competencia{Persistencia: 5, Influencia: 4, Relacionamento: 3, Organizacao: 2, Criatividade: 1}
	c.RecalcularMedia()
	require.InDelta(t, 3.0, c.Media, 0.001)

	c.Criatividade = 5
	c.RecalcularMedia()
	require.InDelta(t, 3.8, c.Media, 0.001)
}

func TestBuscarOuCriarNotasPadrao(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	c, criada, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.True(t, criada)
	require.Equal(t, 3, c.Persistencia)
	require.Equal(t, 3, c.Criatividade)
	require.InDelta(t, 3.0, c.Media, 0.001)

	_, criada, err = repo.BuscarOuCriar(1)
	require.NoError(t, err)
	require.False(t, criada)
}

func TestSalvarAtualizaNotas(t *testing.T) {
	repo := NewRepository(novoBancoTeste(t))

	c, _, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)

	c.Persistencia = 5
	c.Influencia = 4
	c.RecalcularMedia()
	require.NoError(t, repo.Salvar(c))

	relido, err := repo.BuscarPorUsuario(1)
	require.NoError(t, err)
	require.Equal(t, 5, relido.Persistencia)
	require.InDelta(t, 3.6, relido.Media, 0.001)
}

func TestRemoverPorUsuario(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository(db)

	_, _, err := repo.BuscarOuCriar(1)
	require.NoError(t, err)

	require.NoError(t, RemoverPorUsuario(db, 1))

	_, err = repo.BuscarPorUsuario(1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
