package usuario

import (
	"testing"

	"github.com/motplatform/api-performance/internal/utils"
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

func TestSalvarEBuscarPorEmail(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	hash, err := utils.HashSenha("senha123")
	require.NoError(t, err)
	require.NoError(t, repo.Salvar(db, &Usuario{
		Nome:  "Ana Souza",
		Email: "ana@mot.com.br",
		Senha: hash,
	}))

	u, err := repo.BuscarPorEmail(db, "ana@mot.com.br")
	require.NoError(t, err)
	require.Equal(t, "Ana Souza", u.Nome)
	require.True(t, utils.VerificarSenha(u.Senha, "senha123"))
	require.False(t, utils.VerificarSenha(u.Senha, "outra"))
}

func TestListarAgentesAtivosFiltraAdminEArquivados(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	require.NoError(t, repo.Salvar(db, &Usuario{Nome: "Agente", Email: "a@mot.com.br"}))
	require.NoError(t, repo.Salvar(db, &Usuario{Nome: "Admin", Email: "adm@mot.com.br", IsAdmin: true}))
	require.NoError(t, repo.Salvar(db, &Usuario{Nome: "Arquivado", Email: "x@mot.com.br", Arquivado: true}))

	ativos, err := repo.ListarAgentesAtivos(db)
	require.NoError(t, err)
	require.Len(t, ativos, 1)
	require.Equal(t, "Agente", ativos[0].Nome)
}

func TestAtualizarPreservaSenhaQuandoVazia(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	original := &Usuario{Nome: "Bruno", Email: "bruno@mot.com.br", Senha: "hash-antigo"}
	require.NoError(t, repo.Salvar(db, original))

	atualizado, err := repo.Atualizar(db, original.ID, &Usuario{
		Nome:        "Bruno Lima",
		Email:       "bruno@mot.com.br",
		SalarioBase: 2000,
		BaseAtiva:   200,
	})
	require.NoError(t, err)
	require.Equal(t, "Bruno Lima", atualizado.Nome)
	require.Equal(t, 2000.0, atualizado.SalarioBase)
	require.Equal(t, "hash-antigo", atualizado.Senha)
}

func TestSalarioPorUsuario(t *testing.T) {
	db := novoBancoTeste(t)
	repo := NewRepository()

	u := &Usuario{Nome: "Carla", Email: "carla@mot.com.br", SalarioBase: 1570}
	require.NoError(t, repo.Salvar(db, u))

	salario, err := SalarioPorUsuario(db, u.ID)
	require.NoError(t, err)
	require.Equal(t, 1570.0, salario)

	_, err = SalarioPorUsuario(db, 999)
	require.Error(t, err)
}

func TestTPVCarteira(t *testing.T) {
	u := Usuario{BaseAtiva: 159}
	require.Equal(t, 159000.0, u.TPVCarteira())
}
