package usuario

import (
	"gorm.io/gorm"
)

type Repository interface {
	BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error)
	BuscarPorID(db *gorm.DB, id uint) (*Usuario, error)
	Salvar(db *gorm.DB, u *Usuario) error
	ListarTodos(db *gorm.DB, incluirArquivados bool) ([]Usuario, error)
	ListarArquivados(db *gorm.DB) ([]Usuario, error)
	ListarAgentesAtivos(db *gorm.DB) ([]Usuario, error)
	Atualizar(db *gorm.DB, id uint, novosDados *Usuario) (*Usuario, error)
	Deletar(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) BuscarPorEmail(db *gorm.DB, email string) (*Usuario, error) {
	var u Usuario
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uint) (*Usuario, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Salvar(db *gorm.DB, u *Usuario) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB, incluirArquivados bool) ([]Usuario, error) {
	var usuarios []Usuario
	q := db
	if !incluirArquivados {
		q = q.Where("arquivado = ?", false)
	}
	err := q.Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) ListarArquivados(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("arquivado = ?", true).Find(&usuarios).Error
	return usuarios, err
}

// ListarAgentesAtivos retorna apenas vendedores (não-admin, não arquivados),
// usado pelo ranking de gamificação.
func (r *repositoryImpl) ListarAgentesAtivos(db *gorm.DB) ([]Usuario, error) {
	var usuarios []Usuario
	err := db.Where("arquivado = ? AND is_admin = ?", false, false).Find(&usuarios).Error
	return usuarios, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uint, novosDados *Usuario) (*Usuario, error) {
	var existente Usuario
	if err := db.First(&existente, id).Error; err != nil {
		return nil, err
	}

	existente.Nome = novosDados.Nome
	existente.Email = novosDados.Email
	existente.IsAdmin = novosDados.IsAdmin
	existente.NivelCarreira = novosDados.NivelCarreira
	existente.SalarioBase = novosDados.SalarioBase
	existente.BaseAtiva = novosDados.BaseAtiva
	existente.TempoDeCasa = novosDados.TempoDeCasa
	if novosDados.Senha != "" {
		existente.Senha = novosDados.Senha
	}

	if err := db.Save(&existente).Error; err != nil {
		return nil, err
	}
	return &existente, nil
}

func (r *repositoryImpl) Deletar(db *gorm.DB, id uint) error {
	return db.Unscoped().Delete(&Usuario{}, id).Error
}

// SalarioPorUsuario expõe o salário base como lookup injetável
// (o cálculo de bônus não conhece o pacote de usuários).
func SalarioPorUsuario(db *gorm.DB, id uint) (float64, error) {
	var u Usuario
	if err := db.First(&u, id).Error; err != nil {
		return 0, err
	}
	return u.SalarioBase, nil
}
