package carreira

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para o catálogo de níveis
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// ListarOrdenados retorna o catálogo em ordem crescente de Ordem.
func (r *Repository) ListarOrdenados() ([]NivelCarreira, error) {
	var niveis []NivelCarreira
	err := r.DB.Order("ordem").Find(&niveis).Error
	return niveis, err
}

// BuscarPorID retorna um nível pelo slug
func (r *Repository) BuscarPorID(id string) (*NivelCarreira, error) {
	var n NivelCarreira
	if err := r.DB.First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

// Salvar grava um nível novo ou alterado
func (r *Repository) Salvar(n *NivelCarreira) error {
	return r.DB.Save(n).Error
}

// Deletar remove um nível do catálogo
func (r *Repository) Deletar(id string) error {
	return r.DB.Delete(&NivelCarreira{}, "id = ?", id).Error
}

// ProximaOrdem devolve a próxima posição livre no catálogo.
func (r *Repository) ProximaOrdem() (int, error) {
	var max int
	err := r.DB.Model(&NivelCarreira{}).Select("COALESCE(MAX(ordem), 0)").Scan(&max).Error
	return max + 1, err
}

// Seed insere o catálogo padrão quando a tabela está vazia.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&NivelCarreira{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	niveis := NiveisPadrao()
	return db.Create(&niveis).Error
}
