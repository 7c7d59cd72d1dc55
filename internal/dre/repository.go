package dre

import (
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para DRE
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// Criar insere um novo fechamento no histórico
func (r *Repository) Criar(d *DRE) error {
	return r.DB.Create(d).Error
}

// ListarPorUsuario retorna o histórico de fechamentos do usuário
func (r *Repository) ListarPorUsuario(usuarioID uint) ([]DRE, error) {
	var list []DRE
	err := r.DB.Where("usuario_id = ?", usuarioID).Order("mes").Find(&list).Error
	return list, err
}

// RemoverPorUsuario apaga o histórico do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	return tx.Where("usuario_id = ?", usuarioID).Delete(&DRE{}).Error
}
