package competencia

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Competencia
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorUsuario retorna a autoavaliação sem criar nada.
func (r *Repository) BuscarPorUsuario(usuarioID uint) (*Competencia, error) {
	var c Competencia
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

// BuscarOuCriar retorna a autoavaliação, criando-a com notas padrão na
// primeira leitura.
func (r *Repository) BuscarOuCriar(usuarioID uint) (*Competencia, bool, error) {
	c, err := r.BuscarPorUsuario(usuarioID)
	if err == nil {
		return c, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	nova := NovaPadrao(usuarioID)
	if err := r.DB.Create(nova).Error; err != nil {
		return nil, false, err
	}
	return nova, true, nil
}

// Salvar grava alterações em uma autoavaliação existente
func (r *Repository) Salvar(c *Competencia) error {
	return r.DB.Save(c).Error
}

// RemoverPorUsuario apaga a autoavaliação do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	return tx.Where("usuario_id = ?", usuarioID).Delete(&Competencia{}).Error
}
