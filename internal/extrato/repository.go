package extrato

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Extrato
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarOuCriar retorna o extrato do mês, criando-o zerado na primeira
// leitura.
func (r *Repository) BuscarOuCriar(usuarioID uint, mes string) (*Extrato, bool, error) {
	var e Extrato
	err := r.DB.Where("usuario_id = ? AND mes = ?", usuarioID, mes).First(&e).Error
	if err == nil {
		return &e, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	novo := NovoPadrao(usuarioID, mes)
	if err := r.DB.Create(novo).Error; err != nil {
		return nil, false, err
	}
	return novo, true, nil
}

// RemoverPorUsuario apaga os extratos do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	return tx.Where("usuario_id = ?", usuarioID).Delete(&Extrato{}).Error
}
