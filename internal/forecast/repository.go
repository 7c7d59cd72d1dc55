package forecast

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Forecast
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorChave retorna o forecast do par (usuário, mês) sem criar nada.
func (r *Repository) BuscarPorChave(usuarioID uint, mes string) (*Forecast, error) {
	var f Forecast
	if err := r.DB.Where("usuario_id = ? AND mes = ?", usuarioID, mes).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

// BuscarOuCriar retorna o forecast do mês, criando-o zerado na primeira
// leitura. O segundo retorno informa se houve criação.
func (r *Repository) BuscarOuCriar(usuarioID uint, mes string) (*Forecast, bool, error) {
	f, err := r.BuscarPorChave(usuarioID, mes)
	if err == nil {
		return f, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	novo := &Forecast{UsuarioID: usuarioID, Mes: mes}
	if err := r.DB.Create(novo).Error; err != nil {
		return nil, false, err
	}
	return novo, true, nil
}

// Salvar grava alterações em um forecast existente
func (r *Repository) Salvar(f *Forecast) error {
	return r.DB.Save(f).Error
}

// RemoverPorUsuario apaga os forecasts do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	return tx.Where("usuario_id = ?", usuarioID).Delete(&Forecast{}).Error
}
