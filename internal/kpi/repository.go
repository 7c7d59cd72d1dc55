package kpi

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para KPI
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorChave retorna o KPI do par (usuário, mês) sem criar nada.
func (r *Repository) BuscarPorChave(usuarioID uint, mes string) (*KPI, error) {
	var k KPI
	if err := r.DB.Where("usuario_id = ? AND mes = ?", usuarioID, mes).First(&k).Error; err != nil {
		return nil, err
	}
	return &k, nil
}

// BuscarOuCriar retorna o KPI do mês, criando-o com os valores padrão na
// primeira leitura. O segundo retorno informa se houve criação.
func (r *Repository) BuscarOuCriar(usuarioID uint, mes string) (*KPI, bool, error) {
	k, err := r.BuscarPorChave(usuarioID, mes)
	if err == nil {
		return k, false, nil
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

// Salvar grava alterações em um KPI existente
func (r *Repository) Salvar(k *KPI) error {
	return r.DB.Save(k).Error
}

// RemoverPorUsuario apaga todos os KPIs do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	return tx.Where("usuario_id = ?", usuarioID).Delete(&KPI{}).Error
}

// AtingimentoDoMes é o lookup injetado em quem precisa do atingimento sem
// conhecer este pacote (bônus, ranking). KPI inexistente vale 0.
func AtingimentoDoMes(db *gorm.DB, usuarioID uint, mes string) (float64, bool, error) {
	var k KPI
	err := db.Where("usuario_id = ? AND mes = ?", usuarioID, mes).First(&k).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return k.Atingimento(), true, nil
}
