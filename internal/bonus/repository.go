package bonus

import (
	"errors"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Bonus
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorChave retorna o bônus do par (usuário, mês) com as faixas,
// sem criar nada.
func (r *Repository) BuscarPorChave(db *gorm.DB, usuarioID uint, mes string) (*Bonus, error) {
	var b Bonus
	err := db.Preload("Faixas").
		Where("usuario_id = ? AND mes = ?", usuarioID, mes).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// BuscarOuCriar retorna o bônus do mês, semeando as faixas padrão na
// primeira leitura. O segundo retorno informa se houve criação.
func (r *Repository) BuscarOuCriar(usuarioID uint, mes string) (*Bonus, bool, error) {
	b, err := r.BuscarPorChave(r.DB, usuarioID, mes)
	if err == nil {
		return b, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	novo := &Bonus{
		UsuarioID: usuarioID,
		Mes:       mes,
		Faixas:    FaixasPadrao(),
	}
	if err := r.DB.Create(novo).Error; err != nil {
		return nil, false, err
	}
	return novo, true, nil
}

// SubstituirFaixas troca as faixas do bônus e grava os campos derivados,
// tudo dentro da transação recebida.
func (r *Repository) SubstituirFaixas(tx *gorm.DB, b *Bonus, faixas []Faixa) error {
	if err := tx.Where("bonus_id = ?", b.ID).Delete(&Faixa{}).Error; err != nil {
		return err
	}
	for i := range faixas {
		faixas[i].ID = 0
		faixas[i].BonusID = b.ID
	}
	if len(faixas) > 0 {
		if err := tx.Create(&faixas).Error; err != nil {
			return err
		}
	}
	b.Faixas = faixas
	return tx.Save(b).Error
}

// RemoverPorUsuario apaga bônus e faixas do usuário (cascata de exclusão).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	var ids []uint
	if err := tx.Model(&Bonus{}).Where("usuario_id = ?", usuarioID).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		if err := tx.Where("bonus_id IN ?", ids).Delete(&Faixa{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("usuario_id = ?", usuarioID).Delete(&Bonus{}).Error
}
