package gamificacao

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Gamificacao
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarOuCriar retorna o placar do usuário, criando-o zerado na primeira
// leitura. O segundo retorno informa se houve criação.
func (r *Repository) BuscarOuCriar(usuarioID uint) (*Gamificacao, bool, error) {
	var g Gamificacao
	err := r.DB.Preload("Badges").Where("usuario_id = ?", usuarioID).First(&g).Error
	if err == nil {
		return &g, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	nova := &Gamificacao{UsuarioID: usuarioID}
	if err := r.DB.Create(nova).Error; err != nil {
		return nil, false, err
	}
	return nova, true, nil
}

// Conceder adiciona a badge à estante do usuário de forma idempotente e
// devolve os pontos da badge. Id fora do catálogo retorna ErrBadgeInvalida.
func (r *Repository) Conceder(usuarioID uint, badgeID string) (Badge, error) {
	b, err := BuscarBadge(badgeID)
	if err != nil {
		return Badge{}, err
	}

	g, _, err := r.BuscarOuCriar(usuarioID)
	if err != nil {
		return Badge{}, err
	}

	if !g.PossuiBadge(badgeID) {
		g.Badges = append(g.Badges, BadgeConquistada{
			GamificacaoID: g.ID,
			BadgeID:       badgeID,
			ConquistadaEm: time.Now(),
		})
	}
	g.RecalcularPontos()

	if err := r.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(g).Error; err != nil {
		return Badge{}, err
	}
	return b, nil
}

// RemoverPorUsuario apaga o placar e as badges do usuário (cascata).
func RemoverPorUsuario(tx *gorm.DB, usuarioID uint) error {
	var ids []uint
	if err := tx.Model(&Gamificacao{}).Where("usuario_id = ?", usuarioID).Pluck("id", &ids).Error; err != nil {
		return err
	}
	if len(ids) > 0 {
		if err := tx.Where("gamificacao_id IN ?", ids).Delete(&BadgeConquistada{}).Error; err != nil {
			return err
		}
	}
	return tx.Where("usuario_id = ?", usuarioID).Delete(&Gamificacao{}).Error
}
