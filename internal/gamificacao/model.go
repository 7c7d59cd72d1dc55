package gamificacao

import (
	"time"

	"gorm.io/gorm"
)

// BadgeConquistada registra uma badge na estante do usuário.
type BadgeConquistada struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GamificacaoID uint      `gorm:"not null;index;uniqueIndex:idx_badge_usuario" json:"-"`
	BadgeID       string    `gorm:"size:100;not null;uniqueIndex:idx_badge_usuario" json:"badgeId"`
	ConquistadaEm time.Time `json:"conquistadaEm"`
}

func (BadgeConquistada) TableName() string { return "badges_conquistadas" }

// Gamificacao guarda o placar de um usuário: pontos totais (sempre a soma
// dos pontos das badges em posse) e a sequência de meses batendo meta.
type Gamificacao struct {
	ID          uint               `gorm:"primaryKey" json:"id"`
	UsuarioID   uint               `gorm:"not null;uniqueIndex" json:"usuarioId"`
	TotalPontos int                `gorm:"not null;default:0" json:"totalPontos"`
	StreakMeses int                `gorm:"not null;default:0" json:"streakMeses"`
	Badges      []BadgeConquistada `gorm:"foreignKey:GamificacaoID;constraint:OnDelete:CASCADE" json:"badges"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Gamificacao) TableName() string { return "gamificacoes" }

// RecalcularPontos refaz o total a partir das badges em posse. Conceder a
// mesma badge duas vezes nunca dobra pontos: o total é derivado, não
// incrementado.
func (g *Gamificacao) RecalcularPontos() {
	total := 0
	for _, bc := range g.Badges {
		if b, err := BuscarBadge(bc.BadgeID); err == nil {
			total += b.Pontos
		}
	}
	g.TotalPontos = total
}

// PossuiBadge informa se a badge já está na estante.
func (g Gamificacao) PossuiBadge(badgeID string) bool {
	for _, bc := range g.Badges {
		if bc.BadgeID == badgeID {
			return true
		}
	}
	return false
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Gamificacao{}, &BadgeConquistada{})
}
