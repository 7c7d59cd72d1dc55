package extrato

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"
)

// Extrato é o demonstrativo de bônus acumulados do mês: bônus de tempo de
// casa, bônus de rentabilização e o histórico semestral serializado.
type Extrato struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;uniqueIndex:idx_extrato_usuario_mes" json:"usuarioId"`
	Mes       string `gorm:"size:7;not null;uniqueIndex:idx_extrato_usuario_mes" json:"mes"`

	BonusTempo          float64         `gorm:"not null;default:0" json:"bonusTempo"`
	BonusRentabilizacao float64         `gorm:"not null;default:0" json:"bonusRentabilizacao"`
	HistoricoSemestral  json.RawMessage `gorm:"type:text" json:"historicoSemestral"`

	CreatedAt time.Time `json:"createdAt"`
}

func (Extrato) TableName() string { return "extratos" }

// NovoPadrao devolve o extrato zerado do mês.
func NovoPadrao(usuarioID uint, mes string) *Extrato {
	return &Extrato{
		UsuarioID:          usuarioID,
		Mes:                mes,
		HistoricoSemestral: json.RawMessage("[]"),
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Extrato{})
}
