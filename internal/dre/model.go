package dre

import (
	"time"

	"gorm.io/gorm"
)

// DRE é o demonstrativo mensal de resultado de um vendedor. Registro
// imutável: cada mês fechado entra como uma nova linha no histórico e os
// derivados nunca são recalculados depois de gravados.
type DRE struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;index" json:"usuarioId"`
	Mes       string `gorm:"size:7;not null" json:"mes"`

	Salario    float64 `gorm:"not null;default:0" json:"salario"`
	Beneficios float64 `gorm:"not null;default:0" json:"beneficios"`
	Receita    float64 `gorm:"not null;default:0" json:"receita"`

	CustosTotais float64 `gorm:"not null;default:0" json:"custosTotais"`
	Breakeven    float64 `gorm:"not null;default:0" json:"breakeven"`
	PaybackMeses int     `gorm:"not null;default:0" json:"paybackMeses"`
	ROIPercent   float64 `gorm:"not null;default:0" json:"roiPercent"`

	CreatedAt time.Time `json:"createdAt"`
}

func (DRE) TableName() string { return "dres" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&DRE{})
}
