package bonus

import (
	"time"

	"gorm.io/gorm"
)

// Faixa é uma faixa de TPV com valor de bônus por cliente e meta mínima de
// clientes. A meta mínima é informativa: o total do bônus paga por todo
// cliente contado, atinja-se ou não o mínimo da faixa.
type Faixa struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	BonusID         uint    `gorm:"not null;index" json:"bonusId"`
	Faixa           string  `gorm:"size:50;not null" json:"faixa"`
	TPVMin          float64 `gorm:"not null;default:0" json:"tpvMin"`
	BonusPorCliente float64 `gorm:"not null;default:0" json:"bonusPorCliente"`
	MetaMinClientes int     `gorm:"not null;default:0" json:"metaMinClientes"`
	QtdClientes     int     `gorm:"not null;default:0" json:"qtdClientes"`
}

func (Faixa) TableName() string { return "bonus_faixas" }

// Bonus guarda as faixas e os campos derivados do mês de um vendedor.
type Bonus struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UsuarioID     uint    `gorm:"not null;uniqueIndex:idx_bonus_usuario_mes" json:"usuarioId"`
	Mes           string  `gorm:"size:7;not null;uniqueIndex:idx_bonus_usuario_mes" json:"mes"`
	Faixas        []Faixa `gorm:"foreignKey:BonusID;constraint:OnDelete:CASCADE" json:"faixas"`
	BonusTotal    float64 `gorm:"not null;default:0" json:"bonusTotal"`
	Multiplicador float64 `gorm:"not null;default:0" json:"multiplicador"`
	BonusFinal    float64 `gorm:"not null;default:0" json:"bonusFinal"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Bonus) TableName() string { return "bonus" }

// FaixasPadrao são as cinco faixas fixas semeadas na primeira leitura do mês.
func FaixasPadrao() []Faixa {
	return []Faixa{
		{Faixa: "15k+", TPVMin: 15000, BonusPorCliente: 50, MetaMinClientes: 5},
		{Faixa: "30k+", TPVMin: 30000, BonusPorCliente: 100, MetaMinClientes: 4},
		{Faixa: "50k+", TPVMin: 50000, BonusPorCliente: 200, MetaMinClientes: 3},
		{Faixa: "100k+", TPVMin: 100000, BonusPorCliente: 400, MetaMinClientes: 2},
		{Faixa: "200k+", TPVMin: 200000, BonusPorCliente: 800, MetaMinClientes: 1},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Bonus{}, &Faixa{})
}
