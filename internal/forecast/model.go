package forecast

import (
	"time"

	"gorm.io/gorm"
)

// Forecast guarda o funil comercial do mês e as conversões entre etapas
// consecutivas. As conversões só são recalculadas quando as duas pontas da
// razão chegam no mesmo payload — ver dto.go.
type Forecast struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;uniqueIndex:idx_forecast_usuario_mes" json:"usuarioId"`
	Mes       string `gorm:"size:7;not null;uniqueIndex:idx_forecast_usuario_mes" json:"mes"`

	Qualificacao int `gorm:"not null;default:0" json:"qualificacao"`
	Proposta     int `gorm:"not null;default:0" json:"proposta"`
	NovoCliente  int `gorm:"not null;default:0" json:"novoCliente"`
	NovoAtivo    int `gorm:"not null;default:0" json:"novoAtivo"`

	ConvQualifProposta  float64 `gorm:"not null;default:0" json:"convQualifProposta"`
	ConvPropostaCliente float64 `gorm:"not null;default:0" json:"convPropostaCliente"`
	ConvClienteAtivo    float64 `gorm:"not null;default:0" json:"convClienteAtivo"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Forecast) TableName() string { return "forecasts" }

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Forecast{})
}
