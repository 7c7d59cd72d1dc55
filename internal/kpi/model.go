package kpi

import (
	"time"

	"gorm.io/gorm"
)

// KPI guarda metas, realizados e pesos dos cinco indicadores mensais de um
// vendedor. A chave lógica é (usuario_id, mes); o registro é criado com os
// valores padrão na primeira leitura do mês.
//
// Os pesos são configuráveis por registro e a soma esperada é 1.0 (±0.01);
// o cálculo de atingimento confia nos pesos gravados.
type KPI struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	UsuarioID uint   `gorm:"not null;uniqueIndex:idx_kpi_usuario_mes" json:"usuarioId"`
	Mes       string `gorm:"size:7;not null;uniqueIndex:idx_kpi_usuario_mes" json:"mes"`

	NovosAtivosMeta      int     `gorm:"not null;default:0" json:"novosAtivosMeta"`
	NovosAtivosRealizado int     `gorm:"not null;default:0" json:"novosAtivosRealizado"`
	ChurnMeta            float64 `gorm:"not null;default:0" json:"churnMeta"`
	ChurnRealizado       float64 `gorm:"not null;default:0" json:"churnRealizado"`
	TPVM1Meta            float64 `gorm:"not null;default:0" json:"tpvM1Meta"`
	TPVM1Realizado       float64 `gorm:"not null;default:0" json:"tpvM1Realizado"`
	AtivosM1Meta         int     `gorm:"not null;default:0" json:"ativosM1Meta"`
	AtivosM1Realizado    int     `gorm:"not null;default:0" json:"ativosM1Realizado"`
	MigracaoHunterMeta   float64 `gorm:"not null;default:0" json:"migracaoHunterMeta"`
	MigracaoHunterReal   float64 `gorm:"not null;default:0" json:"migracaoHunterRealizado"`

	PesoNovosAtivos    float64 `gorm:"not null;default:0" json:"pesoNovosAtivos"`
	PesoChurn          float64 `gorm:"not null;default:0" json:"pesoChurn"`
	PesoTPVM1          float64 `gorm:"not null;default:0" json:"pesoTpvM1"`
	PesoAtivosM1       float64 `gorm:"not null;default:0" json:"pesoAtivosM1"`
	PesoMigracaoHunter float64 `gorm:"not null;default:0" json:"pesoMigracaoHunter"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (KPI) TableName() string { return "kpis" }

// NovoPadrao devolve o registro do mês com as metas e pesos padrão.
func NovoPadrao(usuarioID uint, mes string) *KPI {
	return &KPI{
		UsuarioID:          usuarioID,
		Mes:                mes,
		NovosAtivosMeta:    12,
		ChurnMeta:          5.0,
		TPVM1Meta:          100000.0,
		AtivosM1Meta:       10,
		MigracaoHunterMeta: 70.0,
		PesoNovosAtivos:    0.30,
		PesoChurn:          0.20,
		PesoTPVM1:          0.20,
		PesoAtivosM1:       0.15,
		PesoMigracaoHunter: 0.15,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&KPI{})
}
