package carreira

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// NivelCarreira é um degrau do plano de carreira. Catálogo global mantido
// pelo admin; a ordenação de exibição e avaliação é pelo campo Ordem. Para
// níveis acima do de entrada espera-se TPVMin e TempoMin não decrescentes.
type NivelCarreira struct {
	ID              string  `gorm:"primaryKey;size:100" json:"id"`
	Nivel           string  `gorm:"size:100;not null" json:"nivel"`
	Ordem           int     `gorm:"not null;default:0;index" json:"ordem"`
	TPVMin          float64 `gorm:"not null;default:0" json:"tpvMin"`
	TempoMin        int     `gorm:"not null;default:0" json:"tempoMin"`
	BonusPercentual float64 `gorm:"not null;default:0" json:"bonusPercentual"`
	Requisitos      string  `gorm:"size:255" json:"requisitos"`
	Beneficios      string  `gorm:"size:255" json:"beneficios"`
	Cor             string  `gorm:"size:20" json:"cor"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (NivelCarreira) TableName() string { return "niveis_carreira" }

// Slug deriva o id do nome do nível ("Consultor Senior" -> "consultor-senior").
func Slug(nivel string) string {
	return strings.ToLower(strings.Join(strings.Fields(nivel), "-"))
}

// NiveisPadrao é o catálogo semeado em banco vazio.
func NiveisPadrao() []NivelCarreira {
	return []NivelCarreira{
		{ID: "recruta", Nivel: "Recruta", Ordem: 1, TPVMin: 0, TempoMin: 0, BonusPercentual: 0,
			Requisitos: "Entrada na empresa", Beneficios: "Salário base + comissões", Cor: "#64748b"},
		{ID: "aspirante", Nivel: "Aspirante", Ordem: 2, TPVMin: 50000, TempoMin: 3, BonusPercentual: 10,
			Requisitos: "TPV Carteira ≥ R$ 50k + 3 meses", Beneficios: "Salário base + comissões + bônus 10%", Cor: "#0ea5e9"},
		{ID: "consultor", Nivel: "Consultor", Ordem: 3, TPVMin: 150000, TempoMin: 6, BonusPercentual: 15,
			Requisitos: "TPV Carteira ≥ R$ 150k + 6 meses", Beneficios: "Salário base + comissões + bônus 15%", Cor: "#22c55e"},
		{ID: "senior", Nivel: "Senior", Ordem: 4, TPVMin: 300000, TempoMin: 12, BonusPercentual: 20,
			Requisitos: "TPV Carteira ≥ R$ 300k + 12 meses", Beneficios: "Salário base + comissões + bônus 20% + participação", Cor: "#a855f7"},
		{ID: "master", Nivel: "Master", Ordem: 5, TPVMin: 500000, TempoMin: 18, BonusPercentual: 25,
			Requisitos: "TPV Carteira ≥ R$ 500k + 18 meses", Beneficios: "Salário base + comissões + bônus 25% + participação + carro", Cor: "#f59e0b"},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&NivelCarreira{})
}
