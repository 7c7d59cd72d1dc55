package usuario

import (
	"gorm.io/gorm"
)

// Usuario representa um vendedor ou administrador da plataforma.
type Usuario struct {
	gorm.Model
	Nome            string  `gorm:"size:255;not null" json:"nome"`
	Email           string  `gorm:"size:255;unique;not null" json:"email"`
	Senha           string  `json:"-"`
	IsAdmin         bool    `gorm:"not null;default:false" json:"isAdmin"`
	NivelCarreira   string  `gorm:"size:100;not null;default:'recruta'" json:"nivelCarreira"`
	SalarioBase     float64 `gorm:"not null;default:1570" json:"salarioBase"`
	BaseAtiva       int     `gorm:"not null;default:159" json:"baseAtiva"`
	TempoDeCasa     int     `gorm:"not null;default:0" json:"tempoDeCasa"`
	Arquivado       bool    `gorm:"not null;default:false;index" json:"arquivado"`
	PrimeiroAcesso  bool    `gorm:"not null;default:true" json:"primeiroAcesso"`
	SenhaTemporaria bool    `gorm:"not null;default:false" json:"senhaTemporaria"`
}

func (Usuario) TableName() string { return "usuarios" }

// TPVCarteira é o TPV acumulado usado na checagem de carreira
// (base ativa vezes o tíquete médio de R$ 1.000).
func (u Usuario) TPVCarteira() float64 {
	return float64(u.BaseAtiva) * 1000
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{})
}
