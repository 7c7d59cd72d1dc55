package competencia

import (
	"time"

	"gorm.io/gorm"
)

// Competencia é a autoavaliação comportamental do vendedor, notas de 1 a 5.
// A média é derivada e recalculada a cada atualização.
type Competencia struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UsuarioID uint `gorm:"not null;uniqueIndex" json:"usuarioId"`

	Persistencia   int `gorm:"not null;default:3" json:"persistencia"`
	Influencia     int `gorm:"not null;default:3" json:"influencia"`
	Relacionamento int `gorm:"not null;default:3" json:"relacionamento"`
	Organizacao    int `gorm:"not null;default:3" json:"organizacao"`
	Criatividade   int `gorm:"not null;default:3" json:"criatividade"`

	Media float64 `gorm:"not null;default:3" json:"media"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Competencia) TableName() string { return "competencias" }

// RecalcularMedia refaz a média das cinco notas.
func (c *Competencia) RecalcularMedia() {
	soma := c.Persistencia + c.Influencia + c.Relacionamento + c.Organizacao + c.Criatividade
	c.Media = float64(soma) / 5
}

// NovaPadrao devolve a autoavaliação inicial (todas as notas em 3).
func NovaPadrao(usuarioID uint) *Competencia {
	return &Competencia{
		UsuarioID:      usuarioID,
		Persistencia:   3,
		Influencia:     3,
		Relacionamento: 3,
		Organizacao:    3,
		Criatividade:   3,
		Media:          3.0,
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Competencia{})
}
