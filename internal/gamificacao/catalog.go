package gamificacao

import "errors"

// ErrBadgeInvalida indica concessão com id fora do catálogo.
var ErrBadgeInvalida = errors.New("badge inválida")

// Badge é uma conquista do catálogo estático. A concessão é ato explícito do
// admin; nenhuma badge é inferida automaticamente de KPI aqui.
type Badge struct {
	Nome      string `json:"name"`
	Descricao string `json:"description"`
	Icone     string `json:"icon"`
	Pontos    int    `json:"points"`
}

// Catálogo fixo de badges. Os ids são estáveis e fazem parte do contrato da
// API; pontos de um usuário são sempre recalculados a partir daqui.
var catalogo = map[string]Badge{
	"first_sale":   {Nome: "Primeira Venda", Descricao: "Fechou o primeiro cliente", Icone: "🎯", Pontos: 50},
	"rising_star":  {Nome: "Estrela em Ascensão", Descricao: "Destaque do mês entre os novatos", Icone: "🌟", Pontos: 100},
	"goal_crusher": {Nome: "Esmagador de Metas", Descricao: "Atingiu 100% das metas do mês", Icone: "💪", Pontos: 150},
	"streak_3":     {Nome: "Sequência de 3", Descricao: "Três meses seguidos batendo meta", Icone: "🔥", Pontos: 120},
	"streak_6":     {Nome: "Sequência de 6", Descricao: "Seis meses seguidos batendo meta", Icone: "⚡", Pontos: 250},
	"low_churn":    {Nome: "Guardião da Carteira", Descricao: "Churn abaixo da meta no mês", Icone: "🛡️", Pontos: 100},
	"top_tpv":      {Nome: "Rei do TPV", Descricao: "Maior TPV do time no mês", Icone: "👑", Pontos: 200},
	"full_funnel":  {Nome: "Funil Completo", Descricao: "Converteu em todas as etapas do funil", Icone: "🌪️", Pontos: 80},
	"overachiever": {Nome: "Acima da Meta", Descricao: "Superou 120% de atingimento", Icone: "🚀", Pontos: 180},
	"veteran":      {Nome: "Veterano", Descricao: "Doze meses de casa", Icone: "🏅", Pontos: 150},
}

// Catalogo devolve o catálogo completo (cópia rasa; Badge é imutável).
func Catalogo() map[string]Badge {
	out := make(map[string]Badge, len(catalogo))
	for id, b := range catalogo {
		out[id] = b
	}
	return out
}

// BuscarBadge retorna a badge do catálogo ou ErrBadgeInvalida.
func BuscarBadge(id string) (Badge, error) {
	b, ok := catalogo[id]
	if !ok {
		return Badge{}, ErrBadgeInvalida
	}
	return b, nil
}
