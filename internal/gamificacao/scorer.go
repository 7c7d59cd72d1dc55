package gamificacao

import "sort"

// ItemRanking é uma linha do ranking mensal.
type ItemRanking struct {
	UsuarioID     uint    `json:"usuarioId"`
	Nome          string  `json:"nome"`
	NivelCarreira string  `json:"nivelCarreira"`
	Atingimento   float64 `json:"atingimento"`
	TotalPontos   int     `json:"totalPontos"`
	QtdBadges     int     `json:"qtdBadges"`
	Posicao       int     `json:"posicao"`
}

// MontarRanking ordena por atingimento decrescente, desempata por pontos e,
// por fim, pelo ID do usuário, e numera as posições de 1 em diante sem
// buracos.
func MontarRanking(itens []ItemRanking) []ItemRanking {
	ordenado := make([]ItemRanking, len(itens))
	copy(ordenado, itens)

	sort.Slice(ordenado, func(i, j int) bool {
		if ordenado[i].Atingimento != ordenado[j].Atingimento {
			return ordenado[i].Atingimento > ordenado[j].Atingimento
		}
		if ordenado[i].TotalPontos != ordenado[j].TotalPontos {
			return ordenado[i].TotalPontos > ordenado[j].TotalPontos
		}
		return ordenado[i].UsuarioID < ordenado[j].UsuarioID
	})

	for i := range ordenado {
		ordenado[i].Posicao = i + 1
	}
	return ordenado
}
