package carreira

import "sort"

// AvaliarNivel devolve o nível mais alto cujo TPV mínimo e tempo mínimo o
// vendedor satisfaz. A varredura cobre o catálogo inteiro: quem cumpre os
// requisitos de um nível três degraus acima pula direto para ele, não sobe
// um degrau por vez. Sem nível satisfeito acima do de entrada, o resultado
// é o nível de menor ordem.
func AvaliarNivel(niveis []NivelCarreira, tpv float64, tempoDeCasa int) (NivelCarreira, bool) {
	if len(niveis) == 0 {
		return NivelCarreira{}, false
	}

	ordenados := make([]NivelCarreira, len(niveis))
	copy(ordenados, niveis)
	sort.Slice(ordenados, func(i, j int) bool { return ordenados[i].Ordem < ordenados[j].Ordem })

	eleito := ordenados[0]
	for _, n := range ordenados {
		if tpv >= n.TPVMin && tempoDeCasa >= n.TempoMin {
			eleito = n
		}
	}
	return eleito, true
}
