package gamificacao

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMontarRankingOrdenaPorAtingimento(t *testing.T) {
	itens := []ItemRanking{
		{UsuarioID: 1, Atingimento: 0.72},
		{UsuarioID: 2, Atingimento: 1.05},
		{UsuarioID: 3, Atingimento: 0.90},
	}

	ranking := MontarRanking(itens)

	require.Equal(t, uint(2), ranking[0].UsuarioID)
	require.Equal(t, uint(3), ranking[1].UsuarioID)
	require.Equal(t, uint(1), ranking[2].UsuarioID)
	for i, item := range ranking {
		require.Equal(t, i+1, item.Posicao)
	}
}

func TestMontarRankingDesempate(t *testing.T) {
	itens := []ItemRanking{
		{UsuarioID: 7, Atingimento: 0.90, TotalPontos: 100},
		{UsuarioID: 2, Atingimento: 0.90, TotalPontos: 250},
		{UsuarioID: 5, Atingimento: 0.90, TotalPontos: 100},
	}

	ranking := MontarRanking(itens)

	// Pontos decidem; ID menor vence o empate total.
	require.Equal(t, uint(2), ranking[0].UsuarioID)
	require.Equal(t, uint(5), ranking[1].UsuarioID)
	require.Equal(t, uint(7), ranking[2].UsuarioID)
}

func TestMontarRankingNaoMutaEntrada(t *testing.T) {
	itens := []ItemRanking{
		{UsuarioID: 1, Atingimento: 0.10},
		{UsuarioID: 2, Atingimento: 0.90},
	}

	_ = MontarRanking(itens)

	require.Equal(t, uint(1), itens[0].UsuarioID)
	require.Zero(t, itens[0].Posicao)
}

func TestMontarRankingVazio(t *testing.T) {
	require.Empty(t, MontarRanking(nil))
}
