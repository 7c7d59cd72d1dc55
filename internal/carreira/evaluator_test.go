package carreira

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAvaliarNivelEntrada(t *testing.T) {
	nivel, ok := AvaliarNivel(NiveisPadrao(), 0, 0)

	require.True(t, ok)
	require.Equal(t, "recruta", nivel.ID)
}

func TestAvaliarNivelIntermediario(t *testing.T) {
	nivel, ok := AvaliarNivel(NiveisPadrao(), 159000, 8)

	require.True(t, ok)
	require.Equal(t, "consultor", nivel.ID)
}

func TestAvaliarNivelPulaDegraus(t *testing.T) {
	// Quem cumpre os requisitos do topo vai direto para ele, sem passar
	// pelos níveis intermediários.
	nivel, ok := AvaliarNivel(NiveisPadrao(), 600000, 24)

	require.True(t, ok)
	require.Equal(t, "master", nivel.ID)
}

func TestAvaliarNivelTempoInsuficienteSegura(t *testing.T) {
	// TPV de master com 7 meses de casa: só o consultor pede até 6 meses,
	// e o aspirante pede 3.
	nivel, ok := AvaliarNivel(NiveisPadrao(), 600000, 7)

	require.True(t, ok)
	require.Equal(t, "consultor", nivel.ID)
}

func TestAvaliarNivelLimiarExato(t *testing.T) {
	nivel, ok := AvaliarNivel(NiveisPadrao(), 50000, 3)

	require.True(t, ok)
	require.Equal(t, "aspirante", nivel.ID)
}

func TestAvaliarNivelCatalogoVazio(t *testing.T) {
	_, ok := AvaliarNivel(nil, 100000, 12)
	require.False(t, ok)
}

func TestAvaliarNivelIgnoraOrdemDeEntrada(t *testing.T) {
	niveis := []NivelCarreira{
		{ID: "master", Ordem: 5, TPVMin: 500000, TempoMin: 18},
		{ID: "recruta", Ordem: 1},
		{ID: "consultor", Ordem: 3, TPVMin: 150000, TempoMin: 6},
	}

	nivel, ok := AvaliarNivel(niveis, 200000, 10)

	require.True(t, ok)
	require.Equal(t, "consultor", nivel.ID)
}

func TestSlug(t *testing.T) {
	require.Equal(t, "consultor-senior", Slug("Consultor  Senior"))
	require.Equal(t, "recruta", Slug("Recruta"))
}
