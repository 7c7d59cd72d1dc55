package dre

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcularFechamentoTipico(t *testing.T) {
	res := Calcular(3000, 500, 5000)

	require.Equal(t, 3500.0, res.CustosTotais)
	require.Equal(t, 3500.0, res.Breakeven)
	require.InDelta(t, 42.857, res.ROIPercent, 0.001)
	// 3500/5000 = 0.7, truncado para 0
	require.Equal(t, 0, res.PaybackMeses)
}

func TestCalcularPaybackTrunca(t *testing.T) {
	// 4000/1500 = 2.67 meses -> 2, nunca arredonda para cima
	res := Calcular(3500, 500, 1500)
	require.Equal(t, 2, res.PaybackMeses)
}

func TestCalcularReceitaZerada(t *testing.T) {
	res := Calcular(3000, 500, 0)

	require.Equal(t, 3500.0, res.CustosTotais)
	require.Equal(t, 0, res.PaybackMeses)
	require.InDelta(t, -100.0, res.ROIPercent, 0.001)
}

func TestCalcularCustoZeradoNaoDivide(t *testing.T) {
	res := Calcular(0, 0, 5000)

	require.Zero(t, res.CustosTotais)
	require.Zero(t, res.Breakeven)
	require.Zero(t, res.ROIPercent)
	require.Zero(t, res.PaybackMeses)
}

func TestCalcularROINegativoQuandoDaPrejuizo(t *testing.T) {
	res := Calcular(3000, 500, 2000)
	require.InDelta(t, -42.857, res.ROIPercent, 0.001)
}
