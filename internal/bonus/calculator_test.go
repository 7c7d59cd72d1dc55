package bonus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalcularTotalSomaTodasAsFaixas(t *testing.T) {
	faixas := []Faixa{
		{BonusPorCliente: 50, QtdClientes: 2},
		{BonusPorCliente: 100, QtdClientes: 1},
	}
	require.Equal(t, 200.0, CalcularTotal(faixas))
}

func TestCalcularTotalIgnoraMetaMinima(t *testing.T) {
	// a meta mínima de clientes é informativa: paga-se por todo cliente
	faixas := []Faixa{
		{BonusPorCliente: 800, QtdClientes: 1, MetaMinClientes: 5},
	}
	require.Equal(t, 800.0, CalcularTotal(faixas))
}

func TestCalcularTotalVazio(t *testing.T) {
	require.Zero(t, CalcularTotal(nil))
}

func TestMultiplicadorDegraus(t *testing.T) {
	casos := []struct {
		atingimento float64
		esperado    float64
	}{
		{0.0, 0.0},
		{0.5, 0.0},
		{0.79, 0.0},
		{0.8, 0.8},
		{0.99, 0.8},
		{1.0, 1.0},
		{1.7, 1.0},
	}
	for _, c := range casos {
		require.Equal(t, c.esperado, Multiplicador(c.atingimento), "atingimento %v", c.atingimento)
	}
}

func TestCalcularFinalAplicaTeto(t *testing.T) {
	// 10000 * 1.0 estoura o teto de 2x salário (2 * 1570)
	require.Equal(t, 3140.0, CalcularFinal(10000, 1.0, 1570))
	// abaixo do teto passa sem corte
	require.Equal(t, 800.0, CalcularFinal(1000, 0.8, 1570))
}

func TestCalcularIdempotente(t *testing.T) {
	faixas := []Faixa{
		{BonusPorCliente: 200, QtdClientes: 3},
		{BonusPorCliente: 400, QtdClientes: 2},
	}

	t1, m1, f1 := Calcular(faixas, 0.85, 2000)
	t2, m2, f2 := Calcular(faixas, 0.85, 2000)

	require.Equal(t, t1, t2)
	require.Equal(t, m1, m2)
	require.Equal(t, f1, f2)
	require.Equal(t, 1400.0, t1)
	require.Equal(t, 0.8, m1)
	require.Equal(t, 1120.0, f1)
}

func TestCalcularSemKPIZeraMultiplicador(t *testing.T) {
	faixas := []Faixa{{BonusPorCliente: 50, QtdClientes: 10}}

	total, mult, final := Calcular(faixas, 0, 1570)
	require.Equal(t, 500.0, total)
	require.Zero(t, mult)
	require.Zero(t, final)
}
