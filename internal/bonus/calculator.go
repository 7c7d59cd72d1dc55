package bonus

// CalcularTotal soma bônus por cliente × quantidade em todas as faixas,
// sem condicionar ao mínimo de clientes de cada faixa.
func CalcularTotal(faixas []Faixa) float64 {
	total := 0.0
	for _, f := range faixas {
		total += f.BonusPorCliente * float64(f.QtdClientes)
	}
	return total
}

// Multiplicador aplica a régua de atingimento: 1.0 a partir de 100%,
// 0.8 a partir de 80% e zero abaixo disso. Degrau seco, sem interpolação.
func Multiplicador(atingimento float64) float64 {
	switch {
	case atingimento >= 1.0:
		return 1.0
	case atingimento >= 0.8:
		return 0.8
	default:
		return 0.0
	}
}

// CalcularFinal aplica o multiplicador e o teto de 2x o salário base.
func CalcularFinal(total, multiplicador, salarioBase float64) float64 {
	final := total * multiplicador
	if teto := salarioBase * 2; final > teto {
		return teto
	}
	return final
}

// Calcular devolve os três campos derivados do bônus de uma vez.
func Calcular(faixas []Faixa, atingimento, salarioBase float64) (total, multiplicador, final float64) {
	total = CalcularTotal(faixas)
	multiplicador = Multiplicador(atingimento)
	final = CalcularFinal(total, multiplicador, salarioBase)
	return total, multiplicador, final
}
