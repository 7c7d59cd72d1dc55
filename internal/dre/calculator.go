package dre

// Resultado são os campos derivados de um fechamento mensal.
type Resultado struct {
	CustosTotais float64
	Breakeven    float64
	PaybackMeses int
	ROIPercent   float64
}

// Calcular fecha o mês: custos = salário + benefícios, breakeven igual aos
// custos por definição, ROI percentual sobre os custos e payback em meses
// inteiros (truncado, não arredondado). Receita ou custo zerados derivam 0
// nos respectivos campos em vez de erro.
func Calcular(salario, beneficios, receita float64) Resultado {
	custos := salario + beneficios

	res := Resultado{
		CustosTotais: custos,
		Breakeven:    custos,
	}
	if custos > 0 {
		res.ROIPercent = (receita - custos) / custos * 100
	}
	if receita > 0 {
		res.PaybackMeses = int(custos / receita)
	}
	return res
}
