package kpi

import (
	"errors"
	"math"
)

// ErrPesoInvalido indica peso negativo ou não finito no payload.
var ErrPesoInvalido = errors.New("peso de KPI inválido")

// Atingimento calcula o atingimento geral do mês: soma ponderada da razão
// realizado/meta de cada indicador. Indicador com meta zerada contribui 0.
//
// Churn é invertido (quanto menor, melhor): a razão é 1 - realizado/meta
// quando o realizado fica abaixo da meta, e 0 caso contrário — nunca
// negativa. Os demais indicadores não têm teto; superação de meta empurra a
// razão acima de 1.
func (k KPI) Atingimento() float64 {
	total := 0.0

	if k.NovosAtivosMeta > 0 {
		total += float64(k.NovosAtivosRealizado) / float64(k.NovosAtivosMeta) * k.PesoNovosAtivos
	}
	if k.ChurnMeta > 0 && k.ChurnRealizado < k.ChurnMeta {
		total += (1 - k.ChurnRealizado/k.ChurnMeta) * k.PesoChurn
	}
	if k.TPVM1Meta > 0 {
		total += k.TPVM1Realizado / k.TPVM1Meta * k.PesoTPVM1
	}
	if k.AtivosM1Meta > 0 {
		total += float64(k.AtivosM1Realizado) / float64(k.AtivosM1Meta) * k.PesoAtivosM1
	}
	if k.MigracaoHunterMeta > 0 {
		total += k.MigracaoHunterReal / k.MigracaoHunterMeta * k.PesoMigracaoHunter
	}

	return total
}

// ValidarPesos rejeita pesos negativos ou não finitos. A soma dos pesos não
// é imposta: administradores podem gravar conjuntos fora de 1.0 e o
// atingimento passa a refletir isso.
func (k KPI) ValidarPesos() error {
	for _, p := range []float64{k.PesoNovosAtivos, k.PesoChurn, k.PesoTPVM1, k.PesoAtivosM1, k.PesoMigracaoHunter} {
		if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
			return ErrPesoInvalido
		}
	}
	return nil
}
