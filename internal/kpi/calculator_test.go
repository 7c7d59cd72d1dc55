package kpi

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtingimentoComMetasBatidas(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.NovosAtivosRealizado = 12
	k.ChurnRealizado = 0
	k.TPVM1Realizado = 100000
	k.AtivosM1Realizado = 10
	k.MigracaoHunterReal = 70

	require.InDelta(t, 1.0, k.Atingimento(), 0.0001)
}

func TestAtingimentoParcial(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.NovosAtivosRealizado = 10
	k.ChurnRealizado = 3
	k.TPVM1Realizado = 80000
	k.AtivosM1Realizado = 8
	k.MigracaoHunterReal = 60

	// 10/12*0.3 + (1-3/5)*0.2 + 0.8*0.2 + 0.8*0.15 + 60/70*0.15
	esperado := 10.0/12.0*0.3 + (1-3.0/5.0)*0.2 + 0.8*0.2 + 0.8*0.15 + 60.0/70.0*0.15
	require.InDelta(t, esperado, k.Atingimento(), 0.0001)
}

func TestAtingimentoZeradoSemRealizados(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	// churn realizado 0 fica abaixo da meta e contribui o peso inteiro
	require.InDelta(t, 0.20, k.Atingimento(), 0.0001)
}

func TestAtingimentoChurnNuncaNegativo(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.ChurnRealizado = 50 // muito acima da meta de 5

	require.InDelta(t, 0.0, k.Atingimento(), 0.0001)
}

func TestAtingimentoChurnNaMetaContribuiZero(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.ChurnRealizado = 5.0

	require.InDelta(t, 0.0, k.Atingimento(), 0.0001)
}

func TestAtingimentoMetaZeradaContribuiZero(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.TPVM1Meta = 0
	k.TPVM1Realizado = 999999
	k.ChurnMeta = 0

	require.InDelta(t, 0.0, k.Atingimento(), 0.0001)
}

func TestAtingimentoSemTetoDeSuperacao(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.NovosAtivosRealizado = 36 // 3x a meta

	require.Greater(t, k.Atingimento(), 1.0-0.2) // 3*0.3 + churn 0.2 zerado pelos demais
	require.InDelta(t, 3.0*0.3+0.2, k.Atingimento(), 0.0001)
}

func TestAtingimentoComPesosCustomizados(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	k.PesoNovosAtivos = 1.0
	k.PesoChurn = 0
	k.PesoTPVM1 = 0
	k.PesoAtivosM1 = 0
	k.PesoMigracaoHunter = 0
	k.NovosAtivosRealizado = 6

	require.InDelta(t, 0.5, k.Atingimento(), 0.0001)
}

func TestValidarPesos(t *testing.T) {
	k := NovoPadrao(1, "2026-01")
	require.NoError(t, k.ValidarPesos())

	k.PesoChurn = -0.1
	require.ErrorIs(t, k.ValidarPesos(), ErrPesoInvalido)

	k.PesoChurn = math.NaN()
	require.ErrorIs(t, k.ValidarPesos(), ErrPesoInvalido)

	k.PesoChurn = math.Inf(1)
	require.ErrorIs(t, k.ValidarPesos(), ErrPesoInvalido)

	// soma fora de 1.0 é aceita: os pesos gravados valem como estão
	k.PesoChurn = 0.9
	require.NoError(t, k.ValidarPesos())
}
