package forecast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ptr(v int) *int { return &v }

func TestAplicarEmFunilCompleto(t *testing.T) {
	f := &Forecast{UsuarioID: 1, Mes: "2025-01"}
	dto := UpdateDTO{
		Qualificacao: ptr(100),
		Proposta:     ptr(50),
		NovoCliente:  ptr(25),
		NovoAtivo:    ptr(20),
	}

	dto.AplicarEm(f)

	require.Equal(t, 100, f.Qualificacao)
	require.Equal(t, 50, f.Proposta)
	require.Equal(t, 25, f.NovoCliente)
	require.Equal(t, 20, f.NovoAtivo)
	require.InDelta(t, 50.0, f.ConvQualifProposta, 0.001)
	require.InDelta(t, 50.0, f.ConvPropostaCliente, 0.001)
	require.InDelta(t, 80.0, f.ConvClienteAtivo, 0.001)
}

func TestAplicarEmLadoUnicoNaoRecalcula(t *testing.T) {
	f := &Forecast{UsuarioID: 1, Mes: "2025-01"}
	UpdateDTO{
		Qualificacao: ptr(100),
		Proposta:     ptr(50),
		NovoCliente:  ptr(25),
		NovoAtivo:    ptr(20),
	}.AplicarEm(f)

	// Só a qualificação muda: nenhuma conversão pode ser refeita com a
	// proposta antiga do registro.
	UpdateDTO{Qualificacao: ptr(200)}.AplicarEm(f)

	require.Equal(t, 200, f.Qualificacao)
	require.Equal(t, 50, f.Proposta)
	require.InDelta(t, 50.0, f.ConvQualifProposta, 0.001)
	require.InDelta(t, 50.0, f.ConvPropostaCliente, 0.001)
	require.InDelta(t, 80.0, f.ConvClienteAtivo, 0.001)
}

func TestAplicarEmDenominadorZeradoMantemConversao(t *testing.T) {
	f := &Forecast{UsuarioID: 1, Mes: "2025-01"}
	f.ConvQualifProposta = 50

	UpdateDTO{Qualificacao: ptr(0), Proposta: ptr(10)}.AplicarEm(f)

	require.Equal(t, 0, f.Qualificacao)
	require.Equal(t, 10, f.Proposta)
	require.InDelta(t, 50.0, f.ConvQualifProposta, 0.001)
}

func TestAplicarEmParIntermediario(t *testing.T) {
	f := &Forecast{UsuarioID: 1, Mes: "2025-01"}

	UpdateDTO{Proposta: ptr(40), NovoCliente: ptr(10)}.AplicarEm(f)

	require.Zero(t, f.ConvQualifProposta)
	require.InDelta(t, 25.0, f.ConvPropostaCliente, 0.001)
	require.Zero(t, f.ConvClienteAtivo)
}

func TestValidar(t *testing.T) {
	require.True(t, UpdateDTO{}.Validar())
	require.True(t, UpdateDTO{Qualificacao: ptr(0)}.Validar())
	require.False(t, UpdateDTO{NovoAtivo: ptr(-1)}.Validar())
}
