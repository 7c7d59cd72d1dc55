package forecast

// UpdateDTO é a atualização parcial do funil. Uma conversão só é recalculada
// quando numerador e denominador vêm juntos no mesmo payload e o denominador
// é positivo: editar um lado só não pode fabricar uma conversão com a
// contraparte velha do registro. Conversões não afetadas ficam como estavam.
type UpdateDTO struct {
	Qualificacao *int `json:"qualificacao"`
	Proposta     *int `json:"proposta"`
	NovoCliente  *int `json:"novoCliente"`
	NovoAtivo    *int `json:"novoAtivo"`
}

// AplicarEm grava as contagens presentes e recalcula as conversões cujo par
// completo chegou neste payload.
func (d UpdateDTO) AplicarEm(f *Forecast) {
	if d.Qualificacao != nil {
		f.Qualificacao = *d.Qualificacao
	}
	if d.Proposta != nil {
		f.Proposta = *d.Proposta
	}
	if d.NovoCliente != nil {
		f.NovoCliente = *d.NovoCliente
	}
	if d.NovoAtivo != nil {
		f.NovoAtivo = *d.NovoAtivo
	}

	if d.Qualificacao != nil && d.Proposta != nil && *d.Qualificacao > 0 {
		f.ConvQualifProposta = float64(*d.Proposta) / float64(*d.Qualificacao) * 100
	}
	if d.Proposta != nil && d.NovoCliente != nil && *d.Proposta > 0 {
		f.ConvPropostaCliente = float64(*d.NovoCliente) / float64(*d.Proposta) * 100
	}
	if d.NovoCliente != nil && d.NovoAtivo != nil && *d.NovoCliente > 0 {
		f.ConvClienteAtivo = float64(*d.NovoAtivo) / float64(*d.NovoCliente) * 100
	}
}

// Validar rejeita contagens negativas.
func (d UpdateDTO) Validar() bool {
	for _, v := range []*int{d.Qualificacao, d.Proposta, d.NovoCliente, d.NovoAtivo} {
		if v != nil && *v < 0 {
			return false
		}
	}
	return true
}
