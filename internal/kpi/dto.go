package kpi

// UpdateDTO aplica atualização parcial: apenas campos presentes no payload
// sobrescrevem o registro (metas, realizados e pesos).
type UpdateDTO struct {
	NovosAtivosMeta      *int     `json:"novosAtivosMeta"`
	NovosAtivosRealizado *int     `json:"novosAtivosRealizado"`
	ChurnMeta            *float64 `json:"churnMeta"`
	ChurnRealizado       *float64 `json:"churnRealizado"`
	TPVM1Meta            *float64 `json:"tpvM1Meta"`
	TPVM1Realizado       *float64 `json:"tpvM1Realizado"`
	AtivosM1Meta         *int     `json:"ativosM1Meta"`
	AtivosM1Realizado    *int     `json:"ativosM1Realizado"`
	MigracaoHunterMeta   *float64 `json:"migracaoHunterMeta"`
	MigracaoHunterReal   *float64 `json:"migracaoHunterRealizado"`

	PesoNovosAtivos    *float64 `json:"pesoNovosAtivos"`
	PesoChurn          *float64 `json:"pesoChurn"`
	PesoTPVM1          *float64 `json:"pesoTpvM1"`
	PesoAtivosM1       *float64 `json:"pesoAtivosM1"`
	PesoMigracaoHunter *float64 `json:"pesoMigracaoHunter"`
}

// AplicarEm grava os campos presentes sobre o registro existente.
func (d UpdateDTO) AplicarEm(k *KPI) {
	if d.NovosAtivosMeta != nil {
		k.NovosAtivosMeta = *d.NovosAtivosMeta
	}
	if d.NovosAtivosRealizado != nil {
		k.NovosAtivosRealizado = *d.NovosAtivosRealizado
	}
	if d.ChurnMeta != nil {
		k.ChurnMeta = *d.ChurnMeta
	}
	if d.ChurnRealizado != nil {
		k.ChurnRealizado = *d.ChurnRealizado
	}
	if d.TPVM1Meta != nil {
		k.TPVM1Meta = *d.TPVM1Meta
	}
	if d.TPVM1Realizado != nil {
		k.TPVM1Realizado = *d.TPVM1Realizado
	}
	if d.AtivosM1Meta != nil {
		k.AtivosM1Meta = *d.AtivosM1Meta
	}
	if d.AtivosM1Realizado != nil {
		k.AtivosM1Realizado = *d.AtivosM1Realizado
	}
	if d.MigracaoHunterMeta != nil {
		k.MigracaoHunterMeta = *d.MigracaoHunterMeta
	}
	if d.MigracaoHunterReal != nil {
		k.MigracaoHunterReal = *d.MigracaoHunterReal
	}
	if d.PesoNovosAtivos != nil {
		k.PesoNovosAtivos = *d.PesoNovosAtivos
	}
	if d.PesoChurn != nil {
		k.PesoChurn = *d.PesoChurn
	}
	if d.PesoTPVM1 != nil {
		k.PesoTPVM1 = *d.PesoTPVM1
	}
	if d.PesoAtivosM1 != nil {
		k.PesoAtivosM1 = *d.PesoAtivosM1
	}
	if d.PesoMigracaoHunter != nil {
		k.PesoMigracaoHunter = *d.PesoMigracaoHunter
	}
}
