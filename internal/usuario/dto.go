package usuario

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginResponse struct {
	Token   string  `json:"token"`
	Usuario Usuario `json:"usuario"`
}

type createUsuarioRequest struct {
	Nome                 string  `json:"nome"`
	Email                string  `json:"email"`
	Senha                string  `json:"senha"`
	IsAdmin              bool    `json:"isAdmin"`
	NivelCarreira        string  `json:"nivelCarreira"`
	SalarioBase          float64 `json:"salarioBase"`
	BaseAtiva            int     `json:"baseAtiva"`
	TempoDeCasa          int     `json:"tempoDeCasa"`
	GerarSenhaTemporaria bool    `json:"gerarSenhaTemporaria"`
}

type updateUsuarioRequest struct {
	Nome          *string  `json:"nome"`
	Email         *string  `json:"email"`
	Senha         *string  `json:"senha"`
	IsAdmin       *bool    `json:"isAdmin"`
	NivelCarreira *string  `json:"nivelCarreira"`
	SalarioBase   *float64 `json:"salarioBase"`
	BaseAtiva     *int     `json:"baseAtiva"`
	TempoDeCasa   *int     `json:"tempoDeCasa"`
}
