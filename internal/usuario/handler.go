package usuario

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"
	"github.com/motplatform/api-performance/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Limpeza remove os registros de um usuário em outra tabela
// (KPIs, bônus, forecast etc.); é registrada pelo main na subida.
type Limpeza func(tx *gorm.DB, usuarioID uint) error

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Limpezas   []Limpeza
}

// NewHandler retorna um handler inicializado
func NewHandler(db *gorm.DB, limpezas ...Limpeza) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Limpezas:   limpezas,
	}
}

// Registrar cadastra novo usuário (livre de autenticação)
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		http.Error(w, "email já cadastrado", http.StatusBadRequest)
		return
	}

	u, err := h.montarUsuario(req)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	token, err := auth.GerarToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(LoginResponse{Token: token, Usuario: *u})
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID, user.IsAdmin)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(LoginResponse{Token: token, Usuario: *user})
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)

	u, err := h.Repository.BuscarPorID(h.DB, userID)
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(u)
}

// Listar retorna todos os usuários ativos (ou todos com ?incluirArquivados=true)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	incluirArquivados := r.URL.Query().Get("incluirArquivados") == "true"

	usuarios, err := h.Repository.ListarTodos(h.DB, incluirArquivados)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(usuarios)
}

// ListarArquivados retorna somente usuários arquivados
func (h *Handler) ListarArquivados(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.Repository.ListarArquivados(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar usuários", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(usuarios)
}

// BuscarPorID retorna um usuário pelo ID (admin ou o próprio)
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(u)
}

// Criar cadastra um usuário via admin
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req createUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorEmail(h.DB, req.Email); err == nil {
		http.Error(w, "email já cadastrado", http.StatusBadRequest)
		return
	}

	u, err := h.montarUsuario(req)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.Salvar(h.DB, u); err != nil {
		http.Error(w, "erro ao salvar usuário", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Atualizar altera dados de um usuário existente (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	existente, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	var req updateUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if req.Email != nil && *req.Email != existente.Email {
		if outro, err := h.Repository.BuscarPorEmail(h.DB, *req.Email); err == nil && outro.ID != existente.ID {
			http.Error(w, "email já cadastrado por outro usuário", http.StatusBadRequest)
			return
		}
		existente.Email = *req.Email
	}
	if req.Nome != nil {
		existente.Nome = *req.Nome
	}
	if req.Senha != nil {
		hash, err := utils.HashSenha(*req.Senha)
		if err != nil {
			http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
			return
		}
		existente.Senha = hash
		existente.SenhaTemporaria = false
	}
	if req.IsAdmin != nil {
		existente.IsAdmin = *req.IsAdmin
	}
	if req.NivelCarreira != nil {
		existente.NivelCarreira = *req.NivelCarreira
	}
	if req.SalarioBase != nil {
		existente.SalarioBase = *req.SalarioBase
	}
	if req.BaseAtiva != nil {
		existente.BaseAtiva = *req.BaseAtiva
	}
	if req.TempoDeCasa != nil {
		existente.TempoDeCasa = *req.TempoDeCasa
	}

	if err := h.Repository.Salvar(h.DB, existente); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(existente)
}

// Arquivar marca o usuário como arquivado (soft delete)
func (h *Handler) Arquivar(w http.ResponseWriter, r *http.Request) {
	h.mudarArquivado(w, r, true)
}

// Desarquivar reativa um usuário arquivado
func (h *Handler) Desarquivar(w http.ResponseWriter, r *http.Request) {
	h.mudarArquivado(w, r, false)
}

func (h *Handler) mudarArquivado(w http.ResponseWriter, r *http.Request, arquivar bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	if u.Arquivado == arquivar {
		if arquivar {
			http.Error(w, "usuário já está arquivado", http.StatusBadRequest)
		} else {
			http.Error(w, "usuário não está arquivado", http.StatusBadRequest)
		}
		return
	}

	u.Arquivado = arquivar
	if err := h.Repository.Salvar(h.DB, u); err != nil {
		http.Error(w, "erro ao atualizar usuário", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(u)
}

// Deletar exclui o usuário e todos os registros mensais relacionados
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	userID, _ := auth.UsuarioDoContexto(r)

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if uint(id) == userID {
		http.Error(w, "você não pode excluir sua própria conta", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.BuscarPorID(h.DB, uint(id)); err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	err = h.DB.Transaction(func(tx *gorm.DB) error {
		for _, limpar := range h.Limpezas {
			if err := limpar(tx, uint(id)); err != nil {
				return err
			}
		}
		return NewRepository().Deletar(tx, uint(id))
	})
	if err != nil {
		http.Error(w, "erro ao excluir usuário", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":   "usuário e todos os dados relacionados excluídos permanentemente",
		"usuarioId": uint(id),
	})
}

func (h *Handler) montarUsuario(req createUsuarioRequest) (*Usuario, error) {
	senha := req.Senha
	senhaTemporaria := false
	if req.GerarSenhaTemporaria || senha == "" {
		gerada, err := utils.GerarSenhaTemporaria()
		if err != nil {
			return nil, err
		}
		senha = gerada
		senhaTemporaria = true
	}

	hash, err := utils.HashSenha(senha)
	if err != nil {
		return nil, err
	}

	nivel := req.NivelCarreira
	if nivel == "" {
		nivel = "recruta"
	}
	salario := req.SalarioBase
	if salario == 0 {
		salario = 1570.0
	}
	baseAtiva := req.BaseAtiva
	if baseAtiva == 0 {
		baseAtiva = 159
	}

	return &Usuario{
		Nome:            req.Nome,
		Email:           req.Email,
		Senha:           hash,
		IsAdmin:         req.IsAdmin,
		NivelCarreira:   nivel,
		SalarioBase:     salario,
		BaseAtiva:       baseAtiva,
		TempoDeCasa:     req.TempoDeCasa,
		PrimeiroAcesso:  true,
		SenhaTemporaria: senhaTemporaria,
	}, nil
}
