package carreira

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"
	"github.com/motplatform/api-performance/internal/usuario"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo     *Repository
	Usuarios usuario.Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Usuarios: usuario.NewRepository()}
}

type nivelRequest struct {
	Nivel           *string  `json:"nivel"`
	Ordem           *int     `json:"ordem"`
	TPVMin          *float64 `json:"tpvMin"`
	TempoMin        *int     `json:"tempoMin"`
	BonusPercentual *float64 `json:"bonusPercentual"`
	Requisitos      *string  `json:"requisitos"`
	Beneficios      *string  `json:"beneficios"`
	Cor             *string  `json:"cor"`
}

// AvaliacaoDTO é a resposta da checagem de carreira. A avaliação nunca
// altera o perfil; a promoção é um passo separado (Aplicar).
type AvaliacaoDTO struct {
	UsuarioID     uint          `json:"usuarioId"`
	TPV           float64       `json:"tpv"`
	TempoDeCasa   int           `json:"tempoDeCasa"`
	NivelAtual    string        `json:"nivelAtual"`
	NivelElegivel NivelCarreira `json:"nivelElegivel"`
	Promovivel    bool          `json:"promovivel"`
}

// GET /niveis-carreira
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	niveis, err := h.Repo.ListarOrdenados()
	if err != nil {
		http.Error(w, "erro ao listar níveis", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(niveis)
}

// POST /niveis-carreira (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	var req nivelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if req.Nivel == nil || *req.Nivel == "" {
		http.Error(w, "nome do nível é obrigatório", http.StatusBadRequest)
		return
	}

	n := NivelCarreira{ID: Slug(*req.Nivel), Nivel: *req.Nivel}
	if _, err := h.Repo.BuscarPorID(n.ID); err == nil {
		http.Error(w, "nível já cadastrado", http.StatusBadRequest)
		return
	}

	if req.Ordem != nil {
		n.Ordem = *req.Ordem
	} else {
		ordem, err := h.Repo.ProximaOrdem()
		if err != nil {
			http.Error(w, "erro ao criar nível", http.StatusInternalServerError)
			return
		}
		n.Ordem = ordem
	}
	aplicarCampos(&n, req)

	if err := h.Repo.Salvar(&n); err != nil {
		http.Error(w, "erro ao criar nível", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(n)
}

// PUT /niveis-carreira/{id} (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	n, err := h.Repo.BuscarPorID(id)
	if err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}

	var req nivelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	if req.Nivel != nil {
		n.Nivel = *req.Nivel
	}
	if req.Ordem != nil {
		n.Ordem = *req.Ordem
	}
	aplicarCampos(n, req)

	if err := h.Repo.Salvar(n); err != nil {
		http.Error(w, "erro ao atualizar nível", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(n)
}

// DELETE /niveis-carreira/{id} (admin)
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if _, err := h.Repo.BuscarPorID(id); err != nil {
		http.Error(w, "nível não encontrado", http.StatusNotFound)
		return
	}

	if err := h.Repo.Deletar(id); err != nil {
		http.Error(w, "erro ao excluir nível", http.StatusInternalServerError)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "nível excluído com sucesso"})
}

// GET /carreira/avaliar/{id} — checagem sem efeito colateral
func (h *Handler) Avaliar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	avaliacao, err := h.avaliarUsuario(uint(id), r.URL.Query().Get("tpv"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "usuário não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao avaliar carreira", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(avaliacao)
}

// POST /carreira/aplicar/{id} — persiste o nível elegível no perfil (admin)
func (h *Handler) Aplicar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	avaliacao, err := h.avaliarUsuario(uint(id), r.URL.Query().Get("tpv"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "usuário não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao avaliar carreira", http.StatusInternalServerError)
		return
	}

	u, err := h.Usuarios.BuscarPorID(h.Repo.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}
	u.NivelCarreira = avaliacao.NivelElegivel.ID
	if err := h.Usuarios.Salvar(h.Repo.DB, u); err != nil {
		http.Error(w, "erro ao aplicar nível", http.StatusInternalServerError)
		return
	}

	avaliacao.NivelAtual = u.NivelCarreira
	avaliacao.Promovivel = false
	json.NewEncoder(w).Encode(avaliacao)
}

func (h *Handler) avaliarUsuario(id uint, tpvParam string) (*AvaliacaoDTO, error) {
	u, err := h.Usuarios.BuscarPorID(h.Repo.DB, id)
	if err != nil {
		return nil, err
	}

	tpv := u.TPVCarteira()
	if tpvParam != "" {
		if v, err := strconv.ParseFloat(tpvParam, 64); err == nil && v >= 0 {
			tpv = v
		}
	}

	niveis, err := h.Repo.ListarOrdenados()
	if err != nil {
		return nil, err
	}

	eleito, ok := AvaliarNivel(niveis, tpv, u.TempoDeCasa)
	if !ok {
		return nil, errors.New("catálogo de níveis vazio")
	}

	return &AvaliacaoDTO{
		UsuarioID:     u.ID,
		TPV:           tpv,
		TempoDeCasa:   u.TempoDeCasa,
		NivelAtual:    u.NivelCarreira,
		NivelElegivel: eleito,
		Promovivel:    eleito.ID != u.NivelCarreira,
	}, nil
}

func aplicarCampos(n *NivelCarreira, req nivelRequest) {
	if req.TPVMin != nil {
		n.TPVMin = *req.TPVMin
	}
	if req.TempoMin != nil {
		n.TempoMin = *req.TempoMin
	}
	if req.BonusPercentual != nil {
		n.BonusPercentual = *req.BonusPercentual
	}
	if req.Requisitos != nil {
		n.Requisitos = *req.Requisitos
	}
	if req.Beneficios != nil {
		n.Beneficios = *req.Beneficios
	}
	if req.Cor != nil {
		n.Cor = *req.Cor
	}
}
