package dre

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// DTO usado no POST /dre/{id}
type CreateDTO struct {
	Mes        string  `json:"mes"`
	Salario    float64 `json:"salario"`
	Beneficios float64 `json:"beneficios"`
	Receita    float64 `json:"receita"`
}

// POST /dre/{id} — fecha um mês e anexa ao histórico (admin)
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var in CreateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if in.Salario < 0 || in.Beneficios < 0 || in.Receita < 0 {
		http.Error(w, "valores negativos não são permitidos", http.StatusBadRequest)
		return
	}

	res := Calcular(in.Salario, in.Beneficios, in.Receita)

	d := &DRE{
		UsuarioID:    uint(id),
		Mes:          in.Mes,
		Salario:      in.Salario,
		Beneficios:   in.Beneficios,
		Receita:      in.Receita,
		CustosTotais: res.CustosTotais,
		Breakeven:    res.Breakeven,
		PaybackMeses: res.PaybackMeses,
		ROIPercent:   res.ROIPercent,
	}

	if err := h.Repo.Criar(d); err != nil {
		http.Error(w, "erro ao criar DRE", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(d)
}

// GET /dre/{id} — histórico completo (admin ou o próprio)
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	list, err := h.Repo.ListarPorUsuario(uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar DREs", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
