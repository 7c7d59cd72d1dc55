package kpi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	Repo *Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo}
}

// GET /kpis/{id}/{mes} — cria com os padrões na primeira leitura
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	k, _, err := h.Repo.BuscarOuCriar(uint(id), vars["mes"])
	if err != nil {
		http.Error(w, "erro ao buscar KPI", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}

// PUT /kpis/{id}/{mes} — atualização parcial, somente admin
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	k, err := h.Repo.BuscarPorChave(uint(id), vars["mes"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "KPI não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar KPI", http.StatusInternalServerError)
		return
	}

	var upd UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	upd.AplicarEm(k)

	if err := k.ValidarPesos(); err != nil {
		http.Error(w, "pesos inválidos", http.StatusBadRequest)
		return
	}

	if err := h.Repo.Salvar(k); err != nil {
		http.Error(w, "erro ao atualizar KPI", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(k)
}
