package forecast

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

// GET /forecast/{id}/{mes} — cria zerado na primeira leitura
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

	f, _, err := h.Repo.BuscarOuCriar(uint(id), vars["mes"])
	if err != nil {
		http.Error(w, "erro ao buscar forecast", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}

// PUT /forecast/{id}/{mes} — atualização parcial do funil (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	f, err := h.Repo.BuscarPorChave(uint(id), vars["mes"])
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "forecast não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar forecast", http.StatusInternalServerError)
		return
	}

	var upd UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	if !upd.Validar() {
		http.Error(w, "contagens negativas não são permitidas", http.StatusBadRequest)
		return
	}

	upd.AplicarEm(f)

	if err := h.Repo.Salvar(f); err != nil {
		http.Error(w, "erro ao atualizar forecast", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(f)
}
