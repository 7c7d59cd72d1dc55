package extrato

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

// GET /extrato/{id}/{mes} — cria zerado na primeira leitura
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

	e, _, err := h.Repo.BuscarOuCriar(uint(id), vars["mes"])
	if err != nil {
		http.Error(w, "erro ao buscar extrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}
