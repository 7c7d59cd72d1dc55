package competencia

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

// UpdateDTO é a atualização parcial das notas.
type UpdateDTO struct {
	Persistencia   *int `json:"persistencia"`
	Influencia     *int `json:"influencia"`
	Relacionamento *int `json:"relacionamento"`
	Organizacao    *int `json:"organizacao"`
	Criatividade   *int `json:"criatividade"`
}

// GET /competencias/{id} — cria com notas padrão na primeira leitura
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	c, _, err := h.Repo.BuscarOuCriar(uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar competências", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// PUT /competencias/{id} — admin ou o próprio
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	c, err := h.Repo.BuscarPorUsuario(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "competências não encontradas", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar competências", http.StatusInternalServerError)
		return
	}

	var upd UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}

	notas := []struct {
		valor *int
		campo *int
	}{
		{upd.Persistencia, &c.Persistencia},
		{upd.Influencia, &c.Influencia},
		{upd.Relacionamento, &c.Relacionamento},
		{upd.Organizacao, &c.Organizacao},
		{upd.Criatividade, &c.Criatividade},
	}
	for _, n := range notas {
		if n.valor == nil {
			continue
		}
		if *n.valor < 1 || *n.valor > 5 {
			http.Error(w, "notas devem estar entre 1 e 5", http.StatusBadRequest)
			return
		}
		*n.campo = *n.valor
	}
	c.RecalcularMedia()

	if err := h.Repo.Salvar(c); err != nil {
		http.Error(w, "erro ao atualizar competências", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
