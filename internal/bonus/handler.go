package bonus

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Lookups injetados pelo main: o bônus lê o atingimento do mês e o salário
// base sem conhecer os pacotes de KPI e usuário.
type (
	AtingimentoLookup func(db *gorm.DB, usuarioID uint, mes string) (float64, bool, error)
	SalarioLookup     func(db *gorm.DB, usuarioID uint) (float64, error)
)

type Handler struct {
	Repo        *Repository
	Atingimento AtingimentoLookup
	Salario     SalarioLookup
}

func NewHandler(repo *Repository, atingimento AtingimentoLookup, salario SalarioLookup) *Handler {
	return &Handler{Repo: repo, Atingimento: atingimento, Salario: salario}
}

// DTO usado no PUT /bonus/{id}/{mes}
type UpdateDTO struct {
	Faixas []Faixa `json:"faixas"`
}

// GET /bonus/{id}/{mes} — semeia as faixas padrão na primeira leitura
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

	b, _, err := h.Repo.BuscarOuCriar(uint(id), vars["mes"])
	if err != nil {
		http.Error(w, "erro ao buscar bônus", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(b)
}

// PUT /bonus/{id}/{mes} — substitui faixas e recalcula derivados (admin)
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var in UpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "JSON mal formado", http.StatusBadRequest)
		return
	}
	for _, f := range in.Faixas {
		if f.QtdClientes < 0 || f.BonusPorCliente < 0 {
			http.Error(w, "faixa com valores negativos", http.StatusBadRequest)
			return
		}
	}

	err = h.Repo.DB.Transaction(func(tx *gorm.DB) error {
		b, err := h.Repo.BuscarPorChave(tx, uint(id), vars["mes"])
		if err != nil {
			return err
		}

		atingimento, _, err := h.Atingimento(tx, uint(id), vars["mes"])
		if err != nil {
			return err
		}
		salarioBase, err := h.Salario(tx, uint(id))
		if err != nil {
			return err
		}

		b.BonusTotal, b.Multiplicador, b.BonusFinal = Calcular(in.Faixas, atingimento, salarioBase)

		return h.Repo.SubstituirFaixas(tx, b, in.Faixas)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "bônus não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar bônus", http.StatusInternalServerError)
		return
	}

	atualizado, err := h.Repo.BuscarPorChave(h.Repo.DB, uint(id), vars["mes"])
	if err != nil {
		http.Error(w, "erro ao buscar bônus", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(atualizado)
}
