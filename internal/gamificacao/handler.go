package gamificacao

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"
	"github.com/motplatform/api-performance/internal/kpi"
	"github.com/motplatform/api-performance/internal/usuario"
	"github.com/motplatform/api-performance/internal/utils"

	"github.com/gorilla/mux"
)

type Handler struct {
	Repo     *Repository
	Usuarios usuario.Repository
}

func NewHandler(repo *Repository) *Handler {
	return &Handler{Repo: repo, Usuarios: usuario.NewRepository()}
}

// GET /gamificacao/badges — catálogo completo
func (h *Handler) ListarBadges(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Catalogo())
}

// GET /gamificacao/usuario/{id} — placar do usuário (criado na primeira leitura)
func (h *Handler) BuscarUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if !auth.PodeAcessar(r, uint(id)) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	g, _, err := h.Repo.BuscarOuCriar(uint(id))
	if err != nil {
		http.Error(w, "erro ao buscar gamificação", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(g)
}

// POST /gamificacao/conceder-badge/{id}?badgeId=... (admin)
func (h *Handler) ConcederBadge(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	badgeID := r.URL.Query().Get("badgeId")
	if badgeID == "" {
		badgeID = r.URL.Query().Get("badge_id")
	}

	b, err := h.Repo.Conceder(uint(id), badgeID)
	if err != nil {
		if errors.Is(err, ErrBadgeInvalida) {
			http.Error(w, "badge inválida", http.StatusBadRequest)
			return
		}
		http.Error(w, "erro ao conceder badge", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "badge concedida com sucesso",
		"points":  b.Pontos,
	})
}

// GET /gamificacao/ranking — ranking do mês corrente entre vendedores ativos
func (h *Handler) Ranking(w http.ResponseWriter, r *http.Request) {
	agentes, err := h.Usuarios.ListarAgentesAtivos(h.Repo.DB)
	if err != nil {
		http.Error(w, "erro ao montar ranking", http.StatusInternalServerError)
		return
	}

	mes := utils.MesAtual()
	itens := make([]ItemRanking, 0, len(agentes))
	for _, a := range agentes {
		// registros ausentes valem zero; o ranking nunca falha por falta deles
		atingimento, _, err := kpi.AtingimentoDoMes(h.Repo.DB, a.ID, mes)
		if err != nil {
			http.Error(w, "erro ao montar ranking", http.StatusInternalServerError)
			return
		}

		item := ItemRanking{
			UsuarioID:     a.ID,
			Nome:          a.Nome,
			NivelCarreira: a.NivelCarreira,
			Atingimento:   atingimento,
		}

		var g Gamificacao
		if err := h.Repo.DB.Preload("Badges").Where("usuario_id = ?", a.ID).First(&g).Error; err == nil {
			item.TotalPontos = g.TotalPontos
			item.QtdBadges = len(g.Badges)
		}

		itens = append(itens, item)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarRanking(itens))
}
