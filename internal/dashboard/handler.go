package dashboard

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/motplatform/api-performance/internal/auth"
	"github.com/motplatform/api-performance/internal/bonus"
	"github.com/motplatform/api-performance/internal/competencia"
	"github.com/motplatform/api-performance/internal/forecast"
	"github.com/motplatform/api-performance/internal/kpi"
	"github.com/motplatform/api-performance/internal/usuario"
	"github.com/motplatform/api-performance/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler agrega a visão do mês corrente de um vendedor.
type Handler struct {
	DB           *gorm.DB
	Usuarios     usuario.Repository
	KPIs         *kpi.Repository
	Bonus        *bonus.Repository
	Forecasts    *forecast.Repository
	Competencias *competencia.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:           db,
		Usuarios:     usuario.NewRepository(),
		KPIs:         kpi.NewRepository(db),
		Bonus:        bonus.NewRepository(db),
		Forecasts:    forecast.NewRepository(db),
		Competencias: competencia.NewRepository(db),
	}
}

// DTO é a resposta agregada do dashboard. Bonus e forecast podem vir nulos
// quando o mês ainda não tem registro; o KPI é sempre materializado.
type DTO struct {
	Usuario      *usuario.Usuario         `json:"usuario"`
	KPI          *kpi.KPI                 `json:"kpi"`
	Atingimento  float64                  `json:"atingimento"`
	Bonus        *bonus.Bonus             `json:"bonus"`
	Forecast     *forecast.Forecast       `json:"forecast"`
	Competencias *competencia.Competencia `json:"competencias"`
}

// GET /dashboard/{id}
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

	u, err := h.Usuarios.BuscarPorID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "usuário não encontrado", http.StatusNotFound)
		return
	}

	mes := utils.MesAtual()

	k, _, err := h.KPIs.BuscarOuCriar(uint(id), mes)
	if err != nil {
		http.Error(w, "erro ao buscar KPI", http.StatusInternalServerError)
		return
	}

	dto := DTO{
		Usuario:     u,
		KPI:         k,
		Atingimento: k.Atingimento(),
	}

	if b, err := h.Bonus.BuscarPorChave(h.DB, uint(id), mes); err == nil {
		dto.Bonus = b
	}
	if f, err := h.Forecasts.BuscarPorChave(uint(id), mes); err == nil {
		dto.Forecast = f
	}
	if c, err := h.Competencias.BuscarPorUsuario(uint(id)); err == nil {
		dto.Competencias = c
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dto)
}
