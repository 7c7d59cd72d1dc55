package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/motplatform/api-performance/internal/auth"
	"github.com/motplatform/api-performance/internal/bonus"
	"github.com/motplatform/api-performance/internal/carreira"
	"github.com/motplatform/api-performance/internal/competencia"
	"github.com/motplatform/api-performance/internal/dashboard"
	"github.com/motplatform/api-performance/internal/dre"
	"github.com/motplatform/api-performance/internal/extrato"
	"github.com/motplatform/api-performance/internal/forecast"
	"github.com/motplatform/api-performance/internal/gamificacao"
	"github.com/motplatform/api-performance/internal/kpi"
	"github.com/motplatform/api-performance/internal/usuario"
	dbutils "github.com/motplatform/api-performance/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
	}

	db, err := dbutils.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	for _, migrate := range []func(*gorm.DB) error{
		usuario.Migrate,
		kpi.Migrate,
		bonus.Migrate,
		dre.Migrate,
		forecast.Migrate,
		carreira.Migrate,
		gamificacao.Migrate,
		competencia.Migrate,
		extrato.Migrate,
	} {
		if err := migrate(db); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}

	if err := carreira.Seed(db); err != nil {
		log.Fatal("Erro ao semear níveis de carreira:", err)
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(db,
		kpi.RemoverPorUsuario,
		bonus.RemoverPorUsuario,
		dre.RemoverPorUsuario,
		forecast.RemoverPorUsuario,
		competencia.RemoverPorUsuario,
		extrato.RemoverPorUsuario,
		gamificacao.RemoverPorUsuario,
	)
	kpiHandler := kpi.NewHandler(kpi.NewRepository(db))
	bonusHandler := bonus.NewHandler(bonus.NewRepository(db), kpi.AtingimentoDoMes, usuario.SalarioPorUsuario)
	dreHandler := dre.NewHandler(dre.NewRepository(db))
	forecastHandler := forecast.NewHandler(forecast.NewRepository(db))
	carreiraHandler := carreira.NewHandler(carreira.NewRepository(db))
	gamificacaoHandler := gamificacao.NewHandler(gamificacao.NewRepository(db))
	competenciaHandler := competencia.NewHandler(competencia.NewRepository(db))
	extratoHandler := extrato.NewHandler(extrato.NewRepository(db))
	dashboardHandler := dashboard.NewHandler(db)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/auth/registrar", usuarioHandler.Registrar).Methods("POST")
	r.HandleFunc("/auth/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/auth/me", usuarioHandler.Me).Methods("GET")

	// Rotas de usuários (admin, exceto busca pelo próprio)
	api.HandleFunc("/usuarios/{id:[0-9]+}", usuarioHandler.BuscarPorID).Methods("GET")

	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)

	admin.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios/{id:[0-9]+}", usuarioHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/usuarios/{id:[0-9]+}", usuarioHandler.Deletar).Methods("DELETE")
	admin.HandleFunc("/usuarios/{id:[0-9]+}/arquivar", usuarioHandler.Arquivar).Methods("PATCH")
	admin.HandleFunc("/usuarios/{id:[0-9]+}/desarquivar", usuarioHandler.Desarquivar).Methods("PATCH")
	admin.HandleFunc("/usuarios/arquivados/lista", usuarioHandler.ListarArquivados).Methods("GET")

	// Rotas de KPIs
	api.HandleFunc("/kpis/{id:[0-9]+}/{mes}", kpiHandler.Buscar).Methods("GET")
	admin.HandleFunc("/kpis/{id:[0-9]+}/{mes}", kpiHandler.Atualizar).Methods("PUT")

	// Rotas de bônus
	api.HandleFunc("/bonus/{id:[0-9]+}/{mes}", bonusHandler.Buscar).Methods("GET")
	admin.HandleFunc("/bonus/{id:[0-9]+}/{mes}", bonusHandler.Atualizar).Methods("PUT")

	// Rotas de DRE
	admin.HandleFunc("/dre/{id:[0-9]+}", dreHandler.Criar).Methods("POST")
	api.HandleFunc("/dre/{id:[0-9]+}", dreHandler.Listar).Methods("GET")

	// Rotas de forecast
	api.HandleFunc("/forecast/{id:[0-9]+}/{mes}", forecastHandler.Buscar).Methods("GET")
	admin.HandleFunc("/forecast/{id:[0-9]+}/{mes}", forecastHandler.Atualizar).Methods("PUT")

	// Rotas de extrato
	api.HandleFunc("/extrato/{id:[0-9]+}/{mes}", extratoHandler.Buscar).Methods("GET")

	// Rotas de carreira
	api.HandleFunc("/niveis-carreira", carreiraHandler.Listar).Methods("GET")
	admin.HandleFunc("/niveis-carreira", carreiraHandler.Criar).Methods("POST")
	admin.HandleFunc("/niveis-carreira/{id}", carreiraHandler.Atualizar).Methods("PUT")
	admin.HandleFunc("/niveis-carreira/{id}", carreiraHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/carreira/avaliar/{id:[0-9]+}", carreiraHandler.Avaliar).Methods("GET")
	admin.HandleFunc("/carreira/aplicar/{id:[0-9]+}", carreiraHandler.Aplicar).Methods("POST")

	// Rotas de gamificação
	api.HandleFunc("/gamificacao/badges", gamificacaoHandler.ListarBadges).Methods("GET")
	api.HandleFunc("/gamificacao/usuario/{id:[0-9]+}", gamificacaoHandler.BuscarUsuario).Methods("GET")
	api.HandleFunc("/gamificacao/ranking", gamificacaoHandler.Ranking).Methods("GET")
	admin.HandleFunc("/gamificacao/conceder-badge/{id:[0-9]+}", gamificacaoHandler.ConcederBadge).Methods("POST")

	// Rotas de competências
	api.HandleFunc("/competencias/{id:[0-9]+}", competenciaHandler.Buscar).Methods("GET")
	api.HandleFunc("/competencias/{id:[0-9]+}", competenciaHandler.Atualizar).Methods("PUT")

	// Dashboard
	api.HandleFunc("/dashboard/{id:[0-9]+}", dashboardHandler.Buscar).Methods("GET")

	// CORS
	origins := strings.Split(os.Getenv("CORS_ORIGINS"), ",")
	if len(origins) == 1 && origins[0] == "" {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	log.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
