package main

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"agenda-clinica/internal/api"
	"agenda-clinica/internal/config"
	"agenda-clinica/internal/database"
	"agenda-clinica/internal/realtime"
	"agenda-clinica/internal/reminder"
	"agenda-clinica/internal/schedule"
	"agenda-clinica/internal/slotgrid"
)

func main() {
	log.Println("🚀 Iniciando servidor da agenda clínica...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erro config: %v", err)
	}

	db, err := database.NewDB(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Erro DB: %v", err)
	}
	defer db.Close()
	log.Println("✅ Conectado ao banco de dados")

	if err := db.RunMigrations(cfg.MigrationsDir, cfg.DatabaseURL); err != nil {
		log.Printf("⚠️ Migrações: %v", err)
	} else {
		log.Println("✅ Migrações aplicadas")
	}

	hub := realtime.NewHub()
	servico := schedule.NewService(db, db, hub)

	lembretes := reminder.NewService(db, hub, cfg.LembreteAntecedenciaMin)
	if err := lembretes.Start(cfg.LembreteCronSpec); err != nil {
		log.Printf("⚠️ Lembretes desativados: %v", err)
	}
	defer lembretes.Stop()

	gridCfg := slotgrid.DefaultConfig()
	gridCfg.InicioMinuto = cfg.GradeInicioHora * 60
	gridCfg.FimMinuto = cfg.GradeFimHora * 60
	gridCfg.SlotMinutos = cfg.SlotMinutos
	gridCfg.SlotAlturaPx = float64(cfg.SlotAlturaPx)

	handler := api.NewHandler(servico, db, hub, gridCfg)

	router := mux.NewRouter()
	router.HandleFunc("/ws", hub.HandleWebSocket)
	handler.RegisterRoutes(router.PathPrefix("/api").Subrouter())

	log.Printf("✅ Servidor pronto na porta %s", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsMiddleware(router)))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
