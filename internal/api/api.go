// Package api expõe o núcleo de agenda por JSON. Toda falha é capturada na
// borda do handler e convertida em resposta com código adequado: validação
// 400, conflito de horário 409, não encontrado 404, falha de persistência
// 500. Nada estoura para fora do servidor.
package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"agenda-clinica/internal/database"
	"agenda-clinica/internal/realtime"
	"agenda-clinica/internal/schedule"
	"agenda-clinica/internal/slotgrid"
)

type Handler struct {
	servico *schedule.Service
	db      *database.DB
	hub     *realtime.Hub
	gridCfg slotgrid.Config
	inicio  time.Time
}

func NewHandler(servico *schedule.Service, db *database.DB, hub *realtime.Hub, gridCfg slotgrid.Config) *Handler {
	return &Handler{
		servico: servico,
		db:      db,
		hub:     hub,
		gridCfg: gridCfg,
		inicio:  time.Now(),
	}
}

// RegisterRoutes pendura os endpoints no subrouter /api.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/agendamentos", h.listarAgendamentos).Methods("GET")
	api.HandleFunc("/agendamentos", h.criarAgendamento).Methods("POST")
	api.HandleFunc("/agendamentos/excluir", h.excluirAgendamentosEmLote).Methods("POST")
	api.HandleFunc("/agendamentos/{id}", h.buscarAgendamento).Methods("GET")
	api.HandleFunc("/agendamentos/{id}", h.atualizarAgendamento).Methods("PUT")
	api.HandleFunc("/agendamentos/{id}", h.excluirAgendamento).Methods("DELETE")
	api.HandleFunc("/agendamentos/{id}/status", h.alterarStatus).Methods("PATCH")

	api.HandleFunc("/compromissos", h.listarCompromissos).Methods("GET")
	api.HandleFunc("/compromissos", h.criarCompromisso).Methods("POST")
	api.HandleFunc("/compromissos/{id}", h.buscarCompromisso).Methods("GET")
	api.HandleFunc("/compromissos/{id}", h.atualizarCompromisso).Methods("PUT")
	api.HandleFunc("/compromissos/{id}", h.excluirCompromisso).Methods("DELETE")

	api.HandleFunc("/grade", h.gradeDoDia).Methods("GET")
	api.HandleFunc("/calendario", h.calendario).Methods("GET")
	api.HandleFunc("/agenda.ics", h.exportarICS).Methods("GET")

	api.HandleFunc("/convenios", h.listarConvenios).Methods("GET")
	api.HandleFunc("/convenios/{nome}/preencher", h.preencherConvenio).Methods("GET")
	api.HandleFunc("/pacientes", h.listarPacientes).Methods("GET")

	api.HandleFunc("/health", h.health).Methods("GET")
	api.HandleFunc("/stats", h.stats).Methods("GET")
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("❌ Erro ao serializar resposta: %v", err)
		}
	}
}

type erroResposta struct {
	Erro string `json:"erro"`
}

// respondErro traduz o erro para o código HTTP da taxonomia.
func respondErro(w http.ResponseWriter, err error) {
	var conflito *schedule.ConflitoError
	switch {
	case errors.As(err, &conflito):
		respondJSON(w, http.StatusConflict, map[string]any{
			"erro":        conflito.Error(),
			"compromisso": conflito.Compromisso,
		})
	case errors.Is(err, schedule.ErrValidacao):
		respondJSON(w, http.StatusBadRequest, erroResposta{Erro: err.Error()})
	case errors.Is(err, schedule.ErrNaoEncontrado):
		respondJSON(w, http.StatusNotFound, erroResposta{Erro: err.Error()})
	default:
		log.Printf("❌ Erro interno: %v", err)
		respondJSON(w, http.StatusInternalServerError, erroResposta{Erro: "erro interno"})
	}
}

// parseData lê datas de query string no formato ISO (2024-03-04).
func parseData(valor string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", valor)
	if err != nil {
		return time.Time{}, erroDataInvalida(valor)
	}
	return d, nil
}

func erroDataInvalida(valor string) error {
	return errors.Join(schedule.ErrValidacao, errors.New("data inválida: "+valor))
}

func erroCorpoInvalido(err error) error {
	return errors.Join(schedule.ErrValidacao, err)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	code := http.StatusOK
	if err := h.db.GetConnection().PingContext(r.Context()); err != nil {
		status = "sem banco"
		code = http.StatusServiceUnavailable
	}
	respondJSON(w, code, map[string]string{"status": status})
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"uptime":              time.Since(h.inicio).Round(time.Second).String(),
		"clientes_conectados": h.hub.Conectados(),
	})
}
