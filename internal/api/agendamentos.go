package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"agenda-clinica/pkg/models"
)

func (h *Handler) listarAgendamentos(w http.ResponseWriter, r *http.Request) {
	inicio, err := parseData(r.URL.Query().Get("inicio"))
	if err != nil {
		respondErro(w, err)
		return
	}
	fim, err := parseData(r.URL.Query().Get("fim"))
	if err != nil {
		respondErro(w, err)
		return
	}

	ags, err := h.db.ListarAgendamentosPorPeriodo(r.Context(), inicio, fim)
	if err != nil {
		respondErro(w, err)
		return
	}
	if ags == nil {
		ags = []models.Agendamento{}
	}
	respondJSON(w, http.StatusOK, ags)
}

// criarAgendamento recebe o formulário de marcação. Frequências recorrentes
// expandem em várias linhas; a resposta devolve todas as criadas.
func (h *Handler) criarAgendamento(w http.ResponseWriter, r *http.Request) {
	var novo models.Agendamento
	if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}

	criadas, err := h.servico.CriarAgendamento(r.Context(), novo)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, criadas)
}

func (h *Handler) buscarAgendamento(w http.ResponseWriter, r *http.Request) {
	a, err := h.db.BuscarAgendamento(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, a)
}

func (h *Handler) atualizarAgendamento(w http.ResponseWriter, r *http.Request) {
	var editado models.Agendamento
	if err := json.NewDecoder(r.Body).Decode(&editado); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}
	editado.ID = mux.Vars(r)["id"]

	atualizado, err := h.servico.AtualizarAgendamento(r.Context(), editado)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, atualizado)
}

// alterarStatus cobre as trocas normais e a ação "agenda_semanal", que em
// vez de trocar o status cria a série das 6 semanas seguintes.
func (h *Handler) alterarStatus(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}

	criadas, err := h.servico.AlterarStatus(r.Context(), mux.Vars(r)["id"], corpo.Status)
	if err != nil {
		respondErro(w, err)
		return
	}
	if criadas != nil {
		respondJSON(w, http.StatusCreated, criadas)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": corpo.Status})
}

func (h *Handler) excluirAgendamento(w http.ResponseWriter, r *http.Request) {
	if err := h.servico.ExcluirAgendamentos(r.Context(), []string{mux.Vars(r)["id"]}); err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) excluirAgendamentosEmLote(w http.ResponseWriter, r *http.Request) {
	var corpo struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&corpo); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}
	if err := h.servico.ExcluirAgendamentos(r.Context(), corpo.IDs); err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
