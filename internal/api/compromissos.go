package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"agenda-clinica/pkg/models"
)

func (h *Handler) listarCompromissos(w http.ResponseWriter, r *http.Request) {
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

	comps, err := h.db.ListarCompromissosPorPeriodo(r.Context(), inicio, fim)
	if err != nil {
		respondErro(w, err)
		return
	}
	if comps == nil {
		comps = []models.CompromissoPessoal{}
	}
	respondJSON(w, http.StatusOK, comps)
}

func (h *Handler) criarCompromisso(w http.ResponseWriter, r *http.Request) {
	var novo models.CompromissoPessoal
	if err := json.NewDecoder(r.Body).Decode(&novo); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}

	criado, err := h.servico.CriarCompromisso(r.Context(), novo)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, criado)
}

func (h *Handler) buscarCompromisso(w http.ResponseWriter, r *http.Request) {
	c, err := h.db.BuscarCompromisso(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, c)
}

func (h *Handler) atualizarCompromisso(w http.ResponseWriter, r *http.Request) {
	var editado models.CompromissoPessoal
	if err := json.NewDecoder(r.Body).Decode(&editado); err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}
	editado.ID = mux.Vars(r)["id"]

	atualizado, err := h.servico.AtualizarCompromisso(r.Context(), editado)
	if err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusOK, atualizado)
}

func (h *Handler) excluirCompromisso(w http.ResponseWriter, r *http.Request) {
	if err := h.servico.ExcluirCompromisso(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondErro(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
