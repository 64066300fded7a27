package api

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"

	"agenda-clinica/internal/calendar"
	"agenda-clinica/internal/export"
	"agenda-clinica/internal/schedule"
	"agenda-clinica/internal/slotgrid"
	"agenda-clinica/pkg/models"
)

// gradeDoDia devolve a grade de slots de um dia. Agendamentos e
// compromissos são buscados em paralelo e combinados só depois que os dois
// chegam: se qualquer busca falhar, nada parcial é devolvido.
func (h *Handler) gradeDoDia(w http.ResponseWriter, r *http.Request) {
	data, err := parseData(r.URL.Query().Get("data"))
	if err != nil {
		respondErro(w, err)
		return
	}

	var (
		wg      sync.WaitGroup
		ags     []models.Agendamento
		comps   []models.CompromissoPessoal
		errAgs  error
		errComp error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		ags, errAgs = h.db.ListarAgendamentosPorPeriodo(r.Context(), data, data)
	}()
	go func() {
		defer wg.Done()
		comps, errComp = h.db.ListarCompromissosPorPeriodo(r.Context(), data, data)
	}()
	wg.Wait()

	if errAgs != nil {
		respondErro(w, errAgs)
		return
	}
	if errComp != nil {
		respondErro(w, errComp)
		return
	}

	respondJSON(w, http.StatusOK, slotgrid.Montar(h.gridCfg, ags, comps))
}

// calendario resolve navegação e intervalo visível de uma visão. Com
// "direcao" na query, a âncora é deslocada antes de montar a resposta.
func (h *Handler) calendario(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	visao := calendar.Visao(q.Get("visao"))
	ancora, err := parseData(q.Get("ancora"))
	if err != nil {
		respondErro(w, err)
		return
	}

	if dir := q.Get("direcao"); dir != "" {
		ancora, err = calendar.Navigate(visao, ancora, calendar.Direcao(dir))
		if err != nil {
			respondErro(w, erroCorpoInvalido(err))
			return
		}
	}

	periodo, err := calendar.VisibleRange(visao, ancora)
	if err != nil {
		respondErro(w, erroCorpoInvalido(err))
		return
	}

	resposta := map[string]any{
		"visao":   visao,
		"ancora":  ancora,
		"periodo": periodo,
	}
	switch visao {
	case calendar.VisaoSemana:
		resposta["dias"] = calendar.DiasDaSemana(ancora)
	case calendar.VisaoMes:
		resposta["celulas"] = calendar.MonthGrid(ancora, time.Now())
	}
	respondJSON(w, http.StatusOK, resposta)
}

func (h *Handler) exportarICS(w http.ResponseWriter, r *http.Request) {
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
	comps, err := h.db.ListarCompromissosPorPeriodo(r.Context(), inicio, fim)
	if err != nil {
		respondErro(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="agenda.ics"`)
	w.Write([]byte(export.Calendario(ags, comps)))
}

func (h *Handler) listarConvenios(w http.ResponseWriter, r *http.Request) {
	somenteAtivos := r.URL.Query().Get("ativos") == "1"
	convs, err := h.db.ListarConvenios(r.Context(), somenteAtivos)
	if err != nil {
		respondErro(w, err)
		return
	}
	if convs == nil {
		convs = []models.Convenio{}
	}
	respondJSON(w, http.StatusOK, convs)
}

// preencherConvenio devolve os padrões que o formulário usa para
// pré-preencher a marcação: tipo de atendimento, valor e hora de término
// calculada a partir da duração padrão do convênio.
func (h *Handler) preencherConvenio(w http.ResponseWriter, r *http.Request) {
	conv, err := h.db.BuscarConvenioPorNome(r.Context(), mux.Vars(r)["nome"])
	if err != nil {
		respondErro(w, err)
		return
	}

	horaInicio := r.URL.Query().Get("hora_inicio")
	respondJSON(w, http.StatusOK, map[string]any{
		"tipo_atendimento": conv.TipoAtendimento,
		"valor":            conv.ValorPadrao,
		"hora_fim":         schedule.HoraFimPadrao(*conv, horaInicio),
	})
}

func (h *Handler) listarPacientes(w http.ResponseWriter, r *http.Request) {
	pacientes, err := h.db.ListarPacientes(r.Context())
	if err != nil {
		respondErro(w, err)
		return
	}
	if pacientes == nil {
		pacientes = []models.Paciente{}
	}
	respondJSON(w, http.StatusOK, pacientes)
}
