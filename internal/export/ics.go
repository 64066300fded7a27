// Package export serializa um período da agenda como feed iCalendar, para
// assinatura em aplicativos de calendário externos.
package export

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"agenda-clinica/internal/timeutil"
	"agenda-clinica/pkg/models"
)

// Calendario monta o VCALENDAR com uma VEVENT por consulta e por
// compromisso pessoal do período. Consultas canceladas saem com STATUS
// CANCELLED para o aplicativo assinante riscar o evento.
func Calendario(ags []models.Agendamento, comps []models.CompromissoPessoal) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//agenda-clinica//PT-BR")

	for _, a := range ags {
		ev := cal.AddEvent(fmt.Sprintf("agendamento-%s@agenda-clinica", a.ID))
		ev.SetSummary(fmt.Sprintf("Consulta: %s", a.NomePaciente))
		ev.SetStartAt(comHora(a.Data, a.HoraInicio))
		ev.SetEndAt(comHora(a.Data, a.HoraFim))
		if a.Observacoes != "" {
			ev.SetDescription(a.Observacoes)
		}
		if a.Status == models.StatusCancelado {
			ev.SetStatus(ics.ObjectStatusCancelled)
		} else {
			ev.SetStatus(ics.ObjectStatusConfirmed)
		}
		if !a.CriadoEm.IsZero() {
			ev.SetCreatedTime(a.CriadoEm)
		}
		if !a.AtualizadoEm.IsZero() {
			ev.SetModifiedAt(a.AtualizadoEm)
		}
	}

	for _, c := range comps {
		ev := cal.AddEvent(fmt.Sprintf("compromisso-%s@agenda-clinica", c.ID))
		ev.SetSummary(c.Nome)
		ev.SetStartAt(comHora(c.Data, c.HoraInicio))
		ev.SetEndAt(comHora(c.Data, c.HoraFim))
		if c.Observacoes != "" {
			ev.SetDescription(c.Observacoes)
		}
		ev.SetStatus(ics.ObjectStatusConfirmed)
	}

	return cal.Serialize()
}

func comHora(data time.Time, hora string) time.Time {
	min := timeutil.ToMinutes(hora)
	y, m, d := data.Date()
	return time.Date(y, m, d, min/60, min%60, 0, 0, time.UTC)
}
