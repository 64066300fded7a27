package export

import (
	"strings"
	"testing"
	"time"

	"agenda-clinica/pkg/models"
)

func TestCalendario(t *testing.T) {
	data := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.UTC)
	ags := []models.Agendamento{
		{ID: "a1", NomePaciente: "Maria Silva", Data: data,
			HoraInicio: "09:00", HoraFim: "10:00", Status: models.StatusAgendado},
		{ID: "a2", NomePaciente: "João Souza", Data: data,
			HoraInicio: "11:00", HoraFim: "11:50", Status: models.StatusCancelado},
	}
	comps := []models.CompromissoPessoal{
		{ID: "c1", Nome: "Almoço", Data: data,
			HoraInicio: "12:00", HoraFim: "13:00", Status: models.CompromissoPendente},
	}

	feed := Calendario(ags, comps)

	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Fatal("feed deveria ser um VCALENDAR completo")
	}
	if got := strings.Count(feed, "BEGIN:VEVENT"); got != 3 {
		t.Fatalf("esperava 3 VEVENTs, veio %d", got)
	}
	if !strings.Contains(feed, "Consulta: Maria Silva") {
		t.Error("consulta deveria virar VEVENT com o nome do paciente")
	}
	if !strings.Contains(feed, "STATUS:CANCELLED") {
		t.Error("consulta cancelada deveria sair com STATUS:CANCELLED")
	}
	if !strings.Contains(feed, "20240304T090000Z") {
		t.Error("horário de início deveria combinar data e hora em UTC")
	}
}
