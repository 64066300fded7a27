package reminder

import (
	"context"
	"testing"
	"time"

	"agenda-clinica/pkg/models"
)

type fonteFixa struct {
	ags   []models.Agendamento
	comps []models.CompromissoPessoal
}

func (f *fonteFixa) ListarAgendamentosPorPeriodo(context.Context, time.Time, time.Time) ([]models.Agendamento, error) {
	return f.ags, nil
}

func (f *fonteFixa) ListarCompromissosPorPeriodo(context.Context, time.Time, time.Time) ([]models.CompromissoPessoal, error) {
	return f.comps, nil
}

type avisosCapturados struct{ mensagens []string }

func (a *avisosCapturados) Lembrete(m string) { a.mensagens = append(a.mensagens, m) }

func TestVerificarLembraConsultaIminente(t *testing.T) {
	fonte := &fonteFixa{ags: []models.Agendamento{
		{ID: "a1", NomePaciente: "Maria", HoraInicio: "09:20", Status: models.StatusAgendado},
		{ID: "a2", NomePaciente: "João", HoraInicio: "14:00", Status: models.StatusAgendado},   // longe demais
		{ID: "a3", NomePaciente: "Ana", HoraInicio: "08:00", Status: models.StatusAgendado},    // já passou
		{ID: "a4", NomePaciente: "Rita", HoraInicio: "09:10", Status: models.StatusCancelado},  // cancelada
	}}
	avisos := &avisosCapturados{}

	svc := NewService(fonte, avisos, 30)
	svc.agora = func() time.Time {
		return time.Date(2024, time.March, 4, 9, 0, 0, 0, time.UTC)
	}

	svc.Verificar()
	if len(avisos.mensagens) != 1 {
		t.Fatalf("esperava 1 lembrete, veio %d: %v", len(avisos.mensagens), avisos.mensagens)
	}
	if avisos.mensagens[0] != "Consulta de Maria às 09:20" {
		t.Errorf("mensagem inesperada: %q", avisos.mensagens[0])
	}

	// Segunda passada no mesmo dia não repete o aviso.
	svc.Verificar()
	if len(avisos.mensagens) != 1 {
		t.Errorf("lembrete não deveria repetir no mesmo dia, veio %v", avisos.mensagens)
	}
}

func TestVerificarLembraCompromissoPendente(t *testing.T) {
	fonte := &fonteFixa{comps: []models.CompromissoPessoal{
		{ID: "c1", Nome: "Reunião", HoraInicio: "10:15", Status: models.CompromissoPendente},
		{ID: "c2", Nome: "Almoço", HoraInicio: "10:20", Status: models.CompromissoConcluido},
	}}
	avisos := &avisosCapturados{}

	svc := NewService(fonte, avisos, 30)
	svc.agora = func() time.Time {
		return time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)
	}

	svc.Verificar()
	if len(avisos.mensagens) != 1 {
		t.Fatalf("só o compromisso pendente deveria gerar lembrete, veio %v", avisos.mensagens)
	}
}

func TestVerificarZeraControleNaViradaDoDia(t *testing.T) {
	fonte := &fonteFixa{ags: []models.Agendamento{
		{ID: "a1", NomePaciente: "Maria", HoraInicio: "09:20", Status: models.StatusAgendado},
	}}
	avisos := &avisosCapturados{}

	svc := NewService(fonte, avisos, 30)
	dia := 4
	svc.agora = func() time.Time {
		return time.Date(2024, time.March, dia, 9, 0, 0, 0, time.UTC)
	}

	svc.Verificar()
	dia = 5
	svc.Verificar()
	if len(avisos.mensagens) != 2 {
		t.Errorf("a consulta semanal do dia seguinte deveria ser lembrada de novo, veio %v", avisos.mensagens)
	}
}
