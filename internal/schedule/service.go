package schedule

import (
	"context"
	"fmt"
	"log"
	"time"

	"agenda-clinica/internal/timeutil"
	"agenda-clinica/pkg/models"
)

// Coleções anunciadas no hub de tempo real após cada escrita.
const (
	ColecaoAgendamentos = "agendamentos"
	ColecaoCompromissos = "compromissos_pessoais"
)

// AgendamentoRepo é o que o serviço precisa da camada de persistência para
// agendamentos. *database.DB satisfaz a interface.
type AgendamentoRepo interface {
	CriarAgendamentos(ctx context.Context, ags []models.Agendamento) ([]models.Agendamento, error)
	BuscarAgendamento(ctx context.Context, id string) (*models.Agendamento, error)
	AtualizarAgendamento(ctx context.Context, a models.Agendamento) (*models.Agendamento, error)
	AtualizarStatusAgendamento(ctx context.Context, id string, status models.StatusAgendamento) error
	ExcluirAgendamentos(ctx context.Context, ids []string) error
}

// CompromissoRepo cobre compromissos pessoais.
type CompromissoRepo interface {
	ListarCompromissosPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]models.CompromissoPessoal, error)
	CriarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error)
	AtualizarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error)
	ExcluirCompromisso(ctx context.Context, id string) error
}

// Notifier avisa os clientes conectados que uma coleção mudou. O aviso é
// propositalmente grosso: nenhum diff, só o nome da coleção — quem recebe
// refaz a consulta da visão atual.
type Notifier interface {
	Notify(colecao string)
}

// Service orquestra validação, detecção de conflito, expansão de
// recorrência e escrita.
type Service struct {
	agendamentos AgendamentoRepo
	compromissos CompromissoRepo
	notifier     Notifier
}

func NewService(ag AgendamentoRepo, comp CompromissoRepo, n Notifier) *Service {
	return &Service{agendamentos: ag, compromissos: comp, notifier: n}
}

// CriarAgendamento valida o formulário, expande a frequência na série de
// datas, verifica conflito com compromissos pessoais em cada data e grava
// todas as linhas de uma vez. Devolve as linhas criadas.
func (s *Service) CriarAgendamento(ctx context.Context, novo models.Agendamento) ([]models.Agendamento, error) {
	if err := validarAgendamento(novo); err != nil {
		return nil, err
	}

	datas, err := GenerateDates(novo.Data, novo.Frequencia)
	if err != nil {
		return nil, err
	}

	compromissos, err := s.compromissosNoPeriodo(ctx, datas)
	if err != nil {
		return nil, err
	}

	linhas := make([]models.Agendamento, 0, len(datas))
	for _, data := range datas {
		if c := FindConflict(data, novo.HoraInicio, novo.HoraFim, compromissos); c != nil {
			return nil, &ConflitoError{Compromisso: *c}
		}
		linha := novo
		linha.ID = ""
		linha.Data = data
		linha.Status = models.StatusAgendado
		linhas = append(linhas, linha)
	}

	criadas, err := s.agendamentos.CriarAgendamentos(ctx, linhas)
	if err != nil {
		return nil, fmt.Errorf("falha ao gravar agendamentos: %w", err)
	}

	s.notificar(ColecaoAgendamentos)
	return criadas, nil
}

// AtualizarAgendamento grava uma edição. A edição nunca re-expande a série:
// só a linha editada muda. O conflito é reavaliado para a nova data/horário.
func (s *Service) AtualizarAgendamento(ctx context.Context, a models.Agendamento) (*models.Agendamento, error) {
	if a.ID == "" {
		return nil, erroValidacao("id obrigatório")
	}
	if err := validarAgendamento(a); err != nil {
		return nil, err
	}

	compromissos, err := s.compromissos.ListarCompromissosPorPeriodo(ctx, DataPura(a.Data), DataPura(a.Data))
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar compromissos: %w", err)
	}
	if c := FindConflict(a.Data, a.HoraInicio, a.HoraFim, compromissos); c != nil {
		return nil, &ConflitoError{Compromisso: *c}
	}

	atualizado, err := s.agendamentos.AtualizarAgendamento(ctx, a)
	if err != nil {
		return nil, err
	}
	s.notificar(ColecaoAgendamentos)
	return atualizado, nil
}

// AlterarStatus aplica uma troca de status ou, quando o valor recebido é a
// ação "agenda_semanal", dispara a criação da série semanal e devolve as
// novas linhas. Trocar para o status atual é permitido e não altera mais
// nada (idempotente).
func (s *Service) AlterarStatus(ctx context.Context, id, novoStatus string) ([]models.Agendamento, error) {
	if novoStatus == models.AcaoAgendaSemanal {
		return s.RepetirSemanalmente(ctx, id)
	}

	status := models.StatusAgendamento(novoStatus)
	if !IsValidStatus(status) {
		return nil, erroValidacao("status desconhecido: %q", novoStatus)
	}

	atual, err := s.agendamentos.BuscarAgendamento(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(atual.Status, status) {
		return nil, erroValidacao("transição de %q para %q não permitida", atual.Status, status)
	}

	if err := s.agendamentos.AtualizarStatusAgendamento(ctx, id, status); err != nil {
		return nil, err
	}
	s.notificar(ColecaoAgendamentos)
	return nil, nil
}

// RepetirSemanalmente materializa a ação "agenda semanal": a partir de um
// agendamento existente, cria 6 novas consultas nas 6 semanas seguintes.
// O agendamento original não muda aqui.
func (s *Service) RepetirSemanalmente(ctx context.Context, id string) ([]models.Agendamento, error) {
	base, err := s.agendamentos.BuscarAgendamento(ctx, id)
	if err != nil {
		return nil, err
	}

	novas := ExpandWeeklyAgenda(*base)
	criadas, err := s.agendamentos.CriarAgendamentos(ctx, novas)
	if err != nil {
		return nil, fmt.Errorf("falha ao gravar série semanal: %w", err)
	}

	log.Printf("📅 Agenda semanal: %d consultas criadas a partir de %s", len(criadas), id)
	s.notificar(ColecaoAgendamentos)
	return criadas, nil
}

// ExcluirAgendamentos remove uma ou várias linhas de uma vez.
func (s *Service) ExcluirAgendamentos(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return erroValidacao("nenhum id informado")
	}
	if err := s.agendamentos.ExcluirAgendamentos(ctx, ids); err != nil {
		return err
	}
	s.notificar(ColecaoAgendamentos)
	return nil
}

// CriarCompromisso grava um bloqueio pessoal de horário.
func (s *Service) CriarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error) {
	if err := validarCompromisso(c); err != nil {
		return nil, err
	}
	if c.Status == "" {
		c.Status = models.CompromissoPendente
	}
	criado, err := s.compromissos.CriarCompromisso(ctx, c)
	if err != nil {
		return nil, err
	}
	s.notificar(ColecaoCompromissos)
	return criado, nil
}

func (s *Service) AtualizarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error) {
	if c.ID == "" {
		return nil, erroValidacao("id obrigatório")
	}
	if err := validarCompromisso(c); err != nil {
		return nil, err
	}
	if !IsValidStatusCompromisso(c.Status) {
		return nil, erroValidacao("status de compromisso desconhecido: %q", c.Status)
	}
	atualizado, err := s.compromissos.AtualizarCompromisso(ctx, c)
	if err != nil {
		return nil, err
	}
	s.notificar(ColecaoCompromissos)
	return atualizado, nil
}

func (s *Service) ExcluirCompromisso(ctx context.Context, id string) error {
	if err := s.compromissos.ExcluirCompromisso(ctx, id); err != nil {
		return err
	}
	s.notificar(ColecaoCompromissos)
	return nil
}

// HoraFimPadrao calcula a hora de término sugerida pelo formulário a partir
// da duração padrão do convênio.
func HoraFimPadrao(conv models.Convenio, horaInicio string) string {
	if conv.DuracaoConsulta == "" {
		return ""
	}
	return timeutil.AddDuration(horaInicio, conv.DuracaoConsulta)
}

func (s *Service) compromissosNoPeriodo(ctx context.Context, datas []time.Time) ([]models.CompromissoPessoal, error) {
	if len(datas) == 0 {
		return nil, nil
	}
	compromissos, err := s.compromissos.ListarCompromissosPorPeriodo(ctx, datas[0], datas[len(datas)-1])
	if err != nil {
		return nil, fmt.Errorf("falha ao consultar compromissos: %w", err)
	}
	return compromissos, nil
}

func (s *Service) notificar(colecao string) {
	if s.notifier != nil {
		s.notifier.Notify(colecao)
	}
}

func validarAgendamento(a models.Agendamento) error {
	if a.NomePaciente == "" {
		return erroValidacao("nome do paciente é obrigatório")
	}
	if a.Data.IsZero() {
		return erroValidacao("data é obrigatória")
	}
	return validarIntervalo(a.HoraInicio, a.HoraFim)
}

func validarCompromisso(c models.CompromissoPessoal) error {
	if c.Nome == "" {
		return erroValidacao("descrição do compromisso é obrigatória")
	}
	if c.Data.IsZero() {
		return erroValidacao("data é obrigatória")
	}
	return validarIntervalo(c.HoraInicio, c.HoraFim)
}

// validarIntervalo exige horários válidos e fim estritamente depois do
// início no mesmo dia. Consultas que virariam o dia (fim aparente antes do
// início) são rejeitadas aqui em vez de ganhar um marcador de "dia
// seguinte".
func validarIntervalo(inicio, fim string) error {
	if !timeutil.IsValidTime(inicio) {
		return erroValidacao("hora de início inválida: %q", inicio)
	}
	if !timeutil.IsValidTime(fim) {
		return erroValidacao("hora de fim inválida: %q", fim)
	}
	if timeutil.DurationMinutes(inicio, fim) <= 0 {
		return erroValidacao("hora de fim deve ser depois da hora de início")
	}
	return nil
}
