// Package reminder verifica periodicamente a agenda do dia e empurra
// lembretes pelo canal de tempo real: consultas agendadas prestes a começar
// e compromissos pessoais ainda pendentes.
package reminder

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"agenda-clinica/internal/timeutil"
	"agenda-clinica/pkg/models"
)

// Fonte é o pedaço da persistência que o verificador consulta.
type Fonte interface {
	ListarAgendamentosPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]models.Agendamento, error)
	ListarCompromissosPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]models.CompromissoPessoal, error)
}

// Avisador entrega o lembrete aos clientes conectados (o hub de websocket).
type Avisador interface {
	Lembrete(mensagem string)
}

type Service struct {
	fonte           Fonte
	avisador        Avisador
	antecedenciaMin int
	cron            *cron.Cron
	agora           func() time.Time

	mu       sync.Mutex
	avisados map[string]bool // ids já lembrados hoje, para não repetir
	dia      time.Time
}

func NewService(fonte Fonte, avisador Avisador, antecedenciaMin int) *Service {
	return &Service{
		fonte:           fonte,
		avisador:        avisador,
		antecedenciaMin: antecedenciaMin,
		agora:           time.Now,
		avisados:        make(map[string]bool),
	}
}

// Start agenda o verificador na expressão cron recebida (padrão: a cada 5
// minutos).
func (s *Service) Start(cronSpec string) error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(cronSpec, s.Verificar); err != nil {
		return fmt.Errorf("expressão cron inválida %q: %w", cronSpec, err)
	}
	s.cron.Start()
	log.Printf("⏰ Verificador de lembretes agendado (%s, antecedência de %d min)", cronSpec, s.antecedenciaMin)
	return nil
}

func (s *Service) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Verificar roda uma passada: lembra consultas começando dentro da janela
// de antecedência e compromissos pendentes do dia. Cada item é lembrado
// uma única vez por dia.
func (s *Service) Verificar() {
	agora := s.agora()
	hoje := time.Date(agora.Year(), agora.Month(), agora.Day(), 0, 0, 0, 0, time.UTC)
	minutosAgora := agora.Hour()*60 + agora.Minute()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.virarDia(hoje)

	ags, err := s.fonte.ListarAgendamentosPorPeriodo(ctx, hoje, hoje)
	if err != nil {
		log.Printf("⚠️ Lembretes: falha ao consultar agendamentos: %v", err)
		return
	}
	for _, a := range ags {
		if a.Status != models.StatusAgendado {
			continue
		}
		inicio := timeutil.ToMinutes(a.HoraInicio)
		if inicio < minutosAgora || inicio > minutosAgora+s.antecedenciaMin {
			continue
		}
		if !s.marcar("ag:" + a.ID) {
			continue
		}
		s.avisador.Lembrete(fmt.Sprintf("Consulta de %s às %s", a.NomePaciente, a.HoraInicio))
	}

	comps, err := s.fonte.ListarCompromissosPorPeriodo(ctx, hoje, hoje)
	if err != nil {
		log.Printf("⚠️ Lembretes: falha ao consultar compromissos: %v", err)
		return
	}
	for _, c := range comps {
		if c.Status != models.CompromissoPendente {
			continue
		}
		inicio := timeutil.ToMinutes(c.HoraInicio)
		if inicio < minutosAgora || inicio > minutosAgora+s.antecedenciaMin {
			continue
		}
		if !s.marcar("cp:" + c.ID) {
			continue
		}
		s.avisador.Lembrete(fmt.Sprintf("Compromisso %q às %s", c.Nome, c.HoraInicio))
	}
}

// virarDia zera o controle de repetição quando o dia muda.
func (s *Service) virarDia(hoje time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dia.Equal(hoje) {
		s.dia = hoje
		s.avisados = make(map[string]bool)
	}
}

// marcar registra o id como lembrado; devolve false se já tinha sido.
func (s *Service) marcar(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.avisados[id] {
		return false
	}
	s.avisados[id] = true
	return true
}
