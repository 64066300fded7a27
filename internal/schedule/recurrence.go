package schedule

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"agenda-clinica/pkg/models"
)

// Tamanho de uma série recorrente criada pelo formulário.
const ocorrenciasPorSerie = 6

// Deslocamentos, em semanas, da ação "agenda semanal" sobre um agendamento
// existente: gera 6 NOVAS consultas em +7..+42 dias (a original fica fora
// da série).
const semanasAgendaSemanal = 6

// GenerateDates expande a data inicial na lista ordenada de datas da série,
// conforme a frequência escolhida no formulário:
//
//	unica     -> [inicio]
//	semanal   -> 6 datas, passo de 7 dias
//	quinzenal -> 6 datas, passo de 14 dias (preserva o dia da semana)
//	mensal    -> 6 datas, passo de 1 mês-calendário
//
// Usada apenas na criação; editar um agendamento existente nunca re-expande
// a série.
func GenerateDates(inicio time.Time, freq models.Frequencia) ([]time.Time, error) {
	inicio = DataPura(inicio)

	switch freq {
	case models.FrequenciaUnica, "":
		return []time.Time{inicio}, nil

	case models.FrequenciaSemanal:
		return datasSemanais(inicio, 1)

	case models.FrequenciaQuinzenal:
		return datasSemanais(inicio, 2)

	case models.FrequenciaMensal:
		// Aritmética de mês-calendário: o dia do mês pode deslizar em
		// meses curtos (31/jan + 1 mês -> 2 ou 3/mar). Uma RRULE MONTHLY
		// pularia esses meses, que não é o comportamento da agenda.
		datas := make([]time.Time, 0, ocorrenciasPorSerie)
		for i := 0; i < ocorrenciasPorSerie; i++ {
			datas = append(datas, inicio.AddDate(0, i, 0))
		}
		return datas, nil
	}

	return nil, erroValidacao("frequência desconhecida: %q", freq)
}

func datasSemanais(inicio time.Time, intervaloSemanas int) ([]time.Time, error) {
	rr, err := rrule.NewRRule(rrule.ROption{
		Freq:     rrule.WEEKLY,
		Interval: intervaloSemanas,
		Count:    ocorrenciasPorSerie,
		Dtstart:  inicio,
	})
	if err != nil {
		return nil, fmt.Errorf("falha ao montar recorrência: %w", err)
	}
	return rr.All(), nil
}

// ExpandWeeklyAgenda é o SEGUNDO caminho de recorrência, independente do de
// criação: disparado pela ação "agenda semanal" sobre um agendamento já
// existente, produz 6 novas consultas em +7, +14, ... +42 dias, com
// frequência forçada para semanal e status reiniciado para agendado. O
// status do agendamento original fica a cargo de quem chamou.
func ExpandWeeklyAgenda(base models.Agendamento) []models.Agendamento {
	novas := make([]models.Agendamento, 0, semanasAgendaSemanal)
	for semana := 1; semana <= semanasAgendaSemanal; semana++ {
		nova := base
		nova.ID = ""
		nova.Data = DataPura(base.Data).AddDate(0, 0, 7*semana)
		nova.Frequencia = models.FrequenciaSemanal
		nova.Status = models.StatusAgendado
		nova.CriadoEm = time.Time{}
		nova.AtualizadoEm = time.Time{}
		novas = append(novas, nova)
	}
	return novas
}
