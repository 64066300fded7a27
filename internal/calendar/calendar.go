// Package calendar mantém a navegação do calendário: a data-âncora, a visão
// ativa (dia/semana/mês) e o intervalo de datas que cada visão precisa
// consultar na persistência.
package calendar

import (
	"fmt"
	"time"
)

type Visao string

const (
	VisaoDia    Visao = "dia"
	VisaoSemana Visao = "semana"
	VisaoMes    Visao = "mes"
)

type Direcao string

const (
	DirecaoAnterior Direcao = "anterior"
	DirecaoProxima  Direcao = "proxima"
)

// Células fixas da visão mensal: 6 semanas completas de domingo a sábado.
const (
	diasPorSemana  = 7
	semanasNaGrade = 6
	CelulasPorMes  = diasPorSemana * semanasNaGrade
)

// Periodo é um intervalo inclusivo de datas usado nas consultas por faixa
// (data >= Inicio AND data <= Fim).
type Periodo struct {
	Inicio time.Time `json:"inicio"`
	Fim    time.Time `json:"fim"`
}

// Celula é um dia da grade mensal 6×7.
type Celula struct {
	Data   time.Time `json:"data"`
	NoMes  bool      `json:"no_mes"` // false para os dias de vizinhança
	Hoje   bool      `json:"hoje"`
	DiaMes int       `json:"dia_mes"`
}

// Navigate desloca a âncora conforme a visão ativa: ±1 dia, ±7 dias ou ±1
// mês-calendário.
func Navigate(visao Visao, ancora time.Time, dir Direcao) (time.Time, error) {
	passo := 1
	if dir == DirecaoAnterior {
		passo = -1
	} else if dir != DirecaoProxima {
		return time.Time{}, fmt.Errorf("direção desconhecida: %q", dir)
	}

	ancora = dataPura(ancora)
	switch visao {
	case VisaoDia:
		return ancora.AddDate(0, 0, passo), nil
	case VisaoSemana:
		return ancora.AddDate(0, 0, 7*passo), nil
	case VisaoMes:
		return ancora.AddDate(0, passo, 0), nil
	}
	return time.Time{}, fmt.Errorf("visão desconhecida: %q", visao)
}

// VisibleRange devolve o intervalo de datas que a visão consulta na
// persistência. A visão mensal consulta o mês-calendário estrito, mesmo que
// a grade desenhe células de meses vizinhos — comportamento preservado do
// sistema original: dias de vizinhança podem aparecer sem eventos.
func VisibleRange(visao Visao, ancora time.Time) (Periodo, error) {
	ancora = dataPura(ancora)
	switch visao {
	case VisaoDia:
		return Periodo{Inicio: ancora, Fim: ancora}, nil
	case VisaoSemana:
		inicio := InicioDaSemana(ancora)
		return Periodo{Inicio: inicio, Fim: inicio.AddDate(0, 0, 6)}, nil
	case VisaoMes:
		inicio := time.Date(ancora.Year(), ancora.Month(), 1, 0, 0, 0, 0, time.UTC)
		fim := inicio.AddDate(0, 1, -1)
		return Periodo{Inicio: inicio, Fim: fim}, nil
	}
	return Periodo{}, fmt.Errorf("visão desconhecida: %q", visao)
}

// InicioDaSemana devolve o domingo da semana da data (semana começa no
// domingo).
func InicioDaSemana(data time.Time) time.Time {
	data = dataPura(data)
	return data.AddDate(0, 0, -int(data.Weekday()))
}

// DiasDaSemana lista os 7 dias da semana da âncora, de domingo a sábado.
func DiasDaSemana(ancora time.Time) []time.Time {
	inicio := InicioDaSemana(ancora)
	dias := make([]time.Time, diasPorSemana)
	for i := range dias {
		dias[i] = inicio.AddDate(0, 0, i)
	}
	return dias
}

// MonthGrid monta as 42 células da visão mensal: os dias do mês da âncora
// mais os dias de vizinhança que completam 6 semanas de domingo a sábado.
// Clicar numa célula com eventos troca para a visão diária ancorada nela —
// a célula carrega a própria data para isso.
func MonthGrid(ancora time.Time, hoje time.Time) []Celula {
	primeiro := time.Date(ancora.Year(), ancora.Month(), 1, 0, 0, 0, 0, time.UTC)
	cursor := InicioDaSemana(primeiro)
	hoje = dataPura(hoje)

	celulas := make([]Celula, CelulasPorMes)
	for i := range celulas {
		celulas[i] = Celula{
			Data:   cursor,
			NoMes:  cursor.Month() == ancora.Month() && cursor.Year() == ancora.Year(),
			Hoje:   cursor.Equal(hoje),
			DiaMes: cursor.Day(),
		}
		cursor = cursor.AddDate(0, 0, 1)
	}
	return celulas
}

func dataPura(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
