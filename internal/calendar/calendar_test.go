package calendar

import (
	"testing"
	"time"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func TestNavigate(t *testing.T) {
	ancora := dia(2024, time.March, 15)

	casos := []struct {
		visao Visao
		dir   Direcao
		quer  time.Time
	}{
		{VisaoDia, DirecaoProxima, dia(2024, time.March, 16)},
		{VisaoDia, DirecaoAnterior, dia(2024, time.March, 14)},
		{VisaoSemana, DirecaoProxima, dia(2024, time.March, 22)},
		{VisaoSemana, DirecaoAnterior, dia(2024, time.March, 8)},
		{VisaoMes, DirecaoProxima, dia(2024, time.April, 15)},
		{VisaoMes, DirecaoAnterior, dia(2024, time.February, 15)},
	}
	for _, c := range casos {
		got, err := Navigate(c.visao, ancora, c.dir)
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(c.quer) {
			t.Errorf("Navigate(%s, %s) = %v, esperado %v", c.visao, c.dir, got, c.quer)
		}
	}
}

func TestNavigateInvalido(t *testing.T) {
	if _, err := Navigate("ano", dia(2024, time.March, 15), DirecaoProxima); err == nil {
		t.Error("visão desconhecida deveria falhar")
	}
	if _, err := Navigate(VisaoDia, dia(2024, time.March, 15), "lado"); err == nil {
		t.Error("direção desconhecida deveria falhar")
	}
}

func TestVisibleRangeDia(t *testing.T) {
	p, err := VisibleRange(VisaoDia, dia(2024, time.March, 15))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Inicio.Equal(dia(2024, time.March, 15)) || !p.Fim.Equal(dia(2024, time.March, 15)) {
		t.Errorf("visão diária deveria consultar só o dia, veio %+v", p)
	}
}

func TestVisibleRangeSemana(t *testing.T) {
	// 15/03/2024 é sexta; a semana (domingo a sábado) vai de 10 a 16.
	p, err := VisibleRange(VisaoSemana, dia(2024, time.March, 15))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Inicio.Equal(dia(2024, time.March, 10)) || !p.Fim.Equal(dia(2024, time.March, 16)) {
		t.Errorf("semana de 10 a 16/03, veio %v a %v", p.Inicio, p.Fim)
	}
	if p.Inicio.Weekday() != time.Sunday {
		t.Errorf("semana deveria começar no domingo")
	}
}

func TestVisibleRangeMesEstrito(t *testing.T) {
	// A consulta cobre o mês-calendário estrito, não as 42 células.
	p, err := VisibleRange(VisaoMes, dia(2024, time.February, 10))
	if err != nil {
		t.Fatal(err)
	}
	if !p.Inicio.Equal(dia(2024, time.February, 1)) || !p.Fim.Equal(dia(2024, time.February, 29)) {
		t.Errorf("fevereiro bissexto de 1 a 29, veio %v a %v", p.Inicio, p.Fim)
	}
}

func TestDiasDaSemana(t *testing.T) {
	dias := DiasDaSemana(dia(2024, time.March, 15))
	if len(dias) != 7 {
		t.Fatalf("semana com %d dias", len(dias))
	}
	if dias[0].Weekday() != time.Sunday || dias[6].Weekday() != time.Saturday {
		t.Errorf("semana deveria ir de domingo a sábado")
	}
	for i := 1; i < 7; i++ {
		if dias[i].Sub(dias[i-1]) != 24*time.Hour {
			t.Errorf("dias consecutivos deveriam distar 1 dia")
		}
	}
}

func TestMonthGrid42Celulas(t *testing.T) {
	// Novembro/2023: 30 dias começando numa quarta-feira. As 3 primeiras
	// células vêm de outubro e as 9 últimas de dezembro, fechando 6
	// semanas exatas.
	hoje := dia(2023, time.November, 10)
	celulas := MonthGrid(dia(2023, time.November, 1), hoje)

	if len(celulas) != CelulasPorMes {
		t.Fatalf("grade com %d células, esperado 42", len(celulas))
	}
	for i := 0; i < 3; i++ {
		if celulas[i].NoMes {
			t.Errorf("célula %d deveria vir de outubro", i)
		}
	}
	if !celulas[0].Data.Equal(dia(2023, time.October, 29)) {
		t.Errorf("primeira célula = %v, esperado 29/10", celulas[0].Data)
	}
	if !celulas[3].Data.Equal(dia(2023, time.November, 1)) || !celulas[3].NoMes {
		t.Errorf("quarta célula deveria ser 01/11")
	}

	dentroDoMes := 0
	for _, c := range celulas {
		if c.NoMes {
			dentroDoMes++
		}
	}
	if dentroDoMes != 30 {
		t.Errorf("%d células no mês, esperado 30", dentroDoMes)
	}
	for i := 33; i < 42; i++ {
		if celulas[i].NoMes {
			t.Errorf("célula %d deveria vir de dezembro", i)
		}
	}

	if celulas[0].Data.Weekday() != time.Sunday {
		t.Errorf("grade deveria começar no domingo")
	}

	marcadasHoje := 0
	for _, c := range celulas {
		if c.Hoje {
			marcadasHoje++
			if !c.Data.Equal(hoje) {
				t.Errorf("célula marcada como hoje na data errada: %v", c.Data)
			}
		}
	}
	if marcadasHoje != 1 {
		t.Errorf("%d células marcadas como hoje, esperado 1", marcadasHoje)
	}
}

func TestMonthGridMesComecandoNoDomingo(t *testing.T) {
	// Setembro/2024 começa no domingo: nenhuma célula inicial de agosto.
	celulas := MonthGrid(dia(2024, time.September, 1), dia(2024, time.September, 1))
	if !celulas[0].Data.Equal(dia(2024, time.September, 1)) || !celulas[0].NoMes {
		t.Errorf("primeira célula deveria ser 01/09, veio %v", celulas[0].Data)
	}
	if len(celulas) != 42 {
		t.Fatalf("sempre 42 células, veio %d", len(celulas))
	}
}
