package schedule

import (
	"testing"
	"time"

	"agenda-clinica/pkg/models"
)

func TestGenerateDatesUnica(t *testing.T) {
	inicio := dia(2024, time.March, 4)
	datas, err := GenerateDates(inicio, models.FrequenciaUnica)
	if err != nil {
		t.Fatal(err)
	}
	if len(datas) != 1 || !datas[0].Equal(inicio) {
		t.Fatalf("frequência única deveria gerar só a data inicial, veio %v", datas)
	}
}

func TestGenerateDatesSemanal(t *testing.T) {
	datas, err := GenerateDates(dia(2024, time.March, 4), models.FrequenciaSemanal)
	if err != nil {
		t.Fatal(err)
	}
	esperadas := []time.Time{
		dia(2024, time.March, 4), dia(2024, time.March, 11), dia(2024, time.March, 18),
		dia(2024, time.March, 25), dia(2024, time.April, 1), dia(2024, time.April, 8),
	}
	if len(datas) != 6 {
		t.Fatalf("série semanal deveria ter 6 datas, veio %d", len(datas))
	}
	for i, quer := range esperadas {
		if !datas[i].Equal(quer) {
			t.Errorf("data[%d] = %v, esperado %v", i, datas[i], quer)
		}
	}
	for i := 1; i < len(datas); i++ {
		if diff := datas[i].Sub(datas[i-1]); diff != 7*24*time.Hour {
			t.Errorf("intervalo entre datas = %v, esperado 7 dias", diff)
		}
	}
}

func TestGenerateDatesQuinzenal(t *testing.T) {
	inicio := dia(2024, time.March, 4) // segunda-feira
	datas, err := GenerateDates(inicio, models.FrequenciaQuinzenal)
	if err != nil {
		t.Fatal(err)
	}
	if len(datas) != 6 {
		t.Fatalf("série quinzenal deveria ter 6 datas, veio %d", len(datas))
	}
	for i := 1; i < len(datas); i++ {
		if diff := datas[i].Sub(datas[i-1]); diff != 14*24*time.Hour {
			t.Errorf("intervalo entre datas = %v, esperado 14 dias", diff)
		}
	}
	for _, d := range datas {
		if d.Weekday() != time.Monday {
			t.Errorf("quinzenal deveria preservar o dia da semana, %v caiu em %v", d, d.Weekday())
		}
	}
}

func TestGenerateDatesMensal(t *testing.T) {
	datas, err := GenerateDates(dia(2024, time.January, 15), models.FrequenciaMensal)
	if err != nil {
		t.Fatal(err)
	}
	esperadas := []time.Time{
		dia(2024, time.January, 15), dia(2024, time.February, 15), dia(2024, time.March, 15),
		dia(2024, time.April, 15), dia(2024, time.May, 15), dia(2024, time.June, 15),
	}
	for i, quer := range esperadas {
		if !datas[i].Equal(quer) {
			t.Errorf("data[%d] = %v, esperado %v", i, datas[i], quer)
		}
	}
}

func TestGenerateDatesMensalMesCurto(t *testing.T) {
	// Aritmética de mês-calendário: 31/jan + 1 mês desliza para março em
	// ano bissexto (não existe 31/fev).
	datas, err := GenerateDates(dia(2024, time.January, 31), models.FrequenciaMensal)
	if err != nil {
		t.Fatal(err)
	}
	if !datas[1].Equal(dia(2024, time.March, 2)) {
		t.Errorf("31/jan + 1 mês = %v, esperado 02/mar (deslize de mês curto)", datas[1])
	}
}

func TestGenerateDatesFrequenciaInvalida(t *testing.T) {
	if _, err := GenerateDates(dia(2024, time.March, 4), "diaria"); err == nil {
		t.Fatal("frequência desconhecida deveria falhar")
	}
}

func TestExpandWeeklyAgenda(t *testing.T) {
	base := models.Agendamento{
		ID:           "ag-1",
		Data:         dia(2024, time.March, 4),
		NomePaciente: "Maria Silva",
		HoraInicio:   "09:00",
		HoraFim:      "10:00",
		Frequencia:   models.FrequenciaUnica,
		Status:       models.StatusAtendido,
		Valor:        150,
	}

	novas := ExpandWeeklyAgenda(base)
	if len(novas) != 6 {
		t.Fatalf("agenda semanal deveria criar 6 consultas, veio %d", len(novas))
	}
	for i, nova := range novas {
		quer := base.Data.AddDate(0, 0, 7*(i+1))
		if !nova.Data.Equal(quer) {
			t.Errorf("nova[%d].Data = %v, esperado %v", i, nova.Data, quer)
		}
		if nova.ID != "" {
			t.Errorf("nova[%d] não pode herdar o id da original", i)
		}
		if nova.Frequencia != models.FrequenciaSemanal {
			t.Errorf("nova[%d].Frequencia = %q, esperado semanal", i, nova.Frequencia)
		}
		if nova.Status != models.StatusAgendado {
			t.Errorf("nova[%d].Status = %q, esperado agendado", i, nova.Status)
		}
		if nova.NomePaciente != base.NomePaciente || nova.HoraInicio != base.HoraInicio ||
			nova.HoraFim != base.HoraFim || nova.Valor != base.Valor {
			t.Errorf("nova[%d] deveria copiar os demais campos da original", i)
		}
	}
}
