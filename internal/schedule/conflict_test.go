package schedule

import (
	"testing"
	"time"

	"agenda-clinica/pkg/models"
)

func dia(ano int, mes time.Month, d int) time.Time {
	return time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC)
}

func compromisso(data time.Time, inicio, fim string) models.CompromissoPessoal {
	return models.CompromissoPessoal{
		ID:         "c1",
		Nome:       "Almoço",
		Data:       data,
		HoraInicio: inicio,
		HoraFim:    fim,
		Status:     models.CompromissoPendente,
	}
}

func TestFindConflictSobreposicao(t *testing.T) {
	data := dia(2024, time.March, 4)
	comps := []models.CompromissoPessoal{compromisso(data, "13:00", "14:00")}

	casos := []struct {
		nome        string
		inicio, fim string
		temConflito bool
	}{
		{"dentro do compromisso", "13:15", "13:45", true},
		{"cruzando o início", "12:30", "13:30", true},
		{"cruzando o fim", "13:30", "14:30", true},
		{"envolvendo o compromisso", "12:00", "15:00", true},
		{"idêntico", "13:00", "14:00", true},
		{"antes, encostando no início", "12:00", "13:00", false},
		{"depois, encostando no fim", "14:00", "15:00", false},
		{"bem antes", "09:00", "10:00", false},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			got := FindConflict(data, c.inicio, c.fim, comps)
			if c.temConflito && got == nil {
				t.Fatalf("esperava conflito para %s–%s", c.inicio, c.fim)
			}
			if !c.temConflito && got != nil {
				t.Fatalf("não esperava conflito para %s–%s, achou %q", c.inicio, c.fim, got.Nome)
			}
		})
	}
}

func TestFindConflictSimetria(t *testing.T) {
	// a sobrepõe b se e somente se aIni < bFim && bIni < aFim.
	data := dia(2024, time.March, 4)
	intervalos := []struct{ inicio, fim string }{
		{"08:00", "09:00"}, {"08:30", "09:30"}, {"09:00", "10:00"}, {"07:00", "11:00"},
	}
	for _, a := range intervalos {
		for _, b := range intervalos {
			comps := []models.CompromissoPessoal{compromisso(data, b.inicio, b.fim)}
			got := FindConflict(data, a.inicio, a.fim, comps) != nil
			inverso := FindConflict(data, b.inicio, b.fim,
				[]models.CompromissoPessoal{compromisso(data, a.inicio, a.fim)}) != nil
			if got != inverso {
				t.Errorf("sobreposição não simétrica: %v vs %v (%v != %v)", a, b, got, inverso)
			}
		}
	}
}

func TestFindConflictOutraData(t *testing.T) {
	comps := []models.CompromissoPessoal{compromisso(dia(2024, time.March, 5), "09:00", "10:00")}
	if got := FindConflict(dia(2024, time.March, 4), "09:00", "10:00", comps); got != nil {
		t.Fatalf("compromisso de outra data não deveria conflitar")
	}
}

func TestFindConflictPrimeiroDaLista(t *testing.T) {
	data := dia(2024, time.March, 4)
	comps := []models.CompromissoPessoal{
		compromisso(data, "09:00", "10:00"),
		compromisso(data, "09:30", "10:30"),
	}
	comps[0].Nome = "Primeiro"
	comps[1].Nome = "Segundo"

	got := FindConflict(data, "09:15", "09:45", comps)
	if got == nil || got.Nome != "Primeiro" {
		t.Fatalf("esperava o primeiro compromisso da lista, veio %+v", got)
	}
}

func TestFindConflictCenarioFormulario(t *testing.T) {
	// Compromisso 09:00–09:30; tentativa de consulta 09:15–10:00 é bloqueada.
	data := dia(2024, time.March, 4)
	comps := []models.CompromissoPessoal{compromisso(data, "09:00", "09:30")}

	got := FindConflict(data, "09:15", "10:00", comps)
	if got == nil {
		t.Fatal("consulta sobrepondo compromisso deveria ser bloqueada")
	}
	if got.Nome != "Almoço" {
		t.Errorf("conflito deveria nomear o compromisso, veio %q", got.Nome)
	}
}
