package schedule

import (
	"time"

	"agenda-clinica/internal/timeutil"
	"agenda-clinica/pkg/models"
)

// FindConflict procura, entre os compromissos pessoais, o primeiro que
// sobrepõe o intervalo candidato [inicio, fim) na mesma data. Intervalos
// são meio-abertos: terminar exatamente quando o compromisso começa (ou
// começar quando ele termina) não é conflito.
//
// A verificação é consultiva: roda antes do insert/update mas não dentro da
// mesma transação, então duas sessões simultâneas ainda podem gravar
// horários sobrepostos. Limitação aceita para uma clínica de um único
// profissional.
func FindConflict(data time.Time, inicio, fim string, compromissos []models.CompromissoPessoal) *models.CompromissoPessoal {
	candIni := timeutil.ToMinutes(inicio)
	candFim := timeutil.ToMinutes(fim)

	for i := range compromissos {
		c := &compromissos[i]
		if !MesmaData(c.Data, data) {
			continue
		}
		compIni := timeutil.ToMinutes(c.HoraInicio)
		compFim := timeutil.ToMinutes(c.HoraFim)
		if candFim <= compIni || candIni >= compFim {
			continue
		}
		return c
	}
	return nil
}

// MesmaData compara apenas ano/mês/dia, ignorando hora e fuso.
func MesmaData(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DataPura normaliza um time.Time para meia-noite UTC, que é como a coluna
// de data (sem hora) circula pelo sistema.
func DataPura(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
