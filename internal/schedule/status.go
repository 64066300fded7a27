package schedule

import "agenda-clinica/pkg/models"

// Máquina de estados do agendamento: qualquer status armazenado pode ir
// para qualquer outro (a recepção corrige erros de marcação o tempo todo).
// "agenda_semanal" não é estado: é uma ação tratada por RepetirSemanalmente.

var statusValidos = map[models.StatusAgendamento]bool{
	models.StatusAgendado:     true,
	models.StatusAtendido:     true,
	models.StatusCancelado:    true,
	models.StatusNaoReagendou: true,
}

// IsValidStatus informa se o valor é um status persistível de agendamento.
func IsValidStatus(s models.StatusAgendamento) bool {
	return statusValidos[s]
}

// CanTransition valida uma troca de status. Transições entre quaisquer dois
// status válidos são permitidas, inclusive para o próprio status atual
// (idempotente: nenhum outro campo muda).
func CanTransition(de, para models.StatusAgendamento) bool {
	return IsValidStatus(de) && IsValidStatus(para)
}

// IsValidStatusCompromisso valida o status de um compromisso pessoal.
func IsValidStatusCompromisso(s models.StatusCompromisso) bool {
	return s == models.CompromissoPendente || s == models.CompromissoConcluido
}
