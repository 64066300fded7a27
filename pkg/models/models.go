package models

import "time"

// Status de um agendamento clínico. Representado na interface como uma
// etiqueta de cor (verde = agendado).
type StatusAgendamento string

const (
	StatusAgendado     StatusAgendamento = "agendado"
	StatusAtendido     StatusAgendamento = "atendido"
	StatusCancelado    StatusAgendamento = "cancelado"
	StatusNaoReagendou StatusAgendamento = "nao_reagendou"
)

// AcaoAgendaSemanal não é um status persistido: é um gatilho que cria uma
// série semanal a partir de um agendamento existente.
const AcaoAgendaSemanal = "agenda_semanal"

// Frequência de recorrência escolhida no formulário de criação.
type Frequencia string

const (
	FrequenciaUnica     Frequencia = "unica"
	FrequenciaSemanal   Frequencia = "semanal"
	FrequenciaQuinzenal Frequencia = "quinzenal"
	FrequenciaMensal    Frequencia = "mensal"
)

type Modalidade string

const (
	ModalidadePresencial Modalidade = "presencial"
	ModalidadeOnline     Modalidade = "online"
)

// Status de um compromisso pessoal (bloqueio de horário não clínico).
type StatusCompromisso string

const (
	CompromissoPendente  StatusCompromisso = "pendente"
	CompromissoConcluido StatusCompromisso = "concluido"
)

// Agendamento é uma consulta clínica. Nome e telefone do paciente são uma
// cópia de valor feita no momento da marcação, não uma chave estrangeira —
// editar o cadastro do paciente não altera agendamentos já criados.
type Agendamento struct {
	ID              string            `json:"id"`
	Data            time.Time         `json:"data"`
	NomePaciente    string            `json:"nome_paciente"`
	Telefone        string            `json:"telefone,omitempty"`
	HoraInicio      string            `json:"hora_inicio"` // "HH:MM"
	HoraFim         string            `json:"hora_fim"`    // "HH:MM"
	Convenio        string            `json:"convenio,omitempty"`
	TipoAtendimento string            `json:"tipo_atendimento,omitempty"`
	Modalidade      Modalidade        `json:"modalidade"`
	Frequencia      Frequencia        `json:"frequencia"`
	Observacoes     string            `json:"observacoes,omitempty"`
	Valor           float64           `json:"valor"`
	Status          StatusAgendamento `json:"status"`
	CriadoEm        time.Time         `json:"criado_em"`
	AtualizadoEm    time.Time         `json:"atualizado_em"`
}

// CompromissoPessoal bloqueia um intervalo da agenda do profissional
// (almoço, reunião). Agendamentos não podem sobrepor um compromisso.
type CompromissoPessoal struct {
	ID           string            `json:"id"`
	Nome         string            `json:"nome"`
	Data         time.Time         `json:"data"`
	HoraInicio   string            `json:"hora_inicio"`
	HoraFim      string            `json:"hora_fim"`
	Status       StatusCompromisso `json:"status"`
	Observacoes  string            `json:"observacoes,omitempty"`
	CriadoEm     time.Time         `json:"criado_em"`
	AtualizadoEm time.Time         `json:"atualizado_em"`
}

// Convenio guarda os padrões usados pelo formulário de agendamento para
// pré-preencher tipo de atendimento, valor e hora de término.
type Convenio struct {
	ID              string  `json:"id"`
	Nome            string  `json:"nome"`
	TipoAtendimento string  `json:"tipo_atendimento"`
	DuracaoConsulta string  `json:"duracao_consulta"` // "HH:MM:SS"
	ValorPadrao     float64 `json:"valor_padrao"`
	PrazoPagamento  int     `json:"prazo_pagamento_dias"`
	Ativo           bool    `json:"ativo"`
}

// Paciente é fonte de consulta (autofill) apenas; o núcleo de agenda não
// mantém esse cadastro.
type Paciente struct {
	ID       string `json:"id"`
	Nome     string `json:"nome"`
	Telefone string `json:"telefone,omitempty"`
	Convenio string `json:"convenio,omitempty"`
}
