// Package slotgrid monta a grade diária da agenda: divide o dia em slots de
// tamanho fixo, posiciona consultas e compromissos com altura proporcional à
// duração e resolve a disposição horizontal quando vários itens começam no
// mesmo slot.
//
// A granularidade fixa mantém a montagem em O(slots × itens-por-slot), sem
// árvore de intervalos — suficiente para a agenda de um único profissional,
// onde o dia tem dezenas de itens, não milhares.
package slotgrid

import (
	"agenda-clinica/internal/timeutil"
	"agenda-clinica/pkg/models"
)

type Config struct {
	InicioMinuto   int     `json:"inicio_minuto"`    // início da janela visível, em minutos (06:00 = 360)
	FimMinuto      int     `json:"fim_minuto"`       // fim da janela visível (22:00 = 1320)
	SlotMinutos    int     `json:"slot_minutos"`     // duração de cada slot
	SlotAlturaPx   float64 `json:"slot_altura_px"`   // altura de um slot na tela
	AlturaMinimaPx float64 `json:"altura_minima_px"` // piso visual para itens muito curtos
	MargemPx       float64 `json:"margem_px"`        // respiro descontado da altura calculada
	EspacoPx       float64 `json:"espaco_px"`        // vão horizontal entre colunas do mesmo slot
}

// DefaultConfig corresponde à grade padrão da clínica: 06:00–22:00 em slots
// de 30 minutos.
func DefaultConfig() Config {
	return Config{
		InicioMinuto:   6 * 60,
		FimMinuto:      22 * 60,
		SlotMinutos:    30,
		SlotAlturaPx:   60,
		AlturaMinimaPx: 18,
		MargemPx:       2,
		EspacoPx:       2,
	}
}

// PixelsPorMinuto é a escala vertical da grade.
func (c Config) PixelsPorMinuto() float64 {
	return c.SlotAlturaPx / float64(c.SlotMinutos)
}

// NumSlots é a quantidade de slots da janela visível.
func (c Config) NumSlots() int {
	if c.SlotMinutos <= 0 {
		return 0
	}
	return (c.FimMinuto - c.InicioMinuto) / c.SlotMinutos
}

type TipoItem string

const (
	TipoAgendamento TipoItem = "agendamento"
	TipoCompromisso TipoItem = "compromisso"
)

// Item é uma consulta ou compromisso já posicionado na grade. Cada item é
// desenhado uma única vez, no slot que contém sua hora de início, mesmo que
// a duração atravesse slots seguintes.
type Item struct {
	Tipo       TipoItem `json:"tipo"`
	ID         string   `json:"id"`
	Titulo     string   `json:"titulo"`
	HoraInicio string   `json:"hora_inicio"`
	HoraFim    string   `json:"hora_fim"`
	DuracaoMin int      `json:"duracao_min"`

	// Geometria vertical: deslocamento dentro do slot e altura
	// proporcional à duração.
	TopoPx   float64 `json:"topo_px"`
	AlturaPx float64 `json:"altura_px"`

	// Geometria horizontal: colunas de largura igual quando mais de um
	// item começa no mesmo slot, na ordem de chegada.
	Coluna       int     `json:"coluna"`
	TotalColunas int     `json:"total_colunas"`
	LarguraFrac  float64 `json:"largura_frac"`
}

type Slot struct {
	Indice       int    `json:"indice"`
	InicioMinuto int    `json:"inicio_minuto"`
	Hora         string `json:"hora"`
	Itens        []Item `json:"itens,omitempty"`

	// OcupadoPorCompromisso marca slots cobertos por um compromisso que
	// começou em slot anterior: nada novo é desenhado por cima dele.
	OcupadoPorCompromisso bool `json:"ocupado_por_compromisso,omitempty"`

	// Livre indica que o slot pode receber o atalho de "horário vago".
	Livre bool `json:"livre"`
}

type Grade struct {
	Config Config `json:"config"`
	Slots  []Slot `json:"slots"`
}

// Montar distribui consultas e compromissos de um mesmo dia pela grade.
// Itens cuja hora de início cai fora da janela visível são ignorados.
func Montar(cfg Config, agendamentos []models.Agendamento, compromissos []models.CompromissoPessoal) Grade {
	n := cfg.NumSlots()
	grade := Grade{Config: cfg, Slots: make([]Slot, n)}

	for i := range grade.Slots {
		inicio := cfg.InicioMinuto + i*cfg.SlotMinutos
		grade.Slots[i] = Slot{
			Indice:       i,
			InicioMinuto: inicio,
			Hora:         timeutil.FormatMinutes(inicio),
		}
	}

	// Compromissos entram primeiro: além de ocupar seu slot de início,
	// marcam como ocupados todos os slots que a duração cobre.
	for _, c := range compromissos {
		idx, ok := cfg.slotDe(c.HoraInicio)
		if !ok {
			continue
		}
		item := cfg.montarItem(TipoCompromisso, c.ID, c.Nome, c.HoraInicio, c.HoraFim)
		grade.Slots[idx].Itens = append(grade.Slots[idx].Itens, item)

		fim := timeutil.ToMinutes(c.HoraFim)
		for j := idx + 1; j < n && grade.Slots[j].InicioMinuto < fim; j++ {
			grade.Slots[j].OcupadoPorCompromisso = true
		}
	}

	for _, a := range agendamentos {
		idx, ok := cfg.slotDe(a.HoraInicio)
		if !ok {
			continue
		}
		item := cfg.montarItem(TipoAgendamento, a.ID, a.NomePaciente, a.HoraInicio, a.HoraFim)
		grade.Slots[idx].Itens = append(grade.Slots[idx].Itens, item)
	}

	for i := range grade.Slots {
		slot := &grade.Slots[i]
		distribuirColunas(slot.Itens)
		slot.Livre = len(slot.Itens) == 0 && !slot.OcupadoPorCompromisso
	}

	return grade
}

// slotDe devolve o índice do slot que contém o horário, ou false quando o
// horário cai fora da janela visível.
func (c Config) slotDe(hora string) (int, bool) {
	min := timeutil.ToMinutes(hora)
	if min < c.InicioMinuto || min >= c.FimMinuto {
		return 0, false
	}
	return (min - c.InicioMinuto) / c.SlotMinutos, true
}

func (c Config) montarItem(tipo TipoItem, id, titulo, inicio, fim string) Item {
	duracao := timeutil.DurationMinutes(inicio, fim)

	altura := float64(duracao)*c.PixelsPorMinuto() - c.MargemPx
	if altura < c.AlturaMinimaPx {
		// Piso visual: durações nulas ou negativas (dado inválido que
		// escapou da validação) ainda aparecem clicáveis na grade.
		altura = c.AlturaMinimaPx
	}

	inicioMin := timeutil.ToMinutes(inicio)
	dentroDoSlot := (inicioMin - c.InicioMinuto) % c.SlotMinutos

	return Item{
		Tipo:         tipo,
		ID:           id,
		Titulo:       titulo,
		HoraInicio:   inicio,
		HoraFim:      fim,
		DuracaoMin:   duracao,
		TopoPx:       float64(dentroDoSlot) * c.PixelsPorMinuto(),
		AlturaPx:     altura,
		Coluna:       0,
		TotalColunas: 1,
		LarguraFrac:  1,
	}
}

// distribuirColunas reparte a largura do slot igualmente entre os itens que
// começam nele, da esquerda para a direita na ordem de entrada. É uma
// partição simples em colunas, não um empacotamento geral de intervalos.
func distribuirColunas(itens []Item) {
	total := len(itens)
	if total <= 1 {
		return
	}
	frac := 1.0 / float64(total)
	for i := range itens {
		itens[i].Coluna = i
		itens[i].TotalColunas = total
		itens[i].LarguraFrac = frac
	}
}
