// Package timeutil concentra a aritmética de horários "HH:MM" usada pela
// agenda. As funções são tolerantes a entrada malformada: devolvem zero em
// vez de erro, porque o formulário valida antes de chamá-las.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
)

const minutosPorDia = 24 * 60

// ToMinutes converte "HH:MM" ou "HH:MM:SS" em minutos desde a meia-noite.
// Segundos são ignorados. Entrada malformada degrada para 0 nas partes que
// não puderem ser lidas.
func ToMinutes(hora string) int {
	partes := strings.Split(hora, ":")
	if len(partes) < 2 {
		return 0
	}
	h, _ := strconv.Atoi(strings.TrimSpace(partes[0]))
	m, _ := strconv.Atoi(strings.TrimSpace(partes[1]))
	return h*60 + m
}

// FormatMinutes formata minutos desde a meia-noite como "HH:MM",
// normalizando para dentro de um dia.
func FormatMinutes(minutos int) string {
	minutos %= minutosPorDia
	if minutos < 0 {
		minutos += minutosPorDia
	}
	return fmt.Sprintf("%02d:%02d", minutos/60, minutos%60)
}

// AddDuration soma uma duração ("HH:MM" ou "HH:MM:SS") a um horário inicial.
// O resultado é módulo 24h: somar além da meia-noite produz um horário
// anterior ao inicial, sem marcador de "dia seguinte". Quem cria
// agendamentos rejeita esse caso na validação (hora_fim <= hora_inicio).
func AddDuration(inicio, duracao string) string {
	return FormatMinutes(ToMinutes(inicio) + ToMinutes(duracao))
}

// DurationMinutes devolve fim - início em minutos. Pode ser negativo quando
// fim < início; cabe a quem chama validar.
func DurationMinutes(inicio, fim string) int {
	return ToMinutes(fim) - ToMinutes(inicio)
}

// IsValidTime informa se a string está no formato "HH:MM" (ou "HH:MM:SS")
// com valores dentro do dia.
func IsValidTime(hora string) bool {
	partes := strings.Split(hora, ":")
	if len(partes) != 2 && len(partes) != 3 {
		return false
	}
	for i, p := range partes {
		v, err := strconv.Atoi(p)
		if err != nil || len(p) != 2 || v < 0 {
			return false
		}
		if i == 0 && v > 23 {
			return false
		}
		if i > 0 && v > 59 {
			return false
		}
	}
	return true
}
