package database

import (
	"context"
	"database/sql"
	"fmt"

	"agenda-clinica/internal/schedule"
	"agenda-clinica/pkg/models"
)

// Convênios e pacientes são somente leitura para o núcleo de agenda: o
// formulário consulta aqui para pré-preencher tipo de atendimento, valor e
// hora de término.

func (db *DB) ListarConvenios(ctx context.Context, somenteAtivos bool) ([]models.Convenio, error) {
	query := `
		SELECT id, nome, tipo_atendimento, duracao_consulta, valor_padrao,
		       prazo_pagamento_dias, ativo
		FROM convenios
	`
	if somenteAtivos {
		query += ` WHERE ativo = true`
	}
	query += ` ORDER BY nome ASC`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query convenios: %w", err)
	}
	defer rows.Close()

	var convs []models.Convenio
	for rows.Next() {
		var c models.Convenio
		err := rows.Scan(&c.ID, &c.Nome, &c.TipoAtendimento, &c.DuracaoConsulta,
			&c.ValorPadrao, &c.PrazoPagamento, &c.Ativo)
		if err != nil {
			return nil, fmt.Errorf("failed to scan convenio: %w", err)
		}
		convs = append(convs, c)
	}
	return convs, rows.Err()
}

func (db *DB) BuscarConvenioPorNome(ctx context.Context, nome string) (*models.Convenio, error) {
	var c models.Convenio
	err := db.conn.QueryRowContext(ctx, `
		SELECT id, nome, tipo_atendimento, duracao_consulta, valor_padrao,
		       prazo_pagamento_dias, ativo
		FROM convenios
		WHERE nome = $1
	`, nome).Scan(&c.ID, &c.Nome, &c.TipoAtendimento, &c.DuracaoConsulta,
		&c.ValorPadrao, &c.PrazoPagamento, &c.Ativo)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("convenio %q: %w", nome, schedule.ErrNaoEncontrado)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query convenio: %w", err)
	}
	return &c, nil
}

func (db *DB) ListarPacientes(ctx context.Context) ([]models.Paciente, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, nome, telefone, convenio
		FROM pacientes
		ORDER BY nome ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pacientes: %w", err)
	}
	defer rows.Close()

	var pacientes []models.Paciente
	for rows.Next() {
		var p models.Paciente
		if err := rows.Scan(&p.ID, &p.Nome, &p.Telefone, &p.Convenio); err != nil {
			return nil, fmt.Errorf("failed to scan paciente: %w", err)
		}
		pacientes = append(pacientes, p)
	}
	return pacientes, rows.Err()
}
