package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"agenda-clinica/internal/schedule"
	"agenda-clinica/pkg/models"
)

const colunasCompromisso = `id, nome, data, hora_inicio, hora_fim, status, observacoes,
	criado_em, atualizado_em`

func (db *DB) CriarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error) {
	c.ID = uuid.NewString()
	agora := time.Now().UTC()
	c.CriadoEm = agora
	c.AtualizadoEm = agora

	_, err := db.conn.ExecContext(ctx, `
		INSERT INTO compromissos_pessoais
			(id, nome, data, hora_inicio, hora_fim, status, observacoes, criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
	`, c.ID, c.Nome, c.Data, c.HoraInicio, c.HoraFim, c.Status, c.Observacoes, agora)
	if err != nil {
		return nil, fmt.Errorf("failed to insert compromisso: %w", err)
	}
	return &c, nil
}

// ListarCompromissosPorPeriodo é a consulta usada tanto pelas visões do
// calendário quanto pela verificação de conflito antes de gravar uma série.
func (db *DB) ListarCompromissosPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]models.CompromissoPessoal, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM compromissos_pessoais
		WHERE data >= $1 AND data <= $2
		ORDER BY data ASC, hora_inicio ASC
	`, colunasCompromisso)

	rows, err := db.conn.QueryContext(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("failed to query compromissos: %w", err)
	}
	defer rows.Close()

	var comps []models.CompromissoPessoal
	for rows.Next() {
		var c models.CompromissoPessoal
		err := rows.Scan(&c.ID, &c.Nome, &c.Data, &c.HoraInicio, &c.HoraFim,
			&c.Status, &c.Observacoes, &c.CriadoEm, &c.AtualizadoEm)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compromisso: %w", err)
		}
		comps = append(comps, c)
	}
	return comps, rows.Err()
}

func (db *DB) BuscarCompromisso(ctx context.Context, id string) (*models.CompromissoPessoal, error) {
	query := fmt.Sprintf(`SELECT %s FROM compromissos_pessoais WHERE id = $1`, colunasCompromisso)

	var c models.CompromissoPessoal
	err := db.conn.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.Nome, &c.Data, &c.HoraInicio, &c.HoraFim,
		&c.Status, &c.Observacoes, &c.CriadoEm, &c.AtualizadoEm)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("compromisso %s: %w", id, schedule.ErrNaoEncontrado)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query compromisso: %w", err)
	}
	return &c, nil
}

func (db *DB) AtualizarCompromisso(ctx context.Context, c models.CompromissoPessoal) (*models.CompromissoPessoal, error) {
	c.AtualizadoEm = time.Now().UTC()
	result, err := db.conn.ExecContext(ctx, `
		UPDATE compromissos_pessoais
		SET nome = $2, data = $3, hora_inicio = $4, hora_fim = $5,
		    status = $6, observacoes = $7, atualizado_em = $8
		WHERE id = $1
	`, c.ID, c.Nome, c.Data, c.HoraInicio, c.HoraFim, c.Status, c.Observacoes, c.AtualizadoEm)
	if err != nil {
		return nil, fmt.Errorf("failed to update compromisso: %w", err)
	}
	if err := exigirLinha(result); err != nil {
		return nil, fmt.Errorf("compromisso %s: %w", c.ID, err)
	}
	return &c, nil
}

func (db *DB) ExcluirCompromisso(ctx context.Context, id string) error {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM compromissos_pessoais WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete compromisso: %w", err)
	}
	if err := exigirLinha(result); err != nil {
		return fmt.Errorf("compromisso %s: %w", id, err)
	}
	return nil
}
