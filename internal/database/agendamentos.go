package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"agenda-clinica/internal/schedule"
	"agenda-clinica/pkg/models"
)

const colunasAgendamento = `id, data, nome_paciente, telefone, hora_inicio, hora_fim,
	convenio, tipo_atendimento, modalidade, frequencia, observacoes, valor, status,
	criado_em, atualizado_em`

// CriarAgendamentos grava todas as linhas de uma série numa única
// transação: ou a série inteira entra, ou nada entra.
func (db *DB) CriarAgendamentos(ctx context.Context, ags []models.Agendamento) ([]models.Agendamento, error) {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO agendamentos
			(id, data, nome_paciente, telefone, hora_inicio, hora_fim,
			 convenio, tipo_atendimento, modalidade, frequencia, observacoes, valor, status,
			 criado_em, atualizado_em)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $14)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	agora := time.Now().UTC()
	criadas := make([]models.Agendamento, 0, len(ags))
	for _, a := range ags {
		a.ID = uuid.NewString()
		a.CriadoEm = agora
		a.AtualizadoEm = agora
		_, err := stmt.ExecContext(ctx,
			a.ID, a.Data, a.NomePaciente, a.Telefone, a.HoraInicio, a.HoraFim,
			a.Convenio, a.TipoAtendimento, a.Modalidade, a.Frequencia,
			a.Observacoes, a.Valor, a.Status, agora,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to insert agendamento: %w", err)
		}
		criadas = append(criadas, a)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}
	return criadas, nil
}

// ListarAgendamentosPorPeriodo consulta por faixa inclusiva de datas,
// ordenado por data e hora de início — a consulta que cada visão do
// calendário dispara.
func (db *DB) ListarAgendamentosPorPeriodo(ctx context.Context, inicio, fim time.Time) ([]models.Agendamento, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM agendamentos
		WHERE data >= $1 AND data <= $2
		ORDER BY data ASC, hora_inicio ASC
	`, colunasAgendamento)

	rows, err := db.conn.QueryContext(ctx, query, inicio, fim)
	if err != nil {
		return nil, fmt.Errorf("failed to query agendamentos: %w", err)
	}
	defer rows.Close()

	var ags []models.Agendamento
	for rows.Next() {
		a, err := scanAgendamento(rows)
		if err != nil {
			return nil, err
		}
		ags = append(ags, a)
	}
	return ags, rows.Err()
}

func (db *DB) BuscarAgendamento(ctx context.Context, id string) (*models.Agendamento, error) {
	query := fmt.Sprintf(`SELECT %s FROM agendamentos WHERE id = $1`, colunasAgendamento)

	row := db.conn.QueryRowContext(ctx, query, id)
	a, err := scanAgendamento(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("agendamento %s: %w", id, schedule.ErrNaoEncontrado)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (db *DB) AtualizarAgendamento(ctx context.Context, a models.Agendamento) (*models.Agendamento, error) {
	a.AtualizadoEm = time.Now().UTC()
	result, err := db.conn.ExecContext(ctx, `
		UPDATE agendamentos
		SET data = $2, nome_paciente = $3, telefone = $4, hora_inicio = $5,
		    hora_fim = $6, convenio = $7, tipo_atendimento = $8, modalidade = $9,
		    frequencia = $10, observacoes = $11, valor = $12, status = $13,
		    atualizado_em = $14
		WHERE id = $1
	`, a.ID, a.Data, a.NomePaciente, a.Telefone, a.HoraInicio, a.HoraFim,
		a.Convenio, a.TipoAtendimento, a.Modalidade, a.Frequencia,
		a.Observacoes, a.Valor, a.Status, a.AtualizadoEm)
	if err != nil {
		return nil, fmt.Errorf("failed to update agendamento: %w", err)
	}
	if err := exigirLinha(result); err != nil {
		return nil, fmt.Errorf("agendamento %s: %w", a.ID, err)
	}
	return &a, nil
}

func (db *DB) AtualizarStatusAgendamento(ctx context.Context, id string, status models.StatusAgendamento) error {
	result, err := db.conn.ExecContext(ctx, `
		UPDATE agendamentos SET status = $1, atualizado_em = $2 WHERE id = $3
	`, status, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	if err := exigirLinha(result); err != nil {
		return fmt.Errorf("agendamento %s: %w", id, err)
	}
	return nil
}

// ExcluirAgendamentos remove uma ou várias linhas de uma vez (exclusão em
// lote da listagem).
func (db *DB) ExcluirAgendamentos(ctx context.Context, ids []string) error {
	_, err := db.conn.ExecContext(ctx,
		`DELETE FROM agendamentos WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to delete agendamentos: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAgendamento(row scanner) (models.Agendamento, error) {
	var a models.Agendamento
	err := row.Scan(
		&a.ID, &a.Data, &a.NomePaciente, &a.Telefone, &a.HoraInicio, &a.HoraFim,
		&a.Convenio, &a.TipoAtendimento, &a.Modalidade, &a.Frequencia,
		&a.Observacoes, &a.Valor, &a.Status, &a.CriadoEm, &a.AtualizadoEm,
	)
	if err == sql.ErrNoRows {
		return a, err
	}
	if err != nil {
		return a, fmt.Errorf("failed to scan agendamento: %w", err)
	}
	return a, nil
}

func exigirLinha(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if n == 0 {
		return schedule.ErrNaoEncontrado
	}
	return nil
}
