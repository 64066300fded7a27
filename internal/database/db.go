package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
)

// DB embrulha a conexão com o Postgres. Toda a persistência da agenda passa
// por aqui: consultas por faixa de data, inserts (único e em lote), updates
// parciais e exclusão em lote.
type DB struct {
	conn *sql.DB
}

// NewDB abre a conexão e espera o banco responder, com algumas tentativas
// para cobrir a subida do container.
func NewDB(databaseURL string) (*DB, error) {
	conn, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for tentativa := 1; tentativa <= 10; tentativa++ {
		if err = conn.Ping(); err == nil {
			break
		}
		log.Printf("⏳ Aguardando banco de dados... (%d/10)", tentativa)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(5)
	conn.SetConnMaxLifetime(time.Hour)

	return &DB{conn: conn}, nil
}

// RunMigrations aplica as migrações pendentes no boot.
func (db *DB) RunMigrations(sourceURL, databaseURL string) error {
	m, err := migrate.New(sourceURL, databaseURL)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}

func (db *DB) GetConnection() *sql.DB {
	return db.conn
}

func (db *DB) Close() error {
	return db.conn.Close()
}
