package postgres

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	// defaults razonables para una instancia single-tenant
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema crea las tablas si no existen. Alcanza para un deployment
// de un solo usuario; si esto crece, pasar a migraciones versionadas.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS animals (
			id               TEXT PRIMARY KEY,
			position         INTEGER NOT NULL,
			categoria        TEXT NOT NULL,
			especie          TEXT NOT NULL,
			quantidade       INTEGER NOT NULL,
			data_compra      TIMESTAMPTZ NOT NULL,
			data_nascimento  TIMESTAMPTZ,
			valor            DOUBLE PRECISION NOT NULL,
			tamanho          DOUBLE PRECISION NOT NULL,
			origem           TEXT NOT NULL,
			observacao       TEXT NOT NULL DEFAULT '',
			image_url        TEXT NOT NULL DEFAULT ''
		);

		CREATE TABLE IF NOT EXISTS preferences (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		);
	`)
	return err
}
