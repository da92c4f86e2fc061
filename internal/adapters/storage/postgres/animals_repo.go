package postgres

import (
	"context"
	"database/sql"
	"time"

	"animal-registry/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

func (r *AnimalsRepo) List(ctx context.Context) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT
			id, categoria, especie, quantidade,
			data_compra, data_nascimento,
			valor, tamanho, origem, observacao, image_url
		FROM animals
		ORDER BY position ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		var (
			a          animals.Animal
			nascimento sql.NullTime
		)
		if err := rows.Scan(
			&a.ID,
			&a.Categoria,
			&a.Especie,
			&a.Quantidade,
			&a.DataCompra,
			&nascimento,
			&a.Valor,
			&a.Tamanho,
			&a.Origem,
			&a.Observacao,
			&a.ImageURL,
		); err != nil {
			return nil, err
		}
		if nascimento.Valid {
			t := nascimento.Time
			a.DataNascimento = &t
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Replace reescribe la lista completa en una transacción, preservando el
// orden vía la columna position. Es la misma semántica de "reemplazo
// atómico del valor entero" que tienen los otros backends.
func (r *AnimalsRepo) Replace(ctx context.Context, list []animals.Animal) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM animals`); err != nil {
		return err
	}

	for i, a := range list {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO animals (
				id, position, categoria, especie, quantidade,
				data_compra, data_nascimento,
				valor, tamanho, origem, observacao, image_url
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		`,
			a.ID,
			i,
			a.Categoria,
			a.Especie,
			a.Quantidade,
			a.DataCompra,
			toNullTime(a.DataNascimento),
			a.Valor,
			a.Tamanho,
			a.Origem,
			a.Observacao,
			a.ImageURL,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func toNullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
