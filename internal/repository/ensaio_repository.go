package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Ensaio is a rehearsal slot for the band.  It is independent of bookings;
// Horario and Local are free text exactly as typed in.
type Ensaio struct {
	ID       uint64 `json:"idEnsaio"`
	DtEnsaio string `json:"dtEnsaio"` // YYYY-MM-DD
	Horario  string `json:"horario"`
	Local    string `json:"local"`
}

// ErrEnsaioNotFound is returned when a rehearsal lookup matches no row.
var ErrEnsaioNotFound = errors.New("ensaio não encontrado")

// EnsaioRepo encapsulates all database queries related to rehearsals.
type EnsaioRepo struct {
	db *sql.DB
}

// NewEnsaioRepo constructs an EnsaioRepo with the provided DB handle.
func NewEnsaioRepo(db *sql.DB) *EnsaioRepo {
	return &EnsaioRepo{db: db}
}

// FindAll returns every rehearsal in storage order.
func (r *EnsaioRepo) FindAll(ctx context.Context) ([]*Ensaio, error) {
	const q = "SELECT idEnsaio, dtEnsaio, horario, local FROM Ensaio"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Ensaio, 0)
	for rows.Next() {
		e := new(Ensaio)
		if err := rows.Scan(&e.ID, &e.DtEnsaio, &e.Horario, &e.Local); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a rehearsal by primary key, ErrEnsaioNotFound when absent.
func (r *EnsaioRepo) FindByID(ctx context.Context, id uint64) (*Ensaio, error) {
	const q = "SELECT idEnsaio, dtEnsaio, horario, local FROM Ensaio WHERE idEnsaio = ?"
	var e Ensaio
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&e.ID, &e.DtEnsaio, &e.Horario, &e.Local); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEnsaioNotFound
		}
		return nil, err
	}
	return &e, nil
}

// Insert stores a new rehearsal and writes the generated key back onto it.
func (r *EnsaioRepo) Insert(ctx context.Context, e *Ensaio) error {
	const q = "INSERT INTO Ensaio (dtEnsaio, horario, local) VALUES (?, ?, ?)"
	res, err := r.db.ExecContext(ctx, q, e.DtEnsaio, e.Horario, e.Local)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of one rehearsal and returns the
// affected-row count.
func (r *EnsaioRepo) Update(ctx context.Context, e *Ensaio) (int64, error) {
	const q = "UPDATE Ensaio SET dtEnsaio = ?, horario = ?, local = ? WHERE idEnsaio = ?"
	res, err := r.db.ExecContext(ctx, q, e.DtEnsaio, e.Horario, e.Local, e.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one rehearsal by id and returns the affected-row count.
func (r *EnsaioRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	const q = "DELETE FROM Ensaio WHERE idEnsaio = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
