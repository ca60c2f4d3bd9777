package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Equipamento is an inventory item.  Disponivel is the literal CHAR(1)
// code from the schema: 'S' available, 'N' not.  It is carried as-is
// instead of being converted to a boolean.
type Equipamento struct {
	ID            uint64 `json:"idEquipamento"`
	NmEquipamento string `json:"nmEquipamento"`
	Disponivel    string `json:"disponivel"`
}

// ErrEquipamentoNotFound is returned when an equipment lookup matches no row.
var ErrEquipamentoNotFound = errors.New("equipamento não encontrado")

// EquipamentoRepo encapsulates all database queries related to equipment.
type EquipamentoRepo struct {
	db *sql.DB
}

// NewEquipamentoRepo constructs an EquipamentoRepo with the provided DB handle.
func NewEquipamentoRepo(db *sql.DB) *EquipamentoRepo {
	return &EquipamentoRepo{db: db}
}

// FindAll returns every equipment item in storage order.
func (r *EquipamentoRepo) FindAll(ctx context.Context) ([]*Equipamento, error) {
	const q = "SELECT idEquipamento, nmEquipamento, disponivel FROM Equipamento"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Equipamento, 0)
	for rows.Next() {
		eq := new(Equipamento)
		if err := rows.Scan(&eq.ID, &eq.NmEquipamento, &eq.Disponivel); err != nil {
			return nil, err
		}
		out = append(out, eq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches an equipment item by primary key, ErrEquipamentoNotFound
// when absent.
func (r *EquipamentoRepo) FindByID(ctx context.Context, id uint64) (*Equipamento, error) {
	const q = "SELECT idEquipamento, nmEquipamento, disponivel FROM Equipamento WHERE idEquipamento = ?"
	var eq Equipamento
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&eq.ID, &eq.NmEquipamento, &eq.Disponivel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrEquipamentoNotFound
		}
		return nil, err
	}
	return &eq, nil
}

// Insert stores a new equipment item and writes the generated key back onto it.
func (r *EquipamentoRepo) Insert(ctx context.Context, eq *Equipamento) error {
	const q = "INSERT INTO Equipamento (nmEquipamento, disponivel) VALUES (?, ?)"
	res, err := r.db.ExecContext(ctx, q, eq.NmEquipamento, eq.Disponivel)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	eq.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of one equipment item and returns the
// affected-row count.
func (r *EquipamentoRepo) Update(ctx context.Context, eq *Equipamento) (int64, error) {
	const q = "UPDATE Equipamento SET nmEquipamento = ?, disponivel = ? WHERE idEquipamento = ?"
	res, err := r.db.ExecContext(ctx, q, eq.NmEquipamento, eq.Disponivel, eq.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one equipment item by id and returns the affected-row count.
func (r *EquipamentoRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	const q = "DELETE FROM Equipamento WHERE idEquipamento = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
