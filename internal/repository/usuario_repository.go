// Package repository contains data access logic separated from HTTP handlers.
// Each entity owns one repository issuing single parameterized statements
// against the database; mutations report their affected-row count so the
// handler layer can apply the 0/1/>1 outcome policy.
package repository

import (
	"context"      // context allows passing deadlines and cancellation signals to DB operations
	"database/sql" // sql provides generic database operations and drivers
	"errors"       // errors is used to define custom error values
)

// Usuario represents an account in the booking service: band members,
// producers and contracting customers all live in the same table, told
// apart by Funcao.  Dates travel as strings in the DB's own format.
type Usuario struct {
	ID           uint64 `json:"idUsuario"`    // primary key, auto-incremented by the DB
	Nome         string `json:"nome"`         // full name
	Email        string `json:"email"`        // secondary lookup key; exact match, no normalization
	Senha        string `json:"senha"`        // stored as received, opaque to this service
	Funcao       string `json:"funcao"`       // role label (produtor, musico, contratante, ...)
	DtNascimento string `json:"dtNascimento"` // birth date, YYYY-MM-DD
	Telefone     string `json:"telefone"`     // contact phone
	DataCadastro string `json:"dataCadastro"` // registration timestamp
	Ativo        bool   `json:"ativo"`        // visibility flag toggled via PATCH
}

// ErrUsuarioNotFound is returned when a user lookup matches no row.
var ErrUsuarioNotFound = errors.New("usuário não encontrado")

// UsuarioRepo encapsulates all database queries related to users.
type UsuarioRepo struct {
	db *sql.DB // db is the underlying database connection pool
}

// NewUsuarioRepo constructs a UsuarioRepo with the provided DB handle.
func NewUsuarioRepo(db *sql.DB) *UsuarioRepo {
	return &UsuarioRepo{db: db}
}

const usuarioCols = "idUsuario, nome, email, senha, funcao, dtNascimento, telefone, dataCadastro, ativo"

func scanUsuario(row scanner, u *Usuario) error {
	return row.Scan(&u.ID, &u.Nome, &u.Email, &u.Senha, &u.Funcao, &u.DtNascimento, &u.Telefone, &u.DataCadastro, &u.Ativo)
}

// FindAll returns every user in storage order.  An empty table yields an
// empty slice, never an error.
func (r *UsuarioRepo) FindAll(ctx context.Context) ([]*Usuario, error) {
	const q = "SELECT " + usuarioCols + " FROM Usuario"
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Usuario, 0)
	for rows.Next() {
		u := new(Usuario)
		if err := scanUsuario(rows, u); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindByID fetches a user by primary key.  It returns ErrUsuarioNotFound
// if no row is found.
func (r *UsuarioRepo) FindByID(ctx context.Context, id uint64) (*Usuario, error) {
	const q = "SELECT " + usuarioCols + " FROM Usuario WHERE idUsuario = ?"
	var u Usuario
	if err := scanUsuario(r.db.QueryRowContext(ctx, q, id), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByEmail fetches a user by exact email match.  The email is treated
// as an opaque key: no trimming, no case folding.
func (r *UsuarioRepo) FindByEmail(ctx context.Context, email string) (*Usuario, error) {
	const q = "SELECT " + usuarioCols + " FROM Usuario WHERE email = ?"
	var u Usuario
	if err := scanUsuario(r.db.QueryRowContext(ctx, q, email), &u); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUsuarioNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Insert stores a new user, ignoring any id on the input, and writes the
// auto-generated key back onto the record.
func (r *UsuarioRepo) Insert(ctx context.Context, u *Usuario) error {
	const q = `INSERT INTO Usuario (nome, email, senha, funcao, dtNascimento, telefone, dataCadastro, ativo)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, u.Nome, u.Email, u.Senha, u.Funcao, u.DtNascimento, u.Telefone, u.DataCadastro, u.Ativo)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of the row identified by u.ID in one
// statement and returns the affected-row count.
func (r *UsuarioRepo) Update(ctx context.Context, u *Usuario) (int64, error) {
	const q = `UPDATE Usuario
	           SET nome = ?, email = ?, senha = ?, funcao = ?, dtNascimento = ?, telefone = ?, dataCadastro = ?, ativo = ?
	           WHERE idUsuario = ?`
	res, err := r.db.ExecContext(ctx, q, u.Nome, u.Email, u.Senha, u.Funcao, u.DtNascimento, u.Telefone, u.DataCadastro, u.Ativo, u.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes the user with the given id and returns the affected-row count.
func (r *UsuarioRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	const q = "DELETE FROM Usuario WHERE idUsuario = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateAtivo flips only the visibility flag for one user.
func (r *UsuarioRepo) UpdateAtivo(ctx context.Context, id uint64, ativo bool) (int64, error) {
	const q = "UPDATE Usuario SET ativo = ? WHERE idUsuario = ?"
	res, err := r.db.ExecContext(ctx, q, ativo, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
