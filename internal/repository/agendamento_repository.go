package repository

import (
	"context"
	"database/sql"
	"errors"
)

// Agendamento is a scheduled event request made by a user.  The address is
// kept as loose fields the way the booking form collects it; Aprovado is
// the only field with its own toggle operation.
type Agendamento struct {
	ID                   uint64  `json:"idAgendamento"`
	IDUsuario            uint64  `json:"idUsuario"` // owning user, no cascade behavior
	NomeEvento           string  `json:"nomeEvento"`
	QuantidadeConvidados int     `json:"quantidadeConvidados"`
	Rua                  string  `json:"rua"`
	Numero               string  `json:"numero"`
	Bairro               string  `json:"bairro"`
	Cidade               string  `json:"cidade"`
	Estado               string  `json:"estado"`
	DataEvento           string  `json:"dataEvento"` // YYYY-MM-DD
	Horario              string  `json:"horario"`
	Sonorizacao          bool    `json:"sonorizacao"` // whether the band brings the sound system
	TipoEvento           string  `json:"tipoEvento"`
	Orcamento            float64 `json:"orcamento"`
	Aprovado             bool    `json:"aprovado"`
	DataCriacao          string  `json:"dataCriacao"`
}

// ErrAgendamentoNotFound is returned when a booking lookup matches no row.
var ErrAgendamentoNotFound = errors.New("agendamento não encontrado")

// AgendamentoRepo encapsulates all database queries related to bookings.
type AgendamentoRepo struct {
	db *sql.DB
}

// NewAgendamentoRepo constructs an AgendamentoRepo with the provided DB handle.
func NewAgendamentoRepo(db *sql.DB) *AgendamentoRepo {
	return &AgendamentoRepo{db: db}
}

const agendamentoCols = `idAgendamento, idUsuario, nomeEvento, quantidadeConvidados, rua, numero, bairro, cidade, estado,
	dataEvento, horario, sonorizacao, tipoEvento, orcamento, aprovado, dataCriacao`

func scanAgendamento(row scanner, a *Agendamento) error {
	return row.Scan(&a.ID, &a.IDUsuario, &a.NomeEvento, &a.QuantidadeConvidados, &a.Rua, &a.Numero, &a.Bairro,
		&a.Cidade, &a.Estado, &a.DataEvento, &a.Horario, &a.Sonorizacao, &a.TipoEvento, &a.Orcamento, &a.Aprovado, &a.DataCriacao)
}

func (r *AgendamentoRepo) list(ctx context.Context, q string, args ...any) ([]*Agendamento, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Agendamento, 0)
	for rows.Next() {
		a := new(Agendamento)
		if err := scanAgendamento(rows, a); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAll returns every booking in storage order.
func (r *AgendamentoRepo) FindAll(ctx context.Context) ([]*Agendamento, error) {
	return r.list(ctx, "SELECT "+agendamentoCols+" FROM Agendamento")
}

// FindByID fetches a booking by primary key, ErrAgendamentoNotFound when absent.
func (r *AgendamentoRepo) FindByID(ctx context.Context, id uint64) (*Agendamento, error) {
	const q = "SELECT " + agendamentoCols + " FROM Agendamento WHERE idAgendamento = ?"
	var a Agendamento
	if err := scanAgendamento(r.db.QueryRowContext(ctx, q, id), &a); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAgendamentoNotFound
		}
		return nil, err
	}
	return &a, nil
}

// FindByUsuario returns all bookings owned by one user, possibly empty.
func (r *AgendamentoRepo) FindByUsuario(ctx context.Context, idUsuario uint64) ([]*Agendamento, error) {
	return r.list(ctx, "SELECT "+agendamentoCols+" FROM Agendamento WHERE idUsuario = ?", idUsuario)
}

// FindByDataEvento returns all bookings on an exact event date, possibly empty.
func (r *AgendamentoRepo) FindByDataEvento(ctx context.Context, dataEvento string) ([]*Agendamento, error) {
	return r.list(ctx, "SELECT "+agendamentoCols+" FROM Agendamento WHERE dataEvento = ?", dataEvento)
}

// FindByAprovado returns all bookings with the given approval flag, possibly empty.
func (r *AgendamentoRepo) FindByAprovado(ctx context.Context, aprovado bool) ([]*Agendamento, error) {
	return r.list(ctx, "SELECT "+agendamentoCols+" FROM Agendamento WHERE aprovado = ?", aprovado)
}

// Insert stores a new booking and writes the generated key back onto it.
func (r *AgendamentoRepo) Insert(ctx context.Context, a *Agendamento) error {
	const q = `INSERT INTO Agendamento (idUsuario, nomeEvento, quantidadeConvidados, rua, numero, bairro, cidade, estado,
	                                    dataEvento, horario, sonorizacao, tipoEvento, orcamento, aprovado, dataCriacao)
	           VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, a.IDUsuario, a.NomeEvento, a.QuantidadeConvidados, a.Rua, a.Numero, a.Bairro,
		a.Cidade, a.Estado, a.DataEvento, a.Horario, a.Sonorizacao, a.TipoEvento, a.Orcamento, a.Aprovado, a.DataCriacao)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of one booking and returns the
// affected-row count.
func (r *AgendamentoRepo) Update(ctx context.Context, a *Agendamento) (int64, error) {
	const q = `UPDATE Agendamento
	           SET idUsuario = ?, nomeEvento = ?, quantidadeConvidados = ?, rua = ?, numero = ?, bairro = ?, cidade = ?,
	               estado = ?, dataEvento = ?, horario = ?, sonorizacao = ?, tipoEvento = ?, orcamento = ?, aprovado = ?, dataCriacao = ?
	           WHERE idAgendamento = ?`
	res, err := r.db.ExecContext(ctx, q, a.IDUsuario, a.NomeEvento, a.QuantidadeConvidados, a.Rua, a.Numero, a.Bairro,
		a.Cidade, a.Estado, a.DataEvento, a.Horario, a.Sonorizacao, a.TipoEvento, a.Orcamento, a.Aprovado, a.DataCriacao, a.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one booking by id and returns the affected-row count.
func (r *AgendamentoRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	const q = "DELETE FROM Agendamento WHERE idAgendamento = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateAprovado flips only the approval flag for one booking.
func (r *AgendamentoRepo) UpdateAprovado(ctx context.Context, id uint64, aprovado bool) (int64, error) {
	const q = "UPDATE Agendamento SET aprovado = ? WHERE idAgendamento = ?"
	res, err := r.db.ExecContext(ctx, q, aprovado, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
