package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// Contrato is the document tied to one booking (one-to-one) that needs the
// producer's and the contracting party's signatures.  DataAssinatura is a
// derived projection of the fully-signed state: non-nil iff both flags are
// true, recomputed on every signature update, never set directly.
type Contrato struct {
	ID                    uint64  `json:"idContrato"`
	IDAgendamento         uint64  `json:"idAgendamento"`
	PDF                   string  `json:"pdf"` // path or URL of the rendered document
	Valor                 float64 `json:"valor"`
	AssinaturaProdutor    bool    `json:"assinaturaProdutor"`
	AssinaturaContratante bool    `json:"assinaturaContratante"`
	DataCriacao           string  `json:"dataCriacao"`
	DataAssinatura        *string `json:"dataAssinatura"` // nil until fully signed
}

// ErrContratoNotFound is returned when a contract lookup matches no row.
var ErrContratoNotFound = errors.New("contrato não encontrado")

// ContratoRepo encapsulates all database queries related to contracts.
type ContratoRepo struct {
	db *sql.DB

	// now stamps DataAssinatura; swappable in tests.
	now func() time.Time
}

// NewContratoRepo constructs a ContratoRepo with the provided DB handle.
func NewContratoRepo(db *sql.DB) *ContratoRepo {
	return &ContratoRepo{db: db, now: time.Now}
}

const contratoCols = "idContrato, idAgendamento, pdf, valor, assinaturaProdutor, assinaturaContratante, dataCriacao, dataAssinatura"

func scanContrato(row scanner, c *Contrato) error {
	return row.Scan(&c.ID, &c.IDAgendamento, &c.PDF, &c.Valor, &c.AssinaturaProdutor, &c.AssinaturaContratante,
		&c.DataCriacao, &c.DataAssinatura)
}

func (r *ContratoRepo) list(ctx context.Context, q string, args ...any) ([]*Contrato, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*Contrato, 0)
	for rows.Next() {
		c := new(Contrato)
		if err := scanContrato(rows, c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// FindAll returns every contract in storage order.
func (r *ContratoRepo) FindAll(ctx context.Context) ([]*Contrato, error) {
	return r.list(ctx, "SELECT "+contratoCols+" FROM Contrato")
}

// FindByID fetches a contract by primary key, ErrContratoNotFound when absent.
func (r *ContratoRepo) FindByID(ctx context.Context, id uint64) (*Contrato, error) {
	const q = "SELECT " + contratoCols + " FROM Contrato WHERE idContrato = ?"
	var c Contrato
	if err := scanContrato(r.db.QueryRowContext(ctx, q, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContratoNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByAgendamento fetches the single contract tied to one booking,
// ErrContratoNotFound when the booking has none.
func (r *ContratoRepo) FindByAgendamento(ctx context.Context, idAgendamento uint64) (*Contrato, error) {
	const q = "SELECT " + contratoCols + " FROM Contrato WHERE idAgendamento = ?"
	var c Contrato
	if err := scanContrato(r.db.QueryRowContext(ctx, q, idAgendamento), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrContratoNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindPendentes returns contracts still missing at least one signature:
// either flag false qualifies, both true excludes.
func (r *ContratoRepo) FindPendentes(ctx context.Context) ([]*Contrato, error) {
	const q = "SELECT " + contratoCols + " FROM Contrato WHERE assinaturaProdutor = false OR assinaturaContratante = false"
	return r.list(ctx, q)
}

// Insert stores a new contract and writes the generated key back onto it.
func (r *ContratoRepo) Insert(ctx context.Context, c *Contrato) error {
	const q = `INSERT INTO Contrato (idAgendamento, pdf, valor, assinaturaProdutor, assinaturaContratante, dataCriacao, dataAssinatura)
	           VALUES (?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, c.IDAgendamento, c.PDF, c.Valor, c.AssinaturaProdutor, c.AssinaturaContratante,
		c.DataCriacao, c.DataAssinatura)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	c.ID = uint64(id)
	return nil
}

// Update replaces every mutable field of one contract and returns the
// affected-row count.  DataAssinatura is written as carried on the record;
// recomputation only happens in UpdateAssinaturas.
func (r *ContratoRepo) Update(ctx context.Context, c *Contrato) (int64, error) {
	const q = `UPDATE Contrato
	           SET idAgendamento = ?, pdf = ?, valor = ?, assinaturaProdutor = ?, assinaturaContratante = ?, dataCriacao = ?, dataAssinatura = ?
	           WHERE idContrato = ?`
	res, err := r.db.ExecContext(ctx, q, c.IDAgendamento, c.PDF, c.Valor, c.AssinaturaProdutor, c.AssinaturaContratante,
		c.DataCriacao, c.DataAssinatura, c.ID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes one contract by id and returns the affected-row count.
func (r *ContratoRepo) Delete(ctx context.Context, id uint64) (int64, error) {
	const q = "DELETE FROM Contrato WHERE idContrato = ?"
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// UpdateAssinaturas sets both signature flags in one statement and
// recomputes DataAssinatura: stamped with the current time when both new
// values are true, cleared to NULL otherwise.  Completion is not sticky;
// dropping either flag after a full signature clears the stamp again.
func (r *ContratoRepo) UpdateAssinaturas(ctx context.Context, id uint64, produtor, contratante bool) (int64, error) {
	var assinadoEm any
	if produtor && contratante {
		assinadoEm = r.now().UTC().Format(dateTimeLayout)
	}
	const q = `UPDATE Contrato
	           SET assinaturaProdutor = ?, assinaturaContratante = ?, dataAssinatura = ?
	           WHERE idContrato = ?`
	res, err := r.db.ExecContext(ctx, q, produtor, contratante, assinadoEm, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
