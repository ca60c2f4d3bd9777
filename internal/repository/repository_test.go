package repository

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3" // sqlite driver for in-memory test databases
	"github.com/stretchr/testify/require"
)

// newTestDB opens an in-memory database carrying the full schema.  The pool
// is pinned to a single connection because every in-memory sqlite connection
// is its own database.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	schema := []string{
		`CREATE TABLE Usuario (
			idUsuario    INTEGER PRIMARY KEY AUTOINCREMENT,
			nome         TEXT NOT NULL,
			email        TEXT NOT NULL,
			senha        TEXT NOT NULL,
			funcao       TEXT NOT NULL,
			dtNascimento TEXT NOT NULL,
			telefone     TEXT NOT NULL,
			dataCadastro TEXT NOT NULL,
			ativo        BOOLEAN NOT NULL
		)`,
		`CREATE TABLE Agendamento (
			idAgendamento        INTEGER PRIMARY KEY AUTOINCREMENT,
			idUsuario            INTEGER NOT NULL,
			nomeEvento           TEXT NOT NULL,
			quantidadeConvidados INTEGER NOT NULL,
			rua                  TEXT NOT NULL,
			numero               TEXT NOT NULL,
			bairro               TEXT NOT NULL,
			cidade               TEXT NOT NULL,
			estado               TEXT NOT NULL,
			dataEvento           TEXT NOT NULL,
			horario              TEXT NOT NULL,
			sonorizacao          BOOLEAN NOT NULL,
			tipoEvento           TEXT NOT NULL,
			orcamento            REAL NOT NULL,
			aprovado             BOOLEAN NOT NULL,
			dataCriacao          TEXT NOT NULL
		)`,
		`CREATE TABLE Ensaio (
			idEnsaio INTEGER PRIMARY KEY AUTOINCREMENT,
			dtEnsaio TEXT NOT NULL,
			horario  TEXT NOT NULL,
			local    TEXT NOT NULL
		)`,
		`CREATE TABLE Equipamento (
			idEquipamento INTEGER PRIMARY KEY AUTOINCREMENT,
			nmEquipamento TEXT NOT NULL,
			disponivel    TEXT NOT NULL
		)`,
		`CREATE TABLE Contrato (
			idContrato            INTEGER PRIMARY KEY AUTOINCREMENT,
			idAgendamento         INTEGER NOT NULL,
			pdf                   TEXT NOT NULL,
			valor                 REAL NOT NULL,
			assinaturaProdutor    BOOLEAN NOT NULL,
			assinaturaContratante BOOLEAN NOT NULL,
			dataCriacao           TEXT NOT NULL,
			dataAssinatura        TEXT
		)`,
	}
	for _, stmt := range schema {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}
	return db
}
