package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/handler"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/router"
)

// The fakes below satisfy the store interfaces with swappable func fields.
// Tests set only the calls they expect; an unexpected call hits a nil func
// and fails loudly.

type fakeUsuarioStore struct {
	findAllFn     func(ctx context.Context) ([]*repository.Usuario, error)
	findByIDFn    func(ctx context.Context, id uint64) (*repository.Usuario, error)
	findByEmailFn func(ctx context.Context, email string) (*repository.Usuario, error)
	insertFn      func(ctx context.Context, u *repository.Usuario) error
	updateFn      func(ctx context.Context, u *repository.Usuario) (int64, error)
	deleteFn      func(ctx context.Context, id uint64) (int64, error)
	updateAtivoFn func(ctx context.Context, id uint64, ativo bool) (int64, error)
}

func (f *fakeUsuarioStore) FindAll(ctx context.Context) ([]*repository.Usuario, error) {
	return f.findAllFn(ctx)
}
func (f *fakeUsuarioStore) FindByID(ctx context.Context, id uint64) (*repository.Usuario, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeUsuarioStore) FindByEmail(ctx context.Context, email string) (*repository.Usuario, error) {
	return f.findByEmailFn(ctx, email)
}
func (f *fakeUsuarioStore) Insert(ctx context.Context, u *repository.Usuario) error {
	return f.insertFn(ctx, u)
}
func (f *fakeUsuarioStore) Update(ctx context.Context, u *repository.Usuario) (int64, error) {
	return f.updateFn(ctx, u)
}
func (f *fakeUsuarioStore) Delete(ctx context.Context, id uint64) (int64, error) {
	return f.deleteFn(ctx, id)
}
func (f *fakeUsuarioStore) UpdateAtivo(ctx context.Context, id uint64, ativo bool) (int64, error) {
	return f.updateAtivoFn(ctx, id, ativo)
}

type fakeEnsaioStore struct {
	findAllFn  func(ctx context.Context) ([]*repository.Ensaio, error)
	findByIDFn func(ctx context.Context, id uint64) (*repository.Ensaio, error)
	insertFn   func(ctx context.Context, e *repository.Ensaio) error
	updateFn   func(ctx context.Context, e *repository.Ensaio) (int64, error)
	deleteFn   func(ctx context.Context, id uint64) (int64, error)
}

func (f *fakeEnsaioStore) FindAll(ctx context.Context) ([]*repository.Ensaio, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEnsaioStore) FindByID(ctx context.Context, id uint64) (*repository.Ensaio, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEnsaioStore) Insert(ctx context.Context, e *repository.Ensaio) error {
	return f.insertFn(ctx, e)
}
func (f *fakeEnsaioStore) Update(ctx context.Context, e *repository.Ensaio) (int64, error) {
	return f.updateFn(ctx, e)
}
func (f *fakeEnsaioStore) Delete(ctx context.Context, id uint64) (int64, error) {
	return f.deleteFn(ctx, id)
}

type fakeEquipamentoStore struct {
	findAllFn  func(ctx context.Context) ([]*repository.Equipamento, error)
	findByIDFn func(ctx context.Context, id uint64) (*repository.Equipamento, error)
	insertFn   func(ctx context.Context, eq *repository.Equipamento) error
	updateFn   func(ctx context.Context, eq *repository.Equipamento) (int64, error)
	deleteFn   func(ctx context.Context, id uint64) (int64, error)
}

func (f *fakeEquipamentoStore) FindAll(ctx context.Context) ([]*repository.Equipamento, error) {
	return f.findAllFn(ctx)
}
func (f *fakeEquipamentoStore) FindByID(ctx context.Context, id uint64) (*repository.Equipamento, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeEquipamentoStore) Insert(ctx context.Context, eq *repository.Equipamento) error {
	return f.insertFn(ctx, eq)
}
func (f *fakeEquipamentoStore) Update(ctx context.Context, eq *repository.Equipamento) (int64, error) {
	return f.updateFn(ctx, eq)
}
func (f *fakeEquipamentoStore) Delete(ctx context.Context, id uint64) (int64, error) {
	return f.deleteFn(ctx, id)
}

type fakeAgendamentoStore struct {
	findAllFn          func(ctx context.Context) ([]*repository.Agendamento, error)
	findByIDFn         func(ctx context.Context, id uint64) (*repository.Agendamento, error)
	findByUsuarioFn    func(ctx context.Context, idUsuario uint64) ([]*repository.Agendamento, error)
	findByDataEventoFn func(ctx context.Context, dataEvento string) ([]*repository.Agendamento, error)
	findByAprovadoFn   func(ctx context.Context, aprovado bool) ([]*repository.Agendamento, error)
	insertFn           func(ctx context.Context, a *repository.Agendamento) error
	updateFn           func(ctx context.Context, a *repository.Agendamento) (int64, error)
	deleteFn           func(ctx context.Context, id uint64) (int64, error)
	updateAprovadoFn   func(ctx context.Context, id uint64, aprovado bool) (int64, error)
}

func (f *fakeAgendamentoStore) FindAll(ctx context.Context) ([]*repository.Agendamento, error) {
	return f.findAllFn(ctx)
}
func (f *fakeAgendamentoStore) FindByID(ctx context.Context, id uint64) (*repository.Agendamento, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeAgendamentoStore) FindByUsuario(ctx context.Context, idUsuario uint64) ([]*repository.Agendamento, error) {
	return f.findByUsuarioFn(ctx, idUsuario)
}
func (f *fakeAgendamentoStore) FindByDataEvento(ctx context.Context, dataEvento string) ([]*repository.Agendamento, error) {
	return f.findByDataEventoFn(ctx, dataEvento)
}
func (f *fakeAgendamentoStore) FindByAprovado(ctx context.Context, aprovado bool) ([]*repository.Agendamento, error) {
	return f.findByAprovadoFn(ctx, aprovado)
}
func (f *fakeAgendamentoStore) Insert(ctx context.Context, a *repository.Agendamento) error {
	return f.insertFn(ctx, a)
}
func (f *fakeAgendamentoStore) Update(ctx context.Context, a *repository.Agendamento) (int64, error) {
	return f.updateFn(ctx, a)
}
func (f *fakeAgendamentoStore) Delete(ctx context.Context, id uint64) (int64, error) {
	return f.deleteFn(ctx, id)
}
func (f *fakeAgendamentoStore) UpdateAprovado(ctx context.Context, id uint64, aprovado bool) (int64, error) {
	return f.updateAprovadoFn(ctx, id, aprovado)
}

type fakeContratoStore struct {
	findAllFn           func(ctx context.Context) ([]*repository.Contrato, error)
	findByIDFn          func(ctx context.Context, id uint64) (*repository.Contrato, error)
	findByAgendamentoFn func(ctx context.Context, idAgendamento uint64) (*repository.Contrato, error)
	findPendentesFn     func(ctx context.Context) ([]*repository.Contrato, error)
	insertFn            func(ctx context.Context, co *repository.Contrato) error
	updateFn            func(ctx context.Context, co *repository.Contrato) (int64, error)
	deleteFn            func(ctx context.Context, id uint64) (int64, error)
	updateAssinaturasFn func(ctx context.Context, id uint64, produtor, contratante bool) (int64, error)
}

func (f *fakeContratoStore) FindAll(ctx context.Context) ([]*repository.Contrato, error) {
	return f.findAllFn(ctx)
}
func (f *fakeContratoStore) FindByID(ctx context.Context, id uint64) (*repository.Contrato, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeContratoStore) FindByAgendamento(ctx context.Context, idAgendamento uint64) (*repository.Contrato, error) {
	return f.findByAgendamentoFn(ctx, idAgendamento)
}
func (f *fakeContratoStore) FindPendentes(ctx context.Context) ([]*repository.Contrato, error) {
	return f.findPendentesFn(ctx)
}
func (f *fakeContratoStore) Insert(ctx context.Context, co *repository.Contrato) error {
	return f.insertFn(ctx, co)
}
func (f *fakeContratoStore) Update(ctx context.Context, co *repository.Contrato) (int64, error) {
	return f.updateFn(ctx, co)
}
func (f *fakeContratoStore) Delete(ctx context.Context, id uint64) (int64, error) {
	return f.deleteFn(ctx, id)
}
func (f *fakeContratoStore) UpdateAssinaturas(ctx context.Context, id uint64, produtor, contratante bool) (int64, error) {
	return f.updateAssinaturasFn(ctx, id, produtor, contratante)
}

const base = "/api/v1/seliganosamba"

type stores struct {
	usuario     *fakeUsuarioStore
	ensaio      *fakeEnsaioStore
	equipamento *fakeEquipamentoStore
	agendamento *fakeAgendamentoStore
	contrato    *fakeContratoStore
}

// newServer builds an Echo instance with the real route table over the
// given fakes, so tests exercise the same paths production serves.
func newServer(s stores) *echo.Echo {
	if s.usuario == nil {
		s.usuario = &fakeUsuarioStore{}
	}
	if s.ensaio == nil {
		s.ensaio = &fakeEnsaioStore{}
	}
	if s.equipamento == nil {
		s.equipamento = &fakeEquipamentoStore{}
	}
	if s.agendamento == nil {
		s.agendamento = &fakeAgendamentoStore{}
	}
	if s.contrato == nil {
		s.contrato = &fakeContratoStore{}
	}
	e := echo.New()
	router.RegisterRoutes(e,
		handler.NewUsuarioHandler(s.usuario),
		handler.NewEnsaioHandler(s.ensaio),
		handler.NewEquipamentoHandler(s.equipamento),
		handler.NewAgendamentoHandler(s.agendamento),
		handler.NewContratoHandler(s.contrato),
	)
	return e
}

// doRequest runs one request through the full route table and returns the
// recorded response.
func doRequest(t *testing.T, e *echo.Echo, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, rd)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
