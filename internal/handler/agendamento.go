package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
)

// AgendamentoStore is the repository contract the booking handler depends on.
type AgendamentoStore interface {
	FindAll(ctx context.Context) ([]*repository.Agendamento, error)
	FindByID(ctx context.Context, id uint64) (*repository.Agendamento, error)
	FindByUsuario(ctx context.Context, idUsuario uint64) ([]*repository.Agendamento, error)
	FindByDataEvento(ctx context.Context, dataEvento string) ([]*repository.Agendamento, error)
	FindByAprovado(ctx context.Context, aprovado bool) ([]*repository.Agendamento, error)
	Insert(ctx context.Context, a *repository.Agendamento) error
	Update(ctx context.Context, a *repository.Agendamento) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	UpdateAprovado(ctx context.Context, id uint64, aprovado bool) (int64, error)
}

// AgendamentoHandler exposes the booking endpoints.
type AgendamentoHandler struct {
	store AgendamentoStore
}

// NewAgendamentoHandler constructs an AgendamentoHandler over the given store.
func NewAgendamentoHandler(store AgendamentoStore) *AgendamentoHandler {
	return &AgendamentoHandler{store: store}
}

// GetByID handles GET /agendamento/:id.
func (h *AgendamentoHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	a, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAgendamentoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Agendamento não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar agendamento"})
	}
	return c.JSON(http.StatusOK, a)
}

// GetAll handles GET /agendamento.
func (h *AgendamentoHandler) GetAll(c echo.Context) error {
	agendamentos, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar agendamentos"})
	}
	return c.JSON(http.StatusOK, agendamentos)
}

// GetByUsuario handles GET /agendamento/usuario/:idUsuario.  A user without
// bookings gets a 200 with an empty list, not a 404.
func (h *AgendamentoHandler) GetByUsuario(c echo.Context) error {
	idUsuario, ok := parseID(c, "idUsuario")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "idUsuario inválido"})
	}
	agendamentos, err := h.store.FindByUsuario(c.Request().Context(), idUsuario)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar agendamentos"})
	}
	return c.JSON(http.StatusOK, agendamentos)
}

// GetByDataEvento handles GET /agendamento/data/:dataEvento.  The date is
// validated as YYYY-MM-DD before reaching the store.
func (h *AgendamentoHandler) GetByDataEvento(c echo.Context) error {
	dataEvento := c.Param("dataEvento")
	if _, err := time.Parse(dateLayout, dataEvento); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "dataEvento inválida"})
	}
	agendamentos, err := h.store.FindByDataEvento(c.Request().Context(), dataEvento)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar agendamentos"})
	}
	return c.JSON(http.StatusOK, agendamentos)
}

// GetByAprovado handles GET /agendamento/status/:aprovado.  The flag rides
// in the path and is parsed as a typed boolean.
func (h *AgendamentoHandler) GetByAprovado(c echo.Context) error {
	aprovado, err := strconv.ParseBool(c.Param("aprovado"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "status aprovado inválido"})
	}
	agendamentos, err := h.store.FindByAprovado(c.Request().Context(), aprovado)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar agendamentos"})
	}
	return c.JSON(http.StatusOK, agendamentos)
}

// Create handles POST /agendamento.
func (h *AgendamentoHandler) Create(c echo.Context) error {
	var a repository.Agendamento
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if a.DataCriacao == "" {
		a.DataCriacao = nowStamp()
	}
	if err := h.store.Insert(c.Request().Context(), &a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao criar agendamento"})
	}
	return c.JSON(http.StatusOK, a)
}

// Update handles PUT /agendamento.
func (h *AgendamentoHandler) Update(c echo.Context) error {
	var a repository.Agendamento
	if err := c.Bind(&a); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if a.ID == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Agendamento não encontrado"})
	}
	qtd, err := h.store.Update(c.Request().Context(), &a)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar agendamento"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum agendamento alterado"})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi alterado mais de 1 agendamento."})
	}
	return c.JSON(http.StatusOK, a)
}

// Delete handles DELETE /agendamento/:id, returning the pre-delete snapshot.
func (h *AgendamentoHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	a, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrAgendamentoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Agendamento não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar agendamento"})
	}
	qtd, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao excluir agendamento"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum agendamento excluído."})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi excluído mais de 1 agendamento."})
	}
	return c.JSON(http.StatusOK, a)
}

// UpdateAprovado handles PATCH /agendamento/:id/aprovado?aprovado=.
func (h *AgendamentoHandler) UpdateAprovado(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	aprovado, err := strconv.ParseBool(c.QueryParam("aprovado"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "parâmetro aprovado inválido"})
	}
	qtd, err := h.store.UpdateAprovado(c.Request().Context(), id, aprovado)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar agendamento"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Agendamento não encontrado"})
	}
	return c.NoContent(http.StatusOK)
}
