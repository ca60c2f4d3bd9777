package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
)

// ContratoStore is the repository contract the contract handler depends on.
type ContratoStore interface {
	FindAll(ctx context.Context) ([]*repository.Contrato, error)
	FindByID(ctx context.Context, id uint64) (*repository.Contrato, error)
	FindByAgendamento(ctx context.Context, idAgendamento uint64) (*repository.Contrato, error)
	FindPendentes(ctx context.Context) ([]*repository.Contrato, error)
	Insert(ctx context.Context, co *repository.Contrato) error
	Update(ctx context.Context, co *repository.Contrato) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	UpdateAssinaturas(ctx context.Context, id uint64, produtor, contratante bool) (int64, error)
}

// ContratoHandler exposes the contract endpoints.
type ContratoHandler struct {
	store ContratoStore
}

// NewContratoHandler constructs a ContratoHandler over the given store.
func NewContratoHandler(store ContratoStore) *ContratoHandler {
	return &ContratoHandler{store: store}
}

// GetByID handles GET /contrato/:id.
func (h *ContratoHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	co, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrContratoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Contrato não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar contrato"})
	}
	return c.JSON(http.StatusOK, co)
}

// GetAll handles GET /contrato.
func (h *ContratoHandler) GetAll(c echo.Context) error {
	contratos, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar contratos"})
	}
	return c.JSON(http.StatusOK, contratos)
}

// GetByAgendamento handles GET /contrato/agendamento/:idAgendamento.  A
// booking carries at most one contract, so this is a single-record lookup.
func (h *ContratoHandler) GetByAgendamento(c echo.Context) error {
	idAgendamento, ok := parseID(c, "idAgendamento")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "idAgendamento inválido"})
	}
	co, err := h.store.FindByAgendamento(c.Request().Context(), idAgendamento)
	if err != nil {
		if errors.Is(err, repository.ErrContratoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Contrato não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar contrato"})
	}
	return c.JSON(http.StatusOK, co)
}

// GetPendentes handles GET /contrato/pendentes: contracts missing at least
// one of the two signatures.
func (h *ContratoHandler) GetPendentes(c echo.Context) error {
	contratos, err := h.store.FindPendentes(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar contratos"})
	}
	return c.JSON(http.StatusOK, contratos)
}

// Create handles POST /contrato.
func (h *ContratoHandler) Create(c echo.Context) error {
	var co repository.Contrato
	if err := c.Bind(&co); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if co.DataCriacao == "" {
		co.DataCriacao = nowStamp()
	}
	if err := h.store.Insert(c.Request().Context(), &co); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao criar contrato"})
	}
	return c.JSON(http.StatusOK, co)
}

// Update handles PUT /contrato.
func (h *ContratoHandler) Update(c echo.Context) error {
	var co repository.Contrato
	if err := c.Bind(&co); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if co.ID == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contrato não encontrado"})
	}
	qtd, err := h.store.Update(c.Request().Context(), &co)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar contrato"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum contrato alterado"})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi alterado mais de 1 contrato."})
	}
	return c.JSON(http.StatusOK, co)
}

// Delete handles DELETE /contrato/:id, returning the pre-delete snapshot.
func (h *ContratoHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	co, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrContratoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Contrato não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar contrato"})
	}
	qtd, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao excluir contrato"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum contrato excluído."})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi excluído mais de 1 contrato."})
	}
	return c.JSON(http.StatusOK, co)
}

// UpdateAssinaturas handles
// PATCH /contrato/:id/assinaturas?assinaturaProdutor=&assinaturaContratante=.
// Both flags arrive as query parameters; the completion timestamp is a
// consequence of the pair, never an input.
func (h *ContratoHandler) UpdateAssinaturas(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	produtor, err := strconv.ParseBool(c.QueryParam("assinaturaProdutor"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "parâmetro assinaturaProdutor inválido"})
	}
	contratante, err := strconv.ParseBool(c.QueryParam("assinaturaContratante"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "parâmetro assinaturaContratante inválido"})
	}
	qtd, err := h.store.UpdateAssinaturas(c.Request().Context(), id, produtor, contratante)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar contrato"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Contrato não encontrado"})
	}
	return c.NoContent(http.StatusOK)
}
