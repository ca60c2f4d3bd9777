package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
)

// EnsaioStore is the repository contract the rehearsal handler depends on.
type EnsaioStore interface {
	FindAll(ctx context.Context) ([]*repository.Ensaio, error)
	FindByID(ctx context.Context, id uint64) (*repository.Ensaio, error)
	Insert(ctx context.Context, e *repository.Ensaio) error
	Update(ctx context.Context, e *repository.Ensaio) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

// EnsaioHandler exposes the rehearsal endpoints.
type EnsaioHandler struct {
	store EnsaioStore
}

// NewEnsaioHandler constructs an EnsaioHandler over the given store.
func NewEnsaioHandler(store EnsaioStore) *EnsaioHandler {
	return &EnsaioHandler{store: store}
}

// GetByID handles GET /ensaio/:id.
func (h *EnsaioHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	e, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEnsaioNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Ensaio não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar ensaio"})
	}
	return c.JSON(http.StatusOK, e)
}

// GetAll handles GET /ensaio.
func (h *EnsaioHandler) GetAll(c echo.Context) error {
	ensaios, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar ensaios"})
	}
	return c.JSON(http.StatusOK, ensaios)
}

// Create handles POST /ensaio.
func (h *EnsaioHandler) Create(c echo.Context) error {
	var e repository.Ensaio
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if err := h.store.Insert(c.Request().Context(), &e); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao criar ensaio"})
	}
	return c.JSON(http.StatusOK, e)
}

// Update handles PUT /ensaio.
func (h *EnsaioHandler) Update(c echo.Context) error {
	var e repository.Ensaio
	if err := c.Bind(&e); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if e.ID == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Ensaio não encontrado"})
	}
	qtd, err := h.store.Update(c.Request().Context(), &e)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar ensaio"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum ensaio alterado"})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi alterado mais de 1 ensaio."})
	}
	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /ensaio/:id, returning the pre-delete snapshot.
func (h *EnsaioHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	e, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEnsaioNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Ensaio não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar ensaio"})
	}
	qtd, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao excluir ensaio"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum ensaio excluído."})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi excluído mais de 1 ensaio."})
	}
	return c.JSON(http.StatusOK, e)
}
