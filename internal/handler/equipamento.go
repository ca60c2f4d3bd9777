package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
)

// EquipamentoStore is the repository contract the equipment handler depends on.
type EquipamentoStore interface {
	FindAll(ctx context.Context) ([]*repository.Equipamento, error)
	FindByID(ctx context.Context, id uint64) (*repository.Equipamento, error)
	Insert(ctx context.Context, eq *repository.Equipamento) error
	Update(ctx context.Context, eq *repository.Equipamento) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
}

// EquipamentoHandler exposes the equipment endpoints.
type EquipamentoHandler struct {
	store EquipamentoStore
}

// NewEquipamentoHandler constructs an EquipamentoHandler over the given store.
func NewEquipamentoHandler(store EquipamentoStore) *EquipamentoHandler {
	return &EquipamentoHandler{store: store}
}

// disponivelValido accepts only the literal availability codes.
func disponivelValido(d string) bool {
	return d == "S" || d == "N"
}

// GetByID handles GET /equipamento/:id.
func (h *EquipamentoHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	eq, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipamentoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Equipamento não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar equipamento"})
	}
	return c.JSON(http.StatusOK, eq)
}

// GetAll handles GET /equipamento.
func (h *EquipamentoHandler) GetAll(c echo.Context) error {
	equipamentos, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar equipamentos"})
	}
	return c.JSON(http.StatusOK, equipamentos)
}

// Create handles POST /equipamento.  The availability code is validated as
// the literal 'S'/'N' pair; no boolean conversion happens anywhere.
func (h *EquipamentoHandler) Create(c echo.Context) error {
	var eq repository.Equipamento
	if err := c.Bind(&eq); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if !disponivelValido(eq.Disponivel) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "disponivel deve ser 'S' ou 'N'"})
	}
	if err := h.store.Insert(c.Request().Context(), &eq); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao criar equipamento"})
	}
	return c.JSON(http.StatusOK, eq)
}

// Update handles PUT /equipamento.
func (h *EquipamentoHandler) Update(c echo.Context) error {
	var eq repository.Equipamento
	if err := c.Bind(&eq); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if eq.ID == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Equipamento não encontrado"})
	}
	if !disponivelValido(eq.Disponivel) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "disponivel deve ser 'S' ou 'N'"})
	}
	qtd, err := h.store.Update(c.Request().Context(), &eq)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar equipamento"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum equipamento alterado"})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi alterado mais de 1 equipamento."})
	}
	return c.JSON(http.StatusOK, eq)
}

// Delete handles DELETE /equipamento/:id, returning the pre-delete snapshot.
func (h *EquipamentoHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	eq, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrEquipamentoNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Equipamento não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar equipamento"})
	}
	qtd, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao excluir equipamento"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum equipamento excluído."})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi excluído mais de 1 equipamento."})
	}
	return c.JSON(http.StatusOK, eq)
}
