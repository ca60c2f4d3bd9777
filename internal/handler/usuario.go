package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/repository"
)

// UsuarioStore is the repository contract the user handler depends on.
type UsuarioStore interface {
	FindAll(ctx context.Context) ([]*repository.Usuario, error)
	FindByID(ctx context.Context, id uint64) (*repository.Usuario, error)
	FindByEmail(ctx context.Context, email string) (*repository.Usuario, error)
	Insert(ctx context.Context, u *repository.Usuario) error
	Update(ctx context.Context, u *repository.Usuario) (int64, error)
	Delete(ctx context.Context, id uint64) (int64, error)
	UpdateAtivo(ctx context.Context, id uint64, ativo bool) (int64, error)
}

// UsuarioHandler exposes the user endpoints.  It holds nothing but the
// injected store, so one instance serves all requests.
type UsuarioHandler struct {
	store UsuarioStore
}

// NewUsuarioHandler constructs a UsuarioHandler over the given store.
func NewUsuarioHandler(store UsuarioStore) *UsuarioHandler {
	return &UsuarioHandler{store: store}
}

// GetByID handles GET /usuario/:id.  Absence is a normal control path
// answered with 404, never a failure.
func (h *UsuarioHandler) GetByID(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	u, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar usuário"})
	}
	return c.JSON(http.StatusOK, u)
}

// GetByEmail handles GET /usuario/email/:email.  The email is an opaque
// exact-match key.
func (h *UsuarioHandler) GetByEmail(c echo.Context) error {
	u, err := h.store.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar usuário"})
	}
	return c.JSON(http.StatusOK, u)
}

// GetAll handles GET /usuario.  An empty table is a 200 with an empty list.
func (h *UsuarioHandler) GetAll(c echo.Context) error {
	usuarios, err := h.store.FindAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao listar usuários"})
	}
	return c.JSON(http.StatusOK, usuarios)
}

// Create handles POST /usuario.  The id on the payload is ignored; the
// generated one is attached to the returned record.
func (h *UsuarioHandler) Create(c echo.Context) error {
	var u repository.Usuario
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if u.DataCadastro == "" {
		u.DataCadastro = nowStamp()
	}
	if err := h.store.Insert(c.Request().Context(), &u); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao criar usuário"})
	}
	return c.JSON(http.StatusOK, u)
}

// Update handles PUT /usuario.  A payload without an id is refused with
// 404 before the store is touched; zero affected rows means the user no
// longer exists; more than one is a broken-uniqueness fault.
func (h *UsuarioHandler) Update(c echo.Context) error {
	var u repository.Usuario
	if err := c.Bind(&u); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "corpo da requisição inválido"})
	}
	if u.ID == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
	}
	qtd, err := h.store.Update(c.Request().Context(), &u)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar usuário"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum usuário alterado"})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi alterado mais de 1 usuário."})
	}
	return c.JSON(http.StatusOK, u)
}

// Delete handles DELETE /usuario/:id.  The record is fetched first so the
// response can carry its last state, and so the common case answers with a
// specific message instead of the rarer zero-rows-on-delete race.
func (h *UsuarioHandler) Delete(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	u, err := h.store.FindByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrUsuarioNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao consultar usuário"})
	}
	qtd, err := h.store.Delete(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao excluir usuário"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Nenhum usuário excluído."})
	}
	if qtd > 1 {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Foi excluído mais de 1 usuário."})
	}
	return c.JSON(http.StatusOK, u)
}

// UpdateAtivo handles PATCH /usuario/:id/ativo?ativo=.  The new value comes
// as a query parameter, not in the body.
func (h *UsuarioHandler) UpdateAtivo(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "id inválido"})
	}
	ativo, err := strconv.ParseBool(c.QueryParam("ativo"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "parâmetro ativo inválido"})
	}
	qtd, err := h.store.UpdateAtivo(c.Request().Context(), id, ativo)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "falha ao alterar usuário"})
	}
	if qtd == 0 {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Usuário não encontrado"})
	}
	return c.NoContent(http.StatusOK)
}
