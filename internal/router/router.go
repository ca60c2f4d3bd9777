// Package router defines how HTTP routes are registered for the API.
// Every resource lives under /api/v1/seliganosamba/<recurso> and follows
// the same verb mapping: GET reads, POST creates, PUT replaces the whole
// record, PATCH flips a single flag via query parameter, DELETE removes
// by id.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/VictoriaSaturnino/BandaSeLigaNoSamba/internal/handler"
)

const basePath = "/api/v1/seliganosamba"

// RegisterRoutes wires every resource handler onto the Echo instance.
// Static segments (email, usuario, data, status, pendentes, agendamento)
// are registered alongside the :id parameter routes; Echo resolves the
// static ones first.
func RegisterRoutes(e *echo.Echo,
	usuario *handler.UsuarioHandler,
	ensaio *handler.EnsaioHandler,
	equipamento *handler.EquipamentoHandler,
	agendamento *handler.AgendamentoHandler,
	contrato *handler.ContratoHandler,
) {
	e.GET("/healthz", handler.Health)

	u := e.Group(basePath + "/usuario")
	u.GET("", usuario.GetAll)
	u.GET("/", usuario.GetAll)
	u.GET("/:id", usuario.GetByID)
	u.GET("/email/:email", usuario.GetByEmail)
	u.POST("", usuario.Create)
	u.POST("/", usuario.Create)
	u.PUT("", usuario.Update)
	u.PUT("/", usuario.Update)
	u.DELETE("/:id", usuario.Delete)
	u.PATCH("/:id/ativo", usuario.UpdateAtivo)

	en := e.Group(basePath + "/ensaio")
	en.GET("", ensaio.GetAll)
	en.GET("/", ensaio.GetAll)
	en.GET("/:id", ensaio.GetByID)
	en.POST("", ensaio.Create)
	en.POST("/", ensaio.Create)
	en.PUT("", ensaio.Update)
	en.PUT("/", ensaio.Update)
	en.DELETE("/:id", ensaio.Delete)

	eq := e.Group(basePath + "/equipamento")
	eq.GET("", equipamento.GetAll)
	eq.GET("/", equipamento.GetAll)
	eq.GET("/:id", equipamento.GetByID)
	eq.POST("", equipamento.Create)
	eq.POST("/", equipamento.Create)
	eq.PUT("", equipamento.Update)
	eq.PUT("/", equipamento.Update)
	eq.DELETE("/:id", equipamento.Delete)

	a := e.Group(basePath + "/agendamento")
	a.GET("", agendamento.GetAll)
	a.GET("/", agendamento.GetAll)
	a.GET("/:id", agendamento.GetByID)
	a.GET("/usuario/:idUsuario", agendamento.GetByUsuario)
	a.GET("/data/:dataEvento", agendamento.GetByDataEvento)
	a.GET("/status/:aprovado", agendamento.GetByAprovado)
	a.POST("", agendamento.Create)
	a.POST("/", agendamento.Create)
	a.PUT("", agendamento.Update)
	a.PUT("/", agendamento.Update)
	a.DELETE("/:id", agendamento.Delete)
	a.PATCH("/:id/aprovado", agendamento.UpdateAprovado)

	co := e.Group(basePath + "/contrato")
	co.GET("", contrato.GetAll)
	co.GET("/", contrato.GetAll)
	co.GET("/:id", contrato.GetByID)
	co.GET("/agendamento/:idAgendamento", contrato.GetByAgendamento)
	co.GET("/pendentes", contrato.GetPendentes)
	co.POST("", contrato.Create)
	co.POST("/", contrato.Create)
	co.PUT("", contrato.Update)
	co.PUT("/", contrato.Update)
	co.DELETE("/:id", contrato.Delete)
	co.PATCH("/:id/assinaturas", contrato.UpdateAssinaturas)
}
