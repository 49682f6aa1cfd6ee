package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"horas-api/internal/middleware"
	"horas-api/internal/repository"
	"horas-api/internal/service"
)

// ErrorResponse represents a structured error response.
type ErrorResponse struct {
	Error   string `json:"error" example:"Mensagem de erro."`
	Details string `json:"details,omitempty"`
}

// MessageResponse is returned by update and delete operations.
type MessageResponse struct {
	Message string `json:"message" example:"Operação realizada com sucesso."`
}

// Responder writes error bodies. Store failures carry the driver error as
// details unless the deployment turns that off.
type Responder struct {
	ExposeDetails bool
}

func (r Responder) fail(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Error: message})
}

// respondError maps a service or store error to its status and body.
// message is the body used for store failures.
func (r Responder) respondError(c *gin.Context, err error, message string) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		r.fail(c, http.StatusUnauthorized, "Usuário não encontrado")
		return
	case errors.Is(err, service.ErrInvalidPassword):
		r.fail(c, http.StatusUnauthorized, "Senha inválida")
		return
	case errors.Is(err, service.ErrUnauthorized):
		r.fail(c, http.StatusUnauthorized, "Token inválido ou expirado.")
		return
	case errors.Is(err, service.ErrNotFound):
		r.fail(c, http.StatusNotFound, "Funcionário não encontrado")
		return
	}

	status := http.StatusInternalServerError
	if errors.Is(err, repository.ErrStoreUnavailable) {
		status = http.StatusServiceUnavailable
	}
	_ = c.Error(err)

	resp := ErrorResponse{Error: message}
	if r.ExposeDetails {
		resp.Details = err.Error()
	}
	c.JSON(status, resp)
}

// parseID reads the :id path parameter, answering 400 when it is not a positive integer.
func (r Responder) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		r.fail(c, http.StatusBadRequest, "ID inválido.")
		return 0, false
	}
	return id, true
}

// actor names the authenticated user behind a change, when there is one.
func actor(c *gin.Context) zap.Field {
	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return zap.Skip()
	}
	return zap.Int64("by_usuario_id", claims.UsuarioID)
}
