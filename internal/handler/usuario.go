package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"horas-api/internal/service"
)

type UsuarioHandler interface {
	Register(c *gin.Context)
	Login(c *gin.Context)
	List(c *gin.Context)
	Delete(c *gin.Context)
}

type usuarioHandler struct {
	Responder
	service service.UsuarioService
	logger  *zap.Logger
}

func NewUsuarioHandler(svc service.UsuarioService, responder Responder, logger *zap.Logger) UsuarioHandler {
	return &usuarioHandler{Responder: responder, service: svc, logger: logger}
}

type RegisterInput struct {
	Email         string `json:"email" binding:"required" example:"usuario@email.com"`
	Senha         string `json:"senha" binding:"required" example:"senhaSegura123"`
	FuncionarioID int64  `json:"funcionario_id" binding:"required" example:"1"`
}

type LoginInput struct {
	Email string `json:"email" example:"usuario@email.com"`
	Senha string `json:"senha" example:"senhaSegura123"`
}

// UsuarioResumo is the public part of a user: the password hash never leaves the service.
type UsuarioResumo struct {
	ID    int64  `json:"id" example:"1"`
	Email string `json:"email" example:"usuario@email.com"`
}

type LoginResponse struct {
	Token   string        `json:"token"`
	Usuario UsuarioResumo `json:"usuario"`
}

// Register handles POST /api/usuarios
//
//	@Summary	Cadastra um novo usuário
//	@Tags		Usuários
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RegisterInput	true	"Dados do usuário"
//	@Success	201		{object}	UsuarioResumo
//	@Failure	400		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/usuarios [post]
func (h *usuarioHandler) Register(c *gin.Context) {
	var req RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Failed to bind JSON for register", zap.Error(err))
		h.fail(c, http.StatusBadRequest, "Preencha todos os campos obrigatórios.")
		return
	}

	usuario, err := h.service.Register(c.Request.Context(), req.Email, req.Senha, req.FuncionarioID)
	if err != nil {
		if errors.Is(err, service.ErrPasswordTooLong) {
			h.fail(c, http.StatusBadRequest, "A senha deve ter no máximo 72 bytes.")
			return
		}
		if errors.Is(err, service.ErrValidation) {
			h.fail(c, http.StatusBadRequest, "Preencha todos os campos obrigatórios.")
			return
		}
		h.respondError(c, err, "Erro ao criar usuário.")
		return
	}

	c.JSON(http.StatusCreated, UsuarioResumo{ID: usuario.ID, Email: usuario.Email})
}

// Login handles POST /api/usuarios/login
//
//	@Summary	Realiza login e retorna um token JWT
//	@Tags		Usuários
//	@Accept		json
//	@Produce	json
//	@Param		body	body		LoginInput	true	"Credenciais"
//	@Success	200		{object}	LoginResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/usuarios/login [post]
func (h *usuarioHandler) Login(c *gin.Context) {
	var req LoginInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Failed to bind JSON for login", zap.Error(err))
		h.fail(c, http.StatusBadRequest, "Dados de entrada inválidos.")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		h.respondError(c, err, "Erro ao realizar login.")
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token:   result.Token,
		Usuario: UsuarioResumo{ID: result.Usuario.ID, Email: result.Usuario.Email},
	})
}

// List handles GET /api/usuarios
//
//	@Summary	Lista todos os usuários
//	@Tags		Usuários
//	@Security	bearerAuth
//	@Produce	json
//	@Success	200	{array}		models.UsuarioView
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/usuarios [get]
func (h *usuarioHandler) List(c *gin.Context) {
	usuarios, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Erro ao buscar usuários.")
		return
	}

	c.JSON(http.StatusOK, usuarios)
}

// Delete handles DELETE /api/usuarios/:id
//
//	@Summary	Exclui um usuário pelo ID
//	@Tags		Usuários
//	@Security	bearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"ID do usuário"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/usuarios/{id} [delete]
func (h *usuarioHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Erro ao excluir usuário.")
		return
	}
	h.logger.Info("Usuario deleted", zap.Int64("id", id), actor(c))

	c.JSON(http.StatusOK, MessageResponse{Message: "Usuário excluído com sucesso."})
}
