package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"horas-api/internal/service"
)

type FuncionarioHandler interface {
	Create(c *gin.Context)
	List(c *gin.Context)
	GetByID(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type funcionarioHandler struct {
	Responder
	service service.FuncionarioService
	logger  *zap.Logger
}

func NewFuncionarioHandler(svc service.FuncionarioService, responder Responder, logger *zap.Logger) FuncionarioHandler {
	return &funcionarioHandler{Responder: responder, service: svc, logger: logger}
}

type FuncionarioInput struct {
	Nome    string `json:"nome" binding:"required" example:"Carlos Alberto de Nóbrega"`
	CargoID int64  `json:"cargo_id" binding:"required" example:"1"`
}

// FuncionarioUpdateInput leaves both fields optional: an omitted field is stored as NULL.
type FuncionarioUpdateInput struct {
	Nome    *string `json:"nome" example:"Carlos Alberto de Nóbrega"`
	CargoID *int64  `json:"cargo_id" example:"1"`
}

// Create handles POST /api/funcionarios
//
//	@Summary	Cria um novo funcionário
//	@Tags		Funcionários
//	@Security	bearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		body	body		FuncionarioInput	true	"Dados do funcionário"
//	@Success	201		{object}	models.Funcionario
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/funcionarios [post]
func (h *funcionarioHandler) Create(c *gin.Context) {
	var req FuncionarioInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Failed to bind JSON for funcionario", zap.Error(err))
		h.fail(c, http.StatusBadRequest, "Nome e cargo são obrigatórios.")
		return
	}

	funcionario, err := h.service.Create(c.Request.Context(), req.Nome, req.CargoID)
	if err != nil {
		if errors.Is(err, service.ErrValidation) {
			h.fail(c, http.StatusBadRequest, "Nome e cargo são obrigatórios.")
			return
		}
		h.respondError(c, err, "Erro ao criar funcionário.")
		return
	}
	h.logger.Info("Funcionario created", zap.Int64("id", funcionario.ID), actor(c))

	c.JSON(http.StatusCreated, funcionario)
}

// List handles GET /api/funcionarios
//
//	@Summary	Lista todos os funcionários com seus respectivos cargos
//	@Tags		Funcionários
//	@Security	bearerAuth
//	@Produce	json
//	@Success	200	{array}		models.FuncionarioView
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/funcionarios [get]
func (h *funcionarioHandler) List(c *gin.Context) {
	funcionarios, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Erro ao buscar funcionários.")
		return
	}

	c.JSON(http.StatusOK, funcionarios)
}

// GetByID handles GET /api/funcionarios/:id
//
//	@Summary	Busca um funcionário específico pelo ID
//	@Tags		Funcionários
//	@Security	bearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"ID numérico do funcionário"
//	@Success	200	{object}	models.FuncionarioView
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/funcionarios/{id} [get]
func (h *funcionarioHandler) GetByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	funcionario, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Erro ao buscar funcionário.")
		return
	}

	c.JSON(http.StatusOK, funcionario)
}

// Update handles PUT /api/funcionarios/:id
//
//	@Summary	Atualiza um funcionário existente pelo ID
//	@Tags		Funcionários
//	@Security	bearerAuth
//	@Accept		json
//	@Produce	json
//	@Param		id		path		int						true	"ID numérico do funcionário"
//	@Param		body	body		FuncionarioUpdateInput	true	"Novos dados do funcionário"
//	@Success	200		{object}	MessageResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	500		{object}	ErrorResponse
//	@Router		/funcionarios/{id} [put]
func (h *funcionarioHandler) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req FuncionarioUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("Failed to bind JSON for funcionario update", zap.Error(err))
		h.fail(c, http.StatusBadRequest, "Dados de entrada inválidos.")
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req.Nome, req.CargoID); err != nil {
		h.respondError(c, err, "Erro ao atualizar funcionário.")
		return
	}
	h.logger.Info("Funcionario updated", zap.Int64("id", id), actor(c))

	c.JSON(http.StatusOK, MessageResponse{Message: "Funcionário atualizado com sucesso."})
}

// Delete handles DELETE /api/funcionarios/:id
//
//	@Summary	Exclui um funcionário pelo ID
//	@Tags		Funcionários
//	@Security	bearerAuth
//	@Produce	json
//	@Param		id	path		int	true	"ID numérico do funcionário"
//	@Success	200	{object}	MessageResponse
//	@Failure	400	{object}	ErrorResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/funcionarios/{id} [delete]
func (h *funcionarioHandler) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.respondError(c, err, "Erro ao excluir funcionário.")
		return
	}
	h.logger.Info("Funcionario deleted", zap.Int64("id", id), actor(c))

	c.JSON(http.StatusOK, MessageResponse{Message: "Funcionário excluído com sucesso."})
}
