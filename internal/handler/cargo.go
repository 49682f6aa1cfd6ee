package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"horas-api/internal/service"
)

type CargoHandler interface {
	List(c *gin.Context)
}

type cargoHandler struct {
	Responder
	service service.CargoService
	logger  *zap.Logger
}

func NewCargoHandler(svc service.CargoService, responder Responder, logger *zap.Logger) CargoHandler {
	return &cargoHandler{Responder: responder, service: svc, logger: logger}
}

// List handles GET /api/cargos
//
//	@Summary	Lista os cargos cadastrados
//	@Tags		Cargos
//	@Security	bearerAuth
//	@Produce	json
//	@Success	200	{array}		models.Cargo
//	@Failure	401	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/cargos [get]
func (h *cargoHandler) List(c *gin.Context) {
	cargos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err, "Erro ao buscar cargos.")
		return
	}

	c.JSON(http.StatusOK, cargos)
}
