package handler

import (
	"net/http"

	"github.com/edirooss/pmx-registry/internal/http/dto"
	"github.com/edirooss/pmx-registry/internal/http/middleware"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OutputsHandler serves the persisted output buses.
type OutputsHandler struct {
	log *zap.Logger
	reg *registry.Registry
}

func NewOutputsHandler(log *zap.Logger, reg *registry.Registry) *OutputsHandler {
	return &OutputsHandler{log: log.Named("outputs"), reg: reg}
}

// GetOutputList handles GET /outputs.
func (h *OutputsHandler) GetOutputList(c *gin.Context) {
	list(c, dto.FromOutputs(h.reg.Outputs()))
}

// GetOutput handles GET /outputs/{id}.
func (h *OutputsHandler) GetOutput(c *gin.Context) {
	out, err := h.reg.Output(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOutput(out))
}

// UpdatePorts handles PUT /outputs/{id}/ports.
// The kind is inferred from which paths are present; see dto.OutputPortsUpdate.
func (h *OutputsHandler) UpdatePorts(c *gin.Context) {
	var req dto.OutputPortsUpdate
	if !bind(c, &req) {
		return
	}

	out, err := h.reg.UpdateOutputPorts(middleware.GetID(c), req.ToAssignment())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOutput(out))
}
