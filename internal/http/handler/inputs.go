package handler

import (
	"net/http"

	"github.com/edirooss/pmx-registry/internal/http/dto"
	"github.com/edirooss/pmx-registry/internal/http/middleware"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InputsHandler serves the persisted input channels.
//
// Supported operations:
//   - GET /inputs           → List all inputs
//   - GET /inputs/{id}      → Retrieve an input by id
//   - PUT /inputs/{id}/name → Rename an input
//   - PUT /inputs/{id}/ports → Bind, rebind or unbind an input's ports
type InputsHandler struct {
	log *zap.Logger
	reg *registry.Registry
}

func NewInputsHandler(log *zap.Logger, reg *registry.Registry) *InputsHandler {
	return &InputsHandler{log: log.Named("inputs"), reg: reg}
}

// GetInputList handles GET /inputs.
//
// Status Codes:
//   - 200 OK → JSON array of inputs, `X-Total-Count` set
func (h *InputsHandler) GetInputList(c *gin.Context) {
	list(c, dto.FromInputs(h.reg.Inputs()))
}

// GetInput handles GET /inputs/{id}.
//
// Status Codes:
//   - 200 OK
//   - 400 Bad Request → id is not a uint32
//   - 404 Not Found
func (h *InputsHandler) GetInput(c *gin.Context) {
	in, err := h.reg.Input(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInput(in))
}

// UpdateInputName handles PUT /inputs/{id}/name.
//
// Status Codes:
//   - 200 OK → updated input
//   - 400 Bad Request → invalid body or missing name
//   - 404 Not Found
func (h *InputsHandler) UpdateInputName(c *gin.Context) {
	var req dto.InputNameUpdate
	if !bind(c, &req) {
		return
	}
	name, err := req.Validate()
	if err != nil {
		fail(c, h.log, err)
		return
	}

	in, err := h.reg.UpdateInputName(middleware.GetID(c), name)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInput(in))
}

// UpdatePorts handles PUT /inputs/{id}/ports.
//
// Behavior:
//   - input_type 0 unbinds; 1 binds left_port_path; 2 binds both paths.
//   - A shape error is reported before an unknown id.
//
// Status Codes:
//   - 200 OK → updated input
//   - 400 Bad Request → invalid body, unknown input_type, missing path
//   - 404 Not Found
func (h *InputsHandler) UpdatePorts(c *gin.Context) {
	var req dto.InputPortsUpdate
	if !bind(c, &req) {
		return
	}
	a, err := req.ToAssignment()
	if err != nil {
		fail(c, h.log, err)
		return
	}

	in, err := h.reg.UpdateInputPorts(middleware.GetID(c), a)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromInput(in))
}
