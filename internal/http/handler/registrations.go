package handler

import (
	"net/http"

	"github.com/edirooss/pmx-registry/internal/http/dto"
	"github.com/edirooss/pmx-registry/internal/http/middleware"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegistrationsHandler serves the runtime-only collections: plugins, channel
// strips, loopers and output stages. Registration appends and returns 201;
// duplicate ids are accepted.
type RegistrationsHandler struct {
	log *zap.Logger
	reg *registry.Registry
}

func NewRegistrationsHandler(log *zap.Logger, reg *registry.Registry) *RegistrationsHandler {
	return &RegistrationsHandler{log: log.Named("registrations"), reg: reg}
}

// --- plugins ---

func (h *RegistrationsHandler) GetPluginList(c *gin.Context) {
	list(c, dto.FromPlugins(h.reg.Plugins()))
}

func (h *RegistrationsHandler) GetPlugin(c *gin.Context) {
	p, err := h.reg.Plugin(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromPlugin(p))
}

func (h *RegistrationsHandler) RegisterPlugin(c *gin.Context) {
	var req dto.Plugin
	if !bind(c, &req) {
		return
	}
	p, err := req.ToPlugin()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromPlugin(h.reg.RegisterPlugin(p)))
}

// --- channel strips ---

func (h *RegistrationsHandler) GetChannelStripList(c *gin.Context) {
	list(c, dto.FromChannelStrips(h.reg.ChannelStrips()))
}

func (h *RegistrationsHandler) GetChannelStrip(c *gin.Context) {
	cs, err := h.reg.ChannelStrip(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromChannelStrip(cs))
}

// RegisterChannelStrip handles POST /channel-strips.
// A cross_faded strip without cross_fader_plugin_id is a 400.
func (h *RegistrationsHandler) RegisterChannelStrip(c *gin.Context) {
	var req dto.ChannelStrip
	if !bind(c, &req) {
		return
	}
	spec, err := req.ToSpec()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	cs, err := h.reg.RegisterChannelStrip(spec)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromChannelStrip(cs))
}

// --- loopers ---

func (h *RegistrationsHandler) GetLooperList(c *gin.Context) {
	list(c, dto.FromLoopers(h.reg.Loopers()))
}

func (h *RegistrationsHandler) GetLooper(c *gin.Context) {
	l, err := h.reg.Looper(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromLooper(l))
}

// RegisterLooper handles POST /loopers. Id and name derive from loop_number.
func (h *RegistrationsHandler) RegisterLooper(c *gin.Context) {
	var req dto.LooperCreate
	if !bind(c, &req) {
		return
	}
	n, err := req.Validate()
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromLooper(h.reg.RegisterLooper(n)))
}

// --- output stages ---

func (h *RegistrationsHandler) GetOutputStageList(c *gin.Context) {
	list(c, dto.FromOutputStages(h.reg.OutputStages()))
}

func (h *RegistrationsHandler) GetOutputStage(c *gin.Context) {
	st, err := h.reg.OutputStage(middleware.GetID(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromOutputStage(st))
}

func (h *RegistrationsHandler) RegisterOutputStage(c *gin.Context) {
	var req dto.OutputStage
	if !bind(c, &req) {
		return
	}
	st := h.reg.RegisterOutputStage(req.ToOutputStage())
	c.JSON(http.StatusCreated, dto.FromOutputStage(st))
}
