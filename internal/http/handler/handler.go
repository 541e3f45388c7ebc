// Package handler exposes the registry over HTTP/JSON.
//
// Status mapping:
//   - 400 Bad Request → malformed body, bad :id, or registry.ErrInvalidArgument
//   - 404 Not Found   → registry.ErrNotFound
//   - 500             → anything else
//
// Error bodies are {"message": "..."}; the error is also attached to the gin
// context for the access log.
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/edirooss/pmx-registry/internal/http/middleware"
	"github.com/edirooss/pmx-registry/internal/registry"
	"github.com/edirooss/pmx-registry/pkg/jsonx"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes mounts every registry endpoint under /api.
func RegisterRoutes(r gin.IRouter, log *zap.Logger, reg *registry.Registry) {
	requireValidID := middleware.RequireValidID()
	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"message": "pong"}) })

	{
		h := NewInputsHandler(log, reg)
		api.GET("/inputs", h.GetInputList)                             // get list
		api.GET("/inputs/:id", requireValidID, h.GetInput)             // get one
		api.PUT("/inputs/:id/name", requireValidID, h.UpdateInputName) // rename
		api.PUT("/inputs/:id/ports", requireValidID, h.UpdatePorts)    // (re)bind ports
	}
	{
		h := NewOutputsHandler(log, reg)
		api.GET("/outputs", h.GetOutputList)
		api.GET("/outputs/:id", requireValidID, h.GetOutput)
		api.PUT("/outputs/:id/ports", requireValidID, h.UpdatePorts)
	}
	{
		h := NewRegistrationsHandler(log, reg)
		api.GET("/plugins", h.GetPluginList)
		api.POST("/plugins", h.RegisterPlugin)
		api.GET("/plugins/:id", requireValidID, h.GetPlugin)

		api.GET("/channel-strips", h.GetChannelStripList)
		api.POST("/channel-strips", h.RegisterChannelStrip)
		api.GET("/channel-strips/:id", requireValidID, h.GetChannelStrip)

		api.GET("/loopers", h.GetLooperList)
		api.POST("/loopers", h.RegisterLooper)
		api.GET("/loopers/:id", requireValidID, h.GetLooper)

		api.GET("/output-stages", h.GetOutputStageList)
		api.POST("/output-stages", h.RegisterOutputStage)
		api.GET("/output-stages/:id", requireValidID, h.GetOutputStage)
	}
}

// bind strictly decodes the request body; failures are always 400.
func bind[T any](c *gin.Context, dst *T) bool {
	if err := jsonx.ParseStrictJSONBody(c.Request, dst); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return false
	}
	return true
}

// fail maps err to a status. Rejected requests log at Debug, anything
// unexpected at Error.
func fail(c *gin.Context, log *zap.Logger, err error) {
	c.Error(err)
	fields := []zap.Field{
		zap.String("route", c.FullPath()),
		zap.String("request_id", middleware.GetRequestID(c)),
		zap.Error(err),
	}
	switch {
	case errors.Is(err, registry.ErrNotFound):
		log.Debug("request rejected: not found", fields...)
		c.JSON(http.StatusNotFound, gin.H{"message": err.Error()})
	case errors.Is(err, registry.ErrInvalidArgument):
		log.Debug("request rejected: invalid argument", fields...)
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		log.Error("request failed", fields...)
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}

func list[T any](c *gin.Context, items []T) {
	c.Header("X-Total-Count", strconv.Itoa(len(items)))
	c.JSON(http.StatusOK, items)
}
