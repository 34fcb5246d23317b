// Package handlers exposes the scan engine over a JSON HTTP API consumed by
// the front-end shell.
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guardshell/riskscan/internal/adapters/storage"
	"github.com/guardshell/riskscan/internal/application"
)

// ScanHandler serves the scan, history and settings endpoints.
type ScanHandler struct {
	service   *application.ScanService
	startTime time.Time
}

// NewScanHandler builds the handler around the application service.
func NewScanHandler(service *application.ScanService) *ScanHandler {
	return &ScanHandler{service: service, startTime: time.Now()}
}

// Register wires the routes onto a gin router.
func (h *ScanHandler) Register(router *gin.Engine) {
	api := router.Group("/api/v1")
	api.POST("/scan/url", h.ScanURL)
	api.POST("/scan/message", h.ScanMessage)
	api.POST("/scan/email", h.ScanEmail)
	api.GET("/history", h.History)
	api.DELETE("/history", h.ClearHistory)
	api.GET("/settings/:key", h.GetSetting)
	api.PUT("/settings/:key", h.PutSetting)
	router.GET("/healthz", h.Health)
}

type scanRequest struct {
	Input string `json:"input" binding:"required"`
}

// ScanURL handles POST /api/v1/scan/url.
func (h *ScanHandler) ScanURL(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	assessment := h.service.ScanURL(c.Request.Context(), req.Input)
	if assessment == nil {
		// Whitespace-only input: nothing to score. A null result, not a
		// failure.
		c.JSON(http.StatusOK, gin.H{"risk": nil})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// ScanMessage handles POST /api/v1/scan/message.
func (h *ScanHandler) ScanMessage(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	assessment := h.service.ScanMessage(c.Request.Context(), req.Input)
	if assessment == nil {
		c.JSON(http.StatusOK, gin.H{"risk": nil})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// ScanEmail handles POST /api/v1/scan/email.
func (h *ScanHandler) ScanEmail(c *gin.Context) {
	var req scanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "input is required"})
		return
	}

	assessment, err := h.service.ScanEmail(c.Request.Context(), req.Input)
	if err != nil {
		// Only context cancellation reaches here; enrichment failures fall
		// back inside the analyzer.
		c.JSON(http.StatusRequestTimeout, gin.H{"error": "scan cancelled"})
		return
	}
	if assessment == nil {
		c.JSON(http.StatusOK, gin.H{"risk": nil})
		return
	}
	c.JSON(http.StatusOK, assessment)
}

// History handles GET /api/v1/history?limit=N.
func (h *ScanHandler) History(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	records, err := h.service.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// ClearHistory handles DELETE /api/v1/history.
func (h *ScanHandler) ClearHistory(c *gin.Context) {
	if err := h.service.ClearHistory(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear history"})
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSetting handles GET /api/v1/settings/:key.
func (h *ScanHandler) GetSetting(c *gin.Context) {
	value, err := h.service.GetSetting(c.Request.Context(), c.Param("key"))
	if errors.Is(err, storage.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "setting not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read setting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": c.Param("key"), "value": value})
}

type settingRequest struct {
	Value string `json:"value" binding:"required"`
}

// PutSetting handles PUT /api/v1/settings/:key.
func (h *ScanHandler) PutSetting(c *gin.Context) {
	var req settingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "value is required"})
		return
	}
	if err := h.service.SetSetting(c.Request.Context(), c.Param("key"), req.Value); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write setting"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Health handles GET /healthz.
func (h *ScanHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"uptime": time.Since(h.startTime).String(),
	})
}
