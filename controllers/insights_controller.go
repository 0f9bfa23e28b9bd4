package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type InsightsController struct {
	Svc *services.InsightsService
}

func NewInsightsController(svc *services.InsightsService) *InsightsController {
	return &InsightsController{Svc: svc}
}

func (h *InsightsController) GetTrending(c *gin.Context) {
	out, err := h.Svc.Trending(c.Request.Context(), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"trending": out})
}

func (h *InsightsController) GetCommunity(c *gin.Context) {
	out, err := h.Svc.Community(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *InsightsController) RecordAnalytics(c *gin.Context) {
	var body struct {
		ProgramID   uint   `json:"program_id" binding:"required"`
		Date        string `json:"date" binding:"required"`
		ActiveUsers int    `json:"active_users"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	row, err := h.Svc.RecordAnalytics(c.Request.Context(), body.ProgramID, body.Date, body.ActiveUsers)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, row)
}

func (h *InsightsController) GetStats(c *gin.Context) {
	out, err := h.Svc.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"programs": out})
}
