package handler

import (
	"context"
	"net/http"
	"time"

	"Social_Feed/internal/repository/gormdb"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	healthyMessage   = "Social App is running successfully!"
	unhealthyMessage = "Database unavailable"
	infoMessage      = "Go Social Media Application - Version 1.0"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Health 数据库可用时返回 200
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := gormdb.Ping(ctx, h.db); err != nil {
		c.String(http.StatusServiceUnavailable, unhealthyMessage)
		return
	}
	c.String(http.StatusOK, healthyMessage)
}

func (h *HealthHandler) Info(c *gin.Context) {
	c.String(http.StatusOK, infoMessage)
}
