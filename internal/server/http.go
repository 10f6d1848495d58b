package server

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/werb210/ocr-reconciler/internal/export"
	"github.com/werb210/ocr-reconciler/internal/insights"
)

// NewRouter builds the UI-facing REST surface. The portal frontend consumes
// these endpoints directly; the gRPC service carries the same payloads for
// internal callers.
func NewRouter(svc *insights.Service, exporter *export.Service, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/applications/:id/ocr-insights", func(c *gin.Context) {
		appID := strings.TrimSpace(c.Param("id"))
		if appID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "application id is required"})
			return
		}
		payload, err := svc.GetInsights(c.Request.Context(), appID)
		if err != nil {
			logger.Error("insights request failed", "application_id", appID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute insights"})
			return
		}
		c.JSON(http.StatusOK, payload)
	})

	router.GET("/applications/:id/ocr-insights/export", func(c *gin.Context) {
		appID := strings.TrimSpace(c.Param("id"))
		if appID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "application id is required"})
			return
		}
		b, err := exporter.ExportInsightsXLSX(c.Request.Context(), appID)
		if err != nil {
			logger.Error("insights export failed", "application_id", appID, "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export insights"})
			return
		}
		filename := fmt.Sprintf("ocr-insights-%s-%s.xlsx", appID, time.Now().UTC().Format("20060102"))
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", b)
	})

	return router
}
