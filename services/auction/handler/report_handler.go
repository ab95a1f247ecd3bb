package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"domain-auction/internal/models"
	"domain-auction/services/auction/helpers"
	"domain-auction/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_report_service.go -package=handler . ReportServiceInterface

type ReportServiceInterface interface {
	Statistics() models.Statistics
	Export(kind string) (string, error)
	Notifications() []models.Notification
	DismissNotification(id int64) error
	MarkNotificationRead(id int64) error
}

type ReportHandler struct {
	service ReportServiceInterface
}

func NewReportHandler(service ReportServiceInterface) *ReportHandler {
	return &ReportHandler{service: service}
}

// StatisticsHandler handles GET /stats
func (h *ReportHandler) StatisticsHandler(c *gin.Context) {
	stats := h.service.Statistics()
	utils.JSONResponse(c, http.StatusOK, stats, "statistics retrieved successfully")
}

// ExportHandler handles GET /export/:kind and answers with a JSON download
func (h *ReportHandler) ExportHandler(c *gin.Context) {
	kind := c.Param("kind")

	out, err := h.service.Export(kind)
	if err != nil {
		helpers.RespondError(c, "ExportHandler", "export failed", err, map[string]any{"kind": kind})
		return
	}

	utils.AttachmentResponse(c, http.StatusOK, kind+"_export.json", "application/json; charset=utf-8", []byte(out))
	helpers.LogSuccess("ExportHandler", "export generated", map[string]any{"kind": kind, "bytes": len(out)})
}

// ListNotificationsHandler handles GET /notifications
func (h *ReportHandler) ListNotificationsHandler(c *gin.Context) {
	notes := h.service.Notifications()
	utils.JSONResponse(c, http.StatusOK, notes, "notifications retrieved successfully")
}

// DismissNotificationHandler handles DELETE /notifications/:id
func (h *ReportHandler) DismissNotificationHandler(c *gin.Context) {
	id, ok := notificationID(c, "DismissNotificationHandler")
	if !ok {
		return
	}

	if err := h.service.DismissNotification(id); err != nil {
		helpers.RespondError(c, "DismissNotificationHandler", "failed to dismiss notification", err, map[string]any{"notification_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "notification dismissed")
}

// MarkNotificationReadHandler handles POST /notifications/:id/read
func (h *ReportHandler) MarkNotificationReadHandler(c *gin.Context) {
	id, ok := notificationID(c, "MarkNotificationReadHandler")
	if !ok {
		return
	}

	if err := h.service.MarkNotificationRead(id); err != nil {
		helpers.RespondError(c, "MarkNotificationReadHandler", "failed to mark notification read", err, map[string]any{"notification_id": id})
		return
	}
	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "notification marked read")
}

func notificationID(c *gin.Context, handlerName string) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		utils.JSONError(c, http.StatusBadRequest, fmt.Errorf("invalid notification id %q", raw), "invalid notification id")
		utils.Warn(handlerName+": invalid path parameter", map[string]any{"param": "id", "value": raw})
		return 0, false
	}
	return id, true
}
