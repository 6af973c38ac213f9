package handler

import (
	"net/http"
	"strconv"

	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AuditHandler 审计日志 Handler
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler 创建 Handler
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// Recent 获取最近的审计记录
func (h *AuditHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}

// ByEntity 按实体查询审计记录
func (h *AuditHandler) ByEntity(c *gin.Context) {
	entity := c.Param("entity")
	entityID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	logs, err := h.auditService.ByEntity(c.Request.Context(), entity, uint(entityID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": logs})
}
