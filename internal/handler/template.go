package handler

import (
	"net/http"

	"github.com/careform/backend/internal/middleware"
	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// TemplateHandler 宣誓书模板 Handler
type TemplateHandler struct {
	templateService service.TemplateService
}

// NewTemplateHandler 创建 Handler
func NewTemplateHandler(templateService service.TemplateService) *TemplateHandler {
	return &TemplateHandler{templateService: templateService}
}

// List 获取模板列表
func (h *TemplateHandler) List(c *gin.Context) {
	templates, err := h.templateService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": templates})
}

// Get 获取模板详情
func (h *TemplateHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	template, err := h.templateService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrTemplateNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

// Create 创建模板
func (h *TemplateHandler) Create(c *gin.Context) {
	var req service.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": template})
}

// Update 更新模板
func (h *TemplateHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req service.SaveTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.templateService.Update(c.Request.Context(), middleware.ActorID(c), id, req)
	if err != nil {
		if err == service.ErrTemplateNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": template})
}

// Delete 删除模板，被宣誓书引用时拒绝
func (h *TemplateHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.templateService.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		switch err {
		case service.ErrTemplateNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "template not found"})
		case service.ErrTemplateInUse:
			c.JSON(http.StatusConflict, gin.H{"error": "template is referenced by affidavits"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// Placeholders 获取内置占位符定义
func (h *TemplateHandler) Placeholders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": h.templateService.Placeholders(c.Request.Context())})
}

// ExportPDF PDF 导出尚未实现
func (h *TemplateHandler) ExportPDF(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "pdf export is not implemented yet"})
}
