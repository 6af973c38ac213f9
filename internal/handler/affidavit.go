package handler

import (
	"net/http"

	"github.com/careform/backend/internal/middleware"
	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// AffidavitHandler 宣誓书 Handler
type AffidavitHandler struct {
	affidavitService service.AffidavitService
}

// NewAffidavitHandler 创建 Handler
func NewAffidavitHandler(affidavitService service.AffidavitService) *AffidavitHandler {
	return &AffidavitHandler{affidavitService: affidavitService}
}

// List 获取宣誓书列表
func (h *AffidavitHandler) List(c *gin.Context) {
	affidavits, err := h.affidavitService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": affidavits})
}

// Get 获取宣誓书详情
func (h *AffidavitHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	affidavit, err := h.affidavitService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrAffidavitNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "affidavit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": affidavit})
}

// Create 创建宣誓书
func (h *AffidavitHandler) Create(c *gin.Context) {
	var req service.CreateAffidavitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affidavit, err := h.affidavitService.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		switch err {
		case service.ErrTemplateNotFound, service.ErrPatientNotFound, service.ErrProviderNotFound:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": affidavit})
}

// Generate 按模板填充占位符生成内容
func (h *AffidavitHandler) Generate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req service.GenerateAffidavitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	affidavit, err := h.affidavitService.Generate(c.Request.Context(), middleware.ActorID(c), id, req)
	if err != nil {
		if err == service.ErrAffidavitNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "affidavit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": affidavit})
}

// Sign 签署宣誓书
func (h *AffidavitHandler) Sign(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	affidavit, err := h.affidavitService.Sign(c.Request.Context(), middleware.ActorID(c), id)
	if err != nil {
		switch err {
		case service.ErrAffidavitNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "affidavit not found"})
		case service.ErrNotGenerated:
			c.JSON(http.StatusConflict, gin.H{"error": "affidavit has not been generated"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": affidavit})
}

// Delete 删除宣誓书
func (h *AffidavitHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.affidavitService.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		if err == service.ErrAffidavitNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "affidavit not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
