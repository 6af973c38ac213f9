package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/careform/backend/internal/middleware"
	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProviderHandler 服务方 Handler
type ProviderHandler struct {
	providerService service.ProviderService
	uploadDir       string
}

// NewProviderHandler 创建 Handler
func NewProviderHandler(providerService service.ProviderService, uploadDir string) *ProviderHandler {
	return &ProviderHandler{
		providerService: providerService,
		uploadDir:       uploadDir,
	}
}

// List 获取服务方列表
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.providerService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": providers})
}

// Get 获取服务方详情
func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	provider, err := h.providerService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrProviderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": provider})
}

// Create 创建服务方
func (h *ProviderHandler) Create(c *gin.Context) {
	var req service.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := h.providerService.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": provider})
}

// Update 更新服务方
func (h *ProviderHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req service.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	provider, err := h.providerService.Update(c.Request.Context(), middleware.ActorID(c), id, req)
	if err != nil {
		if err == service.ErrProviderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": provider})
}

// Delete 删除服务方
func (h *ProviderHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.providerService.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		if err == service.ErrProviderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// UploadHIPAASample 上传 HIPAA 样本文件
func (h *ProviderHandler) UploadHIPAASample(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	// 以随机前缀落盘，避免文件名冲突
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(file.Filename))
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("save file failed: %v", err)})
		return
	}

	provider, err := h.providerService.AttachHIPAASample(c.Request.Context(), middleware.ActorID(c), id, dst)
	if err != nil {
		if err == service.ErrProviderNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": provider})
}
