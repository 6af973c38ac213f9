package handler

import (
	"net/http"
	"strconv"

	"github.com/careform/backend/internal/middleware"
	"github.com/careform/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// PatientHandler 患者 Handler
type PatientHandler struct {
	patientService   service.PatientService
	affidavitService service.AffidavitService
}

// NewPatientHandler 创建 Handler
func NewPatientHandler(patientService service.PatientService, affidavitService service.AffidavitService) *PatientHandler {
	return &PatientHandler{
		patientService:   patientService,
		affidavitService: affidavitService,
	}
}

// List 获取患者列表
func (h *PatientHandler) List(c *gin.Context) {
	patients, err := h.patientService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": patients})
}

// Get 获取患者详情
func (h *PatientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	patient, err := h.patientService.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == service.ErrPatientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": patient})
}

// Create 创建患者
func (h *PatientHandler) Create(c *gin.Context) {
	var req service.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientService.Create(c.Request.Context(), middleware.ActorID(c), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": patient})
}

// Update 更新患者
func (h *PatientHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req service.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patientService.Update(c.Request.Context(), middleware.ActorID(c), id, req)
	if err != nil {
		if err == service.ErrPatientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": patient})
}

// Delete 删除患者
func (h *PatientHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.patientService.Delete(c.Request.Context(), middleware.ActorID(c), id); err != nil {
		if err == service.ErrPatientNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

// LinkProvider 关联服务方
func (h *PatientHandler) LinkProvider(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req service.LinkProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.patientService.LinkProvider(c.Request.Context(), id, req); err != nil {
		switch err {
		case service.ErrPatientNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "patient not found"})
		case service.ErrProviderNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "provider not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "linked"})
}

// UnlinkProvider 解除服务方关联
func (h *PatientHandler) UnlinkProvider(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	providerID, err := strconv.ParseUint(c.Param("providerId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
		return
	}

	if err := h.patientService.UnlinkProvider(c.Request.Context(), id, uint(providerID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "unlinked"})
}

// Affidavits 获取患者的宣誓书
func (h *PatientHandler) Affidavits(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	affidavits, err := h.affidavitService.GetByPatient(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": affidavits})
}

// parseID 解析路径中的 :id
func parseID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
