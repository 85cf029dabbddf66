package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"warcat/internal/model"
	"warcat/internal/service"
)

// DepartmentHandler maintains the department directory.
type DepartmentHandler struct {
	departments *service.DepartmentService
}

func NewDepartmentHandler(departments *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departments: departments}
}

// Create adds a department
// @Router /api/departments [post]
func (h *DepartmentHandler) Create(c *gin.Context) {
	var req model.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"statusTxt": "error", "message": err.Error()})
		return
	}
	dep, err := h.departments.Create(c.Request.Context(), req.Name)
	if err != nil {
		log.Printf("[handler] create department %q: %v", req.Name, err)
		internalError(c)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"statusTxt":  "success",
		"message":    "Department added successfully",
		"department": dep,
	})
}

// List returns all departments
// @Router /api/departments [get]
func (h *DepartmentHandler) List(c *gin.Context) {
	deps, err := h.departments.List(c.Request.Context())
	if err != nil {
		log.Printf("[handler] list departments: %v", err)
		internalError(c)
		return
	}
	c.JSON(http.StatusOK, gin.H{"statusTxt": "success", "departments": deps})
}
