package controllers

import (
	"net/http"
	"strconv"

	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/pkg/resp"
	"github.com/Richiez14/Upiksugbox/services"

	"github.com/gin-gonic/gin"
)

type CreateSuggestionRequest struct {
	StudentName string            `json:"student_name"`
	Department  entity.Department `json:"department" binding:"required,oneof=Catering Welfare Administration ICT Others"`
	Text        string            `json:"text" binding:"required"`
	ImageURL    string            `json:"image_url"`
	VideoURL    string            `json:"video_url"`
}

// UpdateSuggestionRequest is a sparse patch: absent (or null) fields are
// left untouched.
type UpdateSuggestionRequest struct {
	AdminResponse *string                  `json:"admin_response"`
	Status        *entity.SuggestionStatus `json:"status" binding:"omitempty,oneof=pending reviewed responded"`
	IsPublic      *int                     `json:"is_public" binding:"omitempty,oneof=0 1"`
}

type SuggestionController struct {
	svc *services.SuggestionService
}

func NewSuggestionController(svc *services.SuggestionService) *SuggestionController {
	return &SuggestionController{svc: svc}
}

// POST /api/suggestions
func (s *SuggestionController) Submit(c *gin.Context) {
	var req CreateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sug, err := s.svc.Submit(req.StudentName, req.Department, req.Text, req.ImageURL, req.VideoURL)
	if err != nil {
		resp.ServerError(c, "Failed to submit suggestion")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": sug.ID, "status": sug.Status})
}

// GET /api/suggestions/public
func (s *SuggestionController) PublicBoard(c *gin.Context) {
	items, err := s.svc.PublicBoard()
	if err != nil {
		resp.ServerError(c, "Failed to load suggestions")
		return
	}
	resp.OK(c, items)
}

// GET /api/admin/suggestions
func (s *SuggestionController) ListAll(c *gin.Context) {
	items, err := s.svc.All()
	if err != nil {
		resp.ServerError(c, "Failed to load suggestions")
		return
	}
	resp.OK(c, items)
}

// PATCH /api/admin/suggestions/:id
func (s *SuggestionController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid suggestion id")
		return
	}

	var req UpdateSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	patch := services.SuggestionPatch{
		AdminResponse: req.AdminResponse,
		Status:        req.Status,
		IsPublic:      req.IsPublic,
	}
	if err := s.svc.Update(uint(id), patch); err != nil {
		resp.ServerError(c, "Failed to update suggestion")
		return
	}

	resp.Success(c)
}
