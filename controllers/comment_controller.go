package controllers

import (
	"strconv"

	"github.com/Richiez14/Upiksugbox/entity"
	"github.com/Richiez14/Upiksugbox/pkg/resp"
	"github.com/Richiez14/Upiksugbox/services"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	CommentText string            `json:"comment_text" binding:"required"`
	AuthorRole  entity.AuthorRole `json:"author_role" binding:"required,oneof=student admin"`
}

type CommentController struct {
	svc *services.CommentService
}

func NewCommentController(svc *services.CommentService) *CommentController {
	return &CommentController{svc: svc}
}

// GET /api/suggestions/:id/comments
func (cc *CommentController) List(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid suggestion id")
		return
	}

	items, err := cc.svc.Thread(uint(id))
	if err != nil {
		resp.ServerError(c, "Failed to load comments")
		return
	}
	resp.OK(c, items)
}

// POST /api/suggestions/:id/comments
func (cc *CommentController) Create(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid suggestion id")
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if _, err := cc.svc.Add(uint(id), req.CommentText, req.AuthorRole); err != nil {
		resp.ServerError(c, "Failed to add comment")
		return
	}

	resp.Success(c)
}
