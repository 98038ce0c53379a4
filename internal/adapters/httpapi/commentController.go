package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peyvand/internal/adapters/httpapi/middleware"
)

type CommentController struct{ cc CommentUseCase }

func NewCommentController(cc CommentUseCase) *CommentController {
	return &CommentController{cc: cc}
}

// AddComment کامنت روی پست مسیر؛ مالکیت پست لازم نیست
func (ctl *CommentController) AddComment(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	if err := ctl.cc.AddComment(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id"), req.Content); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (ctl *CommentController) ListMyComments(c *gin.Context) {
	comments, err := ctl.cc.ListMyComments(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (ctl *CommentController) GetComment(c *gin.Context) {
	res, err := ctl.cc.GetComment(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) UpdateComment(c *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}
	res, err := ctl.cc.UpdateComment(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id"), req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (ctl *CommentController) DeleteComment(c *gin.Context) {
	if err := ctl.cc.DeleteComment(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
