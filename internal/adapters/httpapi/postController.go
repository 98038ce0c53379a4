package httpapi

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"peyvand/internal/adapters/httpapi/middleware"
	postapp "peyvand/internal/core/post/service"
	mediaPort "peyvand/internal/ports/media"
	postPort "peyvand/internal/ports/post"
)

type PostController struct {
	pc    PostUseCase
	media mediaPort.Storage
}

func NewPostController(pc PostUseCase, media mediaPort.Storage) *PostController {
	return &PostController{pc: pc, media: media}
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	var req struct {
		Hashtag string `json:"hashtag" binding:"required"`
		Title   string `json:"title" binding:"required"`
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	res, err := ctl.pc.CreatePost(c.Request.Context(), middleware.CurrentPrincipal(c), req.Hashtag, req.Title, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// ListPosts فید کاربر با فیلترهای اختیاری hashtag و username
func (ctl *PostController) ListPosts(c *gin.Context) {
	filters := postPort.Filters{
		Hashtag:  c.Query("hashtag"),
		Username: c.Query("username"),
	}
	posts, err := ctl.pc.ListPosts(c.Request.Context(), middleware.CurrentPrincipal(c), filters)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}

func (ctl *PostController) GetPost(c *gin.Context) {
	p, err := ctl.pc.GetPost(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) UpdatePost(c *gin.Context) {
	var req struct {
		Hashtag *string `json:"hashtag"`
		Title   *string `json:"title"`
		Content *string `json:"content"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	p, err := ctl.pc.UpdatePost(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id"), postapp.PostUpdate{
		Hashtag: req.Hashtag,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (ctl *PostController) DeletePost(c *gin.Context) {
	if err := ctl.pc.DeletePost(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UploadImage آپلود تصویر پست از فرم multipart (فقط مالک)
func (ctl *PostController) UploadImage(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)
	id := c.Param("id")

	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}

	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
		return
	}
	defer src.Close()

	p, err := ctl.pc.GetPost(c.Request.Context(), actor, id)
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := ctl.media.Save(c.Request.Context(), "posts", p.Title, filepath.Ext(file.Filename), src)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := ctl.pc.UpdateImage(c.Request.Context(), actor, id, path); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": path})
}
