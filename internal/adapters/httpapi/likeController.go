package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"peyvand/internal/adapters/httpapi/middleware"
)

type LikeController struct{ lc LikeUseCase }

func NewLikeController(lc LikeUseCase) *LikeController {
	return &LikeController{lc: lc}
}

// ToggleLike لایک/آنلایک بر اساس وجود رکورد؛ پاسخ بدون بدنه
func (ctl *LikeController) ToggleLike(c *gin.Context) {
	if _, err := ctl.lc.ToggleLike(c.Request.Context(), middleware.CurrentPrincipal(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

func (ctl *LikeController) ListMyLikes(c *gin.Context) {
	likes, err := ctl.lc.ListMyLikes(c.Request.Context(), middleware.CurrentPrincipal(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, likes)
}
