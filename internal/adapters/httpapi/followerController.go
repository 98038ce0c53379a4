package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"

	"peyvand/internal/adapters/httpapi/middleware"
)

type FollowerController struct{ fc FollowerUseCase }

func NewFollowerController(fc FollowerUseCase) *FollowerController {
	return &FollowerController{fc: fc}
}

// FollowUser دنبال کردن کاربر مسیر؛ self-follow بی‌اثر و موفق است
func (ctl *FollowerController) FollowUser(c *gin.Context) {
	targetID := c.Param("id")
	if _, err := uuid.FromString(targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := ctl.fc.FollowUser(c.Request.Context(), middleware.CurrentPrincipal(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "successfully followed user"})
}

// UnfollowUser لغو دنبال کردن؛ نبود رابطه هم موفق است
func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	targetID := c.Param("id")
	if _, err := uuid.FromString(targetID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	if err := ctl.fc.UnfollowUser(c.Request.Context(), middleware.CurrentPrincipal(c), targetID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "successfully unfollowed user"})
}

func (ctl *FollowerController) GetFollowers(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)
	followers, err := ctl.fc.GetFollowersByUserID(c.Request.Context(), actor.ID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *FollowerController) GetFollowing(c *gin.Context) {
	actor := middleware.CurrentPrincipal(c)
	following, err := ctl.fc.GetFollowingByUserID(c.Request.Context(), actor.ID.String())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}
