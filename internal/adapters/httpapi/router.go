package httpapi

import (
	"context"

	"github.com/gin-gonic/gin"

	"peyvand/internal/adapters/httpapi/middleware"
	"peyvand/internal/core/policy"
	postapp "peyvand/internal/core/post/service"
	userapp "peyvand/internal/core/user/service"
	commentPort "peyvand/internal/ports/comment"
	followerPort "peyvand/internal/ports/follower"
	likePort "peyvand/internal/ports/like"
	mediaPort "peyvand/internal/ports/media"
	postPort "peyvand/internal/ports/post"
	tokenPort "peyvand/internal/ports/token"
	userPort "peyvand/internal/ports/user"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	RegisterUser(ctx context.Context, email, username, firstName, lastName, bio, password string) (*userPort.UserDTO, error)
	LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*userPort.LoginResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	ListUsers(ctx context.Context, actor policy.Principal, emailFilter, usernameFilter string) ([]*userPort.UserDTO, error)
	GetUser(ctx context.Context, actor policy.Principal, id string) (*userPort.UserDetailDTO, error)
	Me(ctx context.Context, actor policy.Principal) (*userPort.UserDetailDTO, error)
	UpdateMe(ctx context.Context, actor policy.Principal, upd userapp.ProfileUpdate) (*userPort.UserDTO, error)
	UpdateImage(ctx context.Context, actor policy.Principal, id, path string) error
	DeleteUser(ctx context.Context, actor policy.Principal, id string) error
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, actor policy.Principal, targetID string) error
	UnfollowUser(ctx context.Context, actor policy.Principal, targetID string) error
	GetFollowersByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error)
	GetFollowingByUserID(ctx context.Context, userID string) ([]*followerPort.FollowerDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, actor policy.Principal, hashtag, title, content string) (*postPort.PostDTO, error)
	ListPosts(ctx context.Context, actor policy.Principal, filters postPort.Filters) ([]*postPort.PostDTO, error)
	GetPost(ctx context.Context, actor policy.Principal, id string) (*postPort.PostDTO, error)
	UpdatePost(ctx context.Context, actor policy.Principal, id string, upd postapp.PostUpdate) (*postPort.PostDTO, error)
	UpdateImage(ctx context.Context, actor policy.Principal, id, path string) error
	DeletePost(ctx context.Context, actor policy.Principal, id string) error
}

type CommentUseCase interface {
	AddComment(ctx context.Context, actor policy.Principal, postID, content string) error
	ListMyComments(ctx context.Context, actor policy.Principal) ([]*commentPort.CommentDTO, error)
	GetComment(ctx context.Context, actor policy.Principal, id string) (*commentPort.CommentDTO, error)
	UpdateComment(ctx context.Context, actor policy.Principal, id, content string) (*commentPort.CommentDTO, error)
	DeleteComment(ctx context.Context, actor policy.Principal, id string) error
}

type LikeUseCase interface {
	ToggleLike(ctx context.Context, actor policy.Principal, postID string) (bool, error)
	ListMyLikes(ctx context.Context, actor policy.Principal) ([]*likePort.LikeDTO, error)
}

// فقط روتینگ: UseCaseها از بیرون تزریق می‌شوند
func SetupRoutes(
	userUC UserUseCase,
	followerUC FollowerUseCase,
	postUC PostUseCase,
	commentUC CommentUseCase,
	likeUC LikeUseCase,
	blacklist tokenPort.Blacklist,
	media mediaPort.Storage,
) *gin.Engine {
	r := gin.Default()

	uc := NewUserController(userUC, media)
	fc := NewFollowerController(followerUC)
	pc := NewPostController(postUC, media)
	cc := NewCommentController(commentUC)
	lc := NewLikeController(likeUC)

	authRequired := middleware.JWTAuthMiddleware(blacklist)
	api := r.Group("/api")

	// ثبت‌نام و چرخه‌ی توکن بدون JWT Middleware
	api.POST("/register", uc.RegisterUser)
	api.POST("/login", uc.LoginUser)
	api.POST("/token/refresh", uc.RefreshToken)

	auth := api.Group("", authRequired)
	auth.POST("/logout", uc.Logout)

	auth.GET("/me", uc.Me)
	auth.PUT("/me", uc.UpdateMe)

	auth.GET("/users", uc.ListUsers)
	auth.GET("/users/:id", uc.GetUser)
	auth.DELETE("/users/:id", uc.DeleteUser)
	auth.POST("/users/:id/image", uc.UploadImage)
	auth.PATCH("/users/:id/follow", fc.FollowUser)
	auth.PATCH("/users/:id/unfollow", fc.UnfollowUser)
	auth.GET("/followers", fc.GetFollowers)
	auth.GET("/following", fc.GetFollowing)

	auth.GET("/posts", pc.ListPosts)
	auth.POST("/posts", pc.CreatePost)
	auth.GET("/posts/:id", pc.GetPost)
	auth.PUT("/posts/:id", pc.UpdatePost)
	auth.DELETE("/posts/:id", pc.DeletePost)
	auth.POST("/posts/:id/image", pc.UploadImage)
	auth.POST("/posts/:id/like", lc.ToggleLike)
	auth.POST("/posts/:id/add_comment", cc.AddComment)

	auth.GET("/liked-posts", lc.ListMyLikes)
	auth.GET("/commented-posts", cc.ListMyComments)
	auth.GET("/commented-posts/:id", cc.GetComment)
	auth.PUT("/commented-posts/:id", cc.UpdateComment)
	auth.DELETE("/commented-posts/:id", cc.DeleteComment)

	return r
}
