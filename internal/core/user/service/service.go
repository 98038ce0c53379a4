package userapp

import (
	"context"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"peyvand/internal/config"
	"peyvand/internal/core/apperrors"
	"peyvand/internal/core/auth"
	"peyvand/internal/core/policy"
	userEntity "peyvand/internal/core/user"
	followerPort "peyvand/internal/ports/follower"
	tokenPort "peyvand/internal/ports/token"
	userPort "peyvand/internal/ports/user"
)

// UserService سرویس مدیریت کاربران و چرخه‌ی توکن
type UserService struct {
	UserRepository     userPort.UserRepository
	FollowerRepository followerPort.FollowerRepository
	Blacklist          tokenPort.Blacklist
	jwtKey             []byte
}

func NewUserService(
	repo userPort.UserRepository,
	followerRepo followerPort.FollowerRepository,
	blacklist tokenPort.Blacklist,
	jwtKey []byte,
) *UserService {
	return &UserService{
		UserRepository:     repo,
		FollowerRepository: followerRepo,
		Blacklist:          blacklist,
		jwtKey:             jwtKey,
	}
}

// RegisterUser ثبت‌نام کاربر جدید
func (s *UserService) RegisterUser(ctx context.Context, email, username, firstName, lastName, bio, password string) (*userPort.UserDTO, error) {
	if email == "" {
		return nil, apperrors.NewValidation("email is required", "email")
	}
	if username == "" {
		return nil, apperrors.NewValidation("username is required", "username")
	}
	if len(password) < 8 {
		return nil, apperrors.NewValidation("password must be at least 8 characters", "password")
	}

	// بررسی تکراری نبودن ایمیل یا نام کاربری
	existing, err := s.UserRepository.FindByEmailOrUsername(ctx, email, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == email {
			return nil, apperrors.NewValidation("email already taken", "email")
		}
		return nil, apperrors.NewValidation("username already taken", "username")
	}

	// هش کردن پسورد
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:        uuid.Must(uuid.NewV4()),
		Email:     email,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
		Bio:       bio,
		Password:  string(hashedPassword),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		// قید یکتا ممکن است زیر ثبت‌نام همزمان برخورد کند
		config.Logger.Warn("user insert conflict", zap.String("email", email), zap.Error(err))
		return nil, apperrors.ErrConflict
	}

	dto := s.toDTO(ctx, created)
	return &dto, nil
}

// LoginUser ورود با ایمیل و صدور جفت توکن access/refresh
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewValidation("invalid credentials", "email", "password")
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, apperrors.NewValidation("invalid credentials", "email", "password")
	}

	access, err := auth.Generate(u.ID.String(), u.IsStaff, auth.KindAccess, auth.AccessTTL, s.jwtKey)
	if err != nil {
		return nil, err
	}
	refresh, err := auth.Generate(u.ID.String(), u.IsStaff, auth.KindRefresh, auth.RefreshTTL, s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresAt:    claimsExpiry(access, s.jwtKey),
	}, nil
}

// RefreshToken صدور access جدید از روی refresh معتبر و باطل‌نشده
func (s *UserService) RefreshToken(ctx context.Context, refreshToken string) (*userPort.LoginResponse, error) {
	claims, err := auth.Parse(refreshToken, s.jwtKey)
	if err != nil {
		return nil, apperrors.NewValidation("invalid refresh token", "refresh_token")
	}
	if claims.Kind != auth.KindRefresh {
		return nil, apperrors.NewValidation("not a refresh token", "refresh_token")
	}

	blacklisted, err := s.Blacklist.Contains(ctx, claims.Id)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, apperrors.NewValidation("refresh token revoked", "refresh_token")
	}

	access, err := auth.Generate(claims.Subject, claims.Staff, auth.KindAccess, auth.AccessTTL, s.jwtKey)
	if err != nil {
		return nil, err
	}

	return &userPort.LoginResponse{
		AccessToken:  access,
		RefreshToken: refreshToken,
		ExpiresAt:    claimsExpiry(access, s.jwtKey),
	}, nil
}

// Logout باطل کردن refresh token؛ خطای توکن خراب به validation تنزل می‌کند
func (s *UserService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := auth.Parse(refreshToken, s.jwtKey)
	if err != nil {
		return apperrors.NewValidation("invalid refresh token", "refresh_token")
	}
	if err := s.Blacklist.Add(ctx, claims.Id, claims.Remaining()); err != nil {
		config.Logger.Error("could not blacklist token", zap.Error(err))
		return apperrors.NewValidation("could not invalidate token", "refresh_token")
	}
	return nil
}

// ListUsers لیست کاربران با فیلتر زیررشته‌ای ایمیل/نام کاربری
func (s *UserService) ListUsers(ctx context.Context, actor policy.Principal, emailFilter, usernameFilter string) ([]*userPort.UserDTO, error) {
	if !policy.May(actor, policy.ActionRead, uuid.Nil) {
		return nil, apperrors.ErrUnauthenticated
	}

	users, err := s.UserRepository.Search(ctx, emailFilter, usernameFilter)
	if err != nil {
		return nil, err
	}

	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dto := s.toDTO(ctx, u)
		dtos = append(dtos, &dto)
	}
	return dtos, nil
}

// GetUser جزئیات کاربر به همراه نام دنبال‌کنندگان و دنبال‌شوندگان
func (s *UserService) GetUser(ctx context.Context, actor policy.Principal, id string) (*userPort.UserDetailDTO, error) {
	if !policy.May(actor, policy.ActionRead, uuid.Nil) {
		return nil, apperrors.ErrUnauthenticated
	}

	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.ErrNotFound
	}
	return s.toDetailDTO(ctx, u)
}

// Me پروفایل خود کاربر
func (s *UserService) Me(ctx context.Context, actor policy.Principal) (*userPort.UserDetailDTO, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	return s.GetUser(ctx, actor, actor.ID.String())
}

// ProfileUpdate فیلدهای قابل ویرایش پروفایل؛ پوینتر یعنی «تغییر بده»
type ProfileUpdate struct {
	Username  *string
	FirstName *string
	LastName  *string
	Bio       *string
	Password  *string
}

// UpdateMe ویرایش پروفایل خود کاربر
func (s *UserService) UpdateMe(ctx context.Context, actor policy.Principal, upd ProfileUpdate) (*userPort.UserDTO, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	u, err := s.UserRepository.FindByID(ctx, actor.ID.String())
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.ErrNotFound
	}

	if upd.Username != nil && *upd.Username != u.Username {
		other, err := s.UserRepository.FindByUsername(ctx, *upd.Username)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, apperrors.NewValidation("username already taken", "username")
		}
		u.Username = *upd.Username
	}
	if upd.FirstName != nil {
		u.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		u.LastName = *upd.LastName
	}
	if upd.Bio != nil {
		u.Bio = *upd.Bio
	}
	if upd.Password != nil {
		if len(*upd.Password) < 8 {
			return nil, apperrors.NewValidation("password must be at least 8 characters", "password")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.Password = string(hashed)
	}

	saved, err := s.UserRepository.Update(ctx, u)
	if err != nil {
		return nil, err
	}
	dto := s.toDTO(ctx, saved)
	return &dto, nil
}

// UpdateImage ثبت مسیر تصویر پروفایل (خود کاربر)
func (s *UserService) UpdateImage(ctx context.Context, actor policy.Principal, id, path string) error {
	if !policy.MayAdminUser(actor, uuid.FromStringOrNil(id)) {
		return apperrors.ErrPermission
	}

	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.ErrNotFound
	}
	u.Image = path
	_, err = s.UserRepository.Update(ctx, u)
	return err
}

// DeleteUser حذف حساب: خود کاربر یا staff؛ همه‌ی داده‌های وابسته هم می‌روند
func (s *UserService) DeleteUser(ctx context.Context, actor policy.Principal, id string) error {
	if !actor.Authenticated() {
		return apperrors.ErrUnauthenticated
	}

	u, err := s.UserRepository.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.ErrNotFound
	}
	if !policy.MayAdminUser(actor, u.ID) {
		return apperrors.ErrPermission
	}

	return s.UserRepository.DeleteCascade(ctx, id)
}

// FindByUsername برای worker انتشار و seed
func (s *UserService) FindByUsername(ctx context.Context, username string) (*userPort.UserDTO, error) {
	u, err := s.UserRepository.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.ErrNotFound
	}
	dto := s.toDTO(ctx, u)
	return &dto, nil
}

// toDTO ساخت DTO با شمارش زنده‌ی روابط فالو
func (s *UserService) toDTO(ctx context.Context, u *userEntity.User) userPort.UserDTO {
	followers, _ := s.FollowerRepository.CountFollowers(ctx, u.ID.String())
	followings, _ := s.FollowerRepository.CountFollowing(ctx, u.ID.String())

	return userPort.UserDTO{
		ID:              u.ID.String(),
		Email:           u.Email,
		Username:        u.Username,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		Bio:             u.Bio,
		Image:           u.Image,
		IsStaff:         u.IsStaff,
		FollowersCount:  followers,
		FollowingsCount: followings,
	}
}

func (s *UserService) toDetailDTO(ctx context.Context, u *userEntity.User) (*userPort.UserDetailDTO, error) {
	followers, err := s.FollowerRepository.GetFollowersByUserID(ctx, u.ID.String())
	if err != nil {
		return nil, err
	}
	follows, err := s.FollowerRepository.GetFollowingByUserID(ctx, u.ID.String())
	if err != nil {
		return nil, err
	}

	detail := &userPort.UserDetailDTO{UserDTO: s.toDTO(ctx, u)}
	detail.Followers = make([]string, 0, len(followers))
	for _, f := range followers {
		detail.Followers = append(detail.Followers, f.Follower.Username)
	}
	detail.Follows = make([]string, 0, len(follows))
	for _, f := range follows {
		detail.Follows = append(detail.Follows, f.User.Username)
	}
	return detail, nil
}

func claimsExpiry(token string, key []byte) int64 {
	claims, err := auth.Parse(token, key)
	if err != nil {
		return 0
	}
	return claims.ExpiresAt
}
