package service

import (
	"context"
	"regexp"
	"strings"

	"food-order-api/internal/core/apperr"
	"food-order-api/internal/domain"
	"food-order-api/internal/repo"
	"food-order-api/pkg/utils"
)

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// NormalizeEmail 邮箱统一小写 + 去空白后再做唯一性判断
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return nil, apperr.Invalid("please provide all required fields")
	}
	if !emailRe.MatchString(email) {
		return nil, apperr.Invalid("please enter a valid email")
	}
	if len(password) < 6 {
		return nil, apperr.Invalid("password must be at least 6 characters")
	}

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if existing != nil {
		return nil, apperr.Conflict("user already exists with this email")
	}

	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(password), // 明文到此为止
		Role:         domain.RoleUser,
	}
	if err := s.users.Create(ctx, u); err != nil {
		// 并发注册兜底：唯一索引最终说了算
		if repo.IsDupKey(err) {
			return nil, apperr.Conflict("user already exists with this email")
		}
		return nil, apperr.Internal("create user failed", err)
	}
	return u, nil
}

// Login 未知邮箱和密码错误返回同一个错误，不泄露账号是否存在
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperr.Invalid("please provide email and password")
	}
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return nil, apperr.Unauthenticated("invalid email or password")
	}
	return u, nil
}

func (s *UserService) GetProfile(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

// UpdateProfile name/email 传空串表示不改。改邮箱要先排除其他用户占用
func (s *UserService) UpdateProfile(ctx context.Context, id, name, email string) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Internal("lookup user failed", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}

	if n := strings.TrimSpace(name); n != "" {
		u.Name = n
	}
	if e := NormalizeEmail(email); e != "" && e != u.Email {
		if !emailRe.MatchString(e) {
			return nil, apperr.Invalid("please enter a valid email")
		}
		other, err := s.users.FindByEmail(ctx, e)
		if err != nil {
			return nil, apperr.Internal("lookup user failed", err)
		}
		if other != nil && other.ID != u.ID {
			return nil, apperr.Conflict("email already in use")
		}
		u.Email = e
	}

	if err := s.users.Update(ctx, u); err != nil {
		if repo.IsDupKey(err) {
			return nil, apperr.Conflict("email already in use")
		}
		return nil, apperr.Internal("update user failed", err)
	}
	return u, nil
}

func (s *UserService) ListUsers(ctx context.Context, offset, limit int, q string) ([]domain.User, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, total, err := s.users.List(ctx, offset, limit, q)
	if err != nil {
		return nil, 0, apperr.Internal("list users failed", err)
	}
	return users, total, nil
}

// EnsureAdmin 启动时种子管理员；邮箱已存在则什么都不做
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return false, nil
	}
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return false, apperr.Internal("lookup admin failed", err)
	}
	if existing != nil {
		return false, nil
	}
	if name == "" {
		name = "Admin"
	}
	u := &domain.User{
		ID:           utils.NewID(),
		Name:         name,
		Email:        email,
		PasswordHash: utils.HashPassword(password),
		Role:         domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, u); err != nil {
		if repo.IsDupKey(err) {
			return false, nil
		}
		return false, apperr.Internal("create admin failed", err)
	}
	return true, nil
}
