package auth

import (
	"log"
	"time"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/user"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 认证业务逻辑接口
type Service interface {
	Login(req *model.LoginRequest) (*model.AuthResponse, error)
	Register(req *model.RegisterRequest) (*model.AuthResponse, error)
}

type service struct {
	users  user.Repository
	logger *log.Logger
}

func NewService(users user.Repository, logger *log.Logger) Service {
	return &service{users: users, logger: logger}
}

// Login 查无此人和密码错误返回同一个错误，不泄露哪一半错了
func (s *service) Login(req *model.LoginRequest) (*model.AuthResponse, error) {
	u, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	if u == nil {
		s.logger.Printf("登录失败: %s", req.Email)
		return nil, model.NewUnauthorized("Invalid email or password.")
	}

	ok, err := security.VerifyPassword(req.Password, u.PasswordHash)
	if err != nil || !ok {
		s.logger.Printf("登录失败: %s", req.Email)
		return nil, model.NewUnauthorized("Invalid email or password.")
	}

	token, _, err := security.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Printf("登录成功: %s", u.ID)
	return &model.AuthResponse{Token: token, Role: u.Role, Username: u.Username}, nil
}

// Register 邮箱已注册则拒绝；无法识别的角色回退为 Respondent
func (s *service) Register(req *model.RegisterRequest) (*model.AuthResponse, error) {
	existing, err := s.users.GetByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.NewBadRequest("Email is already registered.")
	}

	hash, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		ID:           utils.NewID(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         model.ParseRole(req.Role),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}

	token, _, err := security.GenerateToken(u.ID, u.Username, u.Role)
	if err != nil {
		return nil, err
	}

	s.logger.Printf("注册成功: %s (%s)", u.ID, u.Role)
	return &model.AuthResponse{Token: token, Role: u.Role, Username: u.Username}, nil
}

// TokenTTL 注销时计算令牌剩余寿命，黑名单只需要保留这么久
func TokenTTL(tokenString string) time.Duration {
	claims, err := security.ParseToken(tokenString)
	if err != nil || claims.ExpiresAt == nil {
		return time.Minute
	}
	return time.Until(claims.ExpiresAt.Time)
}
