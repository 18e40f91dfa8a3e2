package user

import (
	"log"
	"time"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/user/profile"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 用户业务逻辑接口
type Service interface {
	GetAll() ([]model.UserDto, error)
	GetByID(id string) (*model.UserDto, error)
	Create(req *model.CreateUserRequest) (*model.UserDto, error)
	Update(req *model.UpdateUserRequest) error
	Delete(id string) error
}

type service struct {
	repo     Repository
	profiles profile.Repository
	logger   *log.Logger
}

func NewService(repo Repository, profiles profile.Repository, logger *log.Logger) Service {
	return &service{repo: repo, profiles: profiles, logger: logger}
}

// toDto 实体到视图的显式映射，档案存在时带上档案字段
func toDto(u *model.User, p *model.UserProfile) *model.UserDto {
	dto := &model.UserDto{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
	if p != nil {
		dto.FirstName = &p.FirstName
		dto.LastName = &p.LastName
		dto.Phone = p.Phone
		dto.Address = p.Address
	}
	return dto
}

func (s *service) GetAll() ([]model.UserDto, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, model.NewNotFound("user", "")
	}

	out := make([]model.UserDto, 0, len(users))
	for i := range users {
		p, err := s.profiles.GetByUserID(users[i].ID)
		if err != nil {
			return nil, err
		}
		out = append(out, *toDto(&users[i], p))
	}
	return out, nil
}

func (s *service) GetByID(id string) (*model.UserDto, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, model.NewNotFound("User", id)
	}

	p, err := s.profiles.GetByUserID(id)
	if err != nil {
		return nil, err
	}
	return toDto(u, p), nil
}

// Create 无法识别的角色字符串回退为 Respondent；
// 同时往口令审计表追加一份明文副本（沿用旧系统行为）
func (s *service) Create(req *model.CreateUserRequest) (*model.UserDto, error) {
	if req == nil {
		return nil, model.NewBadRequest("User data must be provided.")
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

	if err := s.repo.Create(u); err != nil {
		return nil, err
	}

	if err := s.repo.AddPasswordHistory(&model.PasswordHistory{
		ID:            utils.NewID(),
		UserID:        u.ID,
		PlainPassword: req.Password,
		CreatedAt:     u.CreatedAt,
	}); err != nil {
		return nil, err
	}

	s.logger.Printf("用户已创建: %s (%s)", u.ID, u.Role)
	return toDto(u, nil), nil
}

// Update 部分字段覆盖：用户名、邮箱；档案存在时一并覆盖档案子字段。
// 不整体替换实体，保持既有关联不动。
func (s *service) Update(req *model.UpdateUserRequest) error {
	u, err := s.repo.GetByID(req.UserID)
	if err != nil {
		return err
	}
	if u == nil {
		return model.NewNotFound("User", req.UserID)
	}

	u.Username = req.Username
	u.Email = req.Email
	if err := s.repo.Update(u); err != nil {
		return err
	}

	p, err := s.profiles.GetByUserID(u.ID)
	if err != nil {
		return err
	}
	if p != nil {
		if req.FirstName != nil {
			p.FirstName = *req.FirstName
		}
		if req.LastName != nil {
			p.LastName = *req.LastName
		}
		if req.Phone != nil {
			p.Phone = req.Phone
		}
		if req.Address != nil {
			p.Address = req.Address
		}
		if err := s.profiles.Update(p); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Delete(id string) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if u == nil {
		return model.NewNotFound("User", id)
	}
	return s.repo.Delete(id)
}
