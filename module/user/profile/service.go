package profile

import (
	"log"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 用户档案业务逻辑接口
type Service interface {
	GetAll() ([]model.UserProfile, error)
	GetByID(id string) (*model.UserProfile, error)
	GetByUserID(userID string) (*model.UserProfile, error)
	Create(req *model.CreateUserProfileRequest) (*model.UserProfile, error)
	Update(req *model.UpdateUserProfileRequest) error
	Delete(id string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetAll() ([]model.UserProfile, error) {
	return s.repo.GetAll()
}

func (s *service) GetByID(id string) (*model.UserProfile, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewNotFound("UserProfile", id)
	}
	return p, nil
}

// GetByUserID 该用户没有关联档案时报 NotFound
func (s *service) GetByUserID(userID string) (*model.UserProfile, error) {
	p, err := s.repo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewNotFound("UserProfile", userID)
	}
	return p, nil
}

func (s *service) Create(req *model.CreateUserProfileRequest) (*model.UserProfile, error) {
	if req == nil {
		return nil, model.NewBadRequest("Profile data must be provided.")
	}

	p := &model.UserProfile{
		ID:        utils.NewID(),
		UserID:    req.UserID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update 可变字段：姓名、电话、地址；所属用户不可变
func (s *service) Update(req *model.UpdateUserProfileRequest) error {
	p, err := s.repo.GetByID(req.UserProfileID)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewNotFound("UserProfile", req.UserProfileID)
	}

	p.FirstName = req.FirstName
	p.LastName = req.LastName
	p.Phone = req.Phone
	p.Address = req.Address
	return s.repo.Update(p)
}

func (s *service) Delete(id string) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewNotFound("UserProfile", id)
	}
	return s.repo.Delete(id)
}
