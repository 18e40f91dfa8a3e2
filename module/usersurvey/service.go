package usersurvey

import (
	"log"
	"time"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 作答实例业务逻辑接口。
// 归属以签发人（CreatedByID）为准，非签发人一律按记录不存在处理，
// 不向其暴露实例是否存在（security.HideExistence）。
type Service interface {
	GetAll(callerID string) ([]model.UserSurvey, error)
	GetByID(id, callerID, callerRole string) (*model.UserSurvey, error)
	Create(req *model.CreateUserSurveyRequest, createdByID string) (*model.UserSurvey, error)
	Update(req *model.UpdateUserSurveyRequest, callerID, callerRole string) error
	Delete(id, callerID, callerRole string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetAll 只返回调用者本人签发的实例
func (s *service) GetAll(callerID string) ([]model.UserSurvey, error) {
	return s.repo.GetAllByCreator(callerID)
}

func (s *service) GetByID(id, callerID, callerRole string) (*model.UserSurvey, error) {
	us, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if us == nil {
		return nil, model.NewNotFound("UserSurvey", id)
	}
	if !security.HideExistence.Allows(us.CreatedByID, callerID, callerRole) {
		return nil, security.HideExistence.Deny("UserSurvey", id, "access")
	}
	return us, nil
}

func (s *service) Create(req *model.CreateUserSurveyRequest, createdByID string) (*model.UserSurvey, error) {
	if req == nil {
		return nil, model.NewBadRequest("UserSurvey data must be provided.")
	}

	us := &model.UserSurvey{
		ID:          utils.NewID(),
		UserID:      req.UserID,
		SurveyID:    req.SurveyID,
		CreatedByID: createdByID,
		StartedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(us); err != nil {
		return nil, err
	}
	return us, nil
}

// Update 可变字段仅 CompletedAt；受访者、问卷、签发人、开始时间不可变
func (s *service) Update(req *model.UpdateUserSurveyRequest, callerID, callerRole string) error {
	us, err := s.repo.GetByID(req.UserSurveyID)
	if err != nil {
		return err
	}
	if us == nil {
		return model.NewNotFound("UserSurvey", req.UserSurveyID)
	}
	if !security.HideExistence.Allows(us.CreatedByID, callerID, callerRole) {
		return security.HideExistence.Deny("UserSurvey", req.UserSurveyID, "update")
	}

	us.CompletedAt = req.CompletedAt
	return s.repo.Update(us)
}

func (s *service) Delete(id, callerID, callerRole string) error {
	us, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if us == nil {
		return model.NewNotFound("UserSurvey", id)
	}
	if !security.HideExistence.Allows(us.CreatedByID, callerID, callerRole) {
		return security.HideExistence.Deny("UserSurvey", id, "delete")
	}
	return s.repo.Delete(id)
}
