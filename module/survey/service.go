package survey

import (
	"log"
	"time"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 问卷业务逻辑接口。
// 归属策略为 StrictOwner：改删只认创建者本人，管理员也不能越权。
type Service interface {
	GetAll() ([]model.Survey, error)
	GetByID(id string) (*model.Survey, error)
	Create(req *model.CreateSurveyRequest, creatorUserID string) (*model.Survey, error)
	Update(req *model.UpdateSurveyRequest, callerUserID string) error
	Delete(id, callerUserID string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetAll 没有问卷时返回空列表（与产品表不同，这里空不算错误）
func (s *service) GetAll() ([]model.Survey, error) {
	return s.repo.GetAll()
}

func (s *service) GetByID(id string) (*model.Survey, error) {
	sv, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sv == nil {
		return nil, model.NewNotFound("Survey", id)
	}
	return sv, nil
}

// Create 创建者id一律取自边界层解析出的令牌身份，不信任请求体；
// 创建时间由服务端写入
func (s *service) Create(req *model.CreateSurveyRequest, creatorUserID string) (*model.Survey, error) {
	if req == nil {
		return nil, model.NewBadRequest("Survey data is required.")
	}

	sv := &model.Survey{
		ID:              utils.NewID(),
		Title:           req.Title,
		Description:     req.Description,
		IsActive:        req.IsActive,
		CreatedByUserID: creatorUserID,
		ProductID:       req.ProductID,
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.repo.Create(sv); err != nil {
		return nil, err
	}

	s.logger.Printf("问卷已创建: %s by %s", sv.ID, creatorUserID)
	return sv, nil
}

// Update 先存在性检查，再归属检查；可变字段：标题、描述、启用标志、关联产品
func (s *service) Update(req *model.UpdateSurveyRequest, callerUserID string) error {
	sv, err := s.repo.GetByID(req.SurveyID)
	if err != nil {
		return err
	}
	if sv == nil {
		return model.NewNotFound("Survey", req.SurveyID)
	}

	if !security.StrictOwner.Allows(sv.CreatedByUserID, callerUserID, "") {
		s.logger.Printf("用户 %s 无权更新问卷 %s", callerUserID, req.SurveyID)
		return security.StrictOwner.Deny("Survey", req.SurveyID, "update")
	}

	sv.Title = req.Title
	sv.Description = req.Description
	sv.IsActive = req.IsActive
	sv.ProductID = req.ProductID
	return s.repo.Update(sv)
}

func (s *service) Delete(id, callerUserID string) error {
	sv, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sv == nil {
		return model.NewNotFound("Survey", id)
	}

	if !security.StrictOwner.Allows(sv.CreatedByUserID, callerUserID, "") {
		s.logger.Printf("用户 %s 无权删除问卷 %s", callerUserID, id)
		return security.StrictOwner.Deny("Survey", id, "delete")
	}

	return s.repo.Delete(id)
}
