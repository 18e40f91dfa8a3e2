package option

import (
	"log"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 选项业务逻辑接口。
// 与题目不同，创建选项不反查题目是否存在（信任调用方，沿用旧系统行为；
// 悬空引用最终会被外键约束拦下）。
type Service interface {
	GetAllByQuestionID(questionID string) ([]model.Option, error)
	GetByID(id string) (*model.Option, error)
	Create(req *model.CreateOptionRequest) (*model.Option, error)
	Update(req *model.UpdateOptionRequest) error
	Delete(id string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetAllByQuestionID(questionID string) ([]model.Option, error) {
	return s.repo.GetAllByQuestionID(questionID)
}

func (s *service) GetByID(id string) (*model.Option, error) {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, model.NewNotFound("Option", id)
	}
	return o, nil
}

func (s *service) Create(req *model.CreateOptionRequest) (*model.Option, error) {
	if req == nil {
		return nil, model.NewBadRequest("Option data must be provided.")
	}

	o := &model.Option{
		ID:         utils.NewID(),
		QuestionID: req.QuestionID,
		Text:       req.Text,
		Order:      req.Order,
	}
	if err := s.repo.Create(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Update 可变字段：文本、顺序；所属题目不可变
func (s *service) Update(req *model.UpdateOptionRequest) error {
	o, err := s.repo.GetByID(req.OptionID)
	if err != nil {
		return err
	}
	if o == nil {
		return model.NewNotFound("Option", req.OptionID)
	}

	o.Text = req.Text
	o.Order = req.Order
	return s.repo.Update(o)
}

func (s *service) Delete(id string) error {
	o, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if o == nil {
		return model.NewNotFound("Option", id)
	}
	return s.repo.Delete(id)
}
