package response

import (
	"log"
	"time"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 答案业务逻辑接口。
// 作答时间由服务端写入；不反查选项是否属于该题目（沿用旧系统行为）。
type Service interface {
	GetAll() ([]model.Response, error)
	GetByID(id string) (*model.Response, error)
	Create(req *model.CreateResponseRequest) (*model.Response, error)
	Update(req *model.UpdateResponseRequest) error
	Delete(id string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

func (s *service) GetAll() ([]model.Response, error) {
	return s.repo.GetAll()
}

func (s *service) GetByID(id string) (*model.Response, error) {
	resp, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, model.NewNotFound("Response", id)
	}
	return resp, nil
}

func (s *service) Create(req *model.CreateResponseRequest) (*model.Response, error) {
	if req == nil {
		return nil, model.NewBadRequest("Response data must be provided.")
	}

	resp := &model.Response{
		ID:           utils.NewID(),
		UserSurveyID: req.UserSurveyID,
		QuestionID:   req.QuestionID,
		OptionID:     req.OptionID,
		AnswerText:   req.AnswerText,
		AnsweredAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// Update 可变字段：选中的选项、文本答案；作答实例、题目、作答时间不可变
func (s *service) Update(req *model.UpdateResponseRequest) error {
	resp, err := s.repo.GetByID(req.ResponseID)
	if err != nil {
		return err
	}
	if resp == nil {
		return model.NewNotFound("Response", req.ResponseID)
	}

	resp.OptionID = req.OptionID
	resp.AnswerText = req.AnswerText
	return s.repo.Update(resp)
}

func (s *service) Delete(id string) error {
	resp, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if resp == nil {
		return model.NewNotFound("Response", id)
	}
	return s.repo.Delete(id)
}
