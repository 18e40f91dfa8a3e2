package question

import (
	"log"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 题目业务逻辑接口
type Service interface {
	GetAllBySurveyID(surveyID string) ([]model.Question, error)
	GetByID(id string) (*model.Question, error)
	Create(req *model.CreateQuestionRequest) (*model.Question, error)
	Update(req *model.UpdateQuestionRequest) error
	Delete(id string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetAllBySurveyID 问卷id是客户端提交的引用，不存在时按请求错误（400）处理，
// 而不是按资源缺失（404）——它不是路径里的资源标识
func (s *service) GetAllBySurveyID(surveyID string) ([]model.Question, error) {
	exists, err := s.repo.SurveyExists(surveyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewBadRequest("Invalid Survey Id")
	}

	return s.repo.GetAllBySurveyID(surveyID)
}

func (s *service) GetByID(id string) (*model.Question, error) {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, model.NewNotFound("Question", id)
	}
	return q, nil
}

// Create 入库前校验所属问卷确实存在
func (s *service) Create(req *model.CreateQuestionRequest) (*model.Question, error) {
	if req == nil {
		return nil, model.NewBadRequest("Question data must be provided.")
	}

	exists, err := s.repo.SurveyExists(req.SurveyID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, model.NewBadRequest("Invalid Survey Id")
	}

	qType, ok := model.ParseQuestionType(req.Type)
	if !ok {
		return nil, model.NewBadRequest("Invalid question type.")
	}

	q := &model.Question{
		ID:       utils.NewID(),
		SurveyID: req.SurveyID,
		Text:     req.Text,
		Type:     qType,
		Order:    req.Order,
	}
	if err := s.repo.Create(q); err != nil {
		return nil, err
	}

	s.logger.Printf("题目已创建: %s (问卷 %s)", q.ID, q.SurveyID)
	return q, nil
}

// Update 可变字段：文本、类型、顺序；所属问卷不可变
func (s *service) Update(req *model.UpdateQuestionRequest) error {
	q, err := s.repo.GetByID(req.QuestionID)
	if err != nil {
		return err
	}
	if q == nil {
		return model.NewNotFound("Question", req.QuestionID)
	}

	qType, ok := model.ParseQuestionType(req.Type)
	if !ok {
		return model.NewBadRequest("Invalid question type.")
	}

	q.Text = req.Text
	q.Type = qType
	q.Order = req.Order
	return s.repo.Update(q)
}

func (s *service) Delete(id string) error {
	q, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return model.NewNotFound("Question", id)
	}
	return s.repo.Delete(id)
}
