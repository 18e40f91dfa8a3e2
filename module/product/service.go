package product

import (
	"fmt"
	"log"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

// Service 产品业务逻辑接口
type Service interface {
	GetAll() ([]model.Product, error)
	GetByID(id string) (*model.Product, error)
	Create(req *model.CreateProductRequest) (*model.Product, error)
	Update(req *model.UpdateProductRequest) error
	Delete(id string) error
}

type service struct {
	repo   Repository
	logger *log.Logger
}

func NewService(repo Repository, logger *log.Logger) Service {
	return &service{repo: repo, logger: logger}
}

// GetAll 产品表为空按错误处理，而不是返回空列表（沿用旧系统的显式设计）
func (s *service) GetAll() ([]model.Product, error) {
	products, err := s.repo.GetAll()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, model.NewNotFound("product", "")
	}
	return products, nil
}

func (s *service) GetByID(id string) (*model.Product, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, model.NewNotFound("Product", id)
	}
	return p, nil
}

// Create 名称查重不区分大小写，重名报冲突
func (s *service) Create(req *model.CreateProductRequest) (*model.Product, error) {
	if req == nil {
		return nil, model.NewBadRequest("Product data must be provided.")
	}

	exists, err := s.repo.ExistsByName(req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, model.NewConflict(fmt.Sprintf("A product with name '%s' already exists.", req.Name))
	}

	p := &model.Product{
		ID:          utils.NewID(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(p); err != nil {
		return nil, err
	}

	s.logger.Printf("产品已创建: %s", p.ID)
	return p, nil
}

func (s *service) Update(req *model.UpdateProductRequest) error {
	p, err := s.repo.GetByID(req.ProductID)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewNotFound("Product", req.ProductID)
	}

	p.Name = req.Name
	p.Description = req.Description
	return s.repo.Update(p)
}

func (s *service) Delete(id string) error {
	p, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if p == nil {
		return model.NewNotFound("Product", id)
	}
	return s.repo.Delete(id)
}
