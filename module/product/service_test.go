package product

import (
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

type fakeRepo struct {
	products map[string]*model.Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[string]*model.Product)}
}

func (f *fakeRepo) GetAll() ([]model.Product, error) {
	var out []model.Product
	for _, p := range f.products {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(id string) (*model.Product, error) { return f.products[id], nil }

func (f *fakeRepo) ExistsByName(name string) (bool, error) {
	for _, p := range f.products {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) Create(p *model.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeRepo) Update(p *model.Product) error { f.products[p.ID] = p; return nil }
func (f *fakeRepo) Delete(id string) error        { delete(f.products, id); return nil }

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, log.New(io.Discard, "", 0)), repo
}

// 产品表为空按错误处理，而不是空列表
func TestGetAllEmptyIsNotFound(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetAll()
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
	assert.Equal(t, "No products found in the database.", appErr.Message)
}

func TestCreateDuplicateNameIsConflict(t *testing.T) {
	svc, repo := newTestService()
	repo.products["p1"] = &model.Product{ID: "p1", Name: "Product A"}

	// 查重不区分大小写
	_, err := svc.Create(&model.CreateProductRequest{Name: "product a"})
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindConflict, appErr.Kind)
	assert.Equal(t, "A product with name 'product a' already exists.", appErr.Message)
}

func TestCreateAssignsID(t *testing.T) {
	svc, repo := newTestService()

	p, err := svc.Create(&model.CreateProductRequest{Name: "Product F"})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Contains(t, repo.products, p.ID)
}

func TestUpdateMissingProduct(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(&model.UpdateProductRequest{ProductID: "ghost", Name: "X"})
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
}

func TestDeleteMissingProduct(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete("ghost")
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
	assert.Equal(t, "Product with ID 'ghost' not found.", appErr.Message)
}
