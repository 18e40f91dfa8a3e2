package usersurvey

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

type fakeRepo struct {
	items   map[string]*model.UserSurvey
	deleted []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]*model.UserSurvey)}
}

func (f *fakeRepo) GetAllByCreator(createdByID string) ([]model.UserSurvey, error) {
	var out []model.UserSurvey
	for _, us := range f.items {
		if us.CreatedByID == createdByID {
			out = append(out, *us)
		}
	}
	return out, nil
}

func (f *fakeRepo) GetByID(id string) (*model.UserSurvey, error) { return f.items[id], nil }

func (f *fakeRepo) Create(us *model.UserSurvey) error { f.items[us.ID] = us; return nil }
func (f *fakeRepo) Update(us *model.UserSurvey) error { f.items[us.ID] = us; return nil }

func (f *fakeRepo) Delete(id string) error {
	delete(f.items, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, log.New(io.Discard, "", 0)), repo
}

func TestCreateStampsCreatorAndStart(t *testing.T) {
	svc, repo := newTestService()

	us, err := svc.Create(&model.CreateUserSurveyRequest{UserID: "resp-1", SurveyID: "s1"}, "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "admin-1", us.CreatedByID)
	assert.False(t, us.StartedAt.IsZero())
	assert.Nil(t, us.CompletedAt)
	assert.Contains(t, repo.items, us.ID)
}

func TestGetAllIsScopedToCaller(t *testing.T) {
	svc, repo := newTestService()
	repo.items["us1"] = &model.UserSurvey{ID: "us1", CreatedByID: "admin-1"}
	repo.items["us2"] = &model.UserSurvey{ID: "us2", CreatedByID: "admin-2"}

	list, err := svc.GetAll("admin-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "us1", list[0].ID)
}

// 非签发人访问时伪装成记录不存在，不暴露实例存在与否
func TestGetByIDHidesExistenceFromNonCreator(t *testing.T) {
	svc, repo := newTestService()
	repo.items["us1"] = &model.UserSurvey{ID: "us1", CreatedByID: "admin-1"}

	_, err := svc.GetByID("us1", "admin-2", model.RoleAdmin)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
	assert.Equal(t, "UserSurvey with ID 'us1' not found.", appErr.Message)
}

func TestUpdateOnlyMutatesCompletedAt(t *testing.T) {
	svc, repo := newTestService()
	started := time.Now().Add(-time.Hour)
	repo.items["us1"] = &model.UserSurvey{
		ID: "us1", UserID: "resp-1", SurveyID: "s1", CreatedByID: "admin-1", StartedAt: started,
	}

	done := time.Now()
	err := svc.Update(&model.UpdateUserSurveyRequest{UserSurveyID: "us1", CompletedAt: &done},
		"admin-1", model.RoleAdmin)
	require.NoError(t, err)

	got := repo.items["us1"]
	require.NotNil(t, got.CompletedAt)
	assert.Equal(t, done, *got.CompletedAt)
	assert.Equal(t, "resp-1", got.UserID)
	assert.Equal(t, "s1", got.SurveyID)
	assert.Equal(t, started, got.StartedAt)
}

func TestDeleteByNonCreatorHidesExistence(t *testing.T) {
	svc, repo := newTestService()
	repo.items["us1"] = &model.UserSurvey{ID: "us1", CreatedByID: "admin-1"}

	err := svc.Delete("us1", "admin-2", model.RoleAdmin)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
	assert.Empty(t, repo.deleted)
}

func TestDeleteMissingInstance(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete("ghost", "admin-1", model.RoleAdmin)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
}
