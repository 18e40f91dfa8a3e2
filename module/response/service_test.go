package response

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
	items map[string]*model.Response
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]*model.Response)}
}

func (f *fakeRepo) GetAll() ([]model.Response, error) {
	var out []model.Response
	for _, r := range f.items {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) GetByID(id string) (*model.Response, error) { return f.items[id], nil }

func (f *fakeRepo) Create(r *model.Response) error { f.items[r.ID] = r; return nil }
func (f *fakeRepo) Update(r *model.Response) error { f.items[r.ID] = r; return nil }
func (f *fakeRepo) Delete(id string) error         { delete(f.items, id); return nil }

func newTestService() (Service, *fakeRepo) {
	repo := newFakeRepo()
	return NewService(repo, log.New(io.Discard, "", 0)), repo
}

// 作答时间由服务端写入，不接受客户端提交的值
func TestCreateStampsAnsweredAt(t *testing.T) {
	svc, repo := newTestService()

	optionID := "opt-1"
	before := time.Now().UTC()
	resp, err := svc.Create(&model.CreateResponseRequest{
		UserSurveyID: "us1", QuestionID: "q1", OptionID: &optionID,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.False(t, resp.AnsweredAt.Before(before))
	require.NotNil(t, resp.OptionID)
	assert.Equal(t, "opt-1", *resp.OptionID)
	assert.Contains(t, repo.items, resp.ID)
}

func TestCreateTextAnswer(t *testing.T) {
	svc, _ := newTestService()

	text := "free form answer"
	resp, err := svc.Create(&model.CreateResponseRequest{
		UserSurveyID: "us1", QuestionID: "q2", AnswerText: &text,
	})
	require.NoError(t, err)
	assert.Nil(t, resp.OptionID)
	require.NotNil(t, resp.AnswerText)
	assert.Equal(t, text, *resp.AnswerText)
}

func TestUpdateReplacesAnswerFields(t *testing.T) {
	svc, repo := newTestService()
	old := "old"
	answered := time.Now().Add(-time.Hour)
	repo.items["r1"] = &model.Response{
		ID: "r1", UserSurveyID: "us1", QuestionID: "q1", AnswerText: &old, AnsweredAt: answered,
	}

	optionID := "opt-2"
	err := svc.Update(&model.UpdateResponseRequest{ResponseID: "r1", OptionID: &optionID})
	require.NoError(t, err)

	got := repo.items["r1"]
	require.NotNil(t, got.OptionID)
	assert.Equal(t, "opt-2", *got.OptionID)
	// 覆盖式更新：未提交的答案字段清空
	assert.Nil(t, got.AnswerText)
	// 作答实例、题目、作答时间不可变
	assert.Equal(t, "us1", got.UserSurveyID)
	assert.Equal(t, "q1", got.QuestionID)
	assert.Equal(t, answered, got.AnsweredAt)
}

func TestUpdateMissingResponse(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Update(&model.UpdateResponseRequest{ResponseID: "ghost"})
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
	assert.Equal(t, "Response with ID 'ghost' not found.", appErr.Message)
}

func TestGetByIDMissingResponse(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.GetByID("ghost")
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindNotFound, appErr.Kind)
}
