package survey

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRepository(db), mock
}

func TestRepositoryGetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{
		"id", "title", "description", "is_active", "created_by_user_id", "product_id", "created_at",
	}).AddRow("s1", "Churn survey", nil, true, "admin-1", nil, created)

	mock.ExpectQuery("SELECT (.+) FROM surveys WHERE id = ?").
		WithArgs("s1").
		WillReturnRows(rows)

	sv, err := repo.GetByID("s1")
	require.NoError(t, err)
	require.NotNil(t, sv)
	assert.Equal(t, "Churn survey", sv.Title)
	assert.Equal(t, "admin-1", sv.CreatedByUserID)
	assert.Nil(t, sv.Description)
	assert.Equal(t, created, sv.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// 查无记录返回 nil 而不是错误，存在性判断留给服务层
func TestRepositoryGetByIDMissing(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM surveys WHERE id = ?").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "title", "description", "is_active", "created_by_user_id", "product_id", "created_at",
		}))

	sv, err := repo.GetByID("ghost")
	require.NoError(t, err)
	assert.Nil(t, sv)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryCreate(t *testing.T) {
	repo, mock := newMockRepo(t)

	sv := &model.Survey{
		ID: "s1", Title: "Churn survey", IsActive: true,
		CreatedByUserID: "admin-1", CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO surveys").
		WithArgs(sv.ID, sv.Title, sv.Description, sv.IsActive, sv.CreatedByUserID, sv.ProductID, sv.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(sv))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepositoryDelete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM surveys WHERE id = ?").
		WithArgs("s1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete("s1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
