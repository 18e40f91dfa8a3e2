package auth

import (
	"io"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
)

// 内存版用户仓储，按邮箱索引
type fakeUserRepo struct {
	byEmail   map[string]*model.User
	histories []model.PasswordHistory
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*model.User)}
}

func (f *fakeUserRepo) GetAll() ([]model.User, error) {
	var out []model.User
	for _, u := range f.byEmail {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserRepo) GetByID(id string) (*model.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) Create(u *model.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Update(u *model.User) error { return nil }
func (f *fakeUserRepo) Delete(id string) error     { return nil }

func (f *fakeUserRepo) AddPasswordHistory(h *model.PasswordHistory) error {
	f.histories = append(f.histories, *h)
	return nil
}

func testLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func seedUser(t *testing.T, repo *fakeUserRepo, email, password, role string) *model.User {
	t.Helper()
	hash, err := security.HashPassword(password)
	require.NoError(t, err)
	u := &model.User{ID: "user-" + email, Username: "u-" + email, Email: email, PasswordHash: hash, Role: role}
	require.NoError(t, repo.Create(u))
	return u
}

func TestLoginSuccess(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "Admin@123", model.RoleAdmin)

	svc := NewService(repo, testLogger())
	resp, err := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "Admin@123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, model.RoleAdmin, resp.Role)

	claims, err := security.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-admin@example.com", claims.Subject)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}

// 查无此人和密码错误必须返回同一条错误信息
func TestLoginUniformFailureMessage(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "admin@example.com", "Admin@123", model.RoleAdmin)
	svc := NewService(repo, testLogger())

	_, errUnknown := svc.Login(&model.LoginRequest{Email: "nobody@example.com", Password: "x"})
	_, errWrongPw := svc.Login(&model.LoginRequest{Email: "admin@example.com", Password: "wrong"})

	var appErr *model.AppError
	require.ErrorAs(t, errUnknown, &appErr)
	assert.Equal(t, model.KindUnauthorized, appErr.Kind)
	assert.Equal(t, "Invalid email or password.", appErr.Message)

	require.ErrorAs(t, errWrongPw, &appErr)
	assert.Equal(t, "Invalid email or password.", appErr.Message)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	seedUser(t, repo, "taken@example.com", "Pw@12345", model.RoleRespondent)
	svc := NewService(repo, testLogger())

	_, err := svc.Register(&model.RegisterRequest{
		Username: "dup", Email: "taken@example.com", Password: "Pw@12345",
	})

	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, model.KindBadRequest, appErr.Kind)
	assert.Equal(t, "Email is already registered.", appErr.Message)
}

func TestRegisterUnknownRoleFallsBackToRespondent(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	repo := newFakeUserRepo()
	svc := NewService(repo, testLogger())

	resp, err := svc.Register(&model.RegisterRequest{
		Username: "newbie", Email: "new@example.com", Password: "Pw@12345", Role: "superuser",
	})
	require.NoError(t, err)
	assert.Equal(t, model.RoleRespondent, resp.Role)

	u, err := repo.GetByEmail("new@example.com")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, model.RoleRespondent, u.Role)
	// 密码只存哈希
	assert.NotEqual(t, "Pw@12345", u.PasswordHash)
	// 自助注册不写口令审计表
	assert.Empty(t, repo.histories)
}
