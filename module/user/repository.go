package user

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 用户数据访问接口
type Repository interface {
	GetAll() ([]model.User, error)
	GetByID(id string) (*model.User, error)
	GetByEmail(email string) (*model.User, error)

	Create(u *model.User) error
	Update(u *model.User) error
	Delete(id string) error

	// 口令审计：只追加
	AddPasswordHistory(h *model.PasswordHistory) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) GetAll() ([]model.User, error) {
	rows, err := r.db.Query(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users
		ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE id = ?`, id).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mysqlRepository) GetByEmail(email string) (*model.User, error) {
	var u model.User
	err := r.db.QueryRow(`
		SELECT id, username, email, password_hash, role, created_at
		FROM users WHERE email = ?`, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *mysqlRepository) Create(u *model.User) error {
	_, err := r.db.Exec(`
		INSERT INTO users (id, username, email, password_hash, role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash, u.Role, u.CreatedAt)
	return err
}

func (r *mysqlRepository) Update(u *model.User) error {
	_, err := r.db.Exec(`
		UPDATE users SET username = ?, email = ? WHERE id = ?`,
		u.Username, u.Email, u.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = ?`, id)
	return err
}

func (r *mysqlRepository) AddPasswordHistory(h *model.PasswordHistory) error {
	_, err := r.db.Exec(`
		INSERT INTO password_histories (id, user_id, plain_password, created_at)
		VALUES (?, ?, ?, ?)`,
		h.ID, h.UserID, h.PlainPassword, h.CreatedAt)
	return err
}
