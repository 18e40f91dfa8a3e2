package profile

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 用户档案数据访问接口
type Repository interface {
	GetAll() ([]model.UserProfile, error)
	GetByID(id string) (*model.UserProfile, error)
	GetByUserID(userID string) (*model.UserProfile, error)

	Create(p *model.UserProfile) error
	Update(p *model.UserProfile) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

const profileColumns = "id, user_id, first_name, last_name, phone, address"

func scanProfile(row interface{ Scan(...interface{}) error }) (*model.UserProfile, error) {
	var p model.UserProfile
	if err := row.Scan(&p.ID, &p.UserID, &p.FirstName, &p.LastName, &p.Phone, &p.Address); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *mysqlRepository) GetAll() ([]model.UserProfile, error) {
	rows, err := r.db.Query(`SELECT ` + profileColumns + ` FROM user_profiles`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserProfile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.UserProfile, error) {
	p, err := scanProfile(r.db.QueryRow(`SELECT `+profileColumns+` FROM user_profiles WHERE id = ?`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *mysqlRepository) GetByUserID(userID string) (*model.UserProfile, error) {
	p, err := scanProfile(r.db.QueryRow(`SELECT `+profileColumns+` FROM user_profiles WHERE user_id = ?`, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *mysqlRepository) Create(p *model.UserProfile) error {
	_, err := r.db.Exec(`
		INSERT INTO user_profiles (id, user_id, first_name, last_name, phone, address)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Phone, p.Address)
	return err
}

func (r *mysqlRepository) Update(p *model.UserProfile) error {
	_, err := r.db.Exec(`
		UPDATE user_profiles SET first_name = ?, last_name = ?, phone = ?, address = ? WHERE id = ?`,
		p.FirstName, p.LastName, p.Phone, p.Address, p.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM user_profiles WHERE id = ?`, id)
	return err
}
