package survey

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 问卷数据访问接口
type Repository interface {
	GetAll() ([]model.Survey, error)
	GetByID(id string) (*model.Survey, error)

	Create(s *model.Survey) error
	Update(s *model.Survey) error
	// 删除依赖外键级联：user_surveys 级联删除；
	// 仍被 responses 引用时数据库会拒绝（RESTRICT）
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

const surveyColumns = "id, title, description, is_active, created_by_user_id, product_id, created_at"

func (r *mysqlRepository) GetAll() ([]model.Survey, error) {
	rows, err := r.db.Query(`SELECT ` + surveyColumns + ` FROM surveys ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Survey
	for rows.Next() {
		var s model.Survey
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.IsActive,
			&s.CreatedByUserID, &s.ProductID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.Survey, error) {
	var s model.Survey
	err := r.db.QueryRow(`SELECT `+surveyColumns+` FROM surveys WHERE id = ?`, id).
		Scan(&s.ID, &s.Title, &s.Description, &s.IsActive,
			&s.CreatedByUserID, &s.ProductID, &s.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *mysqlRepository) Create(s *model.Survey) error {
	_, err := r.db.Exec(`
		INSERT INTO surveys (id, title, description, is_active, created_by_user_id, product_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Title, s.Description, s.IsActive, s.CreatedByUserID, s.ProductID, s.CreatedAt)
	return err
}

func (r *mysqlRepository) Update(s *model.Survey) error {
	_, err := r.db.Exec(`
		UPDATE surveys SET title = ?, description = ?, is_active = ?, product_id = ? WHERE id = ?`,
		s.Title, s.Description, s.IsActive, s.ProductID, s.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM surveys WHERE id = ?`, id)
	return err
}
