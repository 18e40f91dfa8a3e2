package option

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 选项数据访问接口
type Repository interface {
	GetAllByQuestionID(questionID string) ([]model.Option, error)
	GetByID(id string) (*model.Option, error)

	Create(o *model.Option) error
	Update(o *model.Option) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) GetAllByQuestionID(questionID string) ([]model.Option, error) {
	rows, err := r.db.Query(`
		SELECT id, question_id, text, order_index
		FROM options
		WHERE question_id = ?
		ORDER BY order_index`, questionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Option
	for rows.Next() {
		var o model.Option
		if err := rows.Scan(&o.ID, &o.QuestionID, &o.Text, &o.Order); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.Option, error) {
	var o model.Option
	err := r.db.QueryRow(`
		SELECT id, question_id, text, order_index FROM options WHERE id = ?`, id).
		Scan(&o.ID, &o.QuestionID, &o.Text, &o.Order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *mysqlRepository) Create(o *model.Option) error {
	_, err := r.db.Exec(`
		INSERT INTO options (id, question_id, text, order_index)
		VALUES (?, ?, ?, ?)`,
		o.ID, o.QuestionID, o.Text, o.Order)
	return err
}

func (r *mysqlRepository) Update(o *model.Option) error {
	_, err := r.db.Exec(`
		UPDATE options SET text = ?, order_index = ? WHERE id = ?`,
		o.Text, o.Order, o.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM options WHERE id = ?`, id)
	return err
}
