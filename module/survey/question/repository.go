package question

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 题目数据访问接口
type Repository interface {
	GetAllBySurveyID(surveyID string) ([]model.Question, error)
	GetByID(id string) (*model.Question, error)
	// 引用校验：题目必须挂在已存在的问卷下
	SurveyExists(surveyID string) (bool, error)

	Create(q *model.Question) error
	Update(q *model.Question) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

func (r *mysqlRepository) GetAllBySurveyID(surveyID string) ([]model.Question, error) {
	rows, err := r.db.Query(`
		SELECT id, survey_id, text, type, order_index
		FROM questions
		WHERE survey_id = ?
		ORDER BY order_index`, surveyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Question
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.SurveyID, &q.Text, &q.Type, &q.Order); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.Question, error) {
	var q model.Question
	err := r.db.QueryRow(`
		SELECT id, survey_id, text, type, order_index FROM questions WHERE id = ?`, id).
		Scan(&q.ID, &q.SurveyID, &q.Text, &q.Type, &q.Order)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &q, nil
}

func (r *mysqlRepository) SurveyExists(surveyID string) (bool, error) {
	var cnt int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM surveys WHERE id = ?`, surveyID).Scan(&cnt); err != nil {
		return false, err
	}
	return cnt > 0, nil
}

func (r *mysqlRepository) Create(q *model.Question) error {
	_, err := r.db.Exec(`
		INSERT INTO questions (id, survey_id, text, type, order_index)
		VALUES (?, ?, ?, ?, ?)`,
		q.ID, q.SurveyID, q.Text, q.Type, q.Order)
	return err
}

func (r *mysqlRepository) Update(q *model.Question) error {
	_, err := r.db.Exec(`
		UPDATE questions SET text = ?, type = ?, order_index = ? WHERE id = ?`,
		q.Text, q.Type, q.Order, q.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM questions WHERE id = ?`, id)
	return err
}
