package response

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 答案数据访问接口
type Repository interface {
	GetAll() ([]model.Response, error)
	GetByID(id string) (*model.Response, error)

	Create(resp *model.Response) error
	Update(resp *model.Response) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

const responseColumns = "id, user_survey_id, question_id, option_id, answer_text, answered_at"

func (r *mysqlRepository) GetAll() ([]model.Response, error) {
	rows, err := r.db.Query(`SELECT ` + responseColumns + ` FROM responses ORDER BY answered_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Response
	for rows.Next() {
		var resp model.Response
		if err := rows.Scan(&resp.ID, &resp.UserSurveyID, &resp.QuestionID,
			&resp.OptionID, &resp.AnswerText, &resp.AnsweredAt); err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.Response, error) {
	var resp model.Response
	err := r.db.QueryRow(`SELECT `+responseColumns+` FROM responses WHERE id = ?`, id).
		Scan(&resp.ID, &resp.UserSurveyID, &resp.QuestionID,
			&resp.OptionID, &resp.AnswerText, &resp.AnsweredAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (r *mysqlRepository) Create(resp *model.Response) error {
	_, err := r.db.Exec(`
		INSERT INTO responses (id, user_survey_id, question_id, option_id, answer_text, answered_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		resp.ID, resp.UserSurveyID, resp.QuestionID, resp.OptionID, resp.AnswerText, resp.AnsweredAt)
	return err
}

func (r *mysqlRepository) Update(resp *model.Response) error {
	_, err := r.db.Exec(`
		UPDATE responses SET option_id = ?, answer_text = ? WHERE id = ?`,
		resp.OptionID, resp.AnswerText, resp.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM responses WHERE id = ?`, id)
	return err
}
