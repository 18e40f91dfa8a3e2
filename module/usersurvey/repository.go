package usersurvey

import (
	"database/sql"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// Repository 作答实例数据访问接口
type Repository interface {
	GetAllByCreator(createdByID string) ([]model.UserSurvey, error)
	GetByID(id string) (*model.UserSurvey, error)

	Create(us *model.UserSurvey) error
	Update(us *model.UserSurvey) error
	Delete(id string) error
}

type mysqlRepository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &mysqlRepository{db: db}
}

const userSurveyColumns = "id, user_id, survey_id, created_by_id, started_at, completed_at"

func (r *mysqlRepository) GetAllByCreator(createdByID string) ([]model.UserSurvey, error) {
	rows, err := r.db.Query(`
		SELECT `+userSurveyColumns+`
		FROM user_surveys
		WHERE created_by_id = ?
		ORDER BY started_at`, createdByID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.UserSurvey
	for rows.Next() {
		var us model.UserSurvey
		if err := rows.Scan(&us.ID, &us.UserID, &us.SurveyID,
			&us.CreatedByID, &us.StartedAt, &us.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, us)
	}
	return out, rows.Err()
}

func (r *mysqlRepository) GetByID(id string) (*model.UserSurvey, error) {
	var us model.UserSurvey
	err := r.db.QueryRow(`SELECT `+userSurveyColumns+` FROM user_surveys WHERE id = ?`, id).
		Scan(&us.ID, &us.UserID, &us.SurveyID,
			&us.CreatedByID, &us.StartedAt, &us.CompletedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &us, nil
}

func (r *mysqlRepository) Create(us *model.UserSurvey) error {
	_, err := r.db.Exec(`
		INSERT INTO user_surveys (id, user_id, survey_id, created_by_id, started_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		us.ID, us.UserID, us.SurveyID, us.CreatedByID, us.StartedAt, us.CompletedAt)
	return err
}

func (r *mysqlRepository) Update(us *model.UserSurvey) error {
	_, err := r.db.Exec(`
		UPDATE user_surveys SET completed_at = ? WHERE id = ?`,
		us.CompletedAt, us.ID)
	return err
}

func (r *mysqlRepository) Delete(id string) error {
	_, err := r.db.Exec(`DELETE FROM user_surveys WHERE id = ?`, id)
	return err
}
