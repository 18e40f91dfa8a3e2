package model

import "time"

// UserSurvey 一名受访者对一份问卷的一次作答实例，
// 由某个管理员签发（归属校验针对 CreatedByID，而不是受访者）
type UserSurvey struct {
	ID          string     `json:"userSurveyId"`
	UserID      string     `json:"userId"`      // 受访者
	SurveyID    string     `json:"surveyId"`
	CreatedByID string     `json:"createdById"` // 签发该作答实例的管理员
	StartedAt   time.Time  `json:"startedAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// Response 一次作答实例中对一道题的回答；
// 选择题填 OptionID，文本题填 AnswerText（互斥性不做强校验，沿用旧系统）
type Response struct {
	ID           string    `json:"responseId"`
	UserSurveyID string    `json:"userSurveyId"`
	QuestionID   string    `json:"questionId"`
	OptionID     *string   `json:"optionId,omitempty"`
	AnswerText   *string   `json:"answerText,omitempty"`
	AnsweredAt   time.Time `json:"answeredAt"`
}

type CreateUserSurveyRequest struct {
	UserID   string `json:"userId" binding:"required"`
	SurveyID string `json:"surveyId" binding:"required"`
}

// UpdateUserSurveyRequest 仅完成时间可变；受访者、问卷、签发人、开始时间均不可变
type UpdateUserSurveyRequest struct {
	UserSurveyID string     `json:"userSurveyId"`
	CompletedAt  *time.Time `json:"completedAt"`
}

type CreateResponseRequest struct {
	UserSurveyID string  `json:"userSurveyId" binding:"required"`
	QuestionID   string  `json:"questionId" binding:"required"`
	OptionID     *string `json:"optionId"`
	AnswerText   *string `json:"answerText"`
}

type UpdateResponseRequest struct {
	ResponseID string  `json:"responseId"`
	OptionID   *string `json:"optionId"`
	AnswerText *string `json:"answerText"`
}
