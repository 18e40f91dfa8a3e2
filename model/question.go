package model

type Question struct {
	ID       string `json:"questionId"`
	SurveyID string `json:"surveyId"` // 创建后不可变
	Text     string `json:"text"`
	Type     string `json:"type"` // SingleChoice / MultipleChoice / Text / Rating
	Order    int    `json:"order"`
}

type Option struct {
	ID         string `json:"optionId"`
	QuestionID string `json:"questionId"` // 创建后不可变
	Text       string `json:"text"`
	Order      int    `json:"order"`
}

type CreateQuestionRequest struct {
	SurveyID string `json:"surveyId" binding:"required"`
	Text     string `json:"text" binding:"required"`
	Type     string `json:"type" binding:"required"`
	Order    int    `json:"order"`
}

type UpdateQuestionRequest struct {
	QuestionID string `json:"questionId"`
	Text       string `json:"text" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Order      int    `json:"order"`
}

type CreateOptionRequest struct {
	QuestionID string `json:"questionId" binding:"required"`
	Text       string `json:"text" binding:"required"`
	Order      int    `json:"order"`
}

type UpdateOptionRequest struct {
	OptionID string `json:"optionId"`
	Text     string `json:"text" binding:"required"`
	Order    int    `json:"order"`
}
