package model

import "time"

type Survey struct {
	ID              string    `json:"surveyId"`
	Title           string    `json:"title"`
	Description     *string   `json:"description,omitempty"`
	IsActive        bool      `json:"isActive"`
	CreatedByUserID string    `json:"createdByUserId"` // 创建后不可变
	ProductID       *string   `json:"productId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type CreateSurveyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
	ProductID   *string `json:"productId"`
}

// UpdateSurveyRequest 可变字段：标题、描述、启用标志、关联产品
type UpdateSurveyRequest struct {
	SurveyID    string  `json:"surveyId"`
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	IsActive    bool    `json:"isActive"`
	ProductID   *string `json:"productId"`
}
