package model

import "strings"

// 用户角色，只有两种取值
const (
	RoleAdmin      = "Admin"
	RoleRespondent = "Respondent"
)

// 题目类型
const (
	QuestionTypeSingleChoice   = "SingleChoice"
	QuestionTypeMultipleChoice = "MultipleChoice"
	QuestionTypeText           = "Text"
	QuestionTypeRating         = "Rating"
)

// ParseRole 解析角色字符串（忽略大小写），无法识别时回退为 Respondent
func ParseRole(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	default:
		return RoleRespondent
	}
}

// ParseQuestionType 解析题目类型（忽略大小写），无法识别时返回 false
func ParseQuestionType(s string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "singlechoice":
		return QuestionTypeSingleChoice, true
	case "multiplechoice":
		return QuestionTypeMultipleChoice, true
	case "text":
		return QuestionTypeText, true
	case "rating":
		return QuestionTypeRating, true
	default:
		return "", false
	}
}
