package utils

import "github.com/google/uuid"

// NewID 生成实体主键（全局唯一、不透明）
func NewID() string {
	return uuid.New().String()
}
