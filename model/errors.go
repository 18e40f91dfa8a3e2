package model

import "fmt"

// 错误类别，边界中间件据此映射 HTTP 状态码
type ErrorKind string

const (
	KindBadRequest   ErrorKind = "BadRequestException"
	KindUnauthorized ErrorKind = "UnauthorizedException"
	KindNotFound     ErrorKind = "NotFoundException"
	KindConflict     ErrorKind = "ConflictException"
)

// AppError 服务层抛出的类型化错误，处理链上只在边界处翻译一次
type AppError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
}

func (e *AppError) Error() string { return e.Message }

func NewBadRequest(msg string) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg}
}

// NewNotFound 资源不存在；id 为空时表示整表为空之类的场景
func NewNotFound(resource, id string) *AppError {
	if id == "" {
		return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("No %ss found in the database.", resource)}
	}
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf("%s with ID '%s' not found.", resource, id)}
}

func NewConflict(msg string) *AppError {
	return &AppError{Kind: KindConflict, Message: msg}
}
