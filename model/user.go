package model

import "time"

type User struct {
	ID           string    `json:"userId"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // 密码哈希不下发
	Role         string    `json:"role"` // Admin / Respondent
	CreatedAt    time.Time `json:"createdAt"`
}

type UserProfile struct {
	ID        string  `json:"userProfileId"`
	UserID    string  `json:"userId"`
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
}

// PasswordHistory 明文口令审计表，只追加、不更新不删除
// （沿用旧系统的数据形态，安全上并非最佳实践）
type PasswordHistory struct {
	ID            string    `json:"passwordHistoryId"`
	UserID        string    `json:"userId"`
	PlainPassword string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// UserDto 用户视图，档案存在时带上档案字段
type UserDto struct {
	UserID    string    `json:"userId"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	FirstName *string   `json:"firstName,omitempty"`
	LastName  *string   `json:"lastName,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Address   *string   `json:"address,omitempty"`
}

type CreateUserRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

// UpdateUserRequest 可变字段：用户名、邮箱；档案存在时允许同时改档案子字段
type UpdateUserRequest struct {
	UserID    string  `json:"userId"`
	Username  string  `json:"username" binding:"required"`
	Email     string  `json:"email" binding:"required"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type CreateUserProfileRequest struct {
	UserID    string  `json:"userId" binding:"required"`
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

type UpdateUserProfileRequest struct {
	UserProfileID string  `json:"userProfileId"`
	FirstName     string  `json:"firstName" binding:"required"`
	LastName      string  `json:"lastName"`
	Phone         *string `json:"phone"`
	Address       *string `json:"address"`
}
