package security

import (
	"fmt"
	"strings"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
)

// OwnershipPolicy 资源归属校验策略。
// 每类资源显式选定一种策略，而不是各个服务各写各的判断：
//   - StrictOwner:   只有记录的创建者本人可以操作，管理员也不例外（问卷）
//   - OwnerOrAdmin:  本人或管理员可以访问（用户、档案）
//   - HideExistence: 非归属者一律按"不存在"处理，不暴露资源是否存在（作答实例）
type OwnershipPolicy int

const (
	StrictOwner OwnershipPolicy = iota
	OwnerOrAdmin
	HideExistence
)

// Allows 判定调用者能否操作归 ownerID 所有的资源
func (p OwnershipPolicy) Allows(ownerID, callerID, callerRole string) bool {
	switch p {
	case StrictOwner:
		return callerID == ownerID
	case OwnerOrAdmin:
		return callerID == ownerID || callerRole == model.RoleAdmin
	case HideExistence:
		return callerID == ownerID
	default:
		return false
	}
}

// Deny 返回该策略下的拒绝错误；action 形如 "update"、"delete"、"access"
func (p OwnershipPolicy) Deny(resource, resourceID, action string) *model.AppError {
	switch p {
	case StrictOwner:
		return model.NewUnauthorized(fmt.Sprintf("You are not authorized to %s this %s.", action, strings.ToLower(resource)))
	case OwnerOrAdmin:
		return model.NewUnauthorized(fmt.Sprintf("You are not allowed to %s this %s.", action, strings.ToLower(resource)))
	case HideExistence:
		return model.NewNotFound(resource, resourceID)
	default:
		return model.NewUnauthorized("Permission denied.")
	}
}
