package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/middleware"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/security"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// GetAllHandler 管理员查看全部用户
func (h *Handler) GetAllHandler(c *gin.Context) {
	users, err := h.svc.GetAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetByIDHandler 本人或管理员才能查看指定用户（边界层按令牌声明判定）
func (h *Handler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")

	u, err := h.svc.GetByID(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	callerID := c.GetString(middleware.CtxUserID)
	callerRole := c.GetString(middleware.CtxRole)
	if !security.OwnerOrAdmin.Allows(u.UserID, callerID, callerRole) {
		utils.Fail(c, security.OwnerOrAdmin.Deny("User", id, "access"))
		return
	}

	c.JSON(http.StatusOK, u)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	u, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.UserID != "" && req.UserID != id {
		utils.Fail(c, model.NewBadRequest("User ID mismatch."))
		return
	}
	req.UserID = id

	if err := h.svc.Update(&req); err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteHandler(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id")); err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterHandler 开放的自助注册，角色强制为 Respondent
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	req.Role = model.RoleRespondent

	u, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"userId":   u.UserID,
		"username": u.Username,
		"email":    u.Email,
		"role":     u.Role,
	})
}
