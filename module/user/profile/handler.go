package profile

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

func (h *Handler) GetAllHandler(c *gin.Context) {
	profiles, err := h.svc.GetAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// GetByIDHandler 本人或管理员可查看
func (h *Handler) GetByIDHandler(c *gin.Context) {
	id := c.Param("id")

	p, err := h.svc.GetByID(id)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	callerID := c.GetString(middleware.CtxUserID)
	callerRole := c.GetString(middleware.CtxRole)
	if !security.OwnerOrAdmin.Allows(p.UserID, callerID, callerRole) {
		utils.Fail(c, security.OwnerOrAdmin.Deny("UserProfile", id, "access"))
		return
	}

	c.JSON(http.StatusOK, p)
}

// GetByUserIDHandler 按用户id查档案；没有档案时404
func (h *Handler) GetByUserIDHandler(c *gin.Context) {
	userID := c.Param("userId")

	p, err := h.svc.GetByUserID(userID)
	if err != nil {
		utils.Fail(c, err)
		return
	}

	callerID := c.GetString(middleware.CtxUserID)
	callerRole := c.GetString(middleware.CtxRole)
	if !security.OwnerOrAdmin.Allows(p.UserID, callerID, callerRole) {
		utils.Fail(c, security.OwnerOrAdmin.Deny("UserProfile", userID, "access"))
		return
	}

	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	p, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateUserProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.UserProfileID != "" && req.UserProfileID != id {
		utils.Fail(c, model.NewBadRequest("UserProfile ID mismatch."))
		return
	}
	req.UserProfileID = id

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
