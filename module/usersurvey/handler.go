package usersurvey

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/middleware"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetAllHandler(c *gin.Context) {
	callerID := c.GetString(middleware.CtxUserID)

	list, err := h.svc.GetAll(callerID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if list == nil {
		list = []model.UserSurvey{}
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	us, err := h.svc.GetByID(c.Param("id"),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, us)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateUserSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	us, err := h.svc.Create(&req, c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, us)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateUserSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.UserSurveyID != "" && req.UserSurveyID != id {
		utils.Fail(c, model.NewBadRequest("UserSurvey ID mismatch"))
		return
	}
	req.UserSurveyID = id

	err := h.svc.Update(&req,
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteHandler(c *gin.Context) {
	err := h.svc.Delete(c.Param("id"),
		c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
