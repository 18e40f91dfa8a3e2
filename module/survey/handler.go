package survey

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
	surveys, err := h.svc.GetAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if surveys == nil {
		surveys = []model.Survey{}
	}
	c.JSON(http.StatusOK, surveys)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	sv, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sv)
}

// CreateHandler 创建者身份取自令牌，请求体里不接受
func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("Survey data is required."))
		return
	}

	creatorID := c.GetString(middleware.CtxUserID)
	sv, err := h.svc.Create(&req, creatorID)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sv)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.SurveyID != "" && req.SurveyID != id {
		utils.Fail(c, model.NewBadRequest("ID mismatch"))
		return
	}
	req.SurveyID = id

	if err := h.svc.Update(&req, c.GetString(middleware.CtxUserID)); err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteHandler(c *gin.Context) {
	if err := h.svc.Delete(c.Param("id"), c.GetString(middleware.CtxUserID)); err != nil {
		utils.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
