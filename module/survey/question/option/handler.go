package option

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) GetAllByQuestionIDHandler(c *gin.Context) {
	options, err := h.svc.GetAllByQuestionID(c.Param("questionId"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if options == nil {
		options = []model.Option{}
	}
	c.JSON(http.StatusOK, options)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	o, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	o, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.OptionID != "" && req.OptionID != id {
		utils.Fail(c, model.NewBadRequest("Option ID mismatch"))
		return
	}
	req.OptionID = id

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
