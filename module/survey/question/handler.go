package question

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

func (h *Handler) GetAllBySurveyIDHandler(c *gin.Context) {
	questions, err := h.svc.GetAllBySurveyID(c.Param("surveyId"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if questions == nil {
		questions = []model.Question{}
	}
	c.JSON(http.StatusOK, questions)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	q, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, q)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	q, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, q)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.QuestionID != "" && req.QuestionID != id {
		utils.Fail(c, model.NewBadRequest("Question ID mismatch"))
		return
	}
	req.QuestionID = id

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
