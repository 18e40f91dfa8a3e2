package response

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

func (h *Handler) GetAllHandler(c *gin.Context) {
	responses, err := h.svc.GetAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	if responses == nil {
		responses = []model.Response{}
	}
	c.JSON(http.StatusOK, responses)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	resp, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	resp, err := h.svc.Create(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) UpdateHandler(c *gin.Context) {
	id := c.Param("id")

	var req model.UpdateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.ResponseID != "" && req.ResponseID != id {
		utils.Fail(c, model.NewBadRequest("Response ID mismatch"))
		return
	}
	req.ResponseID = id

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
