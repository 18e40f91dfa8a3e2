package product

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
	products, err := h.svc.GetAll()
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *Handler) GetByIDHandler(c *gin.Context) {
	p, err := h.svc.GetByID(c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) CreateHandler(c *gin.Context) {
	var req model.CreateProductRequest
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

	var req model.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}
	if req.ProductID != "" && req.ProductID != id {
		utils.Fail(c, model.NewBadRequest("Product ID mismatch."))
		return
	}
	req.ProductID = id

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
