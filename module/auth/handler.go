package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/config"
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

func (h *Handler) LoginHandler(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	resp, err := h.svc.Login(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) RegisterHandler(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, model.NewBadRequest("无效的请求格式"))
		return
	}

	resp, err := h.svc.Register(&req)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler 当前令牌进黑名单，保留到其自然过期
func (h *Handler) LogoutHandler(c *gin.Context) {
	token := c.GetString(middleware.CtxToken)
	if token == "" {
		utils.Fail(c, model.NewUnauthorized("缺少认证信息"))
		return
	}

	if err := config.AddToBlacklist(token, TokenTTL(token)); err != nil {
		utils.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
