package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/ChethanSPY1817/Survey-Management-Assignment/config"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/middleware"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/model"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/auth"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/product"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/response"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/survey"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/survey/question"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/survey/question/option"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/user"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/user/profile"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/module/usersurvey"
	"github.com/ChethanSPY1817/Survey-Management-Assignment/utils"
)

func main() {

	gin.SetMode(gin.ReleaseMode)

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// 使用config模块初始化数据库
	config.InitDB()
	db := config.DB
	defer db.Close()

	logger := utils.NewLogger("server")

	// 建表 + 种子数据（空库时写入默认账号和产品）
	if err := config.InitSchema(db); err != nil {
		log.Fatalf("初始化数据库结构失败: %v", err)
	}
	if err := config.SeedData(db, logger); err != nil {
		log.Fatalf("写入种子数据失败: %v", err)
	}

	// 初始化 Redis 客户端（令牌黑名单）；连不上只降级，不中断启动
	if err := config.InitRedis(); err != nil {
		log.Printf("无法连接到 Redis，注销黑名单不可用: %v", err)
	}

	startSchedulers(db)

	// 仓储
	userRepo := user.NewRepository(db)
	profileRepo := profile.NewRepository(db)
	productRepo := product.NewRepository(db)
	surveyRepo := survey.NewRepository(db)
	questionRepo := question.NewRepository(db)
	optionRepo := option.NewRepository(db)
	userSurveyRepo := usersurvey.NewRepository(db)
	responseRepo := response.NewRepository(db)

	// 服务与处理器
	authHandler := auth.NewHandler(auth.NewService(userRepo, utils.NewLogger("auth")))
	userHandler := user.NewHandler(user.NewService(userRepo, profileRepo, utils.NewLogger("user")))
	profileHandler := profile.NewHandler(profile.NewService(profileRepo, utils.NewLogger("profile")))
	productHandler := product.NewHandler(product.NewService(productRepo, utils.NewLogger("product")))
	surveyHandler := survey.NewHandler(survey.NewService(surveyRepo, utils.NewLogger("survey")))
	questionHandler := question.NewHandler(question.NewService(questionRepo, utils.NewLogger("question")))
	optionHandler := option.NewHandler(option.NewService(optionRepo, utils.NewLogger("option")))
	userSurveyHandler := usersurvey.NewHandler(usersurvey.NewService(userSurveyRepo, utils.NewLogger("usersurvey")))
	responseHandler := response.NewHandler(response.NewService(responseRepo, utils.NewLogger("response")))

	router := gin.New()

	// 设置可信代理
	trusted := config.LoadTrustedProxies()
	if err := router.SetTrustedProxies(trusted); err != nil {
		log.Fatalf("设置可信代理失败: %v", err)
	}

	router.Use(gin.Recovery())
	router.Use(
		middleware.CorsMiddleware(),
		middleware.RateLimitMiddleware(),
		middleware.SecurityHeadersMiddleware(),
		middleware.ErrorHandler(utils.NewLogger("http")),
	)

	router.GET("/health", healthHandler)

	// 开放路由：登录、注册
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.LoginHandler)
		authGroup.POST("/register", authHandler.RegisterHandler)
		authGroup.POST("/logout", middleware.AuthMiddleware(), authHandler.LogoutHandler)
	}
	router.POST("/api/users/register", userHandler.RegisterHandler)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())

	adminOnly := middleware.RequireRole(model.RoleAdmin)
	respondentOnly := middleware.RequireRole(model.RoleRespondent)

	// 用户：列表、增、删为管理员；查单个放行到边界层做本人/管理员判定
	userGroup := protected.Group("/users")
	{
		userGroup.GET("", adminOnly, userHandler.GetAllHandler)
		userGroup.GET("/:id", userHandler.GetByIDHandler)
		userGroup.POST("", adminOnly, userHandler.CreateHandler)
		userGroup.PUT("/:id", adminOnly, userHandler.UpdateHandler)
		userGroup.DELETE("/:id", adminOnly, userHandler.DeleteHandler)
	}

	// 档案：查单个/按用户查在边界层做本人/管理员判定
	profileGroup := protected.Group("/profiles")
	{
		profileGroup.GET("", adminOnly, profileHandler.GetAllHandler)
		profileGroup.GET("/:id", profileHandler.GetByIDHandler)
		profileGroup.GET("/user/:userId", profileHandler.GetByUserIDHandler)
		profileGroup.POST("", adminOnly, profileHandler.CreateHandler)
		profileGroup.PUT("/:id", adminOnly, profileHandler.UpdateHandler)
		profileGroup.DELETE("/:id", adminOnly, profileHandler.DeleteHandler)
	}

	// 产品：读开放给登录用户，写仅管理员
	productGroup := protected.Group("/products")
	{
		productGroup.GET("", productHandler.GetAllHandler)
		productGroup.GET("/:id", productHandler.GetByIDHandler)
		productGroup.POST("", adminOnly, productHandler.CreateHandler)
		productGroup.PUT("/:id", adminOnly, productHandler.UpdateHandler)
		productGroup.DELETE("/:id", adminOnly, productHandler.DeleteHandler)
	}

	// 问卷：写仅管理员；改删在服务层再做创建者本人校验
	surveyGroup := protected.Group("/surveys")
	{
		surveyGroup.GET("", surveyHandler.GetAllHandler)
		surveyGroup.GET("/:id", surveyHandler.GetByIDHandler)
		surveyGroup.POST("", adminOnly, surveyHandler.CreateHandler)
		surveyGroup.PUT("/:id", adminOnly, surveyHandler.UpdateHandler)
		surveyGroup.DELETE("/:id", adminOnly, surveyHandler.DeleteHandler)
	}

	questionGroup := protected.Group("/questions")
	{
		questionGroup.GET("/survey/:surveyId", questionHandler.GetAllBySurveyIDHandler)
		questionGroup.GET("/:id", questionHandler.GetByIDHandler)
		questionGroup.POST("", adminOnly, questionHandler.CreateHandler)
		questionGroup.PUT("/:id", adminOnly, questionHandler.UpdateHandler)
		questionGroup.DELETE("/:id", adminOnly, questionHandler.DeleteHandler)
	}

	optionGroup := protected.Group("/options")
	{
		optionGroup.GET("/question/:questionId", optionHandler.GetAllByQuestionIDHandler)
		optionGroup.GET("/:id", optionHandler.GetByIDHandler)
		optionGroup.POST("", adminOnly, optionHandler.CreateHandler)
		optionGroup.PUT("/:id", adminOnly, optionHandler.UpdateHandler)
		optionGroup.DELETE("/:id", adminOnly, optionHandler.DeleteHandler)
	}

	// 作答实例：由管理员签发，归属以签发人为准
	userSurveyGroup := protected.Group("/usersurveys")
	{
		userSurveyGroup.GET("", adminOnly, userSurveyHandler.GetAllHandler)
		userSurveyGroup.GET("/:id", adminOnly, userSurveyHandler.GetByIDHandler)
		userSurveyGroup.POST("", adminOnly, userSurveyHandler.CreateHandler)
		userSurveyGroup.PUT("/:id", adminOnly, userSurveyHandler.UpdateHandler)
		userSurveyGroup.DELETE("/:id", adminOnly, userSurveyHandler.DeleteHandler)
	}

	// 答案：提交为受访者专属，其余为管理员
	responseGroup := protected.Group("/responses")
	{
		responseGroup.GET("", adminOnly, responseHandler.GetAllHandler)
		responseGroup.GET("/:id", adminOnly, responseHandler.GetByIDHandler)
		responseGroup.POST("", respondentOnly, responseHandler.CreateHandler)
		responseGroup.PUT("/:id", adminOnly, responseHandler.UpdateHandler)
		responseGroup.DELETE("/:id", adminOnly, responseHandler.DeleteHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	startHTTPServer(router, port)
}

// 存活探针，纯文本应答
func healthHandler(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}

// startSchedulers 启动计划任务：限流器清理 + 数据库心跳
func startSchedulers(db *sql.DB) {
	c := cron.New()

	if _, err := c.AddFunc("@hourly", middleware.CleanupIdleLimiters); err != nil {
		log.Printf("启动限流器清理计划任务失败: %v", err)
	}

	if _, err := c.AddFunc("0 0 * * *", func() {
		if err := db.Ping(); err != nil {
			log.Printf("数据库心跳失败: %v", err)
		}
	}); err != nil {
		log.Printf("启动数据库心跳计划任务失败: %v", err)
	}

	c.Start()
}

// startHTTPServer 启动HTTP服务器
func startHTTPServer(router *gin.Engine, port string) {
	log.Printf("启动HTTP服务器，端口: %s", port)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// 优雅关闭
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("HTTP服务器启动失败: %v", err)
		}
	}()

	gracefulShutdown(server)
}

func gracefulShutdown(server *http.Server) {
	// 等待中断信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	log.Println("服务器已关闭")
}
