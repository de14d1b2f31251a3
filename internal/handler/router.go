package handler

import (
	"galatea-ai-backend/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(h *Handler) *gin.Engine {
	router := gin.Default()
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowHeaders = append(config.AllowHeaders, middleware.RequestIDHeader)
	config.ExposeHeaders = append(config.ExposeHeaders, middleware.RequestIDHeader)
	router.Use(cors.New(config))
	router.Use(middleware.RequestID())

	router.GET("/", h.Root)
	router.POST("/generate-profile-image", h.GenerateProfileImage)
	router.GET("/models", h.GetModels)
	router.GET("/models/:id", h.GetModel)
	router.POST("/check-profile-match", h.CheckProfileMatch)
	router.GET("/images/:image_name", h.GetImage)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	return router
}
