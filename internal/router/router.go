package router

import (
	"github.com/careform/backend/config"
	"github.com/careform/backend/internal/handler"
	"github.com/careform/backend/internal/middleware"
	"github.com/careform/backend/internal/service"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func Setup(
	cfg *config.Config,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	providerHandler *handler.ProviderHandler,
	templateHandler *handler.TemplateHandler,
	affidavitHandler *handler.AffidavitHandler,
	auditHandler *handler.AuditHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	r.Use(gzip.Gzip(gzip.DefaultCompression))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// 以下路由均要求登录
		authed := api.Group("")
		authed.Use(middleware.Auth(authService))
		{
			patients := authed.Group("/patients")
			{
				patients.GET("", patientHandler.List)
				patients.POST("", patientHandler.Create)
				patients.GET("/:id", patientHandler.Get)
				patients.PUT("/:id", patientHandler.Update)
				patients.DELETE("/:id", patientHandler.Delete)
				patients.POST("/:id/providers", patientHandler.LinkProvider)
				patients.DELETE("/:id/providers/:providerId", patientHandler.UnlinkProvider)
				patients.GET("/:id/affidavits", patientHandler.Affidavits)
			}

			providers := authed.Group("/providers")
			{
				providers.GET("", providerHandler.List)
				providers.POST("", providerHandler.Create)
				providers.GET("/:id", providerHandler.Get)
				providers.PUT("/:id", providerHandler.Update)
				providers.DELETE("/:id", middleware.RequireAdmin(), providerHandler.Delete)
				providers.POST("/:id/hipaa-sample", providerHandler.UploadHIPAASample)
			}

			templates := authed.Group("/templates")
			{
				templates.GET("", templateHandler.List)
				templates.POST("", templateHandler.Create)
				templates.GET("/placeholders", templateHandler.Placeholders)
				templates.GET("/:id", templateHandler.Get)
				templates.PUT("/:id", templateHandler.Update)
				templates.DELETE("/:id", middleware.RequireAdmin(), templateHandler.Delete)
				templates.GET("/:id/export/pdf", templateHandler.ExportPDF)
			}

			affidavits := authed.Group("/affidavits")
			{
				affidavits.GET("", affidavitHandler.List)
				affidavits.POST("", affidavitHandler.Create)
				affidavits.GET("/:id", affidavitHandler.Get)
				affidavits.POST("/:id/generate", affidavitHandler.Generate)
				affidavits.POST("/:id/sign", affidavitHandler.Sign)
				affidavits.DELETE("/:id", affidavitHandler.Delete)
			}

			audit := authed.Group("/audit", middleware.RequireAdmin())
			{
				audit.GET("/recent", auditHandler.Recent)
				audit.GET("/:entity/:id", auditHandler.ByEntity)
			}
		}
	}

	return r
}
