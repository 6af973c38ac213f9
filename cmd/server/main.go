package main

import (
	"flag"
	"log"
	"os"

	"k8s.io/klog/v2"

	"github.com/careform/backend/config"
	"github.com/careform/backend/internal/eventbus"
	"github.com/careform/backend/internal/handler"
	"github.com/careform/backend/internal/pkg/database"
	"github.com/careform/backend/internal/repository"
	"github.com/careform/backend/internal/router"
	"github.com/careform/backend/internal/service"
	"github.com/careform/backend/internal/subscriber"
)

func main() {
	// 初始化 klog
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	klog.V(6).Info("服务启动中...")

	cfg := config.GetConfig()

	if err := os.MkdirAll(cfg.Data.Dir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	if err := os.MkdirAll(cfg.Data.UploadDir, 0755); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	// 初始化数据库
	db, err := database.InitDB(cfg.Database.Type, cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// 首次启动时创建管理员账号
	if err := service.InitAdminUser(db); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	providerRepo := repository.NewProviderRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	affidavitRepo := repository.NewAffidavitRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	// 审计事件总线，订阅者负责落库
	auditBus := eventbus.NewAuditEventBus()
	subscriber.NewAuditSubscriber(auditRepo).Register(auditBus)

	// 初始化 Service
	authService := service.NewAuthService(cfg, userRepo)
	patientService := service.NewPatientService(patientRepo, providerRepo, auditBus)
	providerService := service.NewProviderService(providerRepo, auditBus)
	templateService := service.NewTemplateService(templateRepo, affidavitRepo, auditBus)
	affidavitService := service.NewAffidavitService(affidavitRepo, templateRepo, patientRepo, providerRepo, auditBus)
	auditService := service.NewAuditService(auditRepo)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	patientHandler := handler.NewPatientHandler(patientService, affidavitService)
	providerHandler := handler.NewProviderHandler(providerService, cfg.Data.UploadDir)
	templateHandler := handler.NewTemplateHandler(templateService)
	affidavitHandler := handler.NewAffidavitHandler(affidavitService)
	auditHandler := handler.NewAuditHandler(auditService)

	// 设置路由
	r := router.Setup(cfg, authService,
		authHandler, patientHandler, providerHandler,
		templateHandler, affidavitHandler, auditHandler)

	log.Printf("Server starting on port %s...", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
