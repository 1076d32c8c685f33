package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	assetRoute "github.com/Candratama/four-best-website-sub000/internals/features/assets/route"
	assetService "github.com/Candratama/four-best-website-sub000/internals/features/assets/service"
	partnerRoute "github.com/Candratama/four-best-website-sub000/internals/features/partners/route"
	propertyRoute "github.com/Candratama/four-best-website-sub000/internals/features/properties/route"
	sectionRoute "github.com/Candratama/four-best-website-sub000/internals/features/sections/route"
	slideRoute "github.com/Candratama/four-best-website-sub000/internals/features/slides/route"
	submissionRoute "github.com/Candratama/four-best-website-sub000/internals/features/submissions/route"
	submissionService "github.com/Candratama/four-best-website-sub000/internals/features/submissions/service"
	authRoute "github.com/Candratama/four-best-website-sub000/internals/features/users/route"
	"github.com/Candratama/four-best-website-sub000/internals/helpers/oss"
	authMiddleware "github.com/Candratama/four-best-website-sub000/internals/middlewares/auth"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	// ===================== SHARED SERVICES =====================
	log.Println("[INFO] Initializing OSS storage...")
	storage, err := oss.NewServiceFromEnv()
	if err != nil {
		log.Fatalf("❌ Gagal inisialisasi OSS: %v", err)
	}
	ingestor := assetService.NewIngestor(storage)

	log.Println("[INFO] Initializing submission lifecycle...")
	brevo := submissionService.NewBrevoClientFromEnv()
	dispatcher := submissionService.NewDispatcher(brevo)
	lifecycle := submissionService.NewLifecycle(submissionService.NewGormSubmissionStore(db), dispatcher)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api")

	log.Println("[INFO] Setting up ADMIN group (JWT)...")
	admin := app.Group("/api/a", authMiddleware.AdminAuthMiddleware())

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting Auth routes...")
	authRoute.AuthPublicRoutes(public, db)
	authRoute.AuthAdminRoutes(admin, db)

	log.Println("[INFO] Mounting Submission routes...")
	submissionRoute.SubmissionPublicRoutes(public, lifecycle)
	submissionRoute.SubmissionAdminRoutes(admin, lifecycle)

	log.Println("[INFO] Mounting Asset routes...")
	assetRoute.AssetAdminRoutes(admin, ingestor)

	log.Println("[INFO] Mounting Partner routes...")
	partnerRoute.PartnerPublicRoutes(public, db, ingestor)
	partnerRoute.PartnerAdminRoutes(admin, db, ingestor)

	log.Println("[INFO] Mounting Property routes...")
	propertyRoute.PropertyPublicRoutes(public, db, ingestor)
	propertyRoute.PropertyAdminRoutes(admin, db, ingestor)

	log.Println("[INFO] Mounting Slide routes...")
	slideRoute.SlidePublicRoutes(public, db, ingestor)
	slideRoute.SlideAdminRoutes(admin, db, ingestor)

	log.Println("[INFO] Mounting Section routes...")
	sectionRoute.SectionPublicRoutes(public, db)
	sectionRoute.SectionAdminRoutes(admin, db)
}
