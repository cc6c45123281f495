package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "fundraising-backend/internal/adapter/http"
	"fundraising-backend/internal/adapter/middleware"
	"fundraising-backend/internal/adapter/repository/mysql"
	"fundraising-backend/internal/config"
	"fundraising-backend/internal/domain/user"
	"fundraising-backend/internal/infrastructure/cache"
	"fundraising-backend/internal/infrastructure/db"
	"fundraising-backend/internal/usecase/assignment"
	"fundraising-backend/internal/usecase/directory"
	"fundraising-backend/internal/usecase/member"
	"fundraising-backend/internal/usecase/registration"
	"fundraising-backend/internal/usecase/report"
	"fundraising-backend/internal/usecase/review"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatalf("mysql: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}

	// repositories
	donors := mysql.NewDonorRepository(gdb)
	churches := mysql.NewChurchRepository(gdb)
	reps := mysql.NewRepresentativeRepository(gdb)
	pledges := mysql.NewPledgeRepository(gdb)
	payments := mysql.NewPaymentRepository(gdb)
	users := mysql.NewUserRepository(gdb)
	txm := mysql.NewGormUoW(gdb)

	// usecases
	wizardStore := cache.NewWizardStore(rdb, time.Duration(cfg.WizardTTLSecs)*time.Second)
	registrationUC := registration.NewUsecase(txm)
	reviewUC := review.NewUsecase(txm)
	assignmentUC := assignment.NewUsecase(donors, churches, reps, wizardStore, txm)
	directoryUC := directory.NewUsecase(churches, reps, donors, txm)
	memberUC := member.NewUsecase(users, txm, cfg.JWTSecret, time.Duration(cfg.TokenTTLMins)*time.Minute)
	reportUC := report.NewUsecase(pledges, payments, users)

	// handlers
	prod := cfg.Production()
	h := httpadp.NewHandler()
	registrationH := httpadp.NewRegistrationHandler(registrationUC, prod)
	reviewH := httpadp.NewReviewHandler(reviewUC, prod)
	assignmentH := httpadp.NewAssignmentHandler(assignmentUC, prod)
	directoryH := httpadp.NewDirectoryHandler(directoryUC, prod)
	memberH := httpadp.NewMemberHandler(memberUC, prod)
	reportH := httpadp.NewReportHandler(reportUC, prod)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	// routes
	e.GET("/health", h.Health)
	e.POST("/api/auth/login", memberH.Login)

	auth := middleware.JWTAuth(cfg.JWTSecret)
	admin := string(user.RoleAdmin)
	registrar := string(user.RoleRegistrar)

	// registrar portal
	reg := e.Group("/api/registrar", auth, middleware.RequireRole(registrar, admin))
	reg.POST("/donations", registrationH.SubmitDonation,
		middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second))
	reg.GET("/packages", registrationH.ListPackages)
	reg.GET("/statistics", reportH.Statistics)

	// assignment wizard (registrar and admin)
	asn := e.Group("/api/assign", auth, middleware.RequireRole(registrar, admin))
	asn.POST("/start", assignmentH.Start)
	asn.POST("/:token/church", assignmentH.ChooseChurch)
	asn.POST("/:token/representative", assignmentH.ChooseRepresentative)
	asn.POST("/:token/confirm", assignmentH.Confirm)

	// shared directory lookups
	dir := e.Group("/api", auth, middleware.RequireRole(registrar, admin))
	dir.GET("/churches", directoryH.ListChurches)
	dir.GET("/churches/:church_id", directoryH.GetChurch)
	dir.GET("/churches/:church_id/representatives", directoryH.ListRepresentatives)
	dir.GET("/donors", directoryH.ListDonors)
	dir.GET("/donors/:donor_id/certificate", directoryH.DonorCertificate)

	// admin portal
	adm := e.Group("/api/admin", auth, middleware.RequireRole(admin))
	adm.POST("/pledges/:pledge_id/review", reviewH.ReviewPledge)
	adm.POST("/payments/:payment_id/review", reviewH.ReviewPayment)
	adm.POST("/churches", directoryH.CreateChurch)
	adm.PUT("/churches/:church_id", directoryH.UpdateChurch)
	adm.DELETE("/churches/:church_id", directoryH.DeleteChurch)
	adm.POST("/representatives", directoryH.CreateRepresentative)
	adm.PUT("/representatives/:representative_id", directoryH.UpdateRepresentative)
	adm.DELETE("/representatives/:representative_id", directoryH.DeactivateRepresentative)
	adm.POST("/users", memberH.CreateMember)
	adm.PUT("/users/:user_id", memberH.UpdateMember)
	adm.GET("/users", memberH.ListMembers)
	adm.GET("/users/:user_id", memberH.GetMember)
	adm.GET("/reports/registrar-performance", reportH.RegistrarPerformance)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
