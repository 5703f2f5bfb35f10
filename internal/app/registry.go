package app

import (
	"database/sql"
	"os"

	"github.com/clovisdasilvaneto/clockin/internal/account"
	"github.com/clovisdasilvaneto/clockin/internal/auth"
	"github.com/clovisdasilvaneto/clockin/internal/authz"
	"github.com/clovisdasilvaneto/clockin/internal/clockin"
	"github.com/clovisdasilvaneto/clockin/internal/employee"
	"github.com/clovisdasilvaneto/clockin/internal/messaging/kafka"
	"github.com/clovisdasilvaneto/clockin/internal/middleware"
	"github.com/clovisdasilvaneto/clockin/internal/shared/counter"
	"github.com/clovisdasilvaneto/clockin/internal/workday"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	clockinRepo := clockin.NewRepository(gormDB)
	clockinSearchRepo := clockin.NewSearchRepository(gormDB)
	connectionRepo := account.NewConnectionRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	userRepo := account.NewUserRepository(gormDB)

	// --- Access Control ---
	enforcer, err := authz.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(userRepo)
	employeeService := employee.NewService(employeeRepo, counterRepo)
	socialService := account.NewSocialService(userRepo, connectionRepo, os.Getenv("ORG_EMAIL_DOMAIN"))
	workdayService := workday.NewService(clockinRepo, employeeRepo, rdb)
	// The workday service sits behind the clockin service as its cache
	// invalidator, so punch writes flush the aggregation cache.
	clockinService := clockin.NewService(db, clockinRepo, clockinSearchRepo, outboxRepo, workdayService)

	// --- Handlers ---
	accountHandler := account.NewHandler(socialService)
	authHandler := auth.NewHandler(authService)
	clockinHandler := clockin.NewHandler(clockinService)
	employeeHandler := employee.NewHandler(employeeService)
	workdayHandler := workday.NewHandler(workdayService)

	// --- Routes Registration ---
	api := router.Group("/api")
	api.Use(
		middleware.RequestID(),
		middleware.ContextLogger(),
		middleware.RateLimitByIP(rate.Limit(50), 100),
	)
	{
		account.RegisterRoutes(api, accountHandler)
		auth.RegisterRoutes(api, authHandler)
		clockin.RegisterRoutes(api, clockinHandler, enforcer, rdb)
		employee.RegisterRoutes(api, employeeHandler, enforcer)
		workday.RegisterRoutes(api, workdayHandler, enforcer)
	}

	return nil
}
