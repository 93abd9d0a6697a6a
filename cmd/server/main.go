package main

import (
	"log"

	"github.com/gin-gonic/gin"
	redisv9 "github.com/redis/go-redis/v9"

	"hr_backend/internal/app/di"
	"hr_backend/internal/app/router"
	"hr_backend/internal/config"
	authadapters "hr_backend/internal/feature/auth/adapters"
	authhandler "hr_backend/internal/feature/auth/transport/handler"
	authusecase "hr_backend/internal/feature/auth/usecase"
	employeeadapters "hr_backend/internal/feature/employees/adapters"
	employeehandler "hr_backend/internal/feature/employees/transport/handler"
	employeeusecase "hr_backend/internal/feature/employees/usecase"
	infradb "hr_backend/internal/platform/db"
	jwtmw "hr_backend/internal/platform/jwt"
	infraredis "hr_backend/internal/platform/redis"
	"hr_backend/internal/shared/ratelimiter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	db := infradb.OpenDB(cfg)

	// Redis is optional: without it the stats endpoint recomputes
	// the aggregation on every request.
	var rdb *redisv9.Client
	if cfg.RedisEnabled() {
		if tmp, err := infraredis.NewRedisClient(cfg); err != nil {
			log.Println("[WARN] Redis unavailable. Running without stats cache.")
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					log.Println("[ERROR] Failed to close Redis client:", err)
				}
			}()
		}
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	employeeRepo := employeeadapters.NewEmployeeGorm(db)

	// Stats pipeline, cached when Redis is up.
	statsProvider, statsInvalidator := di.NewStatsProvider(rdb, employeeRepo, cfg.StatsCacheTTL)

	// Usecase
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, cfg.JWTExpiration)
	authUC := authusecase.NewAuthUsecase(userRepo, tokens)
	employeesUC := employeeusecase.NewEmployeesUsecase(employeeRepo, statsInvalidator)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	employeeH := employeehandler.NewEmployeeHandler(employeesUC, statsProvider)

	r := router.NewRouter(authH, employeeH, router.Options{
		JWTSecret:          cfg.JWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		Limiter:            ratelimiter.NewRateLimiter(cfg.RateLimit, cfg.RateWindow),
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
