// Package router wires HTTP routes to their handlers.
package router

import (
	"strings"

	authhandler "hr_backend/internal/feature/auth/transport/handler"
	employeehandler "hr_backend/internal/feature/employees/transport/handler"
	"hr_backend/internal/platform/http/handler"
	jwtmw "hr_backend/internal/platform/jwt"
	"hr_backend/internal/shared/ratelimiter"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the cross-cutting settings the router needs beyond
// its handlers.
type Options struct {
	JWTSecret          string
	CORSAllowedOrigins string
	Limiter            *ratelimiter.RateLimiter
}

func NewRouter(authH *authhandler.AuthHandler, employeeH *employeehandler.EmployeeHandler, opts Options) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(opts.CORSAllowedOrigins, ",")
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(corsConfig))

	if opts.Limiter != nil {
		r.Use(opts.Limiter.Middleware())
	}

	// Unauthenticated routes.
	r.GET("/healthz", handler.Health)
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "employees api"})
	})

	auth := r.Group("/auth")
	{
		auth.POST("/login", authH.Login)
		auth.POST("/register", authH.Register)
		auth.PATCH("/update", authH.Update)
		auth.DELETE("/delete_account", authH.DeleteAccount)
	}

	// Everything under /employees requires a valid bearer token.
	employees := r.Group("/employees")
	employees.Use(jwtmw.AuthRequired(opts.JWTSecret))
	{
		employees.GET("", employeeH.List)
		employees.GET("/stats", employeeH.Stats)
		employees.GET("/:id", employeeH.GetByID)
		employees.POST("", employeeH.Create)
		employees.PATCH("/:id", employeeH.UpdateByID)
		employees.DELETE("/:id", employeeH.DeleteByID)
	}

	return r
}
