// Package router assembles the gin engine and wires all HTTP routes.
package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "tuneeng_backend/internal/feature/auth/transport/handler"
	contacthandler "tuneeng_backend/internal/feature/contact/transport/handler"
	leaderboardhandler "tuneeng_backend/internal/feature/leaderboard/transport/handler"
	practicehandler "tuneeng_backend/internal/feature/practice/transport/handler"
	profilehandler "tuneeng_backend/internal/feature/profile/transport/handler"
	trackerhandler "tuneeng_backend/internal/feature/tracker/transport/handler"
	usershandler "tuneeng_backend/internal/feature/users/transport/handler"
	"tuneeng_backend/internal/platform/http/handler"
	jwtmw "tuneeng_backend/internal/platform/jwt"
	"tuneeng_backend/internal/shared/ratelimiter"
)

// Login and registration share a strict per-client budget.
const (
	authRateLimit  = 5
	authRateWindow = 15 * time.Minute
)

// Deps carries everything the router needs.
type Deps struct {
	Auth        *authhandler.AuthHandler
	Users       *usershandler.UsersHandler
	Practice    *practicehandler.PracticeHandler
	Leaderboard *leaderboardhandler.LeaderboardHandler
	Profile     *profilehandler.ProfileHandler
	Tracker     *trackerhandler.TrackerHandler
	Contact     *contacthandler.ContactHandler

	TokenValidator jwtmw.Validator
	RateLimiter    *ratelimiter.Limiter
	AllowedOrigins []string
}

func New(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	authRequired := jwtmw.AuthRequired(deps.TokenValidator)
	authLimited := ratelimiter.Middleware(deps.RateLimiter, authRateLimit, authRateWindow)

	api := r.Group("/api")

	api.GET("/health", handler.Health)
	api.HEAD("/health", handler.Health)
	api.OPTIONS("/health", handler.Health)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authLimited, deps.Auth.Register)
		auth.POST("/login", authLimited, deps.Auth.Login)
		auth.POST("/logout", deps.Auth.Logout)
		auth.GET("/me", authRequired, deps.Auth.Me)
	}

	users := api.Group("/users", authRequired)
	{
		users.GET("", deps.Users.List)
		users.GET("/:id", deps.Users.Get)
	}

	practice := api.Group("/practice")
	{
		practice.GET("/exercises", deps.Practice.Exercises)
		practice.POST("/sessions", authRequired, deps.Practice.StartSession)
		practice.POST("/feedback", authRequired, deps.Practice.Feedback)
		practice.GET("/sessions/:id", deps.Practice.Session)
	}

	leaderboard := api.Group("/leaderboard")
	{
		leaderboard.GET("", deps.Leaderboard.Rankings)
		leaderboard.GET("/user/:id/rank", deps.Leaderboard.UserRank)
	}

	profile := api.Group("/profile", authRequired)
	{
		profile.GET("", deps.Profile.Get)
		profile.PUT("", deps.Profile.Update)
		profile.GET("/stats", deps.Profile.Stats)
	}

	tracker := api.Group("/tracker", authRequired)
	{
		tracker.GET("/progress", deps.Tracker.Progress)
		tracker.GET("/summary", deps.Tracker.Summary)
	}

	contact := api.Group("/contact")
	{
		contact.POST("/submit", deps.Contact.Submit)
		contact.GET("/health", deps.Contact.Health)
	}

	return r
}
