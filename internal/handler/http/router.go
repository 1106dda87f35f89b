package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mikiasgoitom/Piiquante/internal/handler/http/middleware"
	usecasecontract "github.com/mikiasgoitom/Piiquante/internal/usecase/contract"
)

type Router struct {
	userHandler  *UserHandler
	sauceHandler *SauceHandler
	userUsecase  usecasecontract.IUserUseCase
	config       usecasecontract.IConfigProvider
	logger       *slog.Logger
	httpMetrics  middleware.RequestObserver
	gatherer     prometheus.Gatherer
}

func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	sauceUsecase usecasecontract.ISauceUseCase,
	voteLedger usecasecontract.IVoteLedger,
	config usecasecontract.IConfigProvider,
	logger *slog.Logger,
	httpMetrics middleware.RequestObserver,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		userHandler:  NewUserHandler(userUsecase),
		sauceHandler: NewSauceHandler(sauceUsecase, voteLedger),
		userUsecase:  userUsecase,
		config:       config,
		logger:       logger,
		httpMetrics:  httpMetrics,
		gatherer:     gatherer,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(middleware.StructuredLogger(r.logger))
	router.Use(middleware.RequestMetrics(r.httpMetrics))

	origins := r.config.GetCORSAllowOrigins()
	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "X-Requested-With", "Content", "Accept", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	router.Use(cors.New(corsConfig))

	// rate limiter configuration
	lmt := tollbooth.NewLimiter(r.config.GetRateLimitPerSecond(), &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
	lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
	lmt.SetMessage("Too many requests, please try again later.")

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	router.GET("/healthz", func(c *gin.Context) {
		MessageHandler(c, http.StatusOK, "ok")
	})

	api := router.Group("/api")
	api.Use(middleware.RateLimiter(lmt))

	// Public routes (no authentication required)
	auth := api.Group("/auth")
	{
		auth.POST("/signup", r.userHandler.Signup)
		auth.POST("/login", r.userHandler.Login)
	}

	sauces := api.Group("/sauces")
	sauces.Use(middleware.AuthMiddleWare(r.userUsecase))
	{
		sauces.GET("", r.sauceHandler.ListSauces)
		sauces.GET("/:id", r.sauceHandler.GetSauce)
		sauces.POST("", r.sauceHandler.CreateSauce)
		sauces.PUT("/:id", r.sauceHandler.UpdateSauce)
		sauces.DELETE("/:id", r.sauceHandler.DeleteSauce)

		// Vote routes
		sauces.POST("/:id/like", r.sauceHandler.LikeSauce)
		sauces.GET("/:id/vote", r.sauceHandler.GetVote)
	}
}
