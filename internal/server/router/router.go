package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/1005Studio/1005ManagmentV02/internal/config"
	"github.com/1005Studio/1005ManagmentV02/internal/server/handlers"
)

// Handlers groups the HTTP adapters mounted by New.
type Handlers struct {
	Chat        *handlers.ChatHandler
	Dashboard   *handlers.DashboardHandler
	Productions *handlers.ProductionHandler
	Catalog     *handlers.CatalogHandler
	Period      *handlers.PeriodHandler
}

// New wires the Gin engine with required routes and middlewares.
func New(h Handlers, cfg config.ServerConfig, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if h.Chat != nil {
		r.GET("/webhook", h.Chat.Verify)
		r.POST("/webhook", h.Chat.Receive)
		r.POST("/send-message", h.Chat.SendMessage)
	}

	api := r.Group("/api/v1")

	if h.Dashboard != nil {
		api.GET("/dashboard", h.Dashboard.Dashboard)
		api.GET("/calendar", h.Dashboard.Calendar)

		weeks := api.Group("/weeks")
		weeks.GET("/invoice", h.Dashboard.WeekInvoice)
		weeks.POST("/invoice/export", h.Dashboard.ExportWeekInvoice)
		weeks.GET("/missing", h.Dashboard.WeekMissing)
	}

	if h.Productions != nil {
		productions := api.Group("/productions")
		productions.GET("", h.Productions.List)
		productions.POST("", h.Productions.Create)
		productions.GET("/:id", h.Productions.Get)
		productions.PUT("/:id", h.Productions.Update)
		productions.DELETE("/:id", h.Productions.Delete)
		productions.POST("/:id/complete", h.Productions.ToggleComplete)
		productions.POST("/:id/invoice", h.Productions.ToggleInvoiced)
		productions.POST("/:id/product", h.Productions.ToggleProductStatus)
		productions.POST("/:id/pin", h.Productions.TogglePinned)
		productions.PUT("/:id/status", h.Productions.ChangeStatus)
	}

	if h.Catalog != nil {
		todos := api.Group("/todos")
		todos.GET("", h.Catalog.ListToDos)
		todos.POST("", h.Catalog.AddToDo)
		todos.POST("/:id/toggle", h.Catalog.ToggleToDo)
		todos.DELETE("/:id", h.Catalog.DeleteToDo)

		equipments := api.Group("/equipments")
		equipments.GET("", h.Catalog.ListEquipment)
		equipments.POST("", h.Catalog.AddEquipment)
		equipments.DELETE("/:id", h.Catalog.DeleteEquipment)

		subscriptions := api.Group("/subscriptions")
		subscriptions.GET("", h.Catalog.ListSubscriptions)
		subscriptions.POST("", h.Catalog.AddSubscription)
		subscriptions.DELETE("/:id", h.Catalog.DeleteSubscription)

		gallery := api.Group("/gallery")
		gallery.GET("", h.Catalog.ListGallery)
		gallery.POST("", h.Catalog.AddGalleryItem)
		gallery.POST("/:id/toggle", h.Catalog.ToggleGalleryItem)
		gallery.DELETE("/:id", h.Catalog.DeleteGalleryItem)

		lifestyle := api.Group("/lifestyle")
		lifestyle.GET("", h.Catalog.ListLifestyle)
		lifestyle.POST("", h.Catalog.AddLifestyleItem)
		lifestyle.DELETE("/:id", h.Catalog.DeleteLifestyleItem)

		documents := api.Group("/documents")
		documents.GET("", h.Catalog.ListDocuments)
		documents.POST("", h.Catalog.AddDocument)
		documents.DELETE("/:id", h.Catalog.DeleteDocument)
	}

	if h.Period != nil {
		period := api.Group("/period")
		period.GET("", h.Period.Get)
		period.PUT("", h.Period.Set)
		period.POST("/shift", h.Period.Shift)
		period.POST("/complete", h.Period.Complete)
	}

	if logger != nil {
		logger.Info("router initialized", zap.Int("routes", len(r.Routes())))
	}

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	var allowed []string
	for _, origin := range origins {
		origin = strings.TrimRight(strings.TrimSpace(origin), "/")
		if origin == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
		if origin != "" {
			allowed = append(allowed, origin)
		}
	}
	if len(allowed) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = allowed
	cfg.AllowCredentials = true
	return cfg
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
