package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"phantom-mask/internal/handler/api"
	"phantom-mask/internal/handler/middleware"
	"phantom-mask/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	fx.In

	Auth      *api.AuthHandler
	Captcha   *api.CaptchaHandler
	Pharmacy  *api.PharmacyHandler
	Inventory *api.InventoryHandler
	Member    *api.MemberHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(&engine.RouterGroup, []route{
		{Method: http.MethodPost, Path: "/register/", Handler: h.Auth.Register},
		{Method: http.MethodPost, Path: "/login/", Handler: h.Auth.Login},
		{Method: http.MethodPost, Path: "/token/refresh/", Handler: h.Auth.Refresh},
		{Method: http.MethodGet, Path: "/captcha/", Handler: h.Captcha.Issue},
		{Method: http.MethodGet, Path: "/captcha/image/:hash_key/", Handler: h.Captcha.Image},
	})

	pharmacy := engine.Group("/pharmacy")
	pharmacy.Use(authMiddleware.RequireAuth())
	{
		addRoutes(pharmacy, []route{
			{Method: http.MethodGet, Path: "/", Handler: h.Pharmacy.List},
			{Method: http.MethodGet, Path: "/:id/inventory/", Handler: h.Inventory.ListByPharmacy},
			{Method: http.MethodPost, Path: "/:id/inventory/bulk-create/", Handler: h.Inventory.BulkCreate},
			{Method: http.MethodPut, Path: "/:id/inventory/bulk-update/", Handler: h.Inventory.BulkUpdate},
			{Method: http.MethodGet, Path: "/inventory/", Handler: h.Inventory.Search},
			{Method: http.MethodGet, Path: "/inventory/count/", Handler: h.Inventory.CountByPharmacy},
			{Method: http.MethodPut, Path: "/inventory/:id/update-quantity/", Handler: h.Inventory.UpdateQuantity},
		})
	}

	member := engine.Group("/member")
	member.Use(authMiddleware.RequireAuth())
	{
		addRoutes(member, []route{
			{Method: http.MethodPost, Path: "/:id/create-purchase-history/", Handler: h.Member.CreatePurchases},
			{Method: http.MethodGet, Path: "/:id/purchase-history/", Handler: h.Member.PurchaseHistory},
			{Method: http.MethodGet, Path: "/purchase-ranking/", Handler: h.Member.PurchaseRanking},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
