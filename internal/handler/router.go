package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"

	"limited-drop-api/internal/handler/api"
	"limited-drop-api/internal/handler/middleware"
	"limited-drop-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	fx.In

	Product  *api.ProductHandler
	Order    *api.OrderHandler
	Cart     *api.CartHandler
	Waitlist *api.WaitlistHandler
	Echo     *api.EchoHandler
	Press    *api.PressHandler
	Phase    *api.PhaseHandler
	Account  *api.AccountHandler
}

type Middlewares struct {
	fx.In

	Auth     *middleware.AuthMiddleware
	Checkout *middleware.RateLimiter
	HTTP     middleware.HTTPObserver
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) error {
	if err := middleware.RegisterValidators(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg, mw)
	setupRoutes(engine, h, mw)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, mw Middlewares) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.RequestLogger(mw.Logger))
	engine.Use(middleware.HTTPMetrics(mw.HTTP))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(mw.Gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	auth := mw.Auth
	requireAuth := auth.RequireAuth()
	requireAdmin := auth.RequireAdmin()

	apiGroup := engine.Group("/api")

	// Public, identity optional
	public := apiGroup.Group("")
	public.Use(auth.OptionalAuth())
	addRoutes(public, []route{
		{Method: http.MethodGet, Path: "/products/:id/stock", Handler: h.Product.Stock},
		{Method: http.MethodGet, Path: "/products/:id/quote", Handler: h.Product.Quote},
		{Method: http.MethodPost, Path: "/waitlist", Handler: h.Waitlist.Join},
		{Method: http.MethodPost, Path: "/echo/requests", Handler: h.Echo.Submit},
		{Method: http.MethodPost, Path: "/echo/requests/:id/escrow", Handler: h.Echo.ConfirmEscrow},
		{Method: http.MethodGet, Path: "/echo/status", Handler: h.Echo.Status},
		{Method: http.MethodGet, Path: "/verify", Handler: h.Account.VerifyOwner},
		{Method: http.MethodGet, Path: "/settings/contact", Handler: h.Account.Contact},
	})

	customer := apiGroup.Group("")
	customer.Use(requireAuth)
	addRoutes(customer, []route{
		{Method: http.MethodPost, Path: "/checkout", Handler: h.Order.Checkout, Mw: []gin.HandlerFunc{mw.Checkout.Middleware()}},
		{Method: http.MethodGet, Path: "/orders/:id", Handler: h.Order.Get},
		{Method: http.MethodPost, Path: "/orders/:id/cancel", Handler: h.Order.Cancel},
		{Method: http.MethodGet, Path: "/orders/:id/certificate", Handler: h.Order.Certificate},
		{Method: http.MethodGet, Path: "/cart", Handler: h.Cart.Get},
		{Method: http.MethodDelete, Path: "/cart", Handler: h.Cart.Clear},
		{Method: http.MethodPost, Path: "/cart/items", Handler: h.Cart.AddItem},
		{Method: http.MethodDelete, Path: "/cart/items/:id", Handler: h.Cart.RemoveItem},
		{Method: http.MethodPost, Path: "/press/requests", Handler: h.Press.Submit},
		{Method: http.MethodPost, Path: "/press/payments", Handler: h.Press.Pay},
		{Method: http.MethodPost, Path: "/production/trigger", Handler: h.Phase.Trigger},
		{Method: http.MethodPost, Path: "/me/owner-tag", Handler: h.Account.AssignOwnerTag},
	})

	admin := apiGroup.Group("")
	admin.Use(requireAuth, requireAdmin)
	addRoutes(admin, []route{
		{Method: http.MethodPost, Path: "/payments/confirm", Handler: h.Order.ConfirmPayment},
		{Method: http.MethodPost, Path: "/echo/process", Handler: h.Echo.Process},
		{Method: http.MethodPost, Path: "/press/requests/:id/decision", Handler: h.Press.Decide},
		{Method: http.MethodPut, Path: "/admin/products/:id/phase", Handler: h.Phase.SetPhase},
		{Method: http.MethodPut, Path: "/settings/contact", Handler: h.Account.UpdateContact},
	})
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
