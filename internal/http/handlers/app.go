package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/jmoiron/sqlx"

	"tradepost/internal/config"
	applog "tradepost/internal/log"
)

// NewApp assembles the full API: middleware, routes, and auth guards.
// The server binary and the test suite both build the app through here.
func NewApp(db *sqlx.DB, cfg config.Config) *fiber.App {
	deps := NewDeps(db, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return jsonMsg(c, fiber.StatusInternalServerError, "something went wrong")
		},
	})
	app.Server().MaxRequestBodySize = 1 << 20 // 1 MiB

	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(cors.New())

	authed := RequireAuth(cfg.AuthSecret)

	api := app.Group("/api")

	// Cart: every route operates on one user's state and requires a
	// matching token subject.
	cart := api.Group("/cart", authed)
	cart.Get("/:userId", deps.CartHandler.Get)
	cart.Post("/addToCart", deps.CartHandler.Add)
	cart.Post("/updateCart", deps.CartHandler.Update)
	cart.Post("/removeItem", deps.CartHandler.RemoveItem)
	cart.Put("/updateQuantity", deps.CartHandler.SetQuantity)
	cart.Delete("/:userId", deps.CartHandler.Clear)

	// Orders
	orders := api.Group("/orders", authed)
	orders.Post("/createOrders", deps.OrderHandler.CreateBatch)
	orders.Put("/updateOrder/:id", deps.OrderHandler.Update)
	orders.Get("/customer/:customerId", deps.OrderHandler.ListByCustomer)
	orders.Get("/seller/:sellerId", deps.OrderHandler.ListBySeller)
	orders.Get("/earnings/:sellerId", deps.OrderHandler.Earnings)

	// Items: reads are public, writes require the owner's token.
	items := api.Group("/items")
	items.Get("/allitems", deps.ItemHandler.List)
	items.Get("/allfrom/:userId", deps.ItemHandler.ListByOwner)
	items.Get("/details/:itemId", deps.ItemHandler.Detail)
	items.Get("/search", deps.ItemHandler.Search)
	items.Post("/batch", deps.ItemHandler.Batch)
	items.Post("/createItem", authed, deps.ItemHandler.Create)
	items.Put("/updateItem/:id", authed, deps.ItemHandler.Update)
	items.Delete("/deleteItem/:id", authed, deps.ItemHandler.Delete)

	// Users
	users := api.Group("/users")
	users.Post("/createUser", authed, deps.UserHandler.Create)
	users.Get("/userDetail/:id", deps.UserHandler.Detail)
	users.Put("/update/:id", authed, deps.UserHandler.Update)
	users.Get("/:id", deps.UserHandler.Get)

	// Text-generation proxy: throttled, since every call spends upstream quota.
	openai := api.Group("/openai", authed, limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.genai.hit", nil)
			return jsonMsg(c, fiber.StatusTooManyRequests, "rate limit exceeded, retry soon")
		},
	}))
	openai.Post("/generate-description", deps.GenAIHandler.GenerateDescription)
	openai.Post("/generate-category", deps.GenAIHandler.GenerateCategory)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return jsonMsg(c, fiber.StatusNotFound, "not found")
	})

	return app
}
