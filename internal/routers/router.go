package routers

import (
	"Vaulted/cmd"
	"Vaulted/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(map[string]interface{}{"ok": true})
	})

	authenticated := middleware.RequireAuth(server.AuthService)

	SetupAuthRouter(app, server)
	SetupFolderRouter(app, server, authenticated)
	SetupFileRouter(app, server, authenticated)
	SetupShareRouter(app, server, authenticated)
	SetupSearchRouter(app, server, authenticated)
	SetupJanitorRouter(app, server)
}
