package routers

import (
	"Vaulted/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupShareRouter(app *fiber.App, server *cmd.Server, authenticated fiber.Handler) {
	shareHandler := server.ShareHandler
	app.Post("/api/share", authenticated, shareHandler.CreateShareLink)
	app.Delete("/api/share/:id", authenticated, shareHandler.RevokeShareLink)
	// Token resolution is identity-free on purpose.
	app.Get("/api/share/:token", shareHandler.ResolveShareToken)
}
