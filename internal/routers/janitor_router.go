package routers

import (
	"Vaulted/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupJanitorRouter(app *fiber.App, server *cmd.Server) {
	janitorHandler := server.JanitorHandler
	app.Post("/janitor/clean", janitorHandler.ForceClean)
}
