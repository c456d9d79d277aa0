package routers

import (
	"Vaulted/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupSearchRouter(app *fiber.App, server *cmd.Server, authenticated fiber.Handler) {
	searchHandler := server.SearchHandler
	app.Get("/api/search", authenticated, searchHandler.Search)
}
