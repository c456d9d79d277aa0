package routers

import (
	"Vaulted/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupFolderRouter(app *fiber.App, server *cmd.Server, authenticated fiber.Handler) {
	folderHandler := server.FolderHandler
	folders := app.Group("/api/folders", authenticated)
	folders.Get("/", folderHandler.ListFolders)
	folders.Post("/", folderHandler.CreateFolder)
	folders.Patch("/:id/rename", folderHandler.RenameFolder)
	folders.Patch("/:id/move", folderHandler.MoveFolder)
	folders.Delete("/:id", folderHandler.DeleteFolder)
	folders.Post("/:id/restore", folderHandler.RestoreFolder)
}
