package routers

import (
	"Vaulted/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupFileRouter(app *fiber.App, server *cmd.Server, authenticated fiber.Handler) {
	fileHandler := server.FileHandler
	files := app.Group("/api/files", authenticated)
	files.Get("/", fileHandler.ListFiles)
	files.Get("/keyset", fileHandler.ListFilesKeyset)
	files.Post("/upload", fileHandler.UploadFile)
	files.Get("/:id/signed-url", fileHandler.SignedURL)
	files.Patch("/:id/rename", fileHandler.RenameFile)
	files.Patch("/:id/move", fileHandler.MoveFile)
	files.Delete("/:id", fileHandler.DeleteFile)
	files.Post("/:id/restore", fileHandler.RestoreFile)
}
