//go:build wireinject
// +build wireinject

package main

import (
	"Vaulted/cmd"
	"Vaulted/database"
	"Vaulted/internal/config"
	"Vaulted/internal/handlers"
	"Vaulted/internal/repository"
	"Vaulted/internal/services"
	"Vaulted/internal/storage"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("vaulted.yaml")
}

func ProvideBlobStore(configuration *config.Configuration) (storage.BlobStore, error) {
	return storage.NewS3BlobStore(configuration)
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewUserRepository,
		repository.NewFolderRepository,
		repository.NewFileRepository,
		repository.NewPermissionRepository,
		repository.NewShareLinkRepository,
		services.NewAuthService,
		services.NewPermissionService,
		services.NewFolderService,
		services.NewFileService,
		services.NewShareService,
		services.NewSearchService,
		services.NewLogService,
		services.NewJanitorService,
		handlers.NewAuthHandler,
		handlers.NewFolderHandler,
		handlers.NewFileHandler,
		handlers.NewShareHandler,
		handlers.NewSearchHandler,
		handlers.NewJanitorHandler,
		ProvideBlobStore,
		Provider,
	)
	return nil, nil
}
