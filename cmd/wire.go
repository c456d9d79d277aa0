package cmd

import (
	"Vaulted/internal/handlers"
	"Vaulted/internal/services"
)

type Server struct {
	AuthService    services.AuthService
	AuthHandler    *handlers.AuthHandler
	FolderService  services.FolderService
	FolderHandler  *handlers.FolderHandler
	FileService    services.FileService
	FileHandler    *handlers.FileHandler
	ShareService   services.ShareService
	ShareHandler   *handlers.ShareHandler
	SearchService  services.SearchService
	SearchHandler  *handlers.SearchHandler
	LogService     services.LogService
	JanitorService *services.Janitor
	JanitorHandler *handlers.JanitorHandler
}

func NewServer(
	authService services.AuthService,
	authHandler *handlers.AuthHandler,
	folderService services.FolderService,
	folderHandler *handlers.FolderHandler,
	fileService services.FileService,
	fileHandler *handlers.FileHandler,
	shareService services.ShareService,
	shareHandler *handlers.ShareHandler,
	searchService services.SearchService,
	searchHandler *handlers.SearchHandler,
	logService services.LogService,
	janitorService *services.Janitor,
	janitorHandler *handlers.JanitorHandler,
) *Server {
	return &Server{
		AuthService:    authService,
		AuthHandler:    authHandler,
		FolderService:  folderService,
		FolderHandler:  folderHandler,
		FileService:    fileService,
		FileHandler:    fileHandler,
		ShareService:   shareService,
		ShareHandler:   shareHandler,
		SearchService:  searchService,
		SearchHandler:  searchHandler,
		LogService:     logService,
		JanitorService: janitorService,
		JanitorHandler: janitorHandler,
	}
}
