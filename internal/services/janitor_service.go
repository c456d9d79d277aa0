package services

import (
	"Vaulted/internal/config"
	"Vaulted/internal/repository"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Janitor periodically hard-deletes what soft delete and revocation left
// behind: share links dead past retention, and file/folder rows soft-deleted
// past retention. Blobs of purged files are not touched; the blob store owns
// its own lifecycle.
type Janitor struct {
	folderRepo    repository.FolderRepository
	fileRepo      repository.FileRepository
	shareRepo     repository.ShareLinkRepository
	configuration *config.Configuration
	logService    LogService
	cleaning      bool
	mutex         sync.Mutex
	cron          *cron.Cron
}

func NewJanitorService(
	folderRepo repository.FolderRepository,
	fileRepo repository.FileRepository,
	shareRepo repository.ShareLinkRepository,
	logService LogService,
	configuration *config.Configuration,
) *Janitor {
	return &Janitor{
		folderRepo:    folderRepo,
		fileRepo:      fileRepo,
		shareRepo:     shareRepo,
		logService:    logService,
		configuration: configuration,
		cron:          cron.New(),
	}
}

// ForceStartCleanCycle runs one sweep immediately, unless one is already in
// flight.
func (j *Janitor) ForceStartCleanCycle() error {
	j.mutex.Lock()
	if j.cleaning {
		j.mutex.Unlock()
		return errors.New("cleaning is in progress")
	}
	j.cleaning = true
	j.mutex.Unlock()

	go func() {
		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.sweep()
	}()

	return nil
}

func (j *Janitor) StartCleanCycle() {
	schedule := j.configuration.Server.CleanConfig.Schedule
	if schedule == "" {
		j.logService.Log.Debug("janitor schedule not configured, skipping")
		return
	}

	_, err := j.cron.AddFunc(schedule, func() {
		j.mutex.Lock()
		if j.cleaning {
			j.mutex.Unlock()
			return
		}
		j.cleaning = true
		j.mutex.Unlock()

		defer func() {
			j.mutex.Lock()
			j.cleaning = false
			j.mutex.Unlock()
		}()
		j.sweep()
	})
	if err != nil {
		j.logService.Log.WithFields(logrus.Fields{
			"job":   "clean",
			"error": err.Error(),
		}).Error("Failed to start cleaning job")
		return
	}
	j.cron.Start()
}

func (j *Janitor) StopClean() {
	j.cron.Stop()
	j.logService.Log.WithFields(logrus.Fields{
		"job":    "clean",
		"status": "stopped",
	}).Info("Janitor clean stopped")
}

func (j *Janitor) IsCleaning() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cleaning
}

func (j *Janitor) sweep() {
	retention := time.Duration(j.configuration.Server.CleanConfig.RetentionDays) * 24 * time.Hour
	cutoff := time.Now().UTC().Add(-retention)
	log := j.logService.Log.WithField("job", "clean")

	links, err := j.shareRepo.DeleteDefunctBefore(cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("failed to purge share links")
	}
	files, err := j.fileRepo.PurgeDeletedBefore(cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("failed to purge files")
	}
	folders, err := j.folderRepo.PurgeDeletedBefore(cutoff)
	if err != nil {
		log.WithField("error", err.Error()).Error("failed to purge folders")
	}

	log.WithFields(logrus.Fields{
		"share_links": links,
		"files":       files,
		"folders":     folders,
	}).Info("janitor sweep finished")
}
