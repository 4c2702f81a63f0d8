package cmd

import (
	"io"
	"time"

	adapterharvest "tally/internal/adapters/harvest"
	adapterprompt "tally/internal/adapters/prompt"
	adaptersettings "tally/internal/adapters/settings"
	adapterstorage "tally/internal/adapters/storage"
	"tally/internal/config"
	"tally/internal/logging"
	"tally/internal/ports"
	"tally/internal/services"
	"tally/version"
)

// Container holds all dependencies for the application
type Container struct {
	Config    *config.Config
	Confirmer ports.Confirmer
	Now       func() time.Time

	// Services
	Catalog  *services.TaskCatalog
	Entries  *services.EntryService
	Resolver *services.AliasResolver
	Settings *services.SettingsService
	Summary  *services.SummaryService

	// Internal - for cleanup only
	taskCache ports.TaskCacheRepository
}

// Dependencies are the adapters a Container is built from
type Dependencies struct {
	API       ports.EntryAPI
	Confirmer ports.Confirmer
	Now       func() time.Time
	Settings  ports.SettingsStore
	TaskCache ports.TaskCacheRepository // optional
}

// NewContainer creates a new Container with the production adapters wired
func NewContainer(cfg *config.Config, in io.Reader, out io.Writer) (*Container, error) {
	store := adaptersettings.NewFileStore(cfg.SettingsPath())
	settingsService, err := services.NewSettingsService(store)
	if err != nil {
		return nil, err
	}
	cfg.ApplySettings(settingsService.Get)

	// The task cache is an optimization; run without it when the database cannot be opened
	var taskCache ports.TaskCacheRepository
	repo, err := adapterstorage.NewSQLiteRepository(cfg.CachePath())
	if err != nil {
		logging.Logger.Warn("Task cache unavailable", "path", cfg.CachePath(), "error", err)
	} else {
		taskCache = repo
	}

	api := adapterharvest.NewClient(adapterharvest.Options{
		Endpoint:  cfg.Endpoint(),
		Login:     cfg.Login,
		Password:  cfg.Password,
		Timeout:   cfg.Timeout,
		Token:     cfg.Token,
		UserAgent: "tally/" + version.Version,
	})

	logging.Logger.Debug("Container wired", "endpoint", cfg.Endpoint(), "cache", taskCache != nil)
	return newContainer(cfg, settingsService, Dependencies{
		API:       api,
		Confirmer: adapterprompt.NewConfirmer(in, out),
		Now:       time.Now,
		TaskCache: taskCache,
	}), nil
}

// NewContainerWith builds a Container from the given adapters
func NewContainerWith(cfg *config.Config, deps Dependencies) (*Container, error) {
	settingsService, err := services.NewSettingsService(deps.Settings)
	if err != nil {
		return nil, err
	}
	return newContainer(cfg, settingsService, deps), nil
}

func newContainer(cfg *config.Config, settingsService *services.SettingsService, deps Dependencies) *Container {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	catalog := services.NewTaskCatalog(deps.API, deps.TaskCache)
	resolver := services.NewAliasResolver(settingsService, catalog)
	entries := services.NewEntryService(deps.API, resolver, catalog).WithClock(now)

	return &Container{
		Catalog:   catalog,
		Config:    cfg,
		Confirmer: deps.Confirmer,
		Entries:   entries,
		Now:       now,
		Resolver:  resolver,
		Settings:  settingsService,
		Summary:   services.NewSummaryService(entries),
		taskCache: deps.TaskCache,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.taskCache != nil {
		return c.taskCache.Close()
	}
	return nil
}
