package di

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/repository"
	"github.com/zoneboard/zoneboard/infrastructure/catalog"
	"github.com/zoneboard/zoneboard/infrastructure/config"
	"github.com/zoneboard/zoneboard/infrastructure/logging"
	infraRepo "github.com/zoneboard/zoneboard/infrastructure/repository"
	"github.com/zoneboard/zoneboard/infrastructure/service"
	"github.com/zoneboard/zoneboard/interface/cli"
	"github.com/zoneboard/zoneboard/interface/controller"
	"github.com/zoneboard/zoneboard/interface/presenter"
	"github.com/zoneboard/zoneboard/usecase/impl"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config     *config.AppConfig
	configRepo repository.ConfigRepository

	// Repositories
	settingsRepo repository.SettingsRepository
	catalogRepo  repository.CatalogRepository
	sqliteRepo   *infraRepo.SQLiteSettingsRepository

	// Infrastructure services
	timeSource repository.TimeSource

	// Use cases
	registryService usecase.RegistryService
	metricsService  usecase.ClockMetricsService
	settingsService *impl.SettingsServiceImpl
	clockService    usecase.ClockService
	lookupService   usecase.LookupService
	alarmService    usecase.AlarmService

	// Presenters
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter

	// Controllers
	cliController     *cli.CLIController
	systrayController *controller.SystrayController
	daemonController  *controller.DaemonController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{}

	for _, opt := range opts {
		opt(container)
	}

	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := container.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := container.initInfrastructureServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize infrastructure services: %w", err)
	}

	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}

// initConfig builds the effective configuration: defaults, overlaid by the
// config file, overlaid by environment variables
func (c *Container) initConfig() error {
	c.configRepo = infraRepo.NewJSONConfigRepository()

	cfg := config.DefaultConfig()

	fileCfg, err := c.configRepo.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config file, using defaults: %v\n", err)
	} else {
		cfg.Merge(fileCfg)
	}

	if err := cfg.LoadFromEnv(); err != nil {
		return fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.debugMode {
		if cfg.Logging == nil {
			cfg.Logging = &config.LoggingConfig{Level: "info"}
		}
		cfg.Logging.Debug = true
	}

	c.config = cfg
	return nil
}

// initLogging initializes logging components
func (c *Container) initLogging() error {
	c.loggerFactory = logging.NewLoggerFactory(c.config.Logging)
	c.logger = c.loggerFactory.CreateLogger("zoneboard")
	return nil
}

// initRepositories selects the settings store backend. A backend that fails
// to open falls back to the in-memory store so the board still comes up.
func (c *Container) initRepositories() error {
	backend := "json"
	path := ""
	if c.config.Storage != nil {
		backend = strings.ToLower(c.config.Storage.Backend)
		path = c.config.Storage.Path
	}

	switch backend {
	case "sqlite":
		repo, err := infraRepo.NewSQLiteSettingsRepository(path)
		if err != nil {
			c.logger.Warn(context.Background(), "Failed to open sqlite settings store, falling back to in-memory",
				domain.NewField("error", err.Error()))
			c.settingsRepo = infraRepo.NewMemorySettingsRepository()
		} else {
			c.sqliteRepo = repo
			c.settingsRepo = repo
		}
	default:
		c.settingsRepo = infraRepo.NewJSONSettingsRepository(path)
	}

	c.catalogRepo = catalog.NewStaticCatalog()
	return nil
}

// initInfrastructureServices initializes infrastructure services
func (c *Container) initInfrastructureServices() error {
	c.timeSource = service.NewSystemTimeSource(c.loggerFactory.CreateLogger("timesource"))
	return nil
}

// initUseCases initializes use case implementations and wires the settings
// refresh hook into the clock scheduler
func (c *Container) initUseCases() error {
	c.registryService = impl.NewRegistryService(c.settingsRepo, c.loggerFactory.CreateLogger("registry"))
	c.metricsService = impl.NewClockMetricsService(c.timeSource)
	c.settingsService = impl.NewSettingsService(c.settingsRepo, c.loggerFactory.CreateLogger("settings"))

	referenceZone := ""
	tickInterval := time.Second
	searchDays := 7
	if c.config.Clock != nil {
		referenceZone = c.config.Clock.ReferenceZone
		tickInterval = time.Duration(c.config.Clock.TickIntervalSec) * time.Second
		searchDays = c.config.Clock.MeetingSearchDays
	}
	if referenceZone == "" {
		referenceZone = c.timeSource.DetectLocalZone()
	}

	c.clockService = impl.NewClockService(
		c.registryService,
		c.metricsService,
		c.settingsService,
		c.timeSource,
		referenceZone,
		tickInterval,
		c.loggerFactory.CreateLogger("clock"),
	)
	c.settingsService.SetRefreshHook(c.clockService.RefreshNow)

	c.lookupService = impl.NewLookupService(c.catalogRepo, c.timeSource, c.settingsService, searchDays)
	c.alarmService = impl.NewAlarmService(c.settingsRepo, c.timeSource, c.loggerFactory.CreateLogger("alarm"))
	return nil
}

// initPresenters initializes presenters
func (c *Container) initPresenters() error {
	c.consolePresenter = presenter.NewConsolePresenter()
	c.jsonPresenter = presenter.NewJSONPresenter()
	return nil
}

// initControllers initializes controllers
func (c *Container) initControllers() error {
	c.cliController = cli.NewCLIController(
		c.clockService,
		c.lookupService,
		c.settingsService,
		c.alarmService,
		c.consolePresenter,
		c.jsonPresenter,
	)

	c.systrayController = controller.NewSystrayController(c.settingsService)
	c.daemonController = controller.NewDaemonController(
		c.config,
		c.clockService,
		c.alarmService,
		c.systrayController,
		c.loggerFactory.CreateLogger("daemon"),
	)
	return nil
}

// Close releases resources held by the container
func (c *Container) Close() error {
	if c.sqliteRepo != nil {
		return c.sqliteRepo.Close()
	}
	return nil
}

// GetConfig returns the effective configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetDaemonController returns the daemon controller
func (c *Container) GetDaemonController() *controller.DaemonController {
	return c.daemonController
}

// GetClockService returns the clock service
func (c *Container) GetClockService() usecase.ClockService {
	return c.clockService
}

// GetRegistryService returns the registry service
func (c *Container) GetRegistryService() usecase.RegistryService {
	return c.registryService
}

// GetLookupService returns the lookup service
func (c *Container) GetLookupService() usecase.LookupService {
	return c.lookupService
}

// GetSettingsService returns the settings service
func (c *Container) GetSettingsService() usecase.SettingsService {
	return c.settingsService
}

// GetAlarmService returns the alarm service
func (c *Container) GetAlarmService() usecase.AlarmService {
	return c.alarmService
}

// CreateLogger creates a component logger from the container's factory
func (c *Container) CreateLogger(component string) domain.Logger {
	return c.loggerFactory.CreateLogger(component)
}
