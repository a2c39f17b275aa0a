package cli

import (
	"strings"
	"time"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/interface/presenter"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// Options selects the one-shot CLI operation to run
type Options struct {
	// List prints the board once
	List bool

	// Search queries the timezone catalog
	Search string

	// Convert is the "HH:MM" time of day to convert; From and To name the
	// source zone and the comma-separated target zones
	Convert string
	From    string
	To      string

	// Meet is the comma-separated zone list for the meeting finder
	Meet string

	// Alarms lists stored alarms
	Alarms bool

	// JSON switches output from the console presenter to JSON
	JSON bool
}

// CLIController handles the one-shot command-line operations
type CLIController struct {
	clockService     usecase.ClockService
	lookupService    usecase.LookupService
	settingsService  usecase.SettingsService
	alarmService     usecase.AlarmService
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter
}

// NewCLIController creates a new CLI controller
func NewCLIController(
	clockService usecase.ClockService,
	lookupService usecase.LookupService,
	settingsService usecase.SettingsService,
	alarmService usecase.AlarmService,
	consolePresenter presenter.ConsolePresenter,
	jsonPresenter presenter.JSONPresenter,
) *CLIController {
	return &CLIController{
		clockService:     clockService,
		lookupService:    lookupService,
		settingsService:  settingsService,
		alarmService:     alarmService,
		consolePresenter: consolePresenter,
		jsonPresenter:    jsonPresenter,
	}
}

// Run executes the requested operation. Defaults to listing the board.
func (c *CLIController) Run(opts Options) error {
	switch {
	case opts.Search != "":
		return c.runSearch(opts)
	case opts.Convert != "":
		return c.runConvert(opts)
	case opts.Meet != "":
		return c.runMeet(opts)
	case opts.Alarms:
		return c.runAlarms(opts)
	default:
		return c.runList(opts)
	}
}

func (c *CLIController) runList(opts Options) error {
	snapshots := c.clockService.Tick(time.Now())
	if opts.JSON {
		return c.jsonPresenter.PrintSnapshots(snapshots)
	}
	return c.consolePresenter.PrintSnapshots(snapshots, c.settingsService.Current())
}

func (c *CLIController) runSearch(opts Options) error {
	entries := c.lookupService.Search(opts.Search)
	if opts.JSON {
		return c.jsonPresenter.PrintCatalogEntries(entries)
	}
	return c.consolePresenter.PrintCatalogEntries(entries)
}

func (c *CLIController) runConvert(opts Options) error {
	if opts.From == "" {
		return domain.ErrInvalidInput("from", "a source zone is required for conversion")
	}
	targets := splitZones(opts.To)
	if len(targets) == 0 {
		return domain.ErrInvalidInput("to", "at least one target zone is required")
	}

	results, err := c.lookupService.Convert(opts.Convert, opts.From, targets)
	if err != nil {
		return err
	}
	if opts.JSON {
		return c.jsonPresenter.PrintConversion(opts.Convert, opts.From, results)
	}
	return c.consolePresenter.PrintConversion(opts.Convert, opts.From, results)
}

func (c *CLIController) runMeet(opts Options) error {
	zones := splitZones(opts.Meet)
	if len(zones) < 2 {
		return domain.ErrInvalidInput("meet", "at least two zones are required")
	}

	slots, err := c.lookupService.FindMeetingTimes(zones, c.settingsService.BusinessHours())
	if err != nil {
		return err
	}
	if opts.JSON {
		return c.jsonPresenter.PrintMeetingSlots(slots)
	}
	return c.consolePresenter.PrintMeetingSlots(slots, zones)
}

func (c *CLIController) runAlarms(opts Options) error {
	if err := c.alarmService.Start(); err != nil {
		return err
	}
	defer c.alarmService.Stop()

	alarms := c.alarmService.List()
	if opts.JSON {
		return c.jsonPresenter.PrintAlarms(alarms)
	}
	return c.consolePresenter.PrintAlarms(alarms)
}

func splitZones(raw string) []string {
	var zones []string
	for _, zone := range strings.Split(raw, ",") {
		zone = strings.TrimSpace(zone)
		if zone != "" {
			zones = append(zones, zone)
		}
	}
	return zones
}
