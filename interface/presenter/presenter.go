package presenter

import (
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// ConsolePresenter handles terminal output formatting
type ConsolePresenter interface {
	PrintVersion()
	PrintError(err error)

	// Board output
	PrintSnapshots(snapshots []entity.DisplaySnapshot, settings *entity.SettingsRecord) error

	// Lookup output
	PrintCatalogEntries(entries []repository.CatalogEntry) error
	PrintConversion(timeOfDay, fromZone string, results map[string]string) error
	PrintMeetingSlots(slots []usecase.MeetingSlot, zones []string) error

	// Alarm output
	PrintAlarms(alarms []*entity.Alarm) error
}

// JSONPresenter handles JSON output formatting
type JSONPresenter interface {
	PrintError(err error) error

	PrintSnapshots(snapshots []entity.DisplaySnapshot) error
	PrintCatalogEntries(entries []repository.CatalogEntry) error
	PrintConversion(timeOfDay, fromZone string, results map[string]string) error
	PrintMeetingSlots(slots []usecase.MeetingSlot) error
	PrintAlarms(alarms []*entity.Alarm) error
}
