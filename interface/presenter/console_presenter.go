package presenter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pterm/pterm"

	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// ConsolePresenterImpl implements ConsolePresenter for terminal output
type ConsolePresenterImpl struct{}

// NewConsolePresenter creates a new console presenter
func NewConsolePresenter() *ConsolePresenterImpl {
	return &ConsolePresenterImpl{}
}

// PrintVersion prints version information
func (p *ConsolePresenterImpl) PrintVersion() {
	fmt.Println("zoneboard version 1.0.0")
}

// PrintError prints an error message
func (p *ConsolePresenterImpl) PrintError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}

// PrintSnapshots renders the board in the configured view mode
func (p *ConsolePresenterImpl) PrintSnapshots(snapshots []entity.DisplaySnapshot, settings *entity.SettingsRecord) error {
	switch settings.ViewMode {
	case entity.ViewModeTable:
		return p.printSnapshotTable(snapshots, settings)
	case entity.ViewModeList:
		return p.printSnapshotList(snapshots, settings)
	default:
		return p.printSnapshotGrid(snapshots, settings)
	}
}

func (p *ConsolePresenterImpl) printSnapshotTable(snapshots []entity.DisplaySnapshot, settings *entity.SettingsRecord) error {
	header := []string{"Zone", "Time", "Date"}
	if settings.ShowUTCOffset {
		header = append(header, "Offset")
	}
	if settings.ShowHourDelta {
		header = append(header, "Delta")
	}
	if settings.ShowNextHourCountdown {
		header = append(header, "Next Hour")
	}

	data := pterm.TableData{header}
	for _, snapshot := range snapshots {
		row := []string{p.nameCell(snapshot), p.timeCell(snapshot, settings), snapshot.DateText}
		if settings.ShowUTCOffset {
			row = append(row, snapshot.UTCOffsetText)
		}
		if settings.ShowHourDelta {
			row = append(row, p.deltaCell(snapshot))
		}
		if settings.ShowNextHourCountdown {
			row = append(row, p.countdownCell(snapshot))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func (p *ConsolePresenterImpl) printSnapshotList(snapshots []entity.DisplaySnapshot, settings *entity.SettingsRecord) error {
	for _, snapshot := range snapshots {
		line := fmt.Sprintf("%s  %s", p.nameCell(snapshot), p.timeCell(snapshot, settings))
		if !settings.CompactMode {
			line += p.detailSuffix(snapshot, settings)
		}
		fmt.Println(line)
	}
	return nil
}

func (p *ConsolePresenterImpl) printSnapshotGrid(snapshots []entity.DisplaySnapshot, settings *entity.SettingsRecord) error {
	for _, snapshot := range snapshots {
		title := p.nameCell(snapshot)
		body := p.timeCell(snapshot, settings)
		if !settings.CompactMode && snapshot.DateText != "" {
			body += "\n" + snapshot.DateText
		}
		if !settings.CompactMode {
			if suffix := p.detailSuffix(snapshot, settings); suffix != "" {
				body += "\n" + strings.TrimPrefix(suffix, "  ")
			}
		}
		pterm.DefaultSection.WithLevel(2).Println(title)
		fmt.Println(body)
	}
	return nil
}

// nameCell joins flag glyph and display name
func (p *ConsolePresenterImpl) nameCell(snapshot entity.DisplaySnapshot) string {
	if snapshot.FlagGlyph != "" {
		return snapshot.FlagGlyph + " " + snapshot.DisplayName
	}
	return snapshot.DisplayName
}

// timeCell colors the time by state: red for failed entries, green inside
// the business-hours window when highlighting is on
func (p *ConsolePresenterImpl) timeCell(snapshot entity.DisplaySnapshot, settings *entity.SettingsRecord) string {
	if snapshot.Failed {
		return pterm.Red(snapshot.TimeText)
	}
	if settings.ShowBusinessHoursHighlight && snapshot.InBusinessHours {
		return pterm.Green(snapshot.TimeText)
	}
	return snapshot.TimeText
}

func (p *ConsolePresenterImpl) deltaCell(snapshot entity.DisplaySnapshot) string {
	if snapshot.Failed || snapshot.HourDeltaFromReference == 0 {
		return ""
	}
	return fmt.Sprintf("%+dh", snapshot.HourDeltaFromReference)
}

func (p *ConsolePresenterImpl) countdownCell(snapshot entity.DisplaySnapshot) string {
	if snapshot.Failed {
		return ""
	}
	return fmt.Sprintf("%dm %ds", snapshot.SecondsToNextHour/60, snapshot.SecondsToNextHour%60)
}

func (p *ConsolePresenterImpl) detailSuffix(snapshot entity.DisplaySnapshot, settings *entity.SettingsRecord) string {
	if snapshot.Failed {
		return ""
	}
	var parts []string
	if settings.ShowUTCOffset && snapshot.UTCOffsetText != "" {
		parts = append(parts, snapshot.UTCOffsetText)
	}
	if delta := p.deltaCell(snapshot); settings.ShowHourDelta && delta != "" {
		parts = append(parts, delta)
	}
	if settings.ShowNextHourCountdown {
		parts = append(parts, "next hour in "+p.countdownCell(snapshot))
	}
	if len(parts) == 0 {
		return ""
	}
	return "  (" + strings.Join(parts, ", ") + ")"
}

// PrintCatalogEntries prints search results as a table
func (p *ConsolePresenterImpl) PrintCatalogEntries(entries []repository.CatalogEntry) error {
	if len(entries) == 0 {
		pterm.Info.Println("No matching timezones found")
		return nil
	}

	data := pterm.TableData{{"City", "Zone"}}
	for _, entry := range entries {
		name := entry.Name
		if entry.FlagGlyph != "" {
			name = entry.FlagGlyph + " " + name
		}
		data = append(data, []string{name, entry.IANAZone})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PrintConversion prints the converted time for each target zone
func (p *ConsolePresenterImpl) PrintConversion(timeOfDay, fromZone string, results map[string]string) error {
	fmt.Printf("%s in %s:\n", timeOfDay, fromZone)

	zones := make([]string, 0, len(results))
	for zone := range results {
		zones = append(zones, zone)
	}
	sort.Strings(zones)

	for _, zone := range zones {
		fmt.Printf("  %-30s %s\n", zone, results[zone])
	}
	return nil
}

// PrintMeetingSlots prints the meeting finder results as a table with one
// column per zone
func (p *ConsolePresenterImpl) PrintMeetingSlots(slots []usecase.MeetingSlot, zones []string) error {
	if len(slots) == 0 {
		pterm.Info.Println("No overlapping business hours found in the search window")
		return nil
	}

	header := append([]string{"Slot (UTC)"}, zones...)
	data := pterm.TableData{header}
	for _, slot := range slots {
		row := []string{slot.StartUTC.Format("Mon Jan 2 15:04")}
		for _, zone := range zones {
			row = append(row, slot.ZoneTimes[zone])
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// PrintAlarms prints all alarms
func (p *ConsolePresenterImpl) PrintAlarms(alarms []*entity.Alarm) error {
	if len(alarms) == 0 {
		pterm.Info.Println("No alarms configured")
		return nil
	}

	data := pterm.TableData{{"ID", "Zone", "Time", "Label", "Enabled"}}
	for _, alarm := range alarms {
		data = append(data, []string{
			alarm.ID,
			alarm.IANAZone,
			alarm.TriggerTime,
			alarm.Label,
			fmt.Sprintf("%t", alarm.Enabled),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
