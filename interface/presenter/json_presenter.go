package presenter

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/domain/repository"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// JSONPresenterImpl implements JSONPresenter for JSON output
type JSONPresenterImpl struct {
	writer  io.Writer
	encoder *json.Encoder
}

// NewJSONPresenter creates a new JSON presenter writing to stdout
func NewJSONPresenter() *JSONPresenterImpl {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	return &JSONPresenterImpl{
		writer:  os.Stdout,
		encoder: encoder,
	}
}

// PrintSnapshots prints the snapshot list as JSON
func (p *JSONPresenterImpl) PrintSnapshots(snapshots []entity.DisplaySnapshot) error {
	data := map[string]interface{}{
		"zones": snapshots,
		"count": len(snapshots),
	}
	return p.encoder.Encode(data)
}

// PrintCatalogEntries prints search results as JSON
func (p *JSONPresenterImpl) PrintCatalogEntries(entries []repository.CatalogEntry) error {
	data := map[string]interface{}{
		"entries": entries,
		"count":   len(entries),
	}
	return p.encoder.Encode(data)
}

// PrintConversion prints the conversion result as JSON
func (p *JSONPresenterImpl) PrintConversion(timeOfDay, fromZone string, results map[string]string) error {
	data := map[string]interface{}{
		"timeOfDay": timeOfDay,
		"fromZone":  fromZone,
		"results":   results,
	}
	return p.encoder.Encode(data)
}

// PrintMeetingSlots prints the meeting finder results as JSON
func (p *JSONPresenterImpl) PrintMeetingSlots(slots []usecase.MeetingSlot) error {
	encoded := make([]map[string]interface{}, len(slots))
	for i, slot := range slots {
		encoded[i] = map[string]interface{}{
			"startUtc":  slot.StartUTC.Format(time.RFC3339),
			"zoneHours": slot.ZoneHours,
			"zoneTimes": slot.ZoneTimes,
		}
	}

	data := map[string]interface{}{
		"slots": encoded,
		"count": len(slots),
	}
	return p.encoder.Encode(data)
}

// PrintAlarms prints all alarms as JSON
func (p *JSONPresenterImpl) PrintAlarms(alarms []*entity.Alarm) error {
	data := map[string]interface{}{
		"alarms": alarms,
		"count":  len(alarms),
	}
	return p.encoder.Encode(data)
}

// PrintError prints an error as JSON to stderr
func (p *JSONPresenterImpl) PrintError(err error) error {
	data := map[string]interface{}{
		"error": map[string]string{
			"message": err.Error(),
		},
	}

	encoder := json.NewEncoder(os.Stderr)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// SetWriter sets the output writer (mainly for testing)
func (p *JSONPresenterImpl) SetWriter(w io.Writer) {
	p.writer = w
	p.encoder = json.NewEncoder(w)
	p.encoder.SetIndent("", "  ")
}
