package controller

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"

	"github.com/zoneboard/zoneboard/domain/entity"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// SystrayController manages the system tray menu and interactions. One menu
// item is created per visible zone at startup; entries added while the
// daemon runs appear after the next restart since systray cannot remove
// items.
type SystrayController struct {
	settingsService usecase.SettingsService

	mu        sync.Mutex
	ready     bool
	zoneItems []*systray.MenuItem

	refreshItem *systray.MenuItem
	quitItem    *systray.MenuItem

	refreshChan chan struct{}
	quitChan    chan struct{}
}

// NewSystrayController creates a new system tray controller
func NewSystrayController(settingsService usecase.SettingsService) *SystrayController {
	return &SystrayController{
		settingsService: settingsService,
		refreshChan:     make(chan struct{}),
		quitChan:        make(chan struct{}),
	}
}

// OnReady is called when the system tray is ready. initialSnapshots seeds
// the per-zone menu items.
func (s *SystrayController) OnReady(initialSnapshots []entity.DisplaySnapshot) {
	systray.SetTitle("🌍")
	systray.SetTooltip("zoneboard - world clock")

	s.mu.Lock()
	for _, snapshot := range initialSnapshots {
		item := systray.AddMenuItem(menuItemTitle(snapshot), snapshot.DisplayName)
		item.Disable()
		s.zoneItems = append(s.zoneItems, item)
	}
	s.mu.Unlock()

	systray.AddSeparator()
	s.refreshItem = systray.AddMenuItem("Refresh Now", "Recompute all clocks immediately")
	systray.AddSeparator()
	s.quitItem = systray.AddMenuItem("Quit", "Quit zoneboard")

	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()

	go s.handleMenuClicks()
}

// OnExit is called when the system tray is exiting
func (s *SystrayController) OnExit() {
	close(s.refreshChan)
	close(s.quitChan)
}

func (s *SystrayController) handleMenuClicks() {
	for {
		select {
		case <-s.refreshItem.ClickedCh:
			s.refreshChan <- struct{}{}

		case <-s.quitItem.ClickedCh:
			s.quitChan <- struct{}{}
			return
		}
	}
}

// GetRefreshChannel returns the channel that signals when "Refresh Now" is
// clicked
func (s *SystrayController) GetRefreshChannel() <-chan struct{} {
	return s.refreshChan
}

// GetQuitChannel returns the channel that signals when "Quit" is clicked
func (s *SystrayController) GetQuitChannel() <-chan struct{} {
	return s.quitChan
}

// UpdateSnapshots refreshes the tray title and the per-zone menu items from
// a published snapshot list
func (s *SystrayController) UpdateSnapshots(snapshots []entity.DisplaySnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.ready {
		return
	}

	if len(snapshots) > 0 {
		systray.SetTitle(fmt.Sprintf("🌍 %s", snapshots[0].TimeText))
	}

	for i, item := range s.zoneItems {
		if i >= len(snapshots) {
			break
		}
		item.SetTitle(menuItemTitle(snapshots[i]))
	}
}

// ShowNotification surfaces a short message through the tooltip
func (s *SystrayController) ShowNotification(title, message string) {
	systray.SetTooltip(fmt.Sprintf("%s: %s", title, message))
}

func menuItemTitle(snapshot entity.DisplaySnapshot) string {
	name := snapshot.DisplayName
	if snapshot.FlagGlyph != "" {
		name = snapshot.FlagGlyph + " " + name
	}
	return fmt.Sprintf("%s  %s", name, snapshot.TimeText)
}
