package controller

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/getlantern/systray"

	"github.com/zoneboard/zoneboard/domain"
	"github.com/zoneboard/zoneboard/domain/entity"
	"github.com/zoneboard/zoneboard/infrastructure/config"
	usecase "github.com/zoneboard/zoneboard/usecase/interface"
)

// DaemonController manages the daemon lifecycle: the clock scheduler, the
// alarm scheduler and the system tray all start and stop together.
type DaemonController struct {
	config       *config.AppConfig
	clockService usecase.ClockService
	alarmService usecase.AlarmService
	systrayCtrl  *SystrayController
	logger       domain.Logger

	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
	pidFile     string
	unsubscribe func()
}

// NewDaemonController creates a new daemon controller
func NewDaemonController(
	cfg *config.AppConfig,
	clockService usecase.ClockService,
	alarmService usecase.AlarmService,
	systrayCtrl *SystrayController,
	logger domain.Logger,
) *DaemonController {
	return &DaemonController{
		config:       cfg,
		clockService: clockService,
		alarmService: alarmService,
		systrayCtrl:  systrayCtrl,
		logger:       logger,
	}
}

// Run starts the daemon and blocks until quit. The system tray must run on
// the main thread.
func (d *DaemonController) Run() {
	if err := d.start(); err != nil {
		d.logger.Error(d.ctx, "Failed to start daemon", domain.NewField("error", err.Error()))
		return
	}

	initial := d.clockService.Tick(time.Now())

	systray.Run(func() {
		d.systrayCtrl.OnReady(initial)
	}, func() {
		d.systrayCtrl.OnExit()
		d.shutdown()
	})
}

func (d *DaemonController) start() error {
	d.ctx, d.cancel = context.WithCancel(context.Background())

	d.logger.Info(d.ctx, "Starting zoneboard daemon...")

	if err := d.writePIDFile(); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	d.unsubscribe = d.clockService.Subscribe(func(snapshots []entity.DisplaySnapshot) {
		d.systrayCtrl.UpdateSnapshots(snapshots)
	})

	if err := d.clockService.Start(); err != nil {
		return fmt.Errorf("failed to start clock updates: %w", err)
	}
	if err := d.alarmService.Start(); err != nil {
		d.logger.Warn(d.ctx, "Failed to start alarm scheduler", domain.NewField("error", err.Error()))
	}
	d.alarmService.Subscribe(func(event usecase.AlarmEvent) {
		label := event.Alarm.Label
		if label == "" {
			label = event.Alarm.TriggerTime + " " + event.Alarm.IANAZone
		}
		d.systrayCtrl.ShowNotification("Alarm", label)
	})

	d.wg.Add(1)
	go d.run()

	d.setupSignalHandlers()

	d.logger.Info(d.ctx, "Daemon started successfully")
	return nil
}

// run waits for menu actions until the context is cancelled
func (d *DaemonController) run() {
	defer d.wg.Done()

	for {
		select {
		case <-d.ctx.Done():
			return

		case <-d.systrayCtrl.GetRefreshChannel():
			d.logger.Info(d.ctx, "Manual refresh requested")
			d.clockService.RefreshNow()

		case <-d.systrayCtrl.GetQuitChannel():
			d.logger.Info(d.ctx, "Quit button clicked")
			d.cancel()
			// Quit system tray to unblock the main thread
			go func() {
				time.Sleep(100 * time.Millisecond)
				systray.Quit()
			}()
			return
		}
	}
}

// shutdown stops the schedulers and cleans up after the systray exits
func (d *DaemonController) shutdown() {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()

	d.clockService.Stop()
	d.alarmService.Stop()
	if d.unsubscribe != nil {
		d.unsubscribe()
	}

	if err := d.removePIDFile(); err != nil {
		d.logger.Error(d.ctx, "Failed to remove PID file", domain.NewField("error", err.Error()))
	}
	d.logger.Info(d.ctx, "Daemon stopped successfully")
}

func (d *DaemonController) setupSignalHandlers() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		d.logger.Info(d.ctx, "Received signal", domain.NewField("signal", sig.String()))
		d.cancel()
		d.wg.Wait()
		// Quit system tray to unblock the main thread
		systray.Quit()
	}()
}

func (d *DaemonController) writePIDFile() error {
	if d.config.Daemon == nil || d.config.Daemon.PidFile == "" {
		return nil
	}

	pidStr := strconv.Itoa(os.Getpid())
	if err := os.WriteFile(d.config.Daemon.PidFile, []byte(pidStr), 0644); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	d.pidFile = d.config.Daemon.PidFile
	return nil
}

func (d *DaemonController) removePIDFile() error {
	if d.pidFile == "" {
		return nil
	}

	if err := os.Remove(d.pidFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove PID file: %w", err)
	}
	return nil
}
