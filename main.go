package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zoneboard/zoneboard/infrastructure/di"
	"github.com/zoneboard/zoneboard/interface/cli"
)

func main() {
	var (
		cliMode    = flag.Bool("cli", false, "Run in CLI mode (default is daemon mode when enabled in config)")
		daemonMode = flag.Bool("daemon", false, "Run in daemon mode with the system tray")
		debugMode  = flag.Bool("debug", false, "Enable debug logging to stdout")

		listFlag    = flag.Bool("list", false, "Print the board once and exit")
		searchFlag  = flag.String("search", "", "Search the timezone catalog")
		convertFlag = flag.String("convert", "", "Convert a time of day (HH:MM, 24-hour)")
		fromFlag    = flag.String("from", "", "Source zone for -convert")
		toFlag      = flag.String("to", "", "Comma-separated target zones for -convert")
		meetFlag    = flag.String("meet", "", "Comma-separated zones for the meeting finder")
		alarmsFlag  = flag.Bool("alarms", false, "List stored alarms")
		jsonFlag    = flag.Bool("json", false, "Output JSON instead of formatted text")
	)
	flag.Parse()

	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = container.Close() }()

	config := container.GetConfig()

	runDaemon := false
	if *daemonMode {
		runDaemon = true
	} else if !*cliMode && !hasCLIOperation(*listFlag, *searchFlag, *convertFlag, *meetFlag, *alarmsFlag) &&
		config.Daemon != nil && config.Daemon.Enabled {
		runDaemon = true
	}

	if runDaemon {
		container.GetDaemonController().Run()
		return
	}

	cliOpts := cli.Options{
		List:    *listFlag,
		Search:  *searchFlag,
		Convert: *convertFlag,
		From:    *fromFlag,
		To:      *toFlag,
		Meet:    *meetFlag,
		Alarms:  *alarmsFlag,
		JSON:    *jsonFlag,
	}

	if err := container.GetCLIController().Run(cliOpts); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func hasCLIOperation(list bool, search, convert, meet string, alarms bool) bool {
	return list || search != "" || convert != "" || meet != "" || alarms
}
