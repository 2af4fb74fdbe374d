// cmd/quill/main.go
package main

import (
	"fmt"
	"io"
	stlog "log" // standard log for fatal errors before the logger is ready
	"os"

	"github.com/quellen/quill/internal/app"
	"github.com/quellen/quill/internal/config"
	"github.com/quellen/quill/internal/logger"
)

var version = "dev"

func main() {
	flags := &config.Flags{}
	args := flags.ParseFlags()

	if flags.Version != nil && *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	logWriter, closeLog, err := openLogOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	logger.InitWithConfig(cfg.Logger, logWriter)
	logger.Infof("Starting %s...", config.AppName)

	var filePath string
	if len(args) > 0 {
		filePath = args[0]
	}

	text := ""
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil && !os.IsNotExist(err) {
			logger.Errorf("Error reading %s: %v", filePath, err)
			os.Exit(1)
		}
		text = string(data)
		logger.Debugf("Opened %s (%d bytes)", filePath, len(data))
	}

	quillApp, err := app.New(text)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		os.Exit(1)
	}

	if err := quillApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		os.Exit(1)
	}

	if filePath != "" {
		if err := os.WriteFile(filePath, []byte(quillApp.Content()), 0644); err != nil {
			logger.Errorf("Error writing %s: %v", filePath, err)
			os.Exit(1)
		}
		logger.Infof("Wrote %s", filePath)
	}
}

// openLogOutput resolves the configured log destination. Empty means the
// default log file next to the working directory; "-" means stderr.
func openLogOutput(path string) (io.Writer, func(), error) {
	switch path {
	case "-":
		return os.Stderr, func() {}, nil
	case "":
		path = config.DefaultLogFileName
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
