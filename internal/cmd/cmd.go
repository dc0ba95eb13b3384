package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	evdev "github.com/holoplot/go-evdev"
	"github.com/spf13/cobra"

	"github.td.teradata.com/sandbox/input-ctl/internal/config"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/device"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/display"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/logging"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/monitor"
	"github.td.teradata.com/sandbox/input-ctl/internal/services/session"
)

var cfgFile string
var seat string
var listOnly bool
var debug bool

var rootCmd = &cobra.Command{
	Use:   "input",
	Short: "input is a real-time terminal visualizer for input device events",
	RunE: func(cmd *cobra.Command, args []string) error {
		if listOnly {
			return listDevices()
		}
		return run()
	},
	SilenceUsage: true,
}

// Execute bootstraps the viper
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().StringVarP(&seat, "seat", "s", "", "seat to monitor (default seat0)")
	rootCmd.PersistentFlags().BoolVarP(&listOnly, "list", "l", false, "list input devices and exit")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	if err := initConfigE(); err != nil {
		log.Fatalf("Failed to load configuration: %s", err)
		return
	}
}

func initConfigE() error {
	defer func() {
		if seat != "" {
			config.CLIConfig.Monitor.Seat = seat
		}
	}()
	return config.NewConfig(cfgFile)
}

func run() error {
	cfg := config.CLIConfig

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	l := logging.New()
	l.SetDebug(debug)
	t := display.New()

	s := session.New(device.NodeOpener{}, l, cfg.Monitor.Seat, cfg.Devices.Dir, cfg.Monitor.QueueSize)
	if err := s.Start(ctx); err != nil {
		return fmt.Errorf("failed to start session on %s: %w", cfg.Monitor.Seat, err)
	}
	defer s.Close()

	m := monitor.New(s, t, l, time.Duration(cfg.Monitor.PollIntervalMs)*time.Millisecond)
	return m.Run(ctx)
}

// listDevices prints every event node the process can open, with its device
// name. Nodes that refuse to open are shown with the error instead.
func listDevices() error {
	dir := config.CLIConfig.Devices.Dir

	files, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", dir, err)
	}

	fmt.Println("Input Devices:")
	fmt.Println("--------------")
	for _, f := range files {
		if f.IsDir() || !isEventName(f.Name()) {
			continue
		}
		path := fmt.Sprintf("%s/%s", dir, f.Name())
		d, err := evdev.Open(path)
		if err != nil {
			fmt.Printf("%s:\t(unreadable: %v)\n", path, err)
			continue
		}
		name, _ := d.Name()
		class := device.Classify(d)
		fmt.Printf("%s:\t%s [%s]\n", path, name, class)
		d.Close()
	}
	return nil
}

func isEventName(name string) bool {
	return len(name) > 5 && name[:5] == "event"
}
