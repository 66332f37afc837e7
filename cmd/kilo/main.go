package main

import (
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/kilo/config"
	"github.com/lixenwraith/kilo/constants"
	"github.com/lixenwraith/kilo/document"
	"github.com/lixenwraith/kilo/editor"
	"github.com/lixenwraith/kilo/input"
	"github.com/lixenwraith/kilo/terminal"
)

var (
	configPath string
	tabStop    int
	debugFlag  bool
)

var rootCmd = &cobra.Command{
	Use:           "kilo [path]",
	Short:         "Minimal terminal text viewer",
	Long:          "kilo opens a file read-only in the terminal. Arrow keys, Home/End and PageUp/PageDown move the cursor; Ctrl-Q quits.",
	Version:       constants.Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		var path string
		if len(args) == 1 {
			path = args[0]
		}
		return runViewer(cfg, path)
	},
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/kilo/config.toml)")
	rootCmd.Flags().IntVar(&tabStop, "tab-stop", constants.DefaultTabStop, "tab stop width")
	rootCmd.Flags().BoolVar(&debugFlag, "debug", false, "write a debug log under logs/")
}

func main() {
	os.Exit(execute())
}

// execute runs the root command and maps its result to an exit status
func execute() int {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, editor.ErrQuit) {
			return 0
		}
		fmt.Fprintln(os.Stderr, color.RedString("%s: %v", constants.AppName, err))
		return 1
	}
	return 0
}

// loadConfig reads the config file, then applies flags set on the command line
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("tab-stop") {
		cfg.TabStop = tabStop
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = debugFlag
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runViewer(cfg *config.Config, path string) error {
	if logFile := setupLogging(cfg.Debug, cfg.LogDir); logFile != nil {
		defer logFile.Close()
	}

	quit, err := cfg.QuitByte()
	if err != nil {
		return err
	}
	keys, err := input.NewKeyTable(quit)
	if err != nil {
		return err
	}

	// Load before raw mode so a bad path leaves the terminal untouched
	doc := document.New(cfg.TabStop)
	if path != "" {
		if err := doc.Open(path); err != nil {
			return err
		}
		log.Printf("loaded %s: %d rows", path, doc.NumRows())
	}

	sess := terminal.NewSession(os.Stdin, os.Stdout, terminal.Options{
		ReadTimeout:    uint8(cfg.ReadTimeout),
		SizeQueryRetry: cfg.SizeQueryRetry,
	})

	// Killed by signal: deferred cleanup would not run
	guard := terminal.NewSignalGuard(func() {
		log.Printf("terminated by signal")
		terminal.EmergencyReset(os.Stdout)
	}, os.Exit)
	guard.Start()
	defer guard.Stop()

	// Normal exit terminal cleanup, also after a partial EnterRaw
	defer sess.ExitRaw()
	if err := sess.EnterRaw(); err != nil {
		return err
	}

	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			fmt.Fprintf(os.Stderr, "\n%s\n", color.RedString("KILO CRASHED: %v", r))
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	rows, cols, err := sess.WindowSize()
	if err != nil {
		sess.Write(terminal.ClearScreenSequence())
		return errors.Wrap(err, "getWindowSize")
	}
	log.Printf("window %dx%d", cols, rows)

	resize := terminal.NewResizeWatcher(sess)
	resize.Start()
	defer resize.Stop()

	ed := editor.New(sess, doc, rows, cols, keys)
	ed.WatchResize(resize.Events())
	return ed.Run()
}
