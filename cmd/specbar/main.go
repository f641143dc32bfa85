package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"

	"github.com/noriah/specbar"
	"github.com/noriah/specbar/dsp/window"
	"github.com/noriah/specbar/fft"
	"github.com/noriah/specbar/input"

	_ "github.com/noriah/specbar/input/all"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"
)

// AppName is the app name
const AppName = "specbar"

// AppDesc is the app description
const AppDesc = "Terminal spectrum bars"

// AppSite is the app website
const AppSite = "https://github.com/noriah/specbar"

var version = "unknown"

func main() {
	log.SetFlags(0)

	cfg := newZeroConfig()

	path, required := configPath()
	chk(loadConfigFile(&cfg, path, required), "failed to load config")

	if doFlags(&cfg) {
		return
	}

	runCfg, err := cfg.build()
	chk(err, "invalid config")

	chk(runCfg.Validate(), "invalid config")

	// The display owns the terminal from here on.
	closeLog := setupLog(cfg.LogFile)
	defer closeLog()

	// Root Context
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := specbar.Run(ctx, &runCfg); err != nil {
		closeLog()
		cancel()
		chk(err, "failed to run specbar")
	}
}

// setupLog sends the log to path, or drops it when path is empty.
func setupLog(path string) func() {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	chk(err, "failed to open log file")

	log.SetFlags(log.LstdFlags)
	log.SetOutput(f)

	return func() {
		log.SetOutput(os.Stderr)
		log.SetFlags(0)
		f.Close()
	}
}

func doFlags(cfg *config) bool {

	parser := flaggy.NewParser(AppName)
	parser.Description = AppDesc
	parser.AdditionalHelpPrepend = AppSite
	parser.Version = version

	listBackendsCmd := flaggy.Subcommand{
		Name:                 "list-backends",
		ShortName:            "lb",
		Description:          "list all supported backends",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listBackendsCmd, 1)

	listDevicesCmd := flaggy.Subcommand{
		Name:                 "list-devices",
		ShortName:            "ld",
		Description:          "list all devices for a backend",
		AdditionalHelpAppend: "\nuse the full name after the '-'",
	}

	parser.AttachSubcommand(&listDevicesCmd, 1)

	listEnginesCmd := flaggy.Subcommand{
		Name:        "list-engines",
		ShortName:   "le",
		Description: "list all compiled in fft engines",
	}

	parser.AttachSubcommand(&listEnginesCmd, 1)

	listWindowsCmd := flaggy.Subcommand{
		Name:        "list-windows",
		ShortName:   "lw",
		Description: "list all window functions",
	}

	parser.AttachSubcommand(&listWindowsCmd, 1)

	parser.String(&cfg.Backend, "b", "backend", "backend name")
	parser.String(&cfg.Device, "d", "device", "device name (file path for wav)")
	parser.Float64(&cfg.SampleRate, "r", "rate", "sample rate")
	parser.Int(&cfg.SampleSize, "n", "samples", "sample size, also the fft size")
	parser.Int(&cfg.Channels, "ch", "channels", "channel count (1 or 2)")
	parser.String(&cfg.Format, "fmt", "format", "sample format (u8, s16, s24, s32, f32)")
	parser.Int(&cfg.FrameRate, "f", "fps", "frame rate")
	parser.String(&cfg.Engine, "e", "engine", "fft engine name")
	parser.String(&cfg.Window, "w", "window", "window function name")
	parser.Float64(&cfg.Alpha, "a", "alpha", "running max weight of a new peak (0, 1]")
	parser.Float64(&cfg.Decay, "dc", "decay", "bar falloff per frame (0, 1)")
	parser.Float64(&cfg.Exponent, "x", "exponent", "bar height curve (0, +Inf)")
	parser.String(&cfg.Color, "c", "color", "bar color as #rrggbb (empty for default)")
	parser.Int(&cfg.Indent, "i", "indent", "blank cells before each row")
	parser.Bool(&cfg.ProfileColors, "pc", "profile-colors", "use the terminal profile colors")
	parser.Bool(&cfg.ASCII, "A", "ascii", "full blocks only")
	parser.Int(&cfg.Width, "W", "width", "maximum width in cells (0 for all)")
	parser.Int(&cfg.Height, "H", "height", "maximum height in rows (0 for all)")
	parser.String(&cfg.Display, "D", "display", "display (screen, inline, raw)")
	parser.Int(&cfg.Bars, "rb", "raw-bars", "bars printed by the raw display")
	parser.Int(&cfg.Rows, "rr", "raw-rows", "rows of resolution for the raw display")
	parser.Bool(&cfg.NoKeys, "nk", "no-keys", "do not read keys in the inline display")
	parser.String(&cfg.LogFile, "l", "log", "write diagnostics to this file")

	chk(parser.Parse(), "failed to parse arguments")

	switch {
	case listBackendsCmd.Used:
		def := input.DefaultBackend()

		for _, backend := range input.Backends {
			star := ' '
			if backend.Name == def {
				star = '*'
			}

			fmt.Printf("- %s %c\n", backend.Name, star)
		}

		return true

	case listDevicesCmd.Used:
		backend, err := input.InitBackend(cfg.Backend)
		chk(err, "failed to init backend")

		devices, err := backend.Devices()
		chk(err, "failed to get devices")

		// We don't really need the default device to be indicated.
		defaultDevice, _ := backend.DefaultDevice()

		fmt.Printf("all devices for %q backend. '*' marks default\n", cfg.Backend)

		for idx := range devices {
			star := ' '
			if defaultDevice != nil && devices[idx].String() == defaultDevice.String() {
				star = '*'
			}

			fmt.Printf("- %v %c\n", devices[idx], star)
		}

		return true

	case listEnginesCmd.Used:
		printList(fft.EngineNames(), fft.DefaultEngine())
		return true

	case listWindowsCmd.Used:
		printList(window.Names(), "hamming")
		return true
	}

	return false
}

func printList(names []string, def string) {
	for _, name := range names {
		star := ' '
		if strings.EqualFold(name, def) {
			star = '*'
		}

		fmt.Printf("- %s %c\n", name, star)
	}
}

func chk(err error, wrap string) {
	if err != nil {
		log.Fatalln(wrap+": ", errors.Cause(err), "\n", err)
	}
}
