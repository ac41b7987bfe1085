package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-nixiechain/internal/config"
	"github.com/coreman2200/funtimes-nixiechain/nixie"
	"github.com/coreman2200/funtimes-nixiechain/serialport"
)

func main() {
	// ---- Flags (config.yaml can fill in what's not given) ----
	var (
		configPath = flag.String("config", "", "path to config.yaml (optional)")
		port       = flag.String("port", "", "serial device, e.g. /dev/ttyUSB0")
		baud       = flag.Int("baud", 0, "baud rate (default 115200)")
		tubes      = flag.Int("tubes", 0, "number of tubes in the chain")
		number     = flag.Int("number", -1, "number to display, zero-padded across the chain")
		brightness = flag.Int("brightness", -1, "tube brightness 0-255")
		red        = flag.Int("red", -1, "backlight red 0-255")
		green      = flag.Int("green", -1, "backlight green 0-255")
		blue       = flag.Int("blue", -1, "backlight blue 0-255")
		clear      = flag.Bool("clear", false, "blank the chain instead of displaying a number")
		dryRun     = flag.Bool("dry-run", false, "print the frame instead of opening a serial port")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if !*verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}

	// ---- Effective params (flags override config where given) ----
	if *port != "" {
		cfg.Port = *port
	}
	if *baud > 0 {
		cfg.BaudRate = *baud
	}
	if *tubes > 0 {
		cfg.Tubes = *tubes
	}
	if *brightness >= 0 {
		cfg.Brightness = *brightness
	}
	if *red >= 0 {
		cfg.Color.Red = *red
	}
	if *green >= 0 {
		cfg.Color.Green = *green
	}
	if *blue >= 0 {
		cfg.Color.Blue = *blue
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	// ---- Transport ----
	var (
		tr  nixie.Transport
		rec *serialport.Record
	)
	if *dryRun {
		rec = &serialport.Record{}
		tr = rec
	} else {
		p, err := serialport.Open(cfg.Port, serialport.WithBaudRate(cfg.BaudRate))
		if err != nil {
			log.Fatal().Err(err).Msg("serial port")
		}
		tr = p
		log.Debug().Str("port", cfg.Port).Int("baud", cfg.BaudRate).Msg("serial port open")
	}

	d, err := nixie.New(cfg.Tubes, tr,
		nixie.WithBrightness(cfg.Brightness),
		nixie.WithColor(cfg.Color.Red, cfg.Color.Green, cfg.Color.Blue),
		nixie.WithSettle(time.Duration(cfg.SettleMs)*time.Millisecond),
		nixie.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("display")
	}
	defer d.Close()

	switch {
	case *clear:
		if err := d.Reset(); err != nil {
			log.Fatal().Err(err).Msg("reset")
		}
	case *number >= 0:
		if err := d.SetNumber(*number); err != nil {
			log.Fatal().Err(err).Msg("set number")
		}
	default:
		log.Fatal().Msg("nothing to do: pass -number or -clear")
	}

	if err := d.Send(); err != nil {
		log.Fatal().Err(err).Msg("send")
	}
	if *dryRun {
		// Frame 0 is the command; Close appends the blanking frame after.
		os.Stdout.WriteString(string(rec.Frames[0]) + "\n")
	}
	log.Debug().Int("tubes", cfg.Tubes).Msg("frame sent")
}
