package main

import (
	"flag"
	"os"
	"os/signal"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-nixiechain/internal/config"
	"github.com/coreman2200/funtimes-nixiechain/nixie"
	"github.com/coreman2200/funtimes-nixiechain/serialport"
)

// A wall clock on a 4-tube chain: HHMM, with the second tube's right
// decimal point blinking as the colon.
func main() {
	var (
		configPath = flag.String("config", "", "path to config.yaml (optional)")
		port       = flag.String("port", "", "serial device, e.g. /dev/ttyUSB0")
		brightness = flag.Int("brightness", -1, "tube brightness 0-255")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := config.Default()
	if *configPath != "" {
		c, err := config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *configPath).Msg("config load failed")
		}
		cfg = c
	}
	if *port != "" {
		cfg.Port = *port
	}
	if *brightness >= 0 {
		cfg.Brightness = *brightness
	}
	cfg.Tubes = 4 // HHMM
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}

	p, err := serialport.Open(cfg.Port, serialport.WithBaudRate(cfg.BaudRate))
	if err != nil {
		log.Fatal().Err(err).Msg("serial port")
	}
	d, err := nixie.New(cfg.Tubes, p,
		nixie.WithBrightness(cfg.Brightness),
		nixie.WithColor(cfg.Color.Red, cfg.Color.Green, cfg.Color.Blue),
		nixie.WithSettle(time.Duration(cfg.SettleMs)*time.Millisecond),
		nixie.WithLogger(log.Logger))
	if err != nil {
		log.Fatal().Err(err).Msg("display")
	}
	defer d.Close()

	clock := clockwork.NewRealClock()
	ticker := clock.NewTicker(time.Second)
	defer ticker.Stop()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	defer signal.Stop(c)

	log.Info().Str("port", cfg.Port).Msg("clock running")
	for {
		select {
		case <-ticker.Chan():
			now := clock.Now()
			if err := d.SetNumber(now.Hour()*100 + now.Minute()); err != nil {
				log.Fatal().Err(err).Msg("set time")
			}
			d.Tube(1).SetRightDP(now.Second()%2 == 0)
			if err := d.Send(); err != nil {
				log.Fatal().Err(err).Msg("send")
			}

		case sig := <-c:
			log.Info().Str("signal", sig.String()).Msg("shutting down")
			return
		}
	}
}
