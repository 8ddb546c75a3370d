//go:build !tinygo

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"vramdemo/app"
	"vramdemo/hal"
)

func main() {
	var cfg app.Config
	var hcfg hal.HeadlessConfig
	flag.StringVar(&cfg.Demo, "demo", "gradient", "Demo to draw ("+strings.Join(app.Names(), ", ")+").")
	flag.BoolVar(&cfg.Compat, "compat", false, "Reproduce the legacy output bit for bit.")
	flag.BoolVar(&cfg.Caption, "caption", false, "Overlay the demo name.")
	flag.BoolVar(&hcfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&hcfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&hcfg.Ticks, "ticks", 1, "Stop after N ticks in headless mode (0 = run until interrupted).")
	flag.StringVar(&hcfg.PNGPath, "png", "", "Write a PNG snapshot when the headless run ends.")
	flag.IntVar(&hcfg.PNGScale, "png-scale", 1, "Integer upscale factor for -png.")
	flag.Parse()

	if _, err := app.NewDemo(cfg.Demo, cfg.Compat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	newApp := func(h hal.HAL) (func() error, error) {
		return app.NewWithConfig(h, cfg)
	}

	if hcfg.Enabled {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := hal.RunHeadless(ctx, newApp, hcfg); err != nil {
			if errors.Is(err, context.Canceled) {
				return
			}
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if err := hal.RunWindow(newApp); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
