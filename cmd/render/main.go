/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"ray-casting/internal/app"
	"ray-casting/internal/logging"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $RAYCAST_CONFIG)")
	format := flag.String("format", "", "output format when the extension is not recognised: png, bmp or tiff")
	workers := flag.Int("workers", 0, "columns rendered in parallel")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <map.cub> <out>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *format, *workers, flag.Arg(0), flag.Arg(1)); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(configPath, format string, workers int, mapPath, outPath string) error {
	cfg, err := app.Configure(configPath)
	if err != nil {
		return err
	}
	if format != "" {
		cfg.Output.Format = format
	}
	if workers > 0 {
		cfg.Render.Workers = workers
	}

	scene, err := app.NewScene(cfg, mapPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := scene.Draw(ctx); err != nil {
		return err
	}
	return scene.Save(outPath)
}
