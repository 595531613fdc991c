/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"ray-casting/internal/app"
	"ray-casting/internal/logging"
	"ray-casting/internal/termview"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $RAYCAST_CONFIG)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <map.cub>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := app.Configure(*configPath)
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	scene, err := app.NewScene(cfg, flag.Arg(0))
	if err == nil {
		err = scene.Draw(context.Background())
	}
	if err == nil {
		err = termview.Show(scene.Render.Frame())
	}
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
