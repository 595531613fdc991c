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
	"ray-casting/internal/viewer"
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

	if err := run(*configPath, flag.Arg(0)); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	fmt.Println("Game over")
}

func run(configPath, mapPath string) error {
	cfg, err := app.Configure(configPath)
	if err != nil {
		return err
	}
	scene, err := app.NewScene(cfg, mapPath)
	if err != nil {
		return err
	}
	if err := scene.Draw(context.Background()); err != nil {
		return err
	}
	return viewer.NewController("Ray Caster", scene.Render).Run()
}
