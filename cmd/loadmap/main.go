/*
 * Copyright (C) 2023 by Jason Figge
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"ray-casting/internal/app"
	"ray-casting/internal/logging"
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
	m, err := app.LoadMap(cfg, flag.Arg(0))
	if err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
	fmt.Print(m)
}
