// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

const version = "0.3.0"

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "asm16"
	app.Usage = "Assembles programs into a 1024 word binary image"
	app.Version = version
	app.ArgsUsage = "FILE..."
	app.HideHelpCommand = true
	app.Flags = []cli.Flag{
		OutfileFlag,
		IsaFlag,
		StrictFlag,
		DumpIsaFlag,
		VerboseFlag,
	}
	app.Action = Assemble
	return app
}

func main() {
	err := newApp().RunContext(context.Background(), os.Args)
	if err != nil {
		log.Fatalf("%v: %v", os.Args[0], err)
	}
}
