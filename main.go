package main

import (
	"context"
	"os"

	"github.com/snail-lang/snail/cli"
	"github.com/snail-lang/snail/engine"
)

func main() {
	env := cli.DefaultEnv()

	cfg := cli.LoadConfig()

	// Diagnostics go to stderr, so the color default follows its TTY state.
	cli.ConfigureLogging(cfg, env.StderrIsTTY())

	eng := engine.NewProc(cfg.Engine)

	os.Exit(cli.Run(context.Background(), eng, env, os.Args[1:]))
}
