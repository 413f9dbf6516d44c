package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/five82/chainview/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional, defaults to ~/.config/chainview/config.toml)")
	endpoint := flag.String("endpoint", "", "chain endpoint URL or host:port (optional)")
	poll := flag.Duration("poll", 0, "refresh interval (optional, defaults to 3s)")
	dumpJSON := flag.Bool("json", false, "fetch the chain once, print it as JSON and exit")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		Endpoint:   *endpoint,
	}
	if *poll > 0 {
		opts.PollEvery = *poll
	}

	if *dumpJSON {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := app.Dump(ctx, opts, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "chainview: %v\n", err)
			return 1
		}
		return 0
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "chainview: %v\n", err)
		return 1
	}
	return 0
}
