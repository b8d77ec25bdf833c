package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/composer/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override editor preferences path (optional)")
	fresh := flag.Bool("fresh", false, "start from the default document instead of the working copy")
	live := flag.Bool("live", false, "open the published copy read-only")
	flag.Parse()

	if *fresh && *live {
		fmt.Fprintln(os.Stderr, "composer: -fresh and -live cannot be combined")
		return 2
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		Fresh:      *fresh,
		Live:       *live,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "composer: %v\n", err)
		return 1
	}
	return 0
}
