// Command geocode is an interactive console for the location resolver.
// Each line typed is treated as a live search box keystroke: input is
// debounced and stale responses are discarded, so only the suggestions for
// the latest line are printed.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emsinet_landing_backend/internal/geocode"
	"emsinet_landing_backend/platform/config"
	"emsinet_landing_backend/platform/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	resolver := geocode.NewResolver(cfg, log)

	auto := geocode.NewAutocompleter(resolver, geocode.DefaultQuietPeriod, func(s geocode.Suggestions) {
		if len(s.Locations) == 0 {
			fmt.Printf("no results for %q\n", s.Query)
			return
		}
		fmt.Printf("results for %q:\n", s.Query)
		for _, loc := range s.Locations {
			fmt.Printf("  %s (%.5f, %.5f)\n", loc.Address, loc.Latitude, loc.Longitude)
		}
	})
	defer auto.Close()

	fmt.Println("type a place name, enter to search, ctrl-d to quit")

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			break
		}
		auto.Input(ctx, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		log.Error("read input", "error", err)
	}
}
