package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okian/appello/internal/seed"
	"github.com/okian/appello/pkg/logger"
)

func main() {
	now := time.Now()

	addr := flag.String("addr", "http://127.0.0.1:9180", "base URL of the running roster service")
	athletes := flag.Int("athletes", 24, "number of athletes to create")
	teams := flag.Int("teams", 3, "number of teams to create")
	year := flag.Int("year", now.Year(), "year events are scheduled in")
	month := flag.Int("month", int(now.Month()), "month events are scheduled in (1-12)")
	randSeed := flag.Int64("seed", 0, "random seed, 0 means time-based")
	flag.Parse()

	if err := logger.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	lg := logger.Named("seed")

	if *athletes < 1 || *teams < 1 {
		fmt.Fprintln(os.Stderr, "athletes and teams must be at least 1")
		os.Exit(2)
	}
	if *month < 1 || *month > 12 {
		fmt.Fprintln(os.Stderr, "month must be between 1 and 12")
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runner := seed.NewRunner(seed.Config{
		BaseURL:  *addr,
		Athletes: *athletes,
		Teams:    *teams,
		Year:     *year,
		Month:    time.Month(*month),
		Seed:     *randSeed,
	}, lg)

	if err := runner.Run(ctx); err != nil {
		lg.Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
