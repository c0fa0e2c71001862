// Package main provides a terminal spectator for the leaderboard.
//
// It runs the same polling loop the web views use: fetch the ranked list
// on a cadence, print the podium layout, and announce leader changes.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nuitinfo/podium-live/internal/config"
	"github.com/nuitinfo/podium-live/internal/podium"
	"github.com/nuitinfo/podium-live/internal/poller"
	"github.com/nuitinfo/podium-live/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	zlog, err := logger.New()
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	baseURL := config.GetEnv("PODIUM_URL", "http://localhost:8080")
	pollCfg := config.LoadPollConfigFromEnv()

	client := poller.NewHTTPClient(baseURL, 10*time.Second)
	p := poller.New(client, poller.Config{
		Interval:      pollCfg.PublicInterval,
		ReducedMotion: config.GetEnvBool("REDUCED_MOTION", false),
		Logger:        zlog,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		cancel()
	}()

	go p.Run(ctx)

	render := time.NewTicker(pollCfg.PublicInterval)
	defer render.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-p.Events():
			fmt.Printf("\n*** %s ***\n", ev.Announcement)
		case <-render.C:
			if p.State() == poller.StateErrored {
				fmt.Println("classement indisponible, nouvelle tentative...")
				p.Retry()
				continue
			}
			printView(podium.Build(p.Teams()))
		}
	}
}

func printView(v podium.View) {
	var b strings.Builder
	for _, place := range v.Places {
		if place.Awaiting() {
			fmt.Fprintf(&b, "  [%d] %-7s  (en attente)\n", place.Rank, place.Tier)
			continue
		}
		fmt.Fprintf(&b, "  [%d] %-7s  %s %s — %d pts\n",
			place.Rank, place.Tier, place.Team.Avatar, place.Team.Name, place.Team.Score)
	}
	for _, entry := range v.List {
		fmt.Fprintf(&b, "  %2d. %s %s — %d pts\n",
			entry.Rank, entry.Team.Avatar, entry.Team.Name, entry.Team.Score)
	}
	fmt.Print(b.String())
	fmt.Println(strings.Repeat("-", 40))
}
