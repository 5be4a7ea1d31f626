package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"riverwar/bots"
	"riverwar/engine"
	"riverwar/experiments"
	"riverwar/meta"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	p1 := flag.String("p1", "novice", "Bot profile playing Player1")
	p2 := flag.String("p2", "squire", "Bot profile playing Player2")
	games := flag.Int("games", 1, "Number of games to play")
	seed := flag.Int64("seed", meta.DefaultSeed, "Seed for bots and opening books")
	turns := flag.Int("turns", meta.MaxTurns, "Turns before a game is drawn")
	tournament := flag.Bool("tournament", false, "Play every profile against every other and write CSV records")
	out := flag.String("out", "experiments", "Directory for tournament records")
	debug := flag.Bool("debug", false, "Log every move")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *tournament {
		runTournament(*games, *seed, *turns, *out)
		return
	}

	profile1, err := bots.Lookup(*p1)
	if err != nil {
		log.Fatal().Err(err).Msgf("available profiles: %s", profileIDs())
	}
	profile2, err := bots.Lookup(*p2)
	if err != nil {
		log.Fatal().Err(err).Msgf("available profiles: %s", profileIDs())
	}

	wins := map[string]int{}
	for i := 0; i < *games; i++ {
		log.Info().Msgf("game %d of %d started...", i+1, *games)
		e := engine.LocalEngine(profile1, profile2, engine.WithSeed(*seed+int64(i)), engine.WithMaxTurns(*turns))
		winner, gameMetric, _, err := e.Run()
		if err != nil {
			log.Fatal().Err(err).Msgf("game %d failed", i+1)
		}
		wins[winner.String()]++
		log.Info().Msgf("game %d over! winner: %s by %s in %s", i+1, winner, gameMetric.Condition, gameMetric.Duration.Round(time.Millisecond))
	}
	log.Info().Msgf("results: %v", wins)
}

func runTournament(games int, seed int64, turns int, out string) {
	t := experiments.Tournament{
		Name:     "tournament",
		Profiles: bots.List(),
		Games:    games,
		Seed:     seed,
		Options:  []engine.Option{engine.WithMaxTurns(turns)},
	}
	standings, gameRecords, moveRecords, err := t.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("tournament failed")
	}
	dir, err := t.Store(out, gameRecords, moveRecords)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to store tournament records")
	}

	for _, p := range t.Profiles {
		r := standings[p.ID]
		if r == nil {
			continue
		}
		fmt.Printf("%-10s %3d W %3d L %3d D\n", p.ID, r.Wins, r.Losses, r.Draws)
	}
	log.Info().Msgf("records written to %s", dir)
}

func profileIDs() string {
	ids := []string{}
	for _, p := range bots.List() {
		ids = append(ids, p.ID)
	}
	return strings.Join(ids, ", ")
}
