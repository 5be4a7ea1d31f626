package experiments

import (
	"fmt"

	"riverwar/bots"
	"riverwar/engine"
	"riverwar/experiments/metrics"
	"riverwar/game"

	"github.com/rs/zerolog/log"
)

// Tournament plays every ordered pair of distinct profiles, so each pairing is seen with both
// sides starting.
type Tournament struct {
	Name     string
	Profiles []bots.Profile
	Games    int // per ordered pairing
	Seed     int64
	Options  []engine.Option
}

// Standings counts results per profile id.
type Standings map[string]*Record

type Record struct {
	Wins   int
	Losses int
	Draws  int
}

func (s Standings) add(id string) *Record {
	if s[id] == nil {
		s[id] = &Record{}
	}
	return s[id]
}

// Run plays the tournament and returns the standings with per-game and per-move records.
func (t Tournament) Run() (Standings, []metrics.GameRecord, []metrics.MoveRecord, error) {
	if len(t.Profiles) < 2 {
		return nil, nil, nil, fmt.Errorf("tournament %q needs at least two profiles", t.Name)
	}

	matchUps := [][2]bots.Profile{}
	for _, p1 := range t.Profiles {
		for _, p2 := range t.Profiles {
			if p1.ID != p2.ID {
				matchUps = append(matchUps, [2]bots.Profile{p1, p2})
			}
		}
	}

	standings := Standings{}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	count := 0

	log.Info().Msgf("starting %s tournament...", t.Name)

	for mi, matchUp := range matchUps {
		p1, p2 := matchUp[0], matchUp[1]
		log.Info().Msgf("starting matchup %d of %d between %s and %s...", mi+1, len(matchUps), p1.ID, p2.ID)

		for i := 0; i < t.Games; i++ {
			count++
			options := append([]engine.Option{engine.WithSeed(t.Seed + int64(count))}, t.Options...)
			winner, gameMetric, moveMetrics, err := engine.LocalEngine(p1, p2, options...).Run()
			if err != nil {
				return standings, gameRecords, moveRecords, fmt.Errorf("game %d (%s vs %s): %w", count, p1.ID, p2.ID, err)
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Profile1:   p1.ID,
				Profile2:   p2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			switch winner {
			case game.Player1:
				standings.add(p1.ID).Wins++
				standings.add(p2.ID).Losses++
			case game.Player2:
				standings.add(p2.ID).Wins++
				standings.add(p1.ID).Losses++
			default:
				standings.add(p1.ID).Draws++
				standings.add(p2.ID).Draws++
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s tournament", t.Name)
	return standings, gameRecords, moveRecords, nil
}

// Store writes the tournament's profiles and records under root.
func (t Tournament) Store(root string, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, t.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	err = writer.WriteProfiles(t.Profiles)
	if err != nil {
		return "", fmt.Errorf("failed to store profiles: %w", err)
	}
	log.Info().Msg("stored profiles")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
