package bots

import (
	_ "embed"
	"errors"
	"fmt"
	"time"

	"riverwar/game"

	"gopkg.in/yaml.v3"
)

//go:embed profiles.yaml
var profilesYAML []byte

var ErrUnknownProfile = errors.New("unknown bot profile")

// Profile sets the strength of a computer opponent.
type Profile struct {
	ID          string
	Name        string
	Depth       int
	TimeBudget  time.Duration
	Randomness  float64
	OpeningBook bool
	Weights     game.Weights
}

type rawProfile struct {
	ID          string        `yaml:"id"`
	Name        string        `yaml:"name"`
	Depth       int           `yaml:"depth"`
	TimeBudget  time.Duration `yaml:"timeBudget"`
	Randomness  float64       `yaml:"randomness"`
	OpeningBook bool          `yaml:"openingBook"`
	Weights     yaml.Node     `yaml:"weights"`
}

// Parse decodes a YAML list of profiles. Weight overrides are decoded over game.DefaultWeights.
func Parse(data []byte) ([]Profile, error) {
	var raw []rawProfile
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode profiles: %w", err)
	}

	profiles := make([]Profile, 0, len(raw))
	seen := map[string]bool{}
	for _, r := range raw {
		if r.ID == "" || seen[r.ID] {
			return nil, fmt.Errorf("profile id %q is empty or duplicated", r.ID)
		}
		seen[r.ID] = true
		if r.Depth < 1 {
			return nil, fmt.Errorf("profile %q: depth must be at least 1, got %d", r.ID, r.Depth)
		}

		weights := game.DefaultWeights()
		if !r.Weights.IsZero() {
			if err := r.Weights.Decode(&weights); err != nil {
				return nil, fmt.Errorf("profile %q weights: %w", r.ID, err)
			}
		}
		weights.Randomness = r.Randomness

		profiles = append(profiles, Profile{
			ID:          r.ID,
			Name:        r.Name,
			Depth:       r.Depth,
			TimeBudget:  r.TimeBudget,
			Randomness:  r.Randomness,
			OpeningBook: r.OpeningBook,
			Weights:     weights,
		})
	}
	return profiles, nil
}

var builtin = mustParse(profilesYAML)

func mustParse(data []byte) []Profile {
	profiles, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return profiles
}

// List returns the built-in profiles from weakest to strongest.
func List() []Profile {
	out := make([]Profile, len(builtin))
	copy(out, builtin)
	return out
}

func Lookup(id string) (Profile, error) {
	for _, p := range builtin {
		if p.ID == id {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, id)
}

// Weakest is the profile with the shallowest search.
func Weakest() Profile {
	weakest := builtin[0]
	for _, p := range builtin[1:] {
		if p.Depth < weakest.Depth {
			weakest = p
		}
	}
	return weakest
}
