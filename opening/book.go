package opening

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"riverwar/game"

	"gopkg.in/yaml.v3"
)

//go:embed book.yaml
var bookYAML []byte

var ErrMalformedBook = errors.New("malformed opening book")

// Ply is one half-move of a book line in "C3-D3" notation.
type Ply struct {
	From game.Position
	To   game.Position
}

func ParsePly(s string) (Ply, error) {
	from, to, ok := strings.Cut(s, "-")
	if !ok {
		return Ply{}, fmt.Errorf("%w: ply %q", ErrMalformedBook, s)
	}
	f, err := game.ParsePosition(from)
	if err != nil {
		return Ply{}, err
	}
	t, err := game.ParsePosition(to)
	if err != nil {
		return Ply{}, err
	}
	return Ply{From: f, To: t}, nil
}

func (p Ply) String() string {
	return p.From.String() + "-" + p.To.String()
}

// Line is a named, weighted sequence of plies starting from the initial position.
type Line struct {
	Name   string
	Weight int
	Plies  []Ply
}

// Book holds the candidate lines of each side.
type Book struct {
	lines map[game.Player][]Line
}

type rawLine struct {
	Name   string   `yaml:"name"`
	Weight int      `yaml:"weight"`
	Plies  []string `yaml:"plies"`
}

type rawBook struct {
	Player1 []rawLine `yaml:"player1"`
	Player2 []rawLine `yaml:"player2"`
}

// Parse decodes a YAML opening book. Plies are checked for notation only; legality is
// checked against the live game when a line is played.
func Parse(data []byte) (*Book, error) {
	var raw rawBook
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBook, err)
	}

	book := &Book{lines: map[game.Player][]Line{}}
	for side, lines := range map[game.Player][]rawLine{game.Player1: raw.Player1, game.Player2: raw.Player2} {
		for _, rl := range lines {
			if rl.Weight <= 0 {
				return nil, fmt.Errorf("%w: line %q has weight %d", ErrMalformedBook, rl.Name, rl.Weight)
			}
			line := Line{Name: rl.Name, Weight: rl.Weight, Plies: make([]Ply, 0, len(rl.Plies))}
			for _, s := range rl.Plies {
				ply, err := ParsePly(s)
				if err != nil {
					return nil, fmt.Errorf("line %q: %w", rl.Name, err)
				}
				line.Plies = append(line.Plies, ply)
			}
			book.lines[side] = append(book.lines[side], line)
		}
	}
	return book, nil
}

var defaultBook = mustParse(bookYAML)

func mustParse(data []byte) *Book {
	book, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return book
}

// Default returns the embedded book.
func Default() *Book {
	return defaultBook
}

func (b *Book) Lines(side game.Player) []Line {
	return b.lines[side]
}
