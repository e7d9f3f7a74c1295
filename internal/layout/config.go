package layout

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileConfig is the YAML form of a Problem:
//
//	points: 10
//	connection_weight: 10
//	connections:
//	  - [0, 1]
//	  - [0, 2]
type fileConfig struct {
	Points           int     `yaml:"points"`
	ConnectionWeight float64 `yaml:"connection_weight"`
	Connections      [][]int `yaml:"connections"`
}

// Load decodes a YAML problem description from r and validates it.
// Unknown keys are rejected.
func Load(r io.Reader) (*Problem, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var cfg fileConfig
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode layout: %w", ErrNoPoints)
		}
		return nil, fmt.Errorf("decode layout: %w", err)
	}

	p := &Problem{
		Points:           cfg.Points,
		ConnectionWeight: cfg.ConnectionWeight,
		Connections:      make([]Connection, 0, len(cfg.Connections)),
	}
	for i, c := range cfg.Connections {
		if len(c) != 2 {
			return nil, fmt.Errorf("%w: entry %d has %d endpoints", ErrBadConnection, i, len(c))
		}
		p.Connections = append(p.Connections, Connection{From: c[0], To: c[1]})
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ParseConnections parses a comma-separated list such as "0-1,0-2,3-4".
// An empty string yields no connections.
func ParseConnections(s string) ([]Connection, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var conns []Connection
	for _, part := range strings.Split(s, ",") {
		from, to, ok := strings.Cut(strings.TrimSpace(part), "-")
		if !ok {
			return nil, fmt.Errorf("%w: %q is not from-to", ErrBadConnection, part)
		}
		f, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadConnection, part, err)
		}
		t, err := strconv.Atoi(strings.TrimSpace(to))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadConnection, part, err)
		}
		conns = append(conns, Connection{From: f, To: t})
	}
	return conns, nil
}
