package main

import (
	"strconv"
	"strings"

	"github.com/vango-dev/folio/internal/errors"
	"github.com/vango-dev/folio/pkg/router"
)

type stepKind int

const (
	stepNavigate stepKind = iota
	stepReplace
	stepBack
	stepForward
	stepGo
	stepClick
)

// step is one action of a simulated navigation session.
type step struct {
	raw   string
	kind  stepKind
	path  string
	delta int
	click router.ClickEvent
}

// parseStep parses a step:
//
//	/research/1          navigate
//	replace:/research    navigate, replacing the entry
//	back, forward, go:-2 move through history
//	click:#/agent+ctrl   link click with optional modifiers
func parseStep(raw string) (step, error) {
	s := step{raw: raw}
	invalid := func() (step, error) {
		return step{}, errors.New("F301").WithPath(raw)
	}

	switch {
	case raw == "back":
		s.kind = stepBack
	case raw == "forward":
		s.kind = stepForward
	case strings.HasPrefix(raw, "go:"):
		n, err := strconv.Atoi(strings.TrimPrefix(raw, "go:"))
		if err != nil {
			return invalid()
		}
		s.kind, s.delta = stepGo, n
	case strings.HasPrefix(raw, "replace:"):
		s.kind, s.path = stepReplace, strings.TrimPrefix(raw, "replace:")
		if s.path == "" {
			return invalid()
		}
	case strings.HasPrefix(raw, "click:"):
		parts := strings.Split(strings.TrimPrefix(raw, "click:"), "+")
		s.kind = stepClick
		s.click.Href = parts[0]
		for _, mod := range parts[1:] {
			switch mod {
			case "ctrl":
				s.click.CtrlKey = true
			case "meta":
				s.click.MetaKey = true
			case "shift":
				s.click.ShiftKey = true
			case "alt":
				s.click.AltKey = true
			case "middle":
				s.click.Button = 1
			default:
				return invalid()
			}
		}
	case strings.HasPrefix(raw, "/"):
		s.kind, s.path = stepNavigate, raw
	default:
		return invalid()
	}
	return s, nil
}

func parseSteps(raw []string) ([]step, error) {
	steps := make([]step, 0, len(raw))
	for _, r := range raw {
		s, err := parseStep(r)
		if err != nil {
			return nil, err
		}
		steps = append(steps, s)
	}
	return steps, nil
}
