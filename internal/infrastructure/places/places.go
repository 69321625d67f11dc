// Package places implements place-name recognizers for inquiry texts.
package places

import (
	"context"
	"fmt"
	"strings"
)

const (
	RecognizerGazetteer = "gazetteer"
	RecognizerProse     = "prose"
)

// Recognizer finds place names in text, in order of appearance, without
// deduplication.
type Recognizer interface {
	DetectPlaces(ctx context.Context, text string) ([]string, error)
	// Ready reports whether the recognizer can serve requests.
	Ready(ctx context.Context) error
	Name() string
}

func New(name string) (Recognizer, error) {
	switch strings.ToLower(name) {
	case RecognizerGazetteer, "":
		return NewGazetteer()
	case RecognizerProse:
		return NewProse(), nil
	default:
		return nil, fmt.Errorf("unknown place recognizer %q", name)
	}
}
