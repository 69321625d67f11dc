package places

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/jdkato/prose/v2"
)

const labelGeopolitical = "GPE"

var ErrNotWarm = errors.New("prose model is not loaded yet")

// Prose detects places with the prose named-entity recognizer.
type Prose struct {
	warm atomic.Bool
}

func NewProse() *Prose {
	return &Prose{}
}

func (p *Prose) Name() string {
	return RecognizerProse
}

// Warm loads the tagging model by parsing a short document.
func (p *Prose) Warm(ctx context.Context) error {
	if _, err := p.DetectPlaces(ctx, "Ship from Paris to Berlin."); err != nil {
		return err
	}

	p.warm.Store(true)

	return nil
}

func (p *Prose) Ready(context.Context) error {
	if !p.warm.Load() {
		return ErrNotWarm
	}

	return nil
}

func (p *Prose) DetectPlaces(ctx context.Context, text string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("prose.NewDocument: %w", err)
	}

	return placesFromEntities(doc.Entities()), nil
}

func placesFromEntities(entities []prose.Entity) []string {
	var out []string

	for _, e := range entities {
		if e.Label == labelGeopolitical {
			out = append(out, e.Text)
		}
	}

	return out
}
