package evidence

import (
	"context"

	"github.com/chawalitkim/veritas-lens-project/internal/core/model"
	"github.com/chawalitkim/veritas-lens-project/internal/core/sanitize"
)

// StaticProvider serves evidence from a fixed in-memory table keyed by
// normalized claim text. Exact matches only; anything else returns no
// evidence. Useful for demos and deterministic tests.
type StaticProvider struct {
	table map[string][]model.Evidence
}

func NewStaticProvider() *StaticProvider {
	return &StaticProvider{table: staticTable}
}

func (p *StaticProvider) Mode() string { return ModeStatic }

func (p *StaticProvider) Gather(ctx context.Context, claim string) ([]model.Evidence, error) {
	items, ok := p.table[sanitize.Normalize(claim)]
	if !ok {
		return nil, nil
	}

	// Copy so callers can annotate without mutating the table.
	out := make([]model.Evidence, len(items))
	copy(out, items)
	return out, nil
}

var staticTable = map[string][]model.Evidence{
	"the great wall of china is visible from space": {
		{
			Source: "https://www.nasa.gov/vision/space/workinginspace/great_wall.html",
			Quote:  "The Great Wall of China, frequently billed as the only man-made object visible from space, generally isn't, at least to the unaided eye in low Earth orbit.",
		},
		{
			Source: "https://www.scientificamerican.com/article/is-chinas-great-wall-visible-from-space/",
			Quote:  "Astronauts report that the wall is not visible to the naked eye from orbit, though city lights and airport runways are.",
		},
	},
	"water boils at 100 degrees celsius at sea level": {
		{
			Source: "https://www.noaa.gov/jetstream/atmosphere/air-pressure",
			Quote:  "At standard sea-level pressure of 1013.25 millibars, pure water boils at 100 degrees Celsius.",
		},
	},
	"the earth is flat": {
		{
			Source: "https://www.nasa.gov/image-article/blue-marble-image-earth-from-apollo-17/",
			Quote:  "Photographs taken by the Apollo 17 crew show the Earth as a sphere from a distance of about 29,000 kilometers.",
		},
		{
			Source: "https://physics.mit.edu/news/how-do-we-know-the-earth-is-round/",
			Quote:  "Ship hulls disappearing below the horizon, circular shadows during lunar eclipses, and direct orbital imagery all independently confirm Earth's curvature.",
		},
	},
	"humans only use 10 percent of their brains": {
		{
			Source: "https://www.scientificamerican.com/article/do-people-only-use-10-percent-of-their-brains/",
			Quote:  "Brain imaging shows that over the course of a day virtually all regions of the brain are active; the ten percent figure is a myth.",
		},
	},
	"lightning never strikes the same place twice": {
		{
			Source: "https://www.weather.gov/safety/lightning-myths",
			Quote:  "Lightning often strikes the same place repeatedly; the Empire State Building is hit an average of 23 times a year.",
		},
	},
}
