// Package derive completes partially specified themes by filling unset
// properties from related ones.
package derive

import (
	"github.com/prism-vault/prism/log"
	"github.com/prism-vault/prism/theme"
)

// Stage is one step of the pipeline. Apply may only assign keys that are
// currently unset.
type Stage struct {
	Name  string
	Apply func(theme.Bag)
}

// Stages run in this order; later stages read the output of earlier ones.
var Stages = []Stage{
	{Name: "glow", Apply: glow},
	{Name: "text", Apply: text},
	{Name: "accents", Apply: accents},
	{Name: "semantic", Apply: semantic},
	{Name: "charts", Apply: charts},
}

// Derive returns a copy of bag with every derivable property filled in.
// Keys that already hold a value are never touched, so Derive(Derive(b))
// equals Derive(b).
func Derive(bag theme.Bag) theme.Bag {
	out := bag.Clone()
	if out == nil {
		out = make(theme.Bag)
	}

	before := len(out)
	for _, stage := range Stages {
		stage.Apply(out)
	}

	log.WithFields(log.Fields{
		"theme":   out.String(theme.ID),
		"derived": len(out) - before,
	}).Debug("derived theme properties")

	return out
}

// UpdateProperty returns a copy of r with key set to value. Changing a color
// slot re-runs the pipeline so dependent slots that were unset get filled.
// r itself is never modified.
func UpdateProperty(r *theme.Resolved, key string, value any) *theme.Resolved {
	next := r.With(key, value)
	if theme.Property(key).IsColor() {
		next.Props = Derive(next.Props)
	}
	return next
}
