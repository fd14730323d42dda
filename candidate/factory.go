package candidate

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/collision"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/metrics"
	"github.com/wldnjs95/choreoplan/pathgen"
	"github.com/wldnjs95/choreoplan/stage"
)

// Params bundles the scenario constants every strategy's pipeline run needs.
// Ends holds the original end-position slice in the same 0-based indexing
// Assignment.Record.EndIndex refers to; it is not recovered from Formation,
// since stage.NewFormation leaves Dancer.End unset and nothing fills it.
type Params struct {
	Formation       stage.Formation
	Ends            []geom.Vector
	Assignment      assignment.Assignment
	TotalCounts     float64
	CollisionRadius float64
	Samples         int
	ResolverBudget  int
}

// Generate runs each strategy's generation+resolution pipeline concurrently
// via an errgroup (spec.md §5: within one request, strategies share no
// mutable state, so they are safe to fan out), then evaluates each result.
// The returned slice preserves the input strategies' order regardless of
// completion order.
func Generate(ctx context.Context, p Params, strategies []Strategy) ([]Candidate, error) {
	results := make([]Candidate, len(strategies))

	g, ctx := errgroup.WithContext(ctx)
	for i, strat := range strategies {
		i, strat := i, strat
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			results[i] = runStrategy(p, strat)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func runStrategy(p Params, strat Strategy) Candidate {
	center := p.Formation.Stage.Center()
	n := len(p.Formation.Dancers)

	ends := make([]geom.Vector, n)
	for i, d := range p.Formation.Dancers {
		endIdx := p.Assignment.EndIndexFor(d.ID)
		ends[i] = p.Ends[endIdx]
	}

	priority := rankPriority(p.Formation.Dancers, ends, strat.Order, center)

	entries := make([]collision.Entry, n)
	starts := make([]geom.Vector, n)
	for i, d := range p.Formation.Dancers {
		starts[i] = d.Start

		startTime := 0.0
		if strat.StartTimeRatio != nil {
			startTime = strat.StartTimeRatio(d.ID) * p.TotalCounts / 2
		}

		curved, curvature := strat.Curved, strat.Curvature
		if strat.PerDancerCurve != nil {
			if c, amt, ok := strat.PerDancerCurve(d.ID); ok {
				curved, curvature = c, amt
			}
		}

		entries[i] = collision.Entry{
			DancerID:  d.ID,
			Start:     d.Start,
			End:       ends[i],
			StartTime: startTime,
			Curved:    curved,
			Curvature: curvature,
			Speed:     1.0,
		}
	}

	resolved, collisionCount := collision.Resolve(entries, collision.Params{
		TotalCounts: p.TotalCounts,
		CenterX:     center.X,
		Width:       p.Formation.Stage.Dims.Width,
		Height:      p.Formation.Stage.Dims.Height,
		Samples:     p.Samples,
		Radius:      p.CollisionRadius,
		Budget:      p.ResolverBudget,
		Priority:    priority,
	})

	paths := make([]pathgen.DancerPath, n)
	for i, e := range resolved {
		paths[i] = e.Path
	}

	m := metrics.Evaluate(metrics.Input{
		Paths:       paths,
		Starts:      starts,
		Ends:        ends,
		StageWidth:  p.Formation.Stage.Dims.Width,
		TotalCounts: p.TotalCounts,
		Radius:      p.CollisionRadius,
		Samples:     p.Samples,
	})
	if collisionCount > m.CollisionCount {
		// The resolver's P-point grid and Evaluate's dense grid share only
		// t=0 and t=T, so either may catch a pair the other misses; this
		// keeps the reported count the max of the two passes.
		m.CollisionCount = collisionCount
	}

	return Candidate{
		ID:         strat.Label,
		Paths:      paths,
		Assignment: p.Assignment,
		Metrics:    m,
	}
}

// rankPriority evaluates order for every dancer against its resolved end
// position and returns a dancerID -> ascending-rank map, which the resolver
// consults to pick the delayed dancer of a fully tied colliding pair.
func rankPriority(dancers []stage.Dancer, ends []geom.Vector, order OrderFunc, center geom.Vector) map[int]int {
	type keyed struct {
		dancerID int
		key      float64
	}

	keys := make([]keyed, len(dancers))
	for i, d := range dancers {
		dg := DancerGeom{ID: d.ID, Start: d.Start, End: ends[i], Center: center}
		keys[i] = keyed{dancerID: d.ID, key: order(dg)}
	}

	for i := 1; i < len(keys); i++ {
		j := i
		for j > 0 && (keys[j-1].key > keys[j].key ||
			(keys[j-1].key == keys[j].key && keys[j-1].dancerID > keys[j].dancerID)) {
			keys[j-1], keys[j] = keys[j], keys[j-1]
			j--
		}
	}

	priority := make(map[int]int, len(keys))
	for rank, k := range keys {
		priority[k.dancerID] = rank
	}

	return priority
}
