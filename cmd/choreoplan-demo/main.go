// Package main is a thin demo command: it builds the line-to-V canonical
// scenario (spec.md §8, scenario 1), runs it through the pipeline, and
// prints the selected candidate's metrics as JSON. It doubles as a smoke
// test and a worked example.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wldnjs95/choreoplan/assignment"
	"github.com/wldnjs95/choreoplan/choreocfg"
	"github.com/wldnjs95/choreoplan/choreolog"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pipeline"
	"github.com/wldnjs95/choreoplan/provider"
)

func main() {
	os.Exit(run())
}

func run() int {
	mode := flag.String("mode", "local_only", "pipeline mode: local_only, external_rank, pre_and_rank, external_full")
	dancers := flag.Int("dancers", 8, "number of dancers in the line-to-V scenario")
	configPath := flag.String("config", "", "optional TOML config file (defaults if absent)")
	debug := flag.Bool("debug", false, "enable structured debug logging to stderr")
	flag.Parse()

	if *dancers < 2 {
		fmt.Fprintln(os.Stderr, "choreoplan-demo: -dancers must be >= 2")

		return 1
	}

	cfg := choreocfg.DefaultConfig()
	if *configPath != "" {
		loaded, err := choreocfg.LoadTOML(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "choreoplan-demo: %v\n", err)

			return 1
		}
		cfg = loaded
	}

	log := choreolog.Noop()
	if *debug {
		log = choreolog.New()
	}

	coord := pipeline.New()
	coord.Config = cfg
	coord.Log = log

	req := lineToVRequest(*dancers, pipeline.Mode(*mode))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	resp, updates, err := coord.Run(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "choreoplan-demo: run failed: %v\n", err)

		return 1
	}

	if updates != nil {
		select {
		case u := <-updates:
			if u.Status == pipeline.UpdateSuccess {
				resp = u.Response
			}
		case <-time.After(2 * time.Second):
		}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summarize(resp)); err != nil {
		fmt.Fprintf(os.Stderr, "choreoplan-demo: %v\n", err)

		return 1
	}

	return 0
}

// demoSummary is the compact JSON shape printed to stdout: just enough to
// eyeball a scenario's outcome without dumping every sampled path point.
type demoSummary struct {
	RequestID        string  `json:"requestId"`
	Mode             string  `json:"mode"`
	SelectedStrategy string  `json:"selectedStrategy"`
	TotalCandidates  int     `json:"totalCandidates"`
	ComputeTimeMs    float64 `json:"computeTimeMs"`
	UsedExternal     bool    `json:"usedExternalRanker"`
	StatusTag        string  `json:"statusTag,omitempty"`

	CollisionCount      int     `json:"collisionCount"`
	CrossingCount       int     `json:"crossingCount"`
	SymmetryScore       float64 `json:"symmetryScore"`
	PathSmoothness      float64 `json:"pathSmoothness"`
	SimultaneousArrival float64 `json:"simultaneousArrival"`
	MaxDelay            float64 `json:"maxDelay"`
}

func summarize(resp pipeline.Response) demoSummary {
	m := resp.Selected.Metrics

	return demoSummary{
		RequestID:           resp.RequestID,
		Mode:                string(resp.Metadata.PipelineMode),
		SelectedStrategy:    resp.Selected.ID,
		TotalCandidates:     resp.Metadata.TotalCandidates,
		ComputeTimeMs:       resp.Metadata.ComputeTimeMs,
		UsedExternal:        resp.Metadata.UsedExternalRanker,
		StatusTag:           resp.Metadata.StatusTag,
		CollisionCount:      m.CollisionCount,
		CrossingCount:       m.CrossingCount,
		SymmetryScore:       m.SymmetryScore,
		PathSmoothness:      m.PathSmoothness,
		SimultaneousArrival: m.SimultaneousArrival,
		MaxDelay:            m.MaxDelay,
	}
}

// lineToVRequest builds spec.md §8 scenario 1, generalized from 8 to n
// dancers: a horizontal line fanning out into a V with its apex centered on
// the stage.
func lineToVRequest(n int, mode pipeline.Mode) pipeline.Request {
	const width, height = 10.0, 8.0

	start := make([]geom.Vector, n)
	end := make([]geom.Vector, n)
	spacing := width / float64(n+1)
	apexX, apexY := width/2, height-1.5

	for i := 0; i < n; i++ {
		x := spacing * float64(i+1)
		start[i] = geom.Vector{X: x, Y: 1}

		dx := x - apexX
		if dx < 0 {
			dx = -dx
		}
		end[i] = geom.Vector{X: x, Y: 1 + (apexY-1)*(1-dx/apexX)}
	}

	return pipeline.Request{
		StartPositions:  start,
		EndPositions:    end,
		StageWidth:      width,
		StageHeight:     height,
		TotalCounts:     8,
		CollisionRadius: 0.5,
		AssignmentMode:  assignment.Fixed,
		Mode:            mode,
		UserPreference:  provider.UserPreference{Priority: "symmetry"},
		SamplesPerPath:  20,
	}
}
