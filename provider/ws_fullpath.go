package provider

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/wldnjs95/choreoplan/geom"
	"github.com/wldnjs95/choreoplan/pathgen"
)

// wsWriteWait bounds how long a single frame write may block, matching the
// pattern used by gorilla/websocket clients elsewhere in the retrieval pack.
const wsWriteWait = 5 * time.Second

// wsRequest is the JSON envelope sent to the advisor process.
type wsRequest struct {
	Start       []wsPoint      `json:"start"`
	End         []wsPoint      `json:"end"`
	Width       float64        `json:"width"`
	Height      float64        `json:"height"`
	TotalCounts float64        `json:"totalCounts"`
	Radius      float64        `json:"radius"`
	Preference  UserPreference `json:"preference"`
	PriorErrors []string       `json:"priorErrors,omitempty"`
}

type wsPoint struct {
	X, Y float64
}

// wsResponse is the JSON envelope the advisor process returns. Paths is
// keyed by dancer id rendered as a decimal string, since JSON object keys
// must be strings.
type wsResponse struct {
	Paths      map[string][]wsPathPoint `json:"paths"`
	Strategy   string                   `json:"strategy"`
	Reasoning  string                   `json:"reasoning"`
	Confidence float64                  `json:"confidence"`
}

type wsPathPoint struct {
	X, Y, T float64
}

// WSFullPathProvider is an example real-transport FullPathProvider: it opens
// a websocket connection to an external advisor process and exchanges one
// request/response pair per Plan call. It is not used by default (see
// LocalDeterministicFullPath); it demonstrates what a production adapter for
// the abstract FullPathProvider interface in spec.md §6 looks like when the
// advisor is a real out-of-process service.
type WSFullPathProvider struct {
	URL string
}

// Plan dials URL, sends one wsRequest, and decodes one wsResponse. Transport
// and decode errors are wrapped with a "provider:" prefix via %w; neither
// this adapter nor the pipeline maps them to the choreoerr sentinels.
func (p WSFullPathProvider) Plan(
	ctx context.Context,
	start, end []geom.Vector,
	width, height, totalCounts, radius float64,
	pref UserPreference,
	priorErrors []string,
) (FullPathResult, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, p.URL, nil)
	if err != nil {
		return FullPathResult{}, fmt.Errorf("provider: dialing advisor: %w", err)
	}
	defer conn.Close()

	req := wsRequest{
		Width:       width,
		Height:      height,
		TotalCounts: totalCounts,
		Radius:      radius,
		Preference:  pref,
		PriorErrors: priorErrors,
	}
	for _, s := range start {
		req.Start = append(req.Start, wsPoint{X: s.X, Y: s.Y})
	}
	for _, e := range end {
		req.End = append(req.End, wsPoint{X: e.X, Y: e.Y})
	}

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err := conn.WriteJSON(req); err != nil {
		return FullPathResult{}, fmt.Errorf("provider: writing advisor request: %w", err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetReadDeadline(deadline)
	}

	var resp wsResponse
	if err := conn.ReadJSON(&resp); err != nil {
		return FullPathResult{}, fmt.Errorf("provider: reading advisor response: %w", err)
	}

	paths := make(map[int][]pathgen.PathPoint, len(resp.Paths))
	for key, pts := range resp.Paths {
		id, err := strconv.Atoi(key)
		if err != nil {
			return FullPathResult{}, fmt.Errorf("provider: advisor returned non-integer dancer id %q: %w", key, err)
		}

		out := make([]pathgen.PathPoint, len(pts))
		for i, p := range pts {
			out[i] = pathgen.PathPoint{X: p.X, Y: p.Y, T: p.T}
		}
		paths[id] = out
	}

	return FullPathResult{
		Paths:      paths,
		Strategy:   resp.Strategy,
		Reasoning:  resp.Reasoning,
		Confidence: resp.Confidence,
	}, nil
}
