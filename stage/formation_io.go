package stage

import (
	"encoding/json"
	"fmt"
	"time"
)

// FormationRecord is the persisted-formation wire shape from spec.md §6, used
// by external collaborators (editor, persistence layer) for import/export.
// The core never reads or writes files; it only encodes/decodes this shape.
type FormationRecord struct {
	Name        string             `json:"name"`
	DancerCount int                `json:"dancerCount"`
	Positions   []PositionRecord   `json:"positions"`
	StageWidth  float64            `json:"stageWidth"`
	StageHeight float64            `json:"stageHeight"`
	CreatedAt   time.Time          `json:"createdAt"`
	Description string             `json:"description,omitempty"`
}

// PositionRecord is the JSON shape of a single Position within a
// FormationRecord.
type PositionRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FormationSet is the top-level persisted document.
type FormationSet struct {
	Version    string            `json:"version"`
	Formations []FormationRecord `json:"formations"`
}

// CurrentVersion is the FormationSet.Version this package writes.
const CurrentVersion = "1.0"

// MarshalFormationSet encodes formations into the versioned JSON document
// described by spec.md §6.
func MarshalFormationSet(formations []FormationRecord) ([]byte, error) {
	set := FormationSet{Version: CurrentVersion, Formations: formations}

	b, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("stage: marshaling formation set: %w", err)
	}

	return b, nil
}

// UnmarshalFormationSet decodes a versioned JSON document into its
// FormationRecord slice. It does not validate geometric bounds: callers that
// intend to use the positions with NewFormation get that validation there.
func UnmarshalFormationSet(data []byte) ([]FormationRecord, error) {
	var set FormationSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("stage: unmarshaling formation set: %w", err)
	}

	return set.Formations, nil
}

// ToPositions converts a FormationRecord's wire-shaped points into geom-typed
// Position values.
func (r FormationRecord) ToPositions() []Position {
	out := make([]Position, len(r.Positions))
	for i, p := range r.Positions {
		out[i] = Position{X: p.X, Y: p.Y}
	}

	return out
}

// FromPositions builds a FormationRecord from in-memory positions.
func FromPositions(name string, positions []Position, dims Dims, createdAt time.Time, description string) FormationRecord {
	recs := make([]PositionRecord, len(positions))
	for i, p := range positions {
		recs[i] = PositionRecord{X: p.X, Y: p.Y}
	}

	return FormationRecord{
		Name:        name,
		DancerCount: len(positions),
		Positions:   recs,
		StageWidth:  dims.Width,
		StageHeight: dims.Height,
		CreatedAt:   createdAt,
		Description: description,
	}
}
