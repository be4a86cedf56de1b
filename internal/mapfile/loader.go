package mapfile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"eve-router/internal/graph"
)

// JumpCost is the travel cost of a single stargate jump. The map format
// carries no per-connection weights, so every jump costs the same.
const JumpCost = 1.0

// solarSystem mirrors one entry of the JSON map file: a map object keyed
// by system ID, each value naming the system and listing its stargate
// neighbours by ID.
type solarSystem struct {
	SolarSystemID   uint32   `json:"solarSystemID"`
	SolarSystemName string   `json:"solarSystemName"`
	Neighbours      []uint32 `json:"neighbours"`
}

// Load reads a JSON map file and builds the jump graph. Systems are keyed
// by name in the graph; they are added in ascending solarSystemID order so
// the canonical indexing is stable regardless of JSON key order.
// Connections are undirected with uniform cost.
func Load(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	var raw map[string]solarSystem
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse map %s: %w", path, err)
	}

	systems := make([]solarSystem, 0, len(raw))
	for _, ss := range raw {
		systems = append(systems, ss)
	}
	sort.Slice(systems, func(i, j int) bool {
		return systems[i].SolarSystemID < systems[j].SolarSystemID
	})

	nameByID := make(map[uint32]string, len(systems))
	g := graph.New()
	for _, ss := range systems {
		if ss.SolarSystemName == "" {
			return nil, fmt.Errorf("%w: system %d has no name", graph.ErrInvalidGraph, ss.SolarSystemID)
		}
		if err := g.AddSystem(ss.SolarSystemName); err != nil {
			return nil, fmt.Errorf("system %d: %w", ss.SolarSystemID, err)
		}
		nameByID[ss.SolarSystemID] = ss.SolarSystemName
	}

	for _, ss := range systems {
		for _, n := range ss.Neighbours {
			to, ok := nameByID[n]
			if !ok {
				return nil, fmt.Errorf("%w: system %q lists neighbour %d not in map",
					graph.ErrUnknownSystem, ss.SolarSystemName, n)
			}
			if err := g.AddConnection(ss.SolarSystemName, to, JumpCost); err != nil {
				return nil, fmt.Errorf("system %q: %w", ss.SolarSystemName, err)
			}
		}
	}
	return g, nil
}
