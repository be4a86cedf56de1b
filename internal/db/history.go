package db

import (
	"encoding/json"
	"time"
)

// RouteRecord is one solved route in the history.
type RouteRecord struct {
	ID          int64    `json:"id"`
	Timestamp   string   `json:"timestamp"`
	MapPath     string   `json:"map_path"`
	StartSystem string   `json:"start_system"`
	SystemCount int      `json:"system_count"`
	TotalCost   float64  `json:"total_cost"`
	ClosedTour  bool     `json:"closed_tour"`
	Route       []string `json:"route"`
}

// InsertRoute records a solved route and returns its ID.
func (d *DB) InsertRoute(mapPath, startSystem string, route []string, totalCost float64, closedTour bool) int64 {
	routeJSON, _ := json.Marshal(route)
	result, err := d.sql.Exec(
		`INSERT INTO route_history (timestamp, map_path, start_system, system_count, total_cost, closed_tour, route_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Format(time.RFC3339), mapPath, startSystem, len(route), totalCost, closedTour, string(routeJSON),
	)
	if err != nil {
		return 0
	}
	id, _ := result.LastInsertId()
	return id
}

// RecentRoutes returns the last N solved routes (newest first).
func (d *DB) RecentRoutes(limit int) []RouteRecord {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.sql.Query(
		`SELECT id, timestamp, map_path, start_system, system_count, total_cost, closed_tour, route_json
		 FROM route_history ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return []RouteRecord{}
	}
	defer rows.Close()

	var records []RouteRecord
	for rows.Next() {
		var r RouteRecord
		var closed int
		var routeStr string
		rows.Scan(&r.ID, &r.Timestamp, &r.MapPath, &r.StartSystem, &r.SystemCount, &r.TotalCost, &closed, &routeStr)
		r.ClosedTour = closed != 0
		json.Unmarshal([]byte(routeStr), &r.Route)
		records = append(records, r)
	}
	if records == nil {
		return []RouteRecord{}
	}
	return records
}
