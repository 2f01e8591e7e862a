package models

import "time"

// HistoryEntry is an append-only record of an action a student took on a unit
type HistoryEntry struct {
	Title     string    `json:"title"`
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
