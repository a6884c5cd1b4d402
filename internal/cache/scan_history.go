package cache

import (
	"sync"

	"github.com/lomasaltas/boxcode/internal/models"
)

// ScanHistory keeps the most recent scans and running counters per station.
// It backs the operator terminal's history list and stat badges.
type ScanHistory struct {
	stations map[string]*stationEntry
	mu       sync.RWMutex
	size     int
}

type stationEntry struct {
	recent []models.ScanRecord // newest first, at most size entries
	stats  models.ScanStats
}

// NewScanHistory creates a history that keeps size scans per station
func NewScanHistory(size int) *ScanHistory {
	if size <= 0 {
		size = 1
	}
	return &ScanHistory{
		stations: make(map[string]*stationEntry),
		size:     size,
	}
}

// Size returns how many scans are kept per station
func (h *ScanHistory) Size() int {
	return h.size
}

// Add records a scan for its station
func (h *ScanHistory) Add(rec models.ScanRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	entry, exists := h.stations[rec.Station]
	if !exists {
		entry = &stationEntry{}
		h.stations[rec.Station] = entry
	}

	entry.stats.Validated++
	if rec.IsValid {
		entry.stats.Valid++
	} else {
		entry.stats.Invalid++
	}

	recent := make([]models.ScanRecord, 0, h.size)
	recent = append(recent, rec)
	for _, r := range entry.recent {
		if len(recent) == h.size {
			break
		}
		recent = append(recent, r)
	}
	entry.recent = recent
}

// Recent returns a copy of the station's recent scans, newest first
func (h *ScanHistory) Recent(station string) []models.ScanRecord {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entry, exists := h.stations[station]
	if !exists {
		return []models.ScanRecord{}
	}
	out := make([]models.ScanRecord, len(entry.recent))
	copy(out, entry.recent)
	return out
}

// Stats returns the station's counters since the last reset
func (h *ScanHistory) Stats(station string) models.ScanStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	entry, exists := h.stations[station]
	if !exists {
		return models.ScanStats{}
	}
	return entry.stats
}

// Reset clears a station's history and counters
func (h *ScanHistory) Reset(station string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.stations, station)
}
