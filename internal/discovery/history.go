package discovery

import (
	"encoding/json"
	"os"
	"sync"
	"time"
)

// historyData is the on-disk JSON structure for the selection history.
type historyData struct {
	LastFile   string               `json:"last_file"`
	AnalyzedAt map[string]time.Time `json:"analyzed_at"`
}

// History remembers which file was analyzed last so the menu can mark it and
// repeat runs stay cheap to set up.
type History struct {
	mu   sync.RWMutex
	path string
	data historyData
}

// NewHistory creates or loads a history file at the given path. A missing or
// corrupt file starts a fresh history rather than failing.
func NewHistory(path string) *History {
	h := &History{
		path: path,
		data: historyData{AnalyzedAt: make(map[string]time.Time)},
	}

	raw, err := os.ReadFile(path)
	if err == nil {
		_ = json.Unmarshal(raw, &h.data)
	}
	if h.data.AnalyzedAt == nil {
		h.data.AnalyzedAt = make(map[string]time.Time)
	}

	return h
}

// LastFile returns the most recently analyzed file path, or "".
func (h *History) LastFile() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.data.LastFile
}

// Record marks a file as analyzed now.
func (h *History) Record(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.data.LastFile = path
	h.data.AnalyzedAt[path] = time.Now()
}

// Save writes the history to disk atomically.
func (h *History) Save() error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	raw, err := json.MarshalIndent(h.data, "", "  ")
	if err != nil {
		return err
	}

	// Write to a temp file first, then rename for atomicity.
	tmp := h.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, h.path)
}
