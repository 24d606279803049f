package server

import (
	"log"
	"sync"

	"github.com/zendesk-jakelunn/local-amazon-connect-ccp-log-parser/internal/model"
)

const subscriberBuffer = 4

// reportHub fans a fresh Report out to all connected dashboard clients
// whenever the watched file is re-analyzed.
type reportHub struct {
	mu          sync.RWMutex
	subscribers []chan *model.Report
	current     *model.Report
	dropped     int64
}

func newReportHub(initial *model.Report) *reportHub {
	return &reportHub{current: initial}
}

// Current returns the most recent report.
func (h *reportHub) Current() *model.Report {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.current
}

// Dropped returns the number of refreshes dropped for slow clients.
func (h *reportHub) Dropped() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// Subscribe returns a buffered channel that receives each new report.
func (h *reportHub) Subscribe() <-chan *model.Report {
	ch := make(chan *model.Report, subscriberBuffer)
	h.mu.Lock()
	h.subscribers = append(h.subscribers, ch)
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a channel registered via Subscribe and closes it.
func (h *reportHub) Unsubscribe(ch <-chan *model.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, sub := range h.subscribers {
		if sub == ch {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			close(sub)
			return
		}
	}
}

// Publish stores the new report and broadcasts it. A slow client's refresh is
// dropped rather than blocking the watcher; the client still serves the
// current report on its next request.
func (h *reportHub) Publish(rep *model.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = rep
	for _, ch := range h.subscribers {
		select {
		case ch <- rep:
		default:
			h.dropped++
			log.Printf("hub: dropped report refresh for slow client (total dropped: %d)", h.dropped)
		}
	}
}

// closeAll closes all subscriber channels.
func (h *reportHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subscribers {
		close(ch)
	}
	h.subscribers = nil
}
