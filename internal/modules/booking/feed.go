package booking

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// FeedEvent tells clients watching a vehicle's calendar which date range
// changed, so they can re-render without polling.
type FeedEvent struct {
	Type      string `json:"type"`
	VehicleID int64  `json:"vehicle_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

// Hub fans availability changes out to websocket subscribers, keyed by
// vehicle id.
type Hub struct {
	mu       sync.RWMutex
	watchers map[int64]map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		watchers: make(map[int64]map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) Watch(vehicleID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.watchers[vehicleID] == nil {
		h.watchers[vehicleID] = make(map[*websocket.Conn]struct{})
	}
	h.watchers[vehicleID][conn] = struct{}{}
}

func (h *Hub) Unwatch(vehicleID int64, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.watchers[vehicleID]; ok {
		_ = conn.Close()
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.watchers, vehicleID)
		}
	}
}

func (h *Hub) BookingCreated(vehicleID int64, start, end time.Time) {
	h.broadcast(vehicleID, FeedEvent{
		Type:      "booking_created",
		VehicleID: vehicleID,
		Start:     start.Format(dateLayout),
		End:       end.Format(dateLayout),
	})
}

func (h *Hub) BookingCancelled(vehicleID int64, start, end time.Time) {
	h.broadcast(vehicleID, FeedEvent{
		Type:      "booking_cancelled",
		VehicleID: vehicleID,
		Start:     start.Format(dateLayout),
		End:       end.Format(dateLayout),
	})
}

func (h *Hub) broadcast(vehicleID int64, ev FeedEvent) {
	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.watchers[vehicleID]))
	for c := range h.watchers[vehicleID] {
		conns = append(conns, c)
	}
	h.mu.RUnlock()

	for _, c := range conns {
		if err := c.WriteJSON(ev); err != nil {
			h.Unwatch(vehicleID, c)
		}
	}
}

func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, conns := range h.watchers {
		for c := range conns {
			_ = c.Close()
		}
		delete(h.watchers, id)
	}
}
