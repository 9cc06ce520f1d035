package booking

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"camperrent/internal/domain"
	"camperrent/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	service  *Service
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(service *Service, hub *Hub) *Handler {
	return &Handler{
		service: service,
		hub:     hub,
		upgrader: websocket.Upgrader{
			// Browser clients connect from the front-end origin; CORS policy
			// is enforced by the HTTP middleware, not here.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// RegisterPublicRoutes wires the read-only calendar surface.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/extras", h.GetExtras)
	rg.GET("/vehicles/:id/availability", h.GetAvailability)
	rg.GET("/vehicles/:id/calendar", h.GetCalendar)
	rg.GET("/vehicles/:id/feed", h.Feed)
}

// RegisterRoutes wires the authenticated booking surface.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.CreateBooking)
	rg.POST("/bookings/quote", h.QuoteBooking)
	rg.GET("/bookings", h.ListMyBookings)
	rg.GET("/bookings/:id", h.GetBooking)
	rg.GET("/bookings/:id/cancellation", h.GetCancellationQuote)
	rg.DELETE("/bookings/:id", h.CancelBooking)
}

func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		ID:   c.GetInt64("user_id"),
		Role: domain.UserRole(c.GetString("role")),
	}
}

func (h *Handler) GetExtras(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"extras": Catalog()})
}

func (h *Handler) GetAvailability(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	start, err1 := ParseDate(c.Query("start"))
	end, err2 := ParseDate(c.Query("end"))
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start and end must be YYYY-MM-DD")
		return
	}

	available, err := h.service.IsRangeAvailable(c.Request.Context(), vehicleID, start, end)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"available": available})
}

func (h *Handler) GetCalendar(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	monthStr := c.Query("month")
	if monthStr == "" {
		monthStr = time.Now().UTC().Format("2006-01")
	}
	first, err := time.Parse("2006-01", monthStr)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "month must be YYYY-MM")
		return
	}

	var sel Selection
	if v := c.Query("sel_start"); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "sel_start must be YYYY-MM-DD")
			return
		}
		sel.Start = &d
	}
	if v := c.Query("sel_end"); v != "" {
		d, err := ParseDate(v)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "sel_end must be YYYY-MM-DD")
			return
		}
		sel.End = &d
	}

	view, err := h.service.MonthView(c.Request.Context(), vehicleID, first.Year(), first.Month(), sel)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"calendar": view})
}

// Feed upgrades to a websocket and streams availability changes for one
// vehicle until the client disconnects.
func (h *Handler) Feed(c *gin.Context) {
	vehicleID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid vehicle ID")
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	h.hub.Watch(vehicleID, conn)
	go func() {
		defer h.hub.Unwatch(vehicleID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (h *Handler) QuoteBooking(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	start, err1 := ParseDate(req.Start)
	end, err2 := ParseDate(req.End)
	if err1 != nil || err2 != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "start and end must be YYYY-MM-DD")
		return
	}

	quote, extras, err := h.service.Quote(c.Request.Context(), req.VehicleID, start, end, req.Extras)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"quote": quote, "extras": extras})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	b, err := h.service.CreateBooking(c.Request.Context(), actorFromContext(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMyBookings(c *gin.Context) {
	bookings, err := h.service.ListMyBookings(c.Request.Context(), actorFromContext(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) GetBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	b, err := h.service.GetBooking(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) GetCancellationQuote(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	fee, err := h.service.CancellationQuote(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancellation_fee": fee})
}

func (h *Handler) CancelBooking(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid booking ID")
		return
	}

	fee, err := h.service.CancelBooking(c.Request.Context(), actorFromContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cancellation_fee": fee})
}

func (h *Handler) handleError(c *gin.Context, err error) {
	var se *StoreError

	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking date range")
	case errors.Is(err, ErrUnauthenticated):
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You may not perform this action")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking or vehicle not found")
	case errors.Is(err, ErrConflict):
		response.Error(c, http.StatusConflict, "BOOKING_CONFLICT", "Vehicle is not available for the selected dates")
	case errors.As(err, &se):
		_ = c.Error(err)
		response.Error(c, http.StatusBadGateway, "STORE_ERROR", "Record store unavailable")
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
