package api

import (
	"net/http"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/config"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds     commands.BookingCommands
	q        queries.BookingQueries
	clock    clock.Clock
	pageSize int
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, clk clock.Clock, cfg config.Config) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, clock: clk, pageSize: cfg.Page.DefaultSize}
}

// @Summary Create booking
// @Description Request an item for a period; the booking starts in WAITING status
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if !bindJSON(c, &req) {
		return
	}
	if err := req.Validate(h.clock.Now()); err != nil {
		httperr.Respond(c, err, "Invalid booking period")
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), bookerID, req.ToCommand())
	if err != nil {
		httperr.Respond(c, err, "Create booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), bookerID, result.BookingID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide booking
// @Description Owner approves or rejects a waiting booking
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param bookingId path string true "Booking ID"
// @Param approved query bool true "Approve (true) or reject (false)"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	deciderID, ok := caller(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "bookingId")
	if !ok {
		return
	}
	var query reqdto.DecideBookingQuery
	if !bindQuery(c, &query) {
		return
	}

	if err := h.cmds.Decide(c.Request.Context(), deciderID, bookingID, *query.Approved); err != nil {
		httperr.Respond(c, err, "Decide booking failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), deciderID, bookingID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load booking")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param bookingId path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := caller(c)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(c, "bookingId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, bookingID)
	if err != nil {
		httperr.Respond(c, err, "Booking not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List caller's bookings
// @Description Bookings made by the caller, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, booking.RoleBooker)
}

// @Summary List bookings of caller's items
// @Description Bookings of every item the caller owns, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, booking.RoleOwner)
}

func (h *BookingHandler) list(c *gin.Context, role booking.Role) {
	subjectID, ok := caller(c)
	if !ok {
		return
	}
	var query reqdto.ListBookingsQuery
	if !bindQuery(c, &query) {
		return
	}
	state, err := booking.ParseState(query.State)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.BadRequest(err), "Unknown state: "+query.State)
		return
	}
	page, err := query.Page(h.pageSize)
	if err != nil {
		httperr.Respond(c, err, "Invalid pagination")
		return
	}

	views, err := h.q.List(c.Request.Context(), subjectID, role, state, page)
	if err != nil {
		httperr.Respond(c, err, "List bookings failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
