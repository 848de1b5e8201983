package api

import (
	"net/http"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/config"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemRequestHandler struct {
	cmds     commands.RequestCommands
	q        queries.RequestQueries
	pageSize int
}

func NewItemRequestHandler(cmds commands.RequestCommands, q queries.RequestQueries, cfg config.Config) *ItemRequestHandler {
	return &ItemRequestHandler{cmds: cmds, q: q, pageSize: cfg.Page.DefaultSize}
}

// @Summary Create item request
// @Description Ask other users for an item that nobody offers yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateItemRequestRequest true "Request description"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	requesterID, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequestRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.cmds.Create(c.Request.Context(), requesterID, req.Description)
	if err != nil {
		httperr.Respond(c, err, "Create request failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), requesterID, result.RequestID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load request")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description Caller's requests, newest first, with the items offered in answer
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	requesterID, ok := caller(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwn(c.Request.Context(), requesterID)
	if err != nil {
		httperr.Respond(c, err, "List requests failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	var query reqdto.Pagination
	if !bindQuery(c, &query) {
		return
	}
	page, err := query.Page(h.pageSize)
	if err != nil {
		httperr.Respond(c, err, "Invalid pagination")
		return
	}
	views, err := h.q.ListOthers(c.Request.Context(), userID, page)
	if err != nil {
		httperr.Respond(c, err, "List requests failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param requestId path string true "Request ID"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	userID, ok := caller(c)
	if !ok {
		return
	}
	requestID, ok := pathUUID(c, "requestId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), userID, requestID)
	if err != nil {
		httperr.Respond(c, err, "Request not found")
		return
	}
	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
