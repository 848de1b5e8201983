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

type ItemHandler struct {
	cmds     commands.ItemCommands
	comments commands.CommentCommands
	q        queries.ItemQueries
	pageSize int
}

func NewItemHandler(cmds commands.ItemCommands, comments commands.CommentCommands, q queries.ItemQueries, cfg config.Config) *ItemHandler {
	return &ItemHandler{cmds: cmds, comments: comments, q: q, pageSize: cfg.Page.DefaultSize}
}

// @Summary Create item
// @Description Offer a new item, optionally in answer to an item request
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param request body reqdto.CreateItemRequest true "Create item request"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	ownerID, ok := caller(c)
	if !ok {
		return
	}
	var req reqdto.CreateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), ownerID, req.ToCommand())
	if err != nil {
		httperr.Respond(c, err, "Create item failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, result.ItemID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load item")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Partially update an item; only the owner may do so
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	ownerID, ok := caller(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.UpdateItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.cmds.Update(c.Request.Context(), ownerID, itemID, req.ToCommand()); err != nil {
		httperr.Respond(c, err, "Update item failed")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), ownerID, itemID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load item")
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Get item
// @Description Item with comments; the owner also sees the last and next booking
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param itemId path string true "Item ID"
// @Success 200 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	viewerID, ok := caller(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), viewerID, itemID)
	if err != nil {
		httperr.Respond(c, err, "Item not available")
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary List caller's items
// @Description Items owned by the caller with booking annotations
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListByOwner(c *gin.Context) {
	ownerID, ok := caller(c)
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

	views, err := h.q.ListByOwner(c.Request.Context(), ownerID, page)
	if err != nil {
		httperr.Respond(c, err, "List items failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Search items
// @Description Available items whose name or description contains the text
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param text query string false "Search text"
// @Param from query int false "Offset of the first element" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	var query reqdto.SearchItemsQuery
	if !bindQuery(c, &query) {
		return
	}
	page, err := query.Page(h.pageSize)
	if err != nil {
		httperr.Respond(c, err, "Invalid pagination")
		return
	}

	views, err := h.q.Search(c.Request.Context(), query.Text, page)
	if err != nil {
		httperr.Respond(c, err, "Search items failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Leave a comment; the caller must have a finished booking of the item
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header string true "Caller user ID"
// @Param itemId path string true "Item ID"
// @Param request body reqdto.AddCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	authorID, ok := caller(c)
	if !ok {
		return
	}
	itemID, ok := pathUUID(c, "itemId")
	if !ok {
		return
	}
	var req reqdto.AddCommentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.comments.Add(c.Request.Context(), authorID, itemID, req.Text)
	if err != nil {
		httperr.Respond(c, err, "Add comment failed")
		return
	}
	view, err := h.q.GetComment(c.Request.Context(), result.CommentID)
	if err != nil {
		httperr.Respond(c, err, "Failed to load comment")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
