package api

import (
	"errors"
	"net/http"

	reqdto "phantom-mask/internal/handler/dto/request"
	resdto "phantom-mask/internal/handler/dto/response"
	"phantom-mask/internal/handler/httperr"
	"phantom-mask/internal/usecase/commands"
	"phantom-mask/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	cmds commands.InventoryCommands
	q    queries.InventoryQueries
}

func NewInventoryHandler(cmds commands.InventoryCommands, q queries.InventoryQueries) *InventoryHandler {
	return &InventoryHandler{cmds: cmds, q: q}
}

func abortInventoryError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, commands.ErrInvalidInventory),
		errors.Is(err, commands.ErrDuplicateInventory),
		errors.Is(err, commands.ErrPharmacyBalanceNotEnough),
		errors.Is(err, commands.ErrInventoryNotInPharmacy),
		errors.Is(err, reqdto.ErrInvalidQuery),
		errors.Is(err, queries.ErrInvalidFilter):
		httperr.AbortWithDetail(c, http.StatusBadRequest, err, msg)
	case errors.Is(err, commands.ErrPharmacyNotFound),
		errors.Is(err, commands.ErrInventoryNotFound),
		errors.Is(err, queries.ErrPharmacyNotFound):
		httperr.AbortWithDetail(c, http.StatusNotFound, err, "Not found")
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

// @Summary List pharmacy inventory
// @Description List one pharmacy's inventory ordered by name then price
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pharmacy ID"
// @Param name query string false "Comma separated names"
// @Param price query number false "Exact price"
// @Param price_gt query number false "Price greater than"
// @Param price_gte query number false "Price greater than or equal"
// @Param price_lt query number false "Price less than"
// @Param price_lte query number false "Price less than or equal"
// @Success 200 {array} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacy/{id}/inventory/ [get]
func (h *InventoryHandler) ListByPharmacy(c *gin.Context) {
	pharmacyID, ok := pathID(c, "id", "Invalid pharmacy id")
	if !ok {
		return
	}
	var q reqdto.InventoryListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortInventoryError(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListByPharmacy(c.Request.Context(), pharmacyID, filter)
	if err != nil {
		abortInventoryError(c, err, "Invalid query")
		return
	}
	res, err := resdto.FromInventoryViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Bulk create inventory
// @Description Create up to 500 items for a pharmacy, paid from its cash balance
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pharmacy ID"
// @Param request body reqdto.BulkCreateRequest true "Items"
// @Success 201 {array} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacy/{id}/inventory/bulk-create/ [post]
func (h *InventoryHandler) BulkCreate(c *gin.Context) {
	pharmacyID, ok := pathID(c, "id", "Invalid pharmacy id")
	if !ok {
		return
	}
	var req reqdto.BulkCreateRequest
	if !bindBatch(c, &req) {
		return
	}

	created, err := h.cmds.BulkCreate(c.Request.Context(), pharmacyID, req.ToItems())
	if err != nil {
		abortInventoryError(c, err, "Bulk create failed")
		return
	}
	c.JSON(http.StatusCreated, resdto.FromInventories(created))
}

// @Summary Bulk update inventory
// @Description Partially update up to 500 items of a pharmacy
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Pharmacy ID"
// @Param request body reqdto.BulkUpdateRequest true "Patches"
// @Success 200 {array} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacy/{id}/inventory/bulk-update/ [put]
func (h *InventoryHandler) BulkUpdate(c *gin.Context) {
	pharmacyID, ok := pathID(c, "id", "Invalid pharmacy id")
	if !ok {
		return
	}
	var req reqdto.BulkUpdateRequest
	if !bindBatch(c, &req) {
		return
	}

	updated, err := h.cmds.BulkUpdate(c.Request.Context(), pharmacyID, req.ToUpdates())
	if err != nil {
		abortInventoryError(c, err, "Bulk update failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventories(updated))
}

// @Summary Search inventory
// @Description Full text search over inventory and pharmacy names, best match first
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param search query string false "Search terms"
// @Success 200 {array} resdto.InventorySearchResponse
// @Failure 401 {object} httperr.Response
// @Router /pharmacy/inventory/ [get]
func (h *InventoryHandler) Search(c *gin.Context) {
	var q reqdto.SearchQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	views, err := h.q.Search(c.Request.Context(), q.Search)
	if err != nil {
		abortInventoryError(c, err, "Invalid query")
		return
	}
	res, err := resdto.FromInventorySearchViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Count stock per pharmacy
// @Description Sum stock quantity per pharmacy over items matching the price filters
// @Tags inventory
// @Produce json
// @Security BearerAuth
// @Param price query number false "Exact price"
// @Param price_gt query number false "Price greater than"
// @Param price_gte query number false "Price greater than or equal"
// @Param price_lt query number false "Price less than"
// @Param price_lte query number false "Price less than or equal"
// @Param count_gt query int false "Stock sum greater than"
// @Param count_lt query int false "Stock sum less than"
// @Success 200 {array} resdto.InventoryCountResponse
// @Failure 400 {object} httperr.Response
// @Router /pharmacy/inventory/count/ [get]
func (h *InventoryHandler) CountByPharmacy(c *gin.Context) {
	var q reqdto.StockCountQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		abortInventoryError(c, err, "Invalid query")
		return
	}

	views, err := h.q.CountByPharmacy(c.Request.Context(), filter)
	if err != nil {
		abortInventoryError(c, err, "Invalid query")
		return
	}
	res, err := resdto.FromInventoryCountViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Adjust stock
// @Description Add a signed delta to one item's stock quantity
// @Tags inventory
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Inventory ID"
// @Param request body reqdto.UpdateQuantityRequest true "Delta"
// @Success 200 {object} resdto.InventoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /pharmacy/inventory/{id}/update-quantity/ [put]
func (h *InventoryHandler) UpdateQuantity(c *gin.Context) {
	inventoryID, ok := pathID(c, "id", "Invalid inventory id")
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return
	}

	inv, err := h.cmds.UpdateQuantity(c.Request.Context(), inventoryID, *req.Delta)
	if err != nil {
		abortInventoryError(c, err, "Update quantity failed")
		return
	}
	c.JSON(http.StatusOK, resdto.FromInventory(inv))
}
