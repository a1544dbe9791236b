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

type MemberHandler struct {
	cmds commands.PurchaseCommands
	q    queries.MemberQueries
}

func NewMemberHandler(cmds commands.PurchaseCommands, q queries.MemberQueries) *MemberHandler {
	return &MemberHandler{cmds: cmds, q: q}
}

// @Summary Create purchases
// @Description Buy one or more inventory lines in a single all-or-nothing transaction
// @Tags member
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param request body reqdto.CreatePurchasesRequest true "Purchase lines"
// @Success 201 {array} resdto.PurchaseHistoryResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /member/{id}/create-purchase-history/ [post]
func (h *MemberHandler) CreatePurchases(c *gin.Context) {
	memberID, ok := pathID(c, "id", "Invalid member id")
	if !ok {
		return
	}
	var req reqdto.CreatePurchasesRequest
	if !bindBatch(c, &req) {
		return
	}

	histories, err := h.cmds.CreatePurchases(c.Request.Context(), memberID, req.ToLines())
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidPurchase),
			errors.Is(err, commands.ErrOutOfStock),
			errors.Is(err, commands.ErrInsufficientBalance):
			httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Purchase failed")
		case errors.Is(err, commands.ErrMemberNotFound):
			httperr.AbortWithDetail(c, http.StatusNotFound, err, "Not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromPurchaseHistories(histories))
}

// @Summary List purchase history
// @Description List a member's purchases newest first with keyset pagination
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param id path string true "Member ID"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from next_cursor"
// @Success 200 {object} resdto.PurchaseHistoryPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /member/{id}/purchase-history/ [get]
func (h *MemberHandler) PurchaseHistory(c *gin.Context) {
	memberID, ok := pathID(c, "id", "Invalid member id")
	if !ok {
		return
	}
	var q reqdto.PurchaseHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	views, next, err := h.q.ListPurchaseHistories(c.Request.Context(), memberID, q.ToCursor(), q.Limit)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrInvalidCursor):
			httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Invalid query")
		case errors.Is(err, queries.ErrMemberNotFound):
			httperr.AbortWithDetail(c, http.StatusNotFound, err, "Not found")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	page, err := resdto.FromPurchaseHistoryPage(views, next)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, page)
}

// @Summary Purchase ranking
// @Description Members ordered by accumulated purchase amount
// @Tags member
// @Produce json
// @Security BearerAuth
// @Param top query int false "Return the top N members"
// @Param purchased_from query string false "RFC3339 or YYYY-MM-DD"
// @Param purchased_to query string false "RFC3339 or YYYY-MM-DD"
// @Success 200 {array} resdto.PurchaseRankingResponse
// @Failure 400 {object} httperr.Response
// @Router /member/purchase-ranking/ [get]
func (h *MemberHandler) PurchaseRanking(c *gin.Context) {
	var q reqdto.RankingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}
	filter, err := q.ToFilter()
	if err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Invalid query")
		return
	}

	views, err := h.q.PurchaseRanking(c.Request.Context(), filter)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Invalid query")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	res, err := resdto.FromPurchaseRankingViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
