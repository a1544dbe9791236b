package api

import (
	"errors"
	"net/http"

	reqdto "phantom-mask/internal/handler/dto/request"
	resdto "phantom-mask/internal/handler/dto/response"
	"phantom-mask/internal/handler/httperr"
	"phantom-mask/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PharmacyHandler struct {
	q queries.PharmacyQueries
}

func NewPharmacyHandler(q queries.PharmacyQueries) *PharmacyHandler {
	return &PharmacyHandler{q: q}
}

// @Summary List pharmacies
// @Description List opening hours joined with their pharmacy
// @Tags pharmacy
// @Produce json
// @Security BearerAuth
// @Param weekday query string false "Mon, Tue, Wed, Thur, Fri, Sat or Sun"
// @Param start_time query string false "HH:MM[:SS]"
// @Param start_time_gte query string false "HH:MM[:SS]"
// @Param end_time query string false "HH:MM[:SS]"
// @Param end_time_lte query string false "HH:MM[:SS]"
// @Success 200 {array} resdto.OpeningHourResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /pharmacy/ [get]
func (h *PharmacyHandler) List(c *gin.Context) {
	var q reqdto.OpeningHourQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", err.Error())
		return
	}

	views, err := h.q.ListOpeningHours(c.Request.Context(), q.ToFilter())
	if err != nil {
		if errors.Is(err, queries.ErrInvalidFilter) {
			httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Invalid query")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}

	res, err := resdto.FromOpeningHourViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
