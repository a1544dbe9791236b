package api

import (
	"net/http"

	"phantom-mask/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pathID aborts with 400 when the path parameter is not a UUID.
func pathID(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}

// batch is a JSON array body that checks its own length.
type batch interface {
	Validate() error
}

func bindBatch(c *gin.Context, req batch) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return false
	}
	if err := req.Validate(); err != nil {
		httperr.AbortWithDetail(c, http.StatusBadRequest, err, "Invalid request")
		return false
	}
	return true
}
