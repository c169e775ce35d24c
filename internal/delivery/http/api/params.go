package api

import (
	"strconv"

	"go-reskilling-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// parseID reads a positive integer path parameter; a malformed value is
// rejected at the boundary before any service sees it.
func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid ID format"))
		return 0, false
	}
	return id, true
}

// pageParams reads pageNumber/pageSize with the documented defaults and
// clamps non-positive values.
func pageParams(c *gin.Context) (int, int) {
	pageNumber, _ := strconv.Atoi(c.DefaultQuery("pageNumber", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return pageNumber, pageSize
}
