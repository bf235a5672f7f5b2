package params

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tattooparlor/internal/pkg/response"
)

// PathID reads a positive int64 path parameter. On failure it writes a 400
// and returns false.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid "+name)
		return 0, false
	}
	return id, true
}

// QueryPage reads ?page=, defaulting to 1 for missing or invalid values.
func QueryPage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
