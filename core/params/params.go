package params

import (
	"strconv"

	"planner-api/core/constants"

	"github.com/labstack/echo/v4"
)

// QueryParams carries pagination parameters for list endpoints.
type QueryParams struct {
	PageNumber int
	PageSize   int
}

// FromContext reads page_number/page_size query parameters, clamping to
// sane bounds.
func FromContext(c echo.Context) QueryParams {
	p := QueryParams{
		PageNumber: constants.DefaultPageNumber,
		PageSize:   constants.DefaultPageSize,
	}

	if v, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && v > 0 {
		p.PageNumber = v
	}
	if v, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && v > 0 {
		p.PageSize = v
	}
	if p.PageSize > constants.MaxPageSize {
		p.PageSize = constants.MaxPageSize
	}
	return p
}

// Offset returns the row offset for the current page.
func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// String is a convenience for logging.
func (p QueryParams) String() string {
	return "page=" + strconv.Itoa(p.PageNumber) + " size=" + strconv.Itoa(p.PageSize)
}
