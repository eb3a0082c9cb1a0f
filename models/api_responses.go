package models

import (
	"time"

	"github.com/gin-gonic/gin"
)

type ApiResponse struct {
	Message         string       `json:"message"`
	Data            any          `json:"data,omitempty"`
	Error           bool         `json:"error,omitempty"`
	Meta            *Pagination  `json:"meta"`
	Rate            *RateLimiter `json:"rate_limit,omitempty"`
	RequestedEntity string       `json:"requested_entity,omitempty"`
}

// Pagination is the outbound meta block. Cursor fields re-express the same
// page arithmetic for clients that scroll instead of paging; Aggregates is
// only set on the faceted-search endpoint.
type Pagination struct {
	Page           int          `json:"page" example:"1"`
	PerPage        int          `json:"per_page" example:"24"`
	Total          int          `json:"total" example:"42"`
	LastPage       int          `json:"last_page" example:"2"`
	HasMore        bool         `json:"has_more"`
	Sort           string       `json:"sort,omitempty" example:"-created_at"`
	Query          string       `json:"query,omitempty"`
	Cursor         int          `json:"cursor"`
	NextCursor     *int         `json:"next_cursor,omitempty"`
	PreviousCursor *int         `json:"previous_cursor,omitempty"`
	Aggregates     *FacetResult `json:"aggregates,omitempty"`
}

type RateLimiter struct {
	Limit          int       `json:"limit"`
	Remaining      int       `json:"remaining"`
	ResetAt        time.Time `json:"reset_at"`
	ResetInSeconds int       `json:"reset_in_seconds"`
}

// helper to fetch rate limiter info from Gin context
func getRateFromContext(c *gin.Context) *RateLimiter {
	if c == nil {
		return nil
	}
	if rate, exists := c.Get("rateLimiter"); exists {
		if rl, ok := rate.(*RateLimiter); ok {
			return rl
		}
	}
	return nil
}

func SuccessResponse(c *gin.Context, message string, data any) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func PaginatedResponse(c *gin.Context, message string, data any, meta *Pagination) ApiResponse {
	return ApiResponse{
		Message:         message,
		Data:            data,
		Meta:            meta,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}

func ErrorResponse(c *gin.Context, message string) ApiResponse {
	return ApiResponse{
		Message:         message,
		Error:           true,
		Rate:            getRateFromContext(c),
		RequestedEntity: c.Request.Method + " " + c.FullPath(),
	}
}
