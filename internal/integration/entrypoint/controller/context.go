package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/driver-ledger/backend/internal/application/adapter"
	domainerror "github.com/driver-ledger/backend/internal/domain/error"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/dto"
	"github.com/driver-ledger/backend/internal/integration/entrypoint/middleware"
)

// requireUserID returns the authenticated user or writes a 401 and reports false.
func requireUserID(ctx *gin.Context) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return uuid.Nil, false
	}
	return userID, true
}

// pathID parses the :id path parameter. On failure it writes a 400 with the given code.
func pathID(ctx *gin.Context, code string) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid ID format",
			Code:  code,
		})
		return uuid.Nil, false
	}
	return id, true
}

// queryDateRange reads the optional start_date and end_date query parameters.
// end_date covers its whole day. On failure it writes a 400 with the given code.
func queryDateRange(ctx *gin.Context, code string) (adapter.DateRange, bool) {
	var dateRange adapter.DateRange
	for _, key := range []string{"start_date", "end_date"} {
		value := ctx.Query(key)
		if value == "" {
			continue
		}
		date, err := dto.ParseDate(value)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid " + key + ", expected YYYY-MM-DD",
				Code:  code,
			})
			return adapter.DateRange{}, false
		}
		if key == "start_date" {
			dateRange.Start = &date
		} else {
			endOfDay := date.Add(24*time.Hour - time.Nanosecond)
			dateRange.End = &endOfDay
		}
	}
	return dateRange, true
}

// badDate writes a 400 for an unparseable date field.
func badDate(ctx *gin.Context, field, code string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: "Invalid " + field + ", expected YYYY-MM-DD",
		Code:  code,
	})
}
