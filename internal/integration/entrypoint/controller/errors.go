// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/budgetbook/backend/internal/domain/error"
	"github.com/budgetbook/backend/internal/integration/entrypoint/dto"
)

// handleDomainError maps domain errors to HTTP responses. Anything
// unrecognized is a storage or internal failure: logged and reported as
// 500 with no partial payload.
func handleDomainError(ctx *gin.Context, err error) {
	var periodErr *domainerror.PeriodError
	if errors.As(err, &periodErr) {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: periodErr.Message,
			Code:  string(periodErr.Code),
		})
		return
	}

	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		status := http.StatusBadRequest
		if ledgerErr.IsNotFound() {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var insightErr *domainerror.InsightError
	if errors.As(err, &insightErr) {
		status := http.StatusBadGateway
		if insightErr.Code == domainerror.ErrCodeInsightUnavailable {
			status = http.StatusServiceUnavailable
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: insightErr.Message,
			Code:  string(insightErr.Code),
		})
		return
	}

	slog.Error("request failed", "error", err, "path", ctx.Request.URL.Path)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "Internal server error",
	})
}

// unauthenticated writes the response for a request that reached a handler
// without a resolved user.
func unauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Error: "User not authenticated",
		Code:  string(domainerror.ErrCodeMissingToken),
	})
}

// badRequest writes a plain validation failure response.
func badRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
	})
}
