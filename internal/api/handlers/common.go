package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "broker-crm-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

func queryInt(c *gin.Context, key string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(key, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}

// respondError maps service errors onto HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err), isBusinessRuleError(err),
		strings.HasPrefix(err.Error(), "validation failed"):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// isBusinessRuleError reports whether the error is a rejected business rule
// rather than an infrastructure failure
func isBusinessRuleError(err error) bool {
	return errors.Is(err, apperrors.ErrInvalidStatus) ||
		errors.Is(err, apperrors.ErrInvalidSubStatus) ||
		errors.Is(err, apperrors.ErrAllocationSumNot100) ||
		errors.Is(err, apperrors.ErrNoLeadsSelected) ||
		errors.Is(err, apperrors.ErrImportTooLarge) ||
		errors.Is(err, apperrors.ErrInvalidPaginationParams)
}

// parsePagination reads page/page_size query parameters with defaults
func parsePagination(c *gin.Context) (int, int) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
