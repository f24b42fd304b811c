package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rawad/acadex/internal/app/models/dto"
)

// parseIDParam parses a numeric path parameter, writing a 400 response on failure
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name+" parameter")
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(400, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
