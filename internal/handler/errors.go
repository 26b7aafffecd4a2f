package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Irfaaanz/Opto5/internal/utils"
)

// respondDomainError maps a service error to the API envelope. Sentinel kinds
// carry their own code string; anything unrecognized is a 500.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrValidation):
		utils.Error(c, 400, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, utils.ErrNotFound):
		utils.Error(c, 404, "NOT_FOUND", err.Error())
	case errors.Is(err, utils.ErrInvalidTransaction):
		utils.Error(c, 400, "INVALID_TRANSACTION", err.Error())
	case errors.Is(err, utils.ErrInsufficientStock):
		utils.Error(c, 409, "INSUFFICIENT_STOCK", err.Error())
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Something went wrong")
	}
}
