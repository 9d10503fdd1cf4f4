// internal/handlers/errors.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/marketplace-backend/internal/i18n"
	"github.com/javajoker/marketplace-backend/internal/services"
	"github.com/javajoker/marketplace-backend/internal/utils"
)

// respondError maps a service error to its HTTP representation.
func respondError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)
	_ = c.Error(err)

	var svcErr *services.Error
	entity := ""
	if errors.As(err, &svcErr) {
		entity = strings.ToLower(svcErr.Entity)
	}

	switch code := services.ErrorCode(err); code {
	case utils.CodeValidation:
		if details := utils.GetValidationErrors(err); len(details) > 0 {
			utils.ValidationErrorResponse(c, details)
			return
		}
		utils.BadRequestResponse(c, "", nil)

	case utils.CodeInvalidCredentials:
		utils.CodedErrorResponse(c, code, i18n.T(lang, i18n.KeyAuthInvalidCredentials))

	case utils.CodeNotFound:
		utils.NotFoundResponse(c, entity)

	case utils.CodeForbidden:
		utils.ForbiddenResponse(c, i18n.T(lang, entity+".not_owner"))

	case utils.CodeConflict:
		message := err.Error()
		if svcErr != nil && svcErr.Reason != "" {
			message = svcErr.Reason
		}
		utils.CodedErrorResponse(c, code, message)

	case utils.CodeIntegrityFault:
		// Already logged with ids by the service; never surfaced as 404
		utils.CodedErrorResponse(c, code, i18n.T(lang, i18n.KeyInternalError))

	default:
		logrus.WithContext(c.Request.Context()).WithError(err).WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Error("Unhandled service error")
		utils.InternalErrorResponse(c, "")
	}
}

// currentUserID aborts with 401 when the request is anonymous.
func currentUserID(c *gin.Context) (uint, bool) {
	userID, ok := utils.GetUserIDFromContext(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
	}
	return userID, ok
}

func pathID(c *gin.Context, name, entity string) (uint, bool) {
	id, ok := utils.ParseIDParam(c, name)
	if !ok {
		utils.BadRequestResponse(c, i18n.T(utils.GetLangFromContext(c), i18n.KeyValidationID, entity), nil)
	}
	return id, ok
}

func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		lang := utils.GetLangFromContext(c)
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return false
	}

	// Validate request
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}
