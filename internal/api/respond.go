package api

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"portfolio-cms-backend/internal/service"
	"portfolio-cms-backend/internal/types"
)

// Validation errors report fields by their json names, not Go struct names.
func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	}
}

func respond(c *gin.Context, status int, message string, data any) {
	c.JSON(status, types.NewSuccess(status, message, data))
}

// listMessage builds the standard count message for paged results.
func listMessage(total int64) string {
	if total == 0 {
		return "No records found."
	}
	return fmt.Sprintf("%d records found.", total)
}

// fail translates service errors into the uniform error envelope. Unexpected
// errors are logged with their cause and returned as a generic 500 so
// internals never leak to the client.
func fail(c *gin.Context, log *zap.Logger, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong, please try again later."

	switch {
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		status = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrConflict):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
		message = err.Error()
	default:
		log.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err))
	}

	c.JSON(status, types.NewError(status, message, nil))
}

// bindError turns request binding failures into a 400 with per-field detail.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]types.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, types.FieldError{
				Path:    fe.Field(),
				Message: fieldMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest,
			types.NewError(http.StatusBadRequest, "Validation failed", fields))
		return
	}
	c.JSON(http.StatusBadRequest,
		types.NewError(http.StatusBadRequest, "Validation failed", nil))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// parseListQuery binds pagination, sort and filter parameters from the JSON
// body of list requests. An empty body yields the defaults.
func parseListQuery(c *gin.Context) (types.ListQuery, error) {
	var q types.ListQuery
	if c.Request.ContentLength == 0 {
		return q, nil
	}
	if err := c.ShouldBindJSON(&q); err != nil {
		return q, err
	}
	return q, nil
}
