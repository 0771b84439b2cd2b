package pkg

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	appError "github.com/rdityas/weblog-core/internal/app/errors"
	"github.com/rdityas/weblog-core/internal/app/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func SuccessResponse[T any](c *fiber.Ctx, data T) error {
	return c.JSON(models.WebResponse[T]{
		Success: true,
		Data:    data,
	})
}

func SuccessResponseWithStatus[T any](c *fiber.Ctx, statusCode int, data T) error {
	return c.Status(statusCode).JSON(models.WebResponse[T]{
		Success: true,
		Data:    data,
	})
}

// ErrorResponse is the single error boundary: every error that escapes a
// handler goes through here exactly once and comes out as a JSON body with
// the resolved status code.
func ErrorResponse(c *fiber.Ctx, err error) error {
	appErr := NormalizeError(err)
	return c.Status(appErr.StatusCode).JSON(models.WebResponse[any]{
		Success: false,
		Message: appErr.Message,
		Detail:  appErr.Detail,
	})
}

// NormalizeError maps any error to an AppError. First match wins; anything
// unrecognized becomes a 500 whose message never exposes the original error.
func NormalizeError(err error) (appErr *appError.AppError) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Errorf("panic while normalizing error: %v", r)
			appErr = unknownError(err)
		}
	}()

	if errors.As(err, &appErr) {
		return appErr
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		detail := make(map[string]string, len(validationErrs))
		for _, fieldErr := range validationErrs {
			detail[fieldErr.Field()] = validationMessage(fieldErr)
		}
		return appError.NewUnprocessableError(detail)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return appError.NewNotFoundError()
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 unique_violation
		if pgErr.Code == "23505" {
			detail := map[string]string{}
			if field := constraintField(pgErr); field != "" {
				detail[field] = "Already exists"
			}
			return appError.NewBadRequestError(detail)
		}
		// remaining class 22 (data exception) and 23 (integrity) errors mean
		// the store rejected the shape of what we sent
		if strings.HasPrefix(pgErr.Code, "22") || strings.HasPrefix(pgErr.Code, "23") {
			return appError.NewBadRequestError(nil)
		}
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return appError.NewBadRequestError(nil)
	}
	if errors.Is(err, gorm.ErrInvalidData) || errors.Is(err, gorm.ErrInvalidValue) {
		return appError.NewBadRequestError(nil)
	}

	return unknownError(err)
}

func unknownError(err error) *appError.AppError {
	if err != nil {
		logrus.Errorf("[%s] %s", reflect.TypeOf(err).String(), err)
	}
	return &appError.AppError{
		StatusCode: fiber.StatusInternalServerError,
		Message:    "Something went wrong",
	}
}

func validationMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Must be a valid email"
	case "min":
		return fmt.Sprintf("Must be at least %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", fieldErr.Param())
	default:
		return fmt.Sprintf("Failed on the '%s' rule", fieldErr.Tag())
	}
}

// constraintField extracts the offending column from a unique violation.
// Postgres reports the index name (e.g. "idx_users_email"); the column is its
// last segment.
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}

	name := pgErr.ConstraintName
	name = strings.TrimPrefix(name, "idx_")
	name = strings.TrimPrefix(name, "uni_")
	name = strings.TrimSuffix(name, "_key")
	if i := strings.LastIndex(name, "_"); i >= 0 {
		name = name[i+1:]
	}
	return name
}
