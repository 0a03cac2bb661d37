package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/200406-java-react-usf/Abraham-Selenke-p0/internal/errs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var constraintColumnRe = regexp.MustCompile(`_([^_]+)_(?:key|ukey)$`)

// ErrCode reports the Code of err when it wraps an *Error, Other otherwise.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// HandleError converts a low-level database error into an *errs.HTTPError.
//
//   - *errs.HTTPError: returned unchanged
//   - unique violation: 409 naming the conflicting field
//   - foreign key, not null and check violations: 400
//   - no rows: 404
//   - anything else: 500 with no driver detail
func HandleError(err error) *errs.HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)

		switch sqlErr.Code {
		case UniqueViolation:
			return errs.NewResourcePersistenceError(uniqueViolationReason(sqlErr))

		case ForeignKeyViolation:
			return errs.NewBadRequestError(
				fmt.Sprintf("The referenced %s does not exist", getEntityName(sqlErr.TableName, sqlErr.ColumnName)))

		case NotNullViolation:
			fieldName := humanizeText(sqlErr.ColumnName)
			if fieldName == "" {
				fieldName = "field"
			}
			return errs.NewFieldValidationError(
				fmt.Sprintf("The %s is required", fieldName),
				[]errs.FieldError{{Field: strings.ToLower(sqlErr.ColumnName), Error: "is required"}})

		case CheckViolation:
			if fieldName := humanizeText(sqlErr.ColumnName); fieldName != "" {
				return errs.NewBadRequestError(fmt.Sprintf("The %s value does not meet required conditions", fieldName))
			}
			return errs.NewBadRequestError("One or more values do not meet required conditions")
		}

		return errs.NewInternalServerError()
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewResourceNotFoundError("")
	}

	return errs.NewInternalServerError()
}

// uniqueViolationReason names the taken field, e.g. "The provided email is already taken."
func uniqueViolationReason(sqlErr *Error) string {
	column := sqlErr.ColumnName
	if column == "" {
		column = extractColumnForUniqueViolation(sqlErr.ConstraintName)
	}
	if column == "" {
		return fmt.Sprintf("A %s with this identifier already exists", getEntityName(sqlErr.TableName, ""))
	}
	return fmt.Sprintf("The provided %s is already taken.", strings.ToLower(humanizeText(column)))
}

// getEntityName infers an entity name: "account_id" -> "Account", "users" -> "User".
func getEntityName(tableName, columnName string) string {
	if columnName != "" && strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return humanizeText(strings.TrimSuffix(strings.ToLower(columnName), "_id"))
	}

	if tableName != "" {
		entity := tableName
		if strings.HasSuffix(entity, "s") && len(entity) > 1 {
			entity = entity[:len(entity)-1]
		}
		return humanizeText(entity)
	}

	return "record"
}

// humanizeText converts snake_case into Title Case.
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// extractColumnForUniqueViolation infers the column from a constraint name of
// the form unique_<table>_<column> or <table>_<column>_key.
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.Split(constraintName, "_")
		if len(parts) >= 3 {
			return parts[len(parts)-1]
		}
	}

	if matches := constraintColumnRe.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}
