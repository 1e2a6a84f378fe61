package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/hbnb/internal/errs"
	"github.com/deppfellow/hbnb/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrCode reports the mapped sqlerr.Code for a given error, or Other.
func ErrCode(err error) Code {
	var pgerr *Error
	if errors.As(err, &pgerr) {
		return pgerr.Code
	}
	if pgErr := (*pgconn.PgError)(nil); errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a pgconn.PgError (raw Postgres error) into our custom sqlerr.Error.
//
// SQLSTATE and severity are mapped into enums for easier switching; the
// original error is kept for Unwrap().
func ConvertPgError(src *pgconn.PgError) *Error {
	return &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}
}

// kindOfTable resolves a table name ("places", "place_amenity") to the
// entity it stores. ok is false for tables that are not an entity.
func kindOfTable(tableName string) (model.Kind, bool) {
	for _, kind := range model.Kinds {
		if kind.Plural() == tableName {
			return kind, true
		}
	}
	return "", false
}

// entityName picks the entity a constraint error is about.
//
// Priority rules:
//  1. A column ending in "_id" names the referenced entity ("city_id" -> "City").
//  2. Otherwise the table's entity ("places" -> "Place").
//  3. Otherwise "Record".
func entityName(tableName, columnName string) string {
	column := strings.ToLower(columnName)
	if strings.HasSuffix(column, "_id") {
		return humanizeText(strings.TrimSuffix(column, "_id"))
	}

	if kind, ok := kindOfTable(tableName); ok {
		return string(kind)
	}

	return "Record"
}

// generateErrorCode creates consistent machine-readable codes from DB errors.
//
// Output format:
//
//	<ENTITY>_<ACTION>
//
// Example:
//
//	users + UniqueViolation => USER_ALREADY_EXISTS
func generateErrorCode(sqlErr *Error) string {
	domain := strings.ToUpper(strings.ReplaceAll(entityName(sqlErr.TableName, ""), " ", "_"))

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		domain = strings.ToUpper(strings.ReplaceAll(entityName(sqlErr.TableName, sqlErr.ColumnName), " ", "_"))
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", domain, action)
}

// formatUserFriendlyMessage produces the client-facing message for a constraint error.
func formatUserFriendlyMessage(sqlErr *Error) string {
	switch sqlErr.Code {
	case ForeignKeyViolation:
		// "The referenced City does not exist"
		return fmt.Sprintf("The referenced %s does not exist", entityName(sqlErr.TableName, sqlErr.ColumnName))

	case UniqueViolation:
		// "A User with this Email already exists"
		field := humanizeText(extractColumnForUniqueViolation(sqlErr.ConstraintName))
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName(sqlErr.TableName, ""), field)

	case NotNullViolation:
		// "Missing name" matches the messages the handlers use for absent body keys.
		fieldName := strings.ToLower(sqlErr.ColumnName)
		if fieldName == "" {
			fieldName = "field"
		}
		return "Missing " + fieldName

	case CheckViolation:
		fieldName := humanizeText(sqlErr.ColumnName)
		if fieldName != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", fieldName)
		}
		return "One or more values do not meet required conditions"

	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText converts snake_case into Title Case ("first_name" -> "First Name").
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// uniqueKeyRegex matches PostgreSQL's default "<table>_<column>_key" names.
var uniqueKeyRegex = regexp.MustCompile(`^[a-z]+_(.+)_(?:key|ukey)$`)

// extractColumnForUniqueViolation infers the column from a unique constraint name.
//
// It supports two conventions:
//
//  1. "unique_<table>_<column>"      unique_users_email -> "email"
//  2. "<table>_<column>_(key|ukey)"  users_email_key    -> "email"
func extractColumnForUniqueViolation(constraintName string) string {
	if constraintName == "" {
		return ""
	}

	if strings.HasPrefix(constraintName, "unique_") {
		parts := strings.SplitN(constraintName, "_", 3)
		if len(parts) == 3 {
			return parts[2]
		}
	}

	if matches := uniqueKeyRegex.FindStringSubmatch(constraintName); len(matches) > 1 {
		return matches[1]
	}

	return ""
}

// HandleError converts a low-level database error into an application-level error.
//
// Output:
//   - If already *errs.HTTPError: returned unchanged
//   - If pgconn.PgError: a 400 for constraint violations, otherwise a 500
//   - If ErrNoRows: 404
//   - Otherwise: 500
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		sqlErr := ConvertPgError(pgerr)
		errorCode := generateErrorCode(sqlErr)
		userMessage := formatUserFriendlyMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, CheckViolation:
			return errs.NewBadRequestError(userMessage, &errorCode, nil)

		case NotNullViolation:
			fieldErrors := []errs.FieldError{
				{
					Field: strings.ToLower(sqlErr.ColumnName),
					Error: "is required",
				},
			}
			return errs.NewBadRequestError(userMessage, &errorCode, fieldErrors)

		default:
			// Unknown DB errors must not leak details to clients.
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NotFound()
	}

	return errs.NewInternalServerError()
}
