package handler

import (
	"strconv"
	"strings"
	"time"

	domainerrors "pharmaduty/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// localInstantLayouts are ISO instants without an offset, read as UTC.
var localInstantLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	dateLayout,
}

// queryParser reads optional query parameters and collects every malformed one.
type queryParser struct {
	c      echo.Context
	fields []domainerrors.FieldError
}

func newQueryParser(c echo.Context) *queryParser {
	return &queryParser{c: c}
}

func (p *queryParser) invalid(name, reason string) {
	p.fields = append(p.fields, domainerrors.FieldError{Field: name, Reason: reason})
}

func (p *queryParser) String(name string) string {
	return strings.TrimSpace(p.c.QueryParam(name))
}

// Instant accepts an RFC 3339 instant, an ISO date-time without offset read
// as UTC, or a bare date meaning midnight UTC.
func (p *queryParser) Instant(name string) *time.Time {
	raw := p.String(name)
	if raw == "" {
		return nil
	}

	instant, err := parseInstant(raw)
	if err != nil {
		p.invalid(name, "must be an ISO 8601 instant or a YYYY-MM-DD date")

		return nil
	}

	return &instant
}

func (p *queryParser) Float(name string) *float64 {
	raw := p.String(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		p.invalid(name, "must be a number")

		return nil
	}

	return &value
}

func (p *queryParser) Int(name string) int {
	raw := p.String(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		p.invalid(name, "must be an integer")

		return 0
	}

	return value
}

func (p *queryParser) Bool(name string) bool {
	raw := p.String(name)
	if raw == "" {
		return false
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		p.invalid(name, "must be true or false")

		return false
	}

	return value
}

func (p *queryParser) UUID(name string) *uuid.UUID {
	raw := p.String(name)
	if raw == "" {
		return nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		p.invalid(name, "must be a UUID")

		return nil
	}

	return &id
}

// Err returns the collected validation failures, if any.
func (p *queryParser) Err() error {
	if len(p.fields) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(p.fields...)
}

// parseInstant accepts RFC 3339, or an ISO date or date-time without offset taken as UTC.
func parseInstant(raw string) (time.Time, error) {
	instant, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return instant, nil
	}

	for _, layout := range localInstantLayouts {
		if local, localErr := time.ParseInLocation(layout, raw, time.UTC); localErr == nil {
			return local, nil
		}
	}

	return time.Time{}, err
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.Invalid("id", "must be a UUID")
	}

	return id, nil
}
