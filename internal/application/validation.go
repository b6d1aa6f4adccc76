package application

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"relapse/internal/domain"
)

const momentHint = "expected ISO 8601 (e.g. 2025-01-20, 2025-01-20T12:34:56, 2025-01-20T12:34:56Z, 2025-01-20T12:34:56-05:00)"

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// layouts accepted for naive (zone-less) datetimes, interpreted in local time
var naiveLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// zonedLayouts carry an explicit offset or Z
var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
}

// ParseMoment parses an ISO 8601 date or datetime. Values without a zone
// are taken as local time.
func ParseMoment(value string) (time.Time, error) {
	return parseMomentIn(value, time.Local)
}

func parseMomentIn(value string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return time.Time{}, &ValidationError{Field: "datetime", Message: "datetime is required"}
	}

	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	for _, layout := range naiveLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}

	return time.Time{}, &ValidationError{
		Field:   "datetime",
		Message: fmt.Sprintf("cannot parse %q: %s", value, momentHint),
	}
}

// ParseBatchArg interprets a positional batch argument: digits are an
// index, anything else is a datetime.
func ParseBatchArg(arg string) (Address, error) {
	arg = strings.TrimSpace(arg)
	if digitsOnly.MatchString(arg) {
		i, err := strconv.Atoi(arg)
		if err != nil {
			return Address{}, &ValidationError{Field: "batch", Message: err.Error()}
		}
		return AtIndex(i), nil
	}
	moment, err := ParseMoment(arg)
	if err != nil {
		return Address{}, err
	}
	return AtMoment(moment), nil
}

// ResolveAddress combines the positional argument and the --index/--datetime
// flags. At most one of them may be set; none means the latest batch.
func ResolveAddress(positional string, index *int, datetime string) (Address, error) {
	set := 0
	if positional != "" {
		set++
	}
	if index != nil {
		set++
	}
	if datetime != "" {
		set++
	}
	if set > 1 {
		return Address{}, &ValidationError{
			Field:   "selection",
			Message: "use only one of a positional batch, --index or --datetime",
		}
	}

	switch {
	case index != nil:
		if *index < 0 {
			return Address{}, &ValidationError{Field: "index", Message: "batch index must be >= 0"}
		}
		return AtIndex(*index), nil
	case datetime != "":
		moment, err := ParseMoment(datetime)
		if err != nil {
			return Address{}, err
		}
		return AtMoment(moment), nil
	case positional != "":
		return ParseBatchArg(positional)
	default:
		return Latest(), nil
	}
}

// ValidateBins checks the histogram bin count
func ValidateBins(bins int) error {
	if bins <= 0 {
		return &ValidationError{Field: "bins", Message: "bins must be > 0"}
	}
	return nil
}

// ValidateGap checks the session gap threshold
func ValidateGap(gap time.Duration) error {
	if gap <= 0 {
		return &ValidationError{Field: "gap", Message: "gap must be > 0"}
	}
	return nil
}

// ParseKind converts a --kind flag value
func ParseKind(value string) (domain.Kind, error) {
	k, ok := domain.ParseKind(value)
	if !ok {
		return domain.KindAll, &ValidationError{
			Field:   "kind",
			Message: fmt.Sprintf("expected all, docs or code, got: %s", value),
		}
	}
	return k, nil
}
