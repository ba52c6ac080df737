package extraction

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// labDateLayouts are the date renderings seen on lab reports, tried in
// order. All parse to a bare date; times never appear on the cover values.
var labDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"01-02-2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"02 Jan 2006",
	"2006/01/02",
}

// ParseLabDate parses a lab report date in any of the supported layouts.
// Unparseable text is an error for the caller to swallow: a bad date never
// fails the record, it just leaves the date column empty.
func ParseLabDate(text string) (time.Time, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return time.Time{}, errors.New("empty date text")
	}
	for _, layout := range labDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
