// ==================================================================================
//
// Work of the U.S. Department of the Navy, Naval Information Warfare Center Pacific.
// Released as open source under the MIT License.  See LICENSE file.
//
// ==================================================================================

package ts

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseLocation returns the location for "Local", a fixed offset from UTC in the form
// "+H", "-H", or "+HH:MM", or an IANA time zone name such as "America/Los_Angeles".
func ParseLocation(location string) (*time.Location, error) {
	if location == "" {
		return nil, errors.New("cannot parse location from empty string")
	}
	if location == "Local" {
		return time.Local, nil
	}
	if offset, ok, err := parseOffset(location); ok {
		if err != nil {
			return nil, fmt.Errorf("error parsing offset %q: %w", location, err)
		}
		return time.FixedZone("UTC"+location, offset), nil
	}
	return time.LoadLocation(location)
}

// parseOffset returns the offset in seconds and true if location looks like an offset.
func parseOffset(location string) (int, bool, error) {
	hours, minutes, found := strings.Cut(location, ":")
	h, err := strconv.Atoi(hours)
	if err != nil {
		return 0, false, nil
	}
	if !found {
		return h * 60 * 60, true, nil
	}
	m, err := strconv.Atoi(minutes)
	if err != nil {
		return 0, true, err
	}
	if m < 0 || m >= 60 {
		return 0, true, fmt.Errorf("minutes out of range: %d", m)
	}
	if strings.HasPrefix(hours, "-") {
		m = -m
	}
	return h*60*60 + m*60, true, nil
}
