// Package clock is the single source of "now" and of the canonical timestamp
// string. Every instant handed to the domain or stored is expressed in one
// configured civil zone so comparisons never drift by a zone offset.
//
//	c, err := clock.New("Asia/Singapore")
//	now := c.Now()
//	s := c.Format(now) // "2024-01-31T10:00:00.000+08:00"
package clock

import (
	"errors"
	"fmt"
	"strings"
	"time"
	_ "time/tzdata" // zone database for images without /usr/share/zoneinfo

	"github.com/jsamuelsen11/recurring-todo-service/internal/ports"
)

// DefaultZone is the civil zone used when none is configured.
const DefaultZone = "Asia/Singapore"

// CanonicalLayout is the persisted timestamp form. It keeps millisecond
// precision and an explicit offset so strings sort chronologically within
// one zone.
const CanonicalLayout = "2006-01-02T15:04:05.000Z07:00"

// zonelessLayouts are accepted input forms without an offset, interpreted in
// the civil zone. "2006-01-02T15:04" is what an HTML datetime-local input sends.
var zonelessLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ErrInvalidTimestamp is returned by Parse for strings in no accepted form.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// Compile-time interface check.
var _ ports.Clock = (*Clock)(nil)

// Clock produces civil-zone instants.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

// Option configures a Clock.
type Option func(*Clock)

// WithNow replaces the time source. Tests use it to pin "now".
func WithNow(now func() time.Time) Option {
	return func(c *Clock) {
		c.now = now
	}
}

// Fixed returns an Option that always reports t.
func Fixed(t time.Time) Option {
	return WithNow(func() time.Time { return t })
}

// New loads the named IANA zone. An empty name selects DefaultZone.
func New(zone string, opts ...Option) (*Clock, error) {
	if strings.TrimSpace(zone) == "" {
		zone = DefaultZone
	}

	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", zone, err)
	}

	return NewInLocation(loc, opts...), nil
}

// NewInLocation builds a Clock for an already resolved location.
func NewInLocation(loc *time.Location, opts ...Option) *Clock {
	c := &Clock{loc: loc, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Location returns the civil zone.
func (c *Clock) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the civil zone, truncated to the
// millisecond so it survives a round trip through Format and Parse.
func (c *Clock) Now() time.Time {
	return c.In(c.now())
}

// In converts t to the civil zone at millisecond precision.
func (c *Clock) In(t time.Time) time.Time {
	return t.In(c.loc).Truncate(time.Millisecond)
}

// Format renders t as the canonical string in the civil zone.
func (c *Clock) Format(t time.Time) string {
	return t.In(c.loc).Format(CanonicalLayout)
}

// Parse reads an RFC 3339 timestamp or one of the zone-less forms. Zone-less
// input is read as civil time. The result is in the civil zone.
func (c *Clock) Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return c.In(t), nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, c.loc); err == nil {
			return c.In(t), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
