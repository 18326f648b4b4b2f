package period

import (
	"fmt"
	"strconv"
	"time"
)

// Calculator derives weekly and monthly summary labels from dates.
// Labels match the formula columns commonly used in Notion task databases:
// the ISO week number as a bare string ("35") and the English month name
// ("August").
type Calculator struct {
	location *time.Location
}

// NewCalculator creates a calculator for the given IANA timezone string.
// e.g. "Asia/Ho_Chi_Minh"
func NewCalculator(timezone string) (*Calculator, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Calculator{location: loc}, nil
}

// WeekLabel returns the ISO 8601 week number of t as a string.
func (c *Calculator) WeekLabel(t time.Time) string {
	_, week := c.localize(t).ISOWeek()
	return strconv.Itoa(week)
}

// MonthLabel returns the English month name of t.
func (c *Calculator) MonthLabel(t time.Time) string {
	return c.localize(t).Month().String()
}

// localize converts t to the calculator's location. Date-only values decode
// as midnight UTC; their calendar day is kept as written instead of being
// shifted across the date line for zones west of Greenwich.
func (c *Calculator) localize(t time.Time) time.Time {
	utc := t.UTC()
	if h, m, s := utc.Clock(); h == 0 && m == 0 && s == 0 && utc.Nanosecond() == 0 {
		y, mo, d := utc.Date()
		return time.Date(y, mo, d, 0, 0, 0, 0, c.location)
	}
	return t.In(c.location)
}
