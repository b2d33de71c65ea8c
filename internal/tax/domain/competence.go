package domain

import (
	"fmt"
	"time"
)

// Competence is the calendar month a tax obligation is assessed for.
type Competence struct {
	Year  int
	Month time.Month
}

// ParseCompetence parses the YYYY-MM wire format.
func ParseCompetence(value string) (Competence, error) {
	t, err := time.Parse("2006-01", value)
	if err != nil {
		return Competence{}, fmt.Errorf("invalid competence %q: %w", value, err)
	}
	return Competence{Year: t.Year(), Month: t.Month()}, nil
}

func (c Competence) String() string {
	return fmt.Sprintf("%04d-%02d", c.Year, int(c.Month))
}

// Start returns the first instant of the competence month, UTC.
func (c Competence) Start() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the first instant of the following month, UTC.
func (c Competence) End() time.Time {
	return c.Start().AddDate(0, 1, 0)
}

// Contains reports whether t falls inside the competence month.
func (c Competence) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(c.Start()) && t.Before(c.End())
}

// GuideDueDate is the payment deadline for the month's guide: the 20th of the
// month following the competence month.
func (c Competence) GuideDueDate() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 19)
}

// DisplayMonthYear renders the MM/YYYY form used in guide titles.
func (c Competence) DisplayMonthYear() string {
	return fmt.Sprintf("%02d/%04d", int(c.Month), c.Year)
}
