package utils

import (
	"fmt"
	"time"
)

// Brasilia is the reference timezone for every date, drawing time and expiry
// decision in the system. Loaded once at init; the tzdata is assumed present
// on the deploy image.
var Brasilia *time.Location

func init() {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		// Brasília is UTC-3 year round since 2019.
		loc = time.FixedZone("-03", -3*60*60)
	}
	Brasilia = loc
}

// Now returns the current instant in Brasília local time.
func Now() time.Time {
	return time.Now().In(Brasilia)
}

// Today returns the current Brasília calendar date as YYYY-MM-DD.
func Today() string {
	return Now().Format("2006-01-02")
}

// Yesterday returns the previous Brasília calendar date as YYYY-MM-DD.
func Yesterday() string {
	return Now().AddDate(0, 0, -1).Format("2006-01-02")
}

// DrawingInstant combines a YYYY-MM-DD date and an HH:MM time into the
// Brasília instant the drawing was scheduled for.
func DrawingInstant(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", date+" "+hhmm, Brasilia)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse drawing instant %q %q: %w", date, hhmm, err)
	}
	return t, nil
}

// ExpiredBeyond reports whether the drawing scheduled at date/hhmm is more
// than grace past due, measured against now. Unparseable inputs count as not
// expired so a malformed token never triggers a refund.
func ExpiredBeyond(date, hhmm string, grace time.Duration, now time.Time) bool {
	at, err := DrawingInstant(date, hhmm)
	if err != nil {
		return false
	}
	return now.Sub(at) > grace
}

// BRDate converts a YYYY-MM-DD date into the DD/MM/YYYY form the source
// pages print.
func BRDate(isoDate string) (string, error) {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", isoDate, err)
	}
	return t.Format("02/01/2006"), nil
}
