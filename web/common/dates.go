package common

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/snnnxs25024-ux/absensi-backend/utils"
)

const dateLayout = "2006-01-02" // yyyy-MM-dd

// DateOnly round-trips a calendar date as "2025-10-20". The value is kept at
// UTC midnight so DATE columns never shift a day.
type DateOnly struct {
	time.Time
}

func (d *DateOnly) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	if s == "" {
		d.Time = time.Time{}
		return nil
	}

	t, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return fmt.Errorf("invalid date format: %v", err)
	}

	d.Time = t
	return nil
}

func (d DateOnly) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(d.Format(dateLayout))
}

const dateTimeLayout = "2006-01-02T15:04:05"

// LocalDateTime is a wall-clock timestamp without a zone suffix, read and
// rendered on the site calendar. Operator corrections arrive in this form.
type LocalDateTime struct {
	time.Time
}

func (l *LocalDateTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		l.Time = time.Time{}
		return nil
	}
	t, err := time.ParseInLocation(dateTimeLayout, s, utils.JakartaTZ)
	if err != nil {
		return err
	}
	l.Time = t
	return nil
}

func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.Time.IsZero() {
		return json.Marshal("")
	}
	return json.Marshal(l.In(utils.JakartaTZ).Format(dateTimeLayout))
}
