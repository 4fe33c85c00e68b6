// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Alexei Volkov

package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// dateLayout is the wire and storage form of a calendar date.
const dateLayout = "2006-01-02"

// Date is a calendar date without a time-of-day component. It serializes to
// JSON as "YYYY-MM-DD" and scans from both engines the server supports:
// PostgreSQL returns DATE columns as time.Time, SQLite may hand back the
// stored text or bytes depending on the declared column type.
type Date struct {
	time.Time
}

// ParseDate parses s in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}

	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Value implements driver.Valuer so a Date binds as a time.Time parameter.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan implements sql.Scanner.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		parsed, err := ParseDate(v[:min(len(v), len(dateLayout))])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case []byte:
		return d.Scan(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}
