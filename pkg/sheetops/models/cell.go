// Package models defines the tabular data structures shared by the loaders,
// transformations and writers.
package models

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies the type held by a Value.
type Kind int

const (
	// KindMissing marks an empty cell.
	KindMissing Kind = iota
	// KindText is a string cell.
	KindText
	// KindNumber is a numeric cell.
	KindNumber
	// KindDate is a date or datetime cell.
	KindDate
)

// DateLayout is used when a date value is rendered as text.
const DateLayout = "2006-01-02 15:04:05"

// Value represents a single cell value.
type Value struct {
	// Kind is the type of the value.
	Kind Kind
	// Str holds the text of a KindText value.
	Str string
	// Num holds the number of a KindNumber value.
	Num float64
	// Time holds the timestamp of a KindDate value.
	Time time.Time
}

// Missing returns the missing-value marker.
func Missing() Value { return Value{} }

// Text returns a text value.
func Text(s string) Value { return Value{Kind: KindText, Str: s} }

// Number returns a numeric value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Date returns a date value.
func Date(t time.Time) Value { return Value{Kind: KindDate, Time: t} }

// IsMissing reports whether v is the missing marker.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// String renders the value as text. Missing values render as "".
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindDate:
		return v.Time.Format(DateLayout)
	default:
		return ""
	}
}

// Interface returns the value in a form accepted by excelize.SetCellValue.
// Missing values map to nil.
func (v Value) Interface() interface{} {
	switch v.Kind {
	case KindText:
		return v.Str
	case KindNumber:
		return v.Num
	case KindDate:
		return v.Time
	default:
		return nil
	}
}

// Compare orders two values: missing first, then numbers, dates and text.
// Values of the same kind compare naturally.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return rank(a.Kind) - rank(b.Kind)
	}
	switch a.Kind {
	case KindNumber:
		switch {
		case a.Num < b.Num:
			return -1
		case a.Num > b.Num:
			return 1
		}
		return 0
	case KindDate:
		return a.Time.Compare(b.Time)
	case KindText:
		return strings.Compare(a.Str, b.Str)
	default:
		return 0
	}
}

func rank(k Kind) int {
	switch k {
	case KindMissing:
		return 0
	case KindNumber:
		return 1
	case KindDate:
		return 2
	default:
		return 3
	}
}
