package models

import (
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Quality enumerates how well a night's sleep went.
type Quality string

const (
	QualityGreat Quality = "great"
	QualityOkay  Quality = "okay"
	QualityPoor  Quality = "poor"
)

// Qualities lists every quality in selector order.
var Qualities = []Quality{QualityGreat, QualityOkay, QualityPoor}

var titleCaser = cases.Title(language.English)

func ParseQuality(s string) (Quality, bool) {
	q := Quality(strings.ToLower(strings.TrimSpace(s)))
	return q, q.Valid()
}

func (q Quality) Valid() bool {
	switch q {
	case QualityGreat, QualityOkay, QualityPoor:
		return true
	}
	return false
}

// Emoji returns the face shown on the quality selector.
func (q Quality) Emoji() string {
	switch q {
	case QualityGreat:
		return "😴"
	case QualityOkay:
		return "😐"
	case QualityPoor:
		return "😵"
	default:
		return ""
	}
}

// Label formats a quality for the history list, e.g. "😵 Poor".
func (q Quality) Label() string {
	if !q.Valid() {
		return ""
	}
	return q.Emoji() + " " + titleCaser.String(string(q))
}

func (q Quality) index() int {
	for i, v := range Qualities {
		if v == q {
			return i
		}
	}
	return 0
}

// Next cycles forward through Qualities, wrapping at the end.
func (q Quality) Next() Quality {
	return Qualities[(q.index()+1)%len(Qualities)]
}

// Prev cycles backward through Qualities, wrapping at the start.
func (q Quality) Prev() Quality {
	return Qualities[(q.index()+len(Qualities)-1)%len(Qualities)]
}

// SleepEntry is one recorded night.
type SleepEntry struct {
	ID      string    `json:"id" validate:"required"`
	Date    time.Time `json:"date" validate:"required"`
	Quality Quality   `json:"quality" validate:"oneof=great okay poor"`
	Hours   float64   `json:"hours" validate:"gte=0,lte=24"`
	Note    string    `json:"note,omitempty"`
}

// HasNote reports whether the entry carries a non-blank note.
func (e SleepEntry) HasNote() bool {
	return NormalizeNote(e.Note) != ""
}

// NormalizeNote trims surrounding whitespace; blank notes become absent.
func NormalizeNote(note string) string {
	return strings.TrimSpace(note)
}
