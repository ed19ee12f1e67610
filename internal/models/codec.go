package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedEntries marks persisted content that could not be decoded.
var ErrMalformedEntries = errors.New("malformed sleep entries")

// EncodeEntries serializes the whole collection as a JSON array. A nil
// collection is written as an empty array.
func EncodeEntries(entries []SleepEntry) ([]byte, error) {
	if entries == nil {
		entries = []SleepEntry{}
	}
	return json.Marshal(entries)
}

// DecodeEntries parses a persisted array. Blank content is an empty
// collection; anything else that does not parse wraps ErrMalformedEntries.
func DecodeEntries(data []byte) ([]SleepEntry, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []SleepEntry{}, nil
	}
	var entries []SleepEntry
	if err := json.Unmarshal(trimmed, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedEntries, err)
	}
	return entries, nil
}

// SplitValid separates entries that pass Validate from those that do not.
// Duplicate ids after the first occurrence are treated as invalid.
func SplitValid(entries []SleepEntry) (valid []SleepEntry, rejected []SleepEntry) {
	seen := make(map[string]bool, len(entries))
	valid = make([]SleepEntry, 0, len(entries))
	for _, e := range entries {
		if e.Validate() != nil || seen[e.ID] {
			rejected = append(rejected, e)
			continue
		}
		seen[e.ID] = true
		e.Note = NormalizeNote(e.Note)
		valid = append(valid, e)
	}
	return valid, rejected
}
