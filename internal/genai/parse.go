// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package genai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/harshdhankhar10/Event-finder/internal/model"
)

// ErrNoArray reports that the generated text contains no JSON array at
// all. Callers can tell it apart from a malformed array, which comes
// back as a wrapped json error.
var ErrNoArray = errors.New("generated text contains no JSON array")

// ExtractEvents pulls the event list out of the model's free-text
// reply. The array is taken as the substring between the first '[' and
// the last ']'; anything the model wrote around it is ignored.
func ExtractEvents(text string) ([]*model.Event, error) {
	start := strings.Index(text, "[")
	if start < 0 {
		return nil, ErrNoArray
	}
	end := strings.LastIndex(text, "]")
	if end < start {
		return nil, ErrNoArray
	}

	var events []*model.Event
	if err := json.Unmarshal([]byte(text[start:end+1]), &events); err != nil {
		return nil, fmt.Errorf("parse event array: %w", err)
	}
	return events, nil
}
