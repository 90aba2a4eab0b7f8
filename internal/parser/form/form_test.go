// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package form

import (
	"net/url"
	"reflect"
	"testing"
)

type searchForm struct {
	Query    string  `form:"query"`
	Location string  `form:"location"`
	Lat      float64 `form:"lat"`
	Lng      float64 `form:"lng"`
	UseChat  bool    `form:"use_chat"`
	Limit    int     `form:"limit"`
}

func TestUnmarshal(t *testing.T) {
	testCases := []struct {
		name        string
		input       url.Values
		expected    searchForm
		expectedErr bool
	}{
		{
			name: "valid input data",
			input: url.Values{
				"query":    {"jazz concerts"},
				"location": {"Berlin"},
				"lat":      {"52.52"},
				"lng":      {"13.405"},
				"use_chat": {"true"},
				"limit":    {"6"},
			},
			expected: searchForm{
				Query:    "jazz concerts",
				Location: "Berlin",
				Lat:      52.52,
				Lng:      13.405,
				UseChat:  true,
				Limit:    6,
			},
		},
		{
			name: "missing fields keep zero values",
			input: url.Values{
				"query": {"food festivals"},
			},
			expected: searchForm{Query: "food festivals"},
		},
		{
			name: "empty numeric values are skipped",
			input: url.Values{
				"query": {"markets"},
				"lat":   {""},
				"limit": {""},
			},
			expected: searchForm{Query: "markets"},
		},
		{
			name: "only first value is taken",
			input: url.Values{
				"query": {"first", "second"},
			},
			expected: searchForm{Query: "first"},
		},
		{
			name: "invalid int",
			input: url.Values{
				"limit": {"six"},
			},
			expectedErr: true,
		},
		{
			name: "invalid float",
			input: url.Values{
				"lat": {"north"},
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got searchForm
			err := Unmarshal(tc.input, &got)
			if tc.expectedErr {
				if err == nil {
					t.Fatal("expected an error, got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Unmarshal() = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestUnmarshal_invalidTarget(t *testing.T) {
	if err := Unmarshal(url.Values{}, searchForm{}); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
	var nilTarget *searchForm
	if err := Unmarshal(url.Values{}, nilTarget); err == nil {
		t.Fatal("expected error for nil target")
	}
}
