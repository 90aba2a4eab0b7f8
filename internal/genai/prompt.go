// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

package genai

import "fmt"

// MaxResults caps how many events the prompt asks for.
const MaxResults = 6

// BuildPrompt assembles the natural-language instruction for the
// generation endpoint. cutoff is today's calendar date (YYYY-MM-DD);
// every returned event must be dated strictly after it. locationHint,
// when set, narrows the search to that place.
func BuildPrompt(query, locationHint, cutoff string) string {
	locationStr := ""
	if locationHint != "" {
		locationStr = " in " + locationHint
	}

	return fmt.Sprintf(`Retrieve ONLY upcoming events (strictly after %[1]s) matching: "%[2]s%[3]s".
Return a JSON array with max %[4]d events having these EXACT fields:
- id: unique string
- name: string
- description: string (50-100 chars)
- date: "YYYY-MM-DD" (MUST be after %[1]s)
- time: "HH:MM" (24-hour format)
- location: string
- category: string
- imageUrl: valid image URL

Rules:
1. ALL events MUST be in the future (date > %[1]s)
2. No past events allowed
3. If no future events, return empty array []
4. Only real, verified events
5. Strictly valid JSON format`, cutoff, query, locationStr, MaxResults)
}
