// Copyright (C) 2026 the Event-finder maintainers
// See root-dir/LICENSE for more information

// Package notify carries transient user-visible notifications from the
// core collaborators to whatever surface is handling the request. The
// notices are informational toasts, not part of the data contract.
package notify

// Notice kinds, mirrored by the page's toast styles.
const (
	KindInfo    = "info"
	KindWarning = "warning"
	KindError   = "error"
	KindSuccess = "success"
)

type Notice struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

// Notifier receives transient notices. Implementations must be safe for
// use within a single request; they are not shared across requests.
type Notifier interface {
	Notify(kind, text string)
}

// Collector gathers notices for one request so the handler can return
// them in the response body.
type Collector struct {
	notices []Notice
}

func NewCollector() *Collector {
	return &Collector{notices: make([]Notice, 0)}
}

func (c *Collector) Notify(kind, text string) {
	c.notices = append(c.notices, Notice{Kind: kind, Text: text})
}

// Notices returns everything collected so far, in order.
func (c *Collector) Notices() []Notice {
	return c.notices
}

// Discard drops all notices, for callers that have no surface to show
// them on.
type Discard struct{}

func (Discard) Notify(string, string) {}
