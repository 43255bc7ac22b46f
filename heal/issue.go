// Copyright 2024 The roadspace authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heal implements the diagnostics and normalisation layer
// (component C9): a structured issue list with severity and a
// "was fixed" flag, plus the attribute-normalisation helpers invoked
// before a raw model reaches the geometry kernel.
package heal

import "fmt"

// Severity classifies how serious an Issue is.
type Severity int

const (
	Info Severity = iota
	Warning
	Err
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Err:
		return "ERROR"
	case Fatal:
		return "FATAL"
	}
	return "UNKNOWN"
}

// Issue is one entry in the diagnostics list produced while healing a raw
// model or while building/discretising a road.
type Issue struct {
	Code     string
	Severity Severity
	Location string // identifier path sufficient to locate the source entity
	Message  string
	WasFixed bool
}

func (i Issue) String() string {
	fixed := ""
	if i.WasFixed {
		fixed = " (fixed)"
	}
	return fmt.Sprintf("[%s] %s @ %s: %s%s", i.Severity, i.Code, i.Location, i.Message, fixed)
}

// List is an ordered collection of Issues, append-only and safe for
// single-producer use (per-road diagnostics merged at the end by the
// orchestrator, §5).
type List struct {
	items []Issue
}

// Add appends an issue.
func (l *List) Add(i Issue) { l.items = append(l.items, i) }

// Addf is a convenience constructor for Add.
func (l *List) Addf(code string, sev Severity, location, wasFixed string, format string, args ...interface{}) {
	l.Add(Issue{Code: code, Severity: sev, Location: location, Message: fmt.Sprintf(format, args...), WasFixed: wasFixed == "fixed"})
}

// Items returns the issues recorded so far.
func (l *List) Items() []Issue { return l.items }

// IsFatal reports whether the list contains any FATAL issue (§4.7: "An
// issue list is fatal iff it contains any FATAL").
func (l *List) IsFatal() bool {
	for _, i := range l.items {
		if i.Severity == Fatal {
			return true
		}
	}
	return false
}

// Merge appends all of o's items onto l (single-producer append, §5).
func (l *List) Merge(o *List) {
	if o == nil {
		return
	}
	l.items = append(l.items, o.items...)
}
