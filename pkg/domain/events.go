package domain

import "context"

// SectionEvent describes entry into or exit from a section during traversal.
type SectionEvent struct {
	Name  string
	Depth int
	// Index is the position of the section among its siblings.
	Index int
	// Result is only set on leave.
	Result Result
}

// Hooks defines callbacks for engine observability.
// Nil callbacks are skipped.
type Hooks struct {
	OnSectionEnter func(context.Context, *SectionEvent)
	OnSectionLeave func(context.Context, *SectionEvent)
}
