// Package filter holds the predicates a Logger consults after a message
// has been produced and before any modifier or writer sees it.
//
// A Chain evaluates its filters in insertion order and stops at the
// first one that rejects. Filters are identified by name so they can be
// removed later; Func assigns a random UUID when no name matters.
package filter
