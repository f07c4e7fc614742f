// Package libdiff compares encoded project files.
//
// Lines diffs two texts line by line and Write renders the result with
// context, in the style of a unified diff.  Objects compares the objects
// dictionaries of two documents record by record, keyed by GUID.
package libdiff
