// Package pbx provides the object graph of a decoded project file.
//
// A Graph wraps the decoded document and its flat store of records, a
// dictionary from GUID to record under the top level "objects" key.  Typed
// views (Groups, FileReferences, BuildFiles, BuildPhases, ...) are built by
// one scan of the store on first access.  Once a view exists it is the
// authoritative collection for its kind: new records are registered with
// the view and the graph enters the Draft state.  Consolidate merges every
// view back into a fresh store and returns the graph to Consolidated; only
// a consolidated graph can be encoded.
//
// Records refer to each other by GUID only.  A group lists its children
// by GUID and ParentGroup answers the reverse question.
package pbx
