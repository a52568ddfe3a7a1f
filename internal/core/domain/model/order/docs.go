// Package order defines the Order entity: one parsed delivery line from an
// uploaded spreadsheet, or one the operator added by hand.
//
// An Order is identified by a stable integer index that is unique within a
// working session for the session's whole lifetime; indices are never reused.
// All other fields are freely editable while the operator reviews the upload.
package order
