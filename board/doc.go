// Package board holds the Kanban board model and the mutations the write
// routes perform on it.
//
// The board is one JSON document: an ordered list of columns, each holding
// tasks. [Service] loads the document from a [Store], applies one change and
// saves it back. Changes in one process are serialized; concurrent writers in
// different processes race and the last save wins.
//
// Unknown task fields are kept verbatim so clients can attach their own data.
//
// # What this package must NOT do
//
//   - Authenticate. Callers gate writes before reaching the Service.
//   - Know about HTTP.
package board
