// Package vault holds the in-memory query engine over vault entries.
//
// An Engine keeps the canonical entry list together with the current
// filters (free-text search and category) and pagination. Two views are
// derived from that state and recomputed whenever any of it changes:
//
//   - Filtered: entries matching the filters, in source order.
//   - Page: the window of Filtered selected by page and page size.
//
// Changing a filter always resets the page to 1. Entries come from a
// Repository; the engine never mutates them.
package vault
