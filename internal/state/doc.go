// Package state persists the list view state between runs.
//
// Persistence is split in two layers:
//   - KeyValueStore: a minimal string-keyed byte store, the terminal analogue of the
//     browser's local storage. FileStore keeps one JSON file per key under a directory
//     (~/.postview/state by default); MemStore keeps values in memory.
//   - ViewStore: serializes pagination.ViewState under the fixed "listState" key and
//     validates whatever it reads back against an embedded JSON Schema.
//
// ViewStore never fails its caller. Writes that cannot be persisted are logged and
// dropped; reads that find nothing usable report absence so the caller uses defaults.
package state
