// Package vecindex ties the vector subsystem's other packages together
// into the index lifecycle a host SQL engine drives: recognizing a
// CREATE INDEX statement as a vector index, parsing its column type and
// key=value parameters, persisting the resulting section.Params through
// a store.MetaStore, and mediating create/drop/clear/insert/delete/search
// against an engine.Index.
//
// Lifecycle is the package's single entry point. It owns no vector math
// or wire format of its own — those live in value, section, key, and
// row — and instead sequences calls into store and engine the same way
// the host's query layer would.
package vecindex
