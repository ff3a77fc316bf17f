// Package archive exports a vector index's persisted parameter record,
// key descriptor, and every row held by its graph engine into a single
// portable snapshot, and imports one back by re-inserting its rows
// through the same engine.Index.Insert path live traffic uses.
//
// A snapshot is a manifest (name, parameter record, key descriptor, and
// rows) encoded once, checksummed with xxHash64, and then compressed
// with a caller-selected format.CompressionType codec — the same codec
// interface package compress defines for any other bulk payload. Export
// writes a short fixed header (magic, format version, compression type,
// checksum) followed by the compressed manifest; Import reverses this,
// rejecting a corrupt payload (checksum mismatch) or an unrecognized
// format version before touching the index.
package archive
