// Package compress provides compression and decompression codecs for index
// snapshot payloads produced by the archive package.
//
// The vector and parameter wire formats themselves are never compressed —
// they are tiny, fixed-shape records meant for direct SQL consumption. This
// package exists purely for the archive snapshot's payload section, which
// can be arbitrarily large (every row of an index, serialized).
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported algorithms
//
//   - None (format.CompressionNone): no-op, use when the snapshot is small
//     or CPU matters more than size.
//   - Zstd (format.CompressionZstd): best ratio, moderate speed. Default
//     choice for archive.Export when exporting to cold storage.
//   - S2 (format.CompressionS2): balanced ratio and speed.
//   - LZ4 (format.CompressionLZ4): fastest decompression, moderate ratio.
//
// Use CreateCodec or GetCodec to obtain a Codec for a format.CompressionType
// read from (or about to be written into) a snapshot header.
package compress
