package archive

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/vecsql/vecidx/compress"
	"github.com/vecsql/vecidx/errs"
	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/internal/hash"
	"github.com/vecsql/vecidx/key"
	"github.com/vecsql/vecidx/vecindex"
)

var magic = [4]byte{'V', 'I', 'D', 'X'}

// formatVersion is the only snapshot header version this module writes.
// Import rejects any other version (it does not know how to interpret a
// header laid out differently).
const formatVersion = 1

// Export walks name's parameter record and every row held by its graph
// engine, and writes a compressed, checksummed snapshot to w. keyDesc
// describes the table's key shape, the same descriptor the caller would
// pass to Lifecycle.Search.
func Export(ctx context.Context, w io.Writer, lc *vecindex.Lifecycle, name string, keyDesc key.Descriptor, opts ...Option) error {
	cfg, err := newConfig(opts)
	if err != nil {
		return err
	}

	params, err := lc.Params(ctx, name)
	if err != nil {
		return fmt.Errorf("archive: reading parameters for %q: %w", name, err)
	}

	cur, err := lc.Open(ctx, name)
	if err != nil {
		return fmt.Errorf("archive: opening %q: %w", name, err)
	}
	defer cur.Close(ctx)

	rows, err := cur.Rows(ctx)
	if err != nil {
		return fmt.Errorf("archive: reading rows of %q: %w", name, err)
	}

	raw, err := encodeManifest(manifest{name: name, params: params, keyDesc: keyDesc, rows: rows})
	if err != nil {
		return err
	}

	codec, err := compress.CreateCodec(cfg.compression, "archive snapshot")
	if err != nil {
		return err
	}
	compressed, err := codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("archive: compressing snapshot: %w", err)
	}

	var header [14]byte
	copy(header[0:4], magic[:])
	header[4] = formatVersion
	header[5] = byte(cfg.compression)
	binary.BigEndian.PutUint64(header[6:14], hash.Bytes(raw))

	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err = w.Write(compressed)

	return err
}

// Import reads a snapshot written by Export, verifies its checksum,
// creates name as a fresh index (via Lifecycle.Create, using the
// snapshot's own parameter record and key descriptor), and re-inserts
// every row through the same engine.Index.Insert path live writes use,
// so the restored index is indistinguishable from one built by live
// traffic. It returns the key descriptor recovered from the snapshot.
func Import(ctx context.Context, r io.Reader, lc *vecindex.Lifecycle, name string) (key.Descriptor, error) {
	var header [14]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return key.Descriptor{}, fmt.Errorf("archive: reading header: %w", err)
	}
	if [4]byte(header[0:4]) != magic {
		return key.Descriptor{}, errors.New("archive: not a vector index snapshot")
	}
	if header[4] != formatVersion {
		return key.Descriptor{}, fmt.Errorf("%w: got %d, support %d", errs.ErrArchiveVersion, header[4], formatVersion)
	}
	compression := format.CompressionType(header[5])
	wantChecksum := binary.BigEndian.Uint64(header[6:14])

	compressed, err := io.ReadAll(r)
	if err != nil {
		return key.Descriptor{}, fmt.Errorf("archive: reading payload: %w", err)
	}

	codec, err := compress.GetCodec(compression)
	if err != nil {
		return key.Descriptor{}, err
	}
	raw, err := codec.Decompress(compressed)
	if err != nil {
		return key.Descriptor{}, fmt.Errorf("archive: decompressing snapshot: %w", err)
	}
	if hash.Bytes(raw) != wantChecksum {
		return key.Descriptor{}, errs.ErrArchiveChecksum
	}

	m, err := decodeManifest(raw)
	if err != nil {
		return key.Descriptor{}, err
	}

	if _, err := lc.Create(ctx, name, m.keyDesc, m.params); err != nil {
		return key.Descriptor{}, fmt.Errorf("archive: recreating %q: %w", name, err)
	}

	cur, err := lc.Open(ctx, name)
	if err != nil {
		return key.Descriptor{}, fmt.Errorf("archive: opening %q: %w", name, err)
	}
	defer cur.Close(ctx)

	for _, rec := range m.rows {
		if err := cur.Insert(ctx, rec); err != nil {
			return key.Descriptor{}, fmt.Errorf("archive: restoring row into %q: %w", name, err)
		}
	}

	return m.keyDesc, nil
}
