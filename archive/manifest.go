package archive

import (
	"bytes"
	"database/sql/driver"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/vecsql/vecidx/format"
	"github.com/vecsql/vecidx/key"
	"github.com/vecsql/vecidx/row"
	"github.com/vecsql/vecidx/section"
	"github.com/vecsql/vecidx/value"
)

// manifest is the uncompressed, pre-checksum contents of a snapshot: an
// index's identity, its parameter record, its key shape, and every row
// its graph engine held at export time.
type manifest struct {
	name    string
	params  *section.Params
	keyDesc key.Descriptor
	rows    []row.InRow
}

func encodeString(buf *bytes.Buffer, s string) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(s)))
	buf.Write(lenBuf[:])
	buf.WriteString(s)
}

func decodeString(r *bytes.Reader) (string, error) {
	b, err := decodeBytes(r)

	return string(b), err
}

func encodeBytes(buf *bytes.Buffer, b []byte) {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
}

func decodeBytes(r *bytes.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := readFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])

	b := make([]byte, n)
	if _, err := readFull(r, b); err != nil {
		return nil, err
	}

	return b, nil
}

func readFull(r *bytes.Reader, b []byte) (int, error) {
	n, err := io.ReadFull(r, b)
	if err != nil {
		return n, fmt.Errorf("archive: truncated manifest: %w", err)
	}

	return n, nil
}

// driver.Value encoding tags. One byte identifies which of the handful
// of concrete types database/sql permits a driver.Value to hold.
const (
	valNil byte = iota
	valInt64
	valFloat64
	valString
	valBytes
)

func encodeValue(buf *bytes.Buffer, v driver.Value) error {
	switch x := v.(type) {
	case nil:
		buf.WriteByte(valNil)
	case int64:
		buf.WriteByte(valInt64)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], uint64(x))
		buf.Write(b[:])
	case float64:
		buf.WriteByte(valFloat64)
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], math.Float64bits(x))
		buf.Write(b[:])
	case string:
		buf.WriteByte(valString)
		encodeString(buf, x)
	case []byte:
		buf.WriteByte(valBytes)
		encodeBytes(buf, x)
	default:
		return fmt.Errorf("archive: unsupported key value type %T", v)
	}

	return nil
}

func decodeValue(r *bytes.Reader) (driver.Value, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, err
	}

	switch tag {
	case valNil:
		return nil, nil
	case valInt64:
		var b [8]byte
		if _, err := readFull(r, b[:]); err != nil {
			return nil, err
		}

		return int64(binary.BigEndian.Uint64(b[:])), nil
	case valFloat64:
		var b [8]byte
		if _, err := readFull(r, b[:]); err != nil {
			return nil, err
		}

		return math.Float64frombits(binary.BigEndian.Uint64(b[:])), nil
	case valString:
		return decodeString(r)
	case valBytes:
		return decodeBytes(r)
	default:
		return nil, fmt.Errorf("archive: unrecognized key value tag %d", tag)
	}
}

func encodeManifest(m manifest) ([]byte, error) {
	var buf bytes.Buffer

	encodeString(&buf, m.name)
	encodeBytes(&buf, m.params.Bytes())

	buf.WriteByte(byte(len(m.keyDesc.Columns)))
	for _, col := range m.keyDesc.Columns {
		buf.WriteByte(byte(col.Affinity))
		encodeString(&buf, col.Collation)
	}

	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(m.rows)))
	buf.Write(countBuf[:])

	for _, r := range m.rows {
		if r.Vector == nil {
			buf.WriteByte(0)
		} else {
			buf.WriteByte(1)
			encodeBytes(&buf, value.ToBlob(r.Vector, true))
		}

		buf.WriteByte(byte(len(r.Keys)))
		for _, k := range r.Keys {
			if err := encodeValue(&buf, k); err != nil {
				return nil, err
			}
		}
	}

	return buf.Bytes(), nil
}

func decodeManifest(data []byte) (manifest, error) {
	r := bytes.NewReader(data)

	name, err := decodeString(r)
	if err != nil {
		return manifest{}, err
	}
	paramBytes, err := decodeBytes(r)
	if err != nil {
		return manifest{}, err
	}
	params, err := section.ParseParams(paramBytes)
	if err != nil {
		return manifest{}, err
	}

	nCols, err := r.ReadByte()
	if err != nil {
		return manifest{}, err
	}
	cols := make([]key.Column, nCols)
	for i := range cols {
		aff, err := r.ReadByte()
		if err != nil {
			return manifest{}, err
		}
		collation, err := decodeString(r)
		if err != nil {
			return manifest{}, err
		}
		cols[i] = key.Column{Affinity: format.Affinity(aff), Collation: collation}
	}
	keyDesc, err := key.FromPrimaryKey(cols)
	if err != nil {
		return manifest{}, err
	}

	var countBuf [4]byte
	if _, err := readFull(r, countBuf[:]); err != nil {
		return manifest{}, err
	}
	nRows := binary.BigEndian.Uint32(countBuf[:])

	rows := make([]row.InRow, nRows)
	for i := range rows {
		hasVector, err := r.ReadByte()
		if err != nil {
			return manifest{}, err
		}

		var vec *value.Vector
		if hasVector == 1 {
			blob, err := decodeBytes(r)
			if err != nil {
				return manifest{}, err
			}
			vec, err = value.FromBlob(blob)
			if err != nil {
				return manifest{}, err
			}
		}

		nKeys, err := r.ReadByte()
		if err != nil {
			return manifest{}, err
		}
		keys := make([]driver.Value, nKeys)
		for k := range keys {
			v, err := decodeValue(r)
			if err != nil {
				return manifest{}, err
			}
			keys[k] = v
		}

		rows[i] = row.InRow{Vector: vec, Keys: keys}
	}

	return manifest{name: name, params: params, keyDesc: keyDesc, rows: rows}, nil
}
