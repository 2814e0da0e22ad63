// Package thrift decodes the Thrift Compact Protocol into a generic
// tagged-field tree, deferring the mapping onto typed structs to the
// caller: the metadata and page-header decoders each walk this tree and
// map field ids onto their own typed struct fields.
package thrift

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/goparquet/goparquet/internal/bitpack"
	"github.com/goparquet/goparquet/internal/perr"
	"github.com/goparquet/goparquet/internal/varint"
)

// WireType is the 4-bit type tag packed into every Thrift Compact field
// header (and list/set/map element headers).
type WireType byte

const (
	TypeStop   WireType = 0
	TypeTrue   WireType = 1
	TypeFalse  WireType = 2
	TypeByte   WireType = 3
	TypeI16    WireType = 4
	TypeI32    WireType = 5
	TypeI64    WireType = 6
	TypeDouble WireType = 7
	TypeBinary WireType = 8
	TypeList   WireType = 9
	TypeSet    WireType = 10
	TypeMap    WireType = 11
	TypeStruct WireType = 12
	TypeUUID   WireType = 13
)

// Value is one decoded Thrift field: exactly one of the typed accessors
// below is meaningful, selected by Type.
type Value struct {
	Type     WireType
	Bool     bool
	Int      int64
	Double   float64
	Bytes    []byte
	String   string // populated for TypeUUID; TypeBinary stays raw Bytes
	List     []Value
	ElemType WireType
	Struct   map[string]Value
}

// Struct decodes a Thrift struct (a sequence of field headers terminated by
// STOP) from the front of data, returning the field map and the number of
// bytes consumed.
//
// Keys are "field_<n>" where n is the Thrift
// field id.
func Struct(data []byte) (map[string]Value, int, error) {
	c := bitpack.NewCursor(data)
	m, err := decodeStruct(c)
	if err != nil {
		return nil, c.Pos, err
	}
	return m, c.Pos, nil
}

func decodeStruct(c *bitpack.Cursor) (map[string]Value, error) {
	fields := make(map[string]Value)
	var lastFid int16
	for {
		fid, typ, err := readFieldHeader(c, lastFid)
		if err != nil {
			return nil, err
		}
		if typ == TypeStop {
			return fields, nil
		}
		v, err := decodeValue(c, typ)
		if err != nil {
			return nil, err
		}
		fields[fmt.Sprintf("field_%d", fid)] = v
		lastFid = fid
	}
}

// readFieldHeader decodes one field header byte: a 4-bit type in the low
// nibble and a 4-bit id-delta in the high nibble. A zero delta means the
// field id was too large to fit a nibble and instead follows as an absolute
// zigzag varint, which replaces lastFid rather than adding to it.
func readFieldHeader(c *bitpack.Cursor, lastFid int16) (int16, WireType, error) {
	b, err := c.ReadByte()
	if err != nil {
		return 0, 0, perr.Wrap(perr.ThriftDecode, err, "reading field header")
	}
	typ := WireType(b & 0x0f)
	if typ == TypeStop {
		return 0, TypeStop, nil
	}
	delta := b >> 4
	if delta == 0 {
		id, err := varint.ReadVarint(c)
		if err != nil {
			return 0, 0, perr.Wrap(perr.ThriftDecode, err, "reading absolute field id")
		}
		return int16(id), typ, nil
	}
	return lastFid + int16(delta), typ, nil
}

func decodeValue(c *bitpack.Cursor, typ WireType) (Value, error) {
	switch typ {
	case TypeTrue:
		return Value{Type: typ, Bool: true}, nil
	case TypeFalse:
		return Value{Type: typ, Bool: false}, nil
	case TypeByte:
		b, err := c.ReadByte()
		if err != nil {
			return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading byte")
		}
		return Value{Type: typ, Int: int64(int8(b))}, nil
	case TypeI16, TypeI32, TypeI64:
		n, err := varint.ReadVarint(c)
		if err != nil {
			return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading varint")
		}
		return Value{Type: typ, Int: n}, nil
	case TypeDouble:
		f, err := c.ReadFloat64()
		if err != nil {
			return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading double")
		}
		return Value{Type: typ, Double: f}, nil
	case TypeBinary:
		b, err := readBinary(c)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: typ, Bytes: b}, nil
	case TypeUUID:
		b, err := c.ReadFixed(16)
		if err != nil {
			return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading uuid")
		}
		id, err := uuid.FromBytes(b)
		if err != nil {
			return Value{}, perr.Wrap(perr.ThriftDecode, err, "parsing uuid bytes")
		}
		return Value{Type: typ, Bytes: append([]byte(nil), b...), String: id.String()}, nil
	case TypeList, TypeSet:
		size, elemType, err := readCollectionHeader(c)
		if err != nil {
			return Value{}, err
		}
		items := make([]Value, size)
		for i := 0; i < size; i++ {
			items[i], err = decodeValue(c, elemType)
			if err != nil {
				return Value{}, err
			}
		}
		return Value{Type: typ, List: items, ElemType: elemType}, nil
	case TypeMap:
		return decodeMap(c)
	case TypeStruct:
		m, err := decodeStruct(c)
		if err != nil {
			return Value{}, err
		}
		return Value{Type: typ, Struct: m}, nil
	default:
		return Value{}, perr.New(perr.ThriftDecode, "unknown wire type %d", typ)
	}
}

func readBinary(c *bitpack.Cursor) ([]byte, error) {
	n, err := varint.ReadUvarint(c)
	if err != nil {
		return nil, perr.Wrap(perr.ThriftDecode, err, "reading binary length")
	}
	b, err := c.ReadFixed(int(n))
	if err != nil {
		return nil, perr.Wrap(perr.ThriftDecode, err, "reading binary payload")
	}
	return b, nil
}

// readCollectionHeader decodes a LIST/SET header: a packed byte whose high
// nibble is the element count (or the sentinel 15 followed by a varint
// length) and whose low nibble is the element wire type.
func readCollectionHeader(c *bitpack.Cursor) (size int, elemType WireType, err error) {
	b, err := c.ReadByte()
	if err != nil {
		return 0, 0, perr.Wrap(perr.ThriftDecode, err, "reading collection header")
	}
	elemType = WireType(b & 0x0f)
	n := int(b >> 4)
	if n == 0x0f {
		size64, err := varint.ReadUvarint(c)
		if err != nil {
			return 0, 0, perr.Wrap(perr.ThriftDecode, err, "reading collection length")
		}
		return int(size64), elemType, nil
	}
	return n, elemType, nil
}

func decodeMap(c *bitpack.Cursor) (Value, error) {
	n, err := varint.ReadUvarint(c)
	if err != nil {
		return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading map size")
	}
	if n == 0 {
		return Value{Type: TypeMap}, nil
	}
	kv, err := c.ReadByte()
	if err != nil {
		return Value{}, perr.Wrap(perr.ThriftDecode, err, "reading map key/value types")
	}
	keyType := WireType(kv >> 4)
	valType := WireType(kv & 0x0f)
	items := make([]Value, 0, 2*n)
	for i := uint64(0); i < n; i++ {
		k, err := decodeValue(c, keyType)
		if err != nil {
			return Value{}, err
		}
		v, err := decodeValue(c, valType)
		if err != nil {
			return Value{}, err
		}
		items = append(items, k, v)
	}
	return Value{Type: TypeMap, List: items}, nil
}
