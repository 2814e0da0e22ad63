package parquet

import (
	"math/big"
	"time"

	"github.com/segmentio/encoding/json"

	"github.com/goparquet/goparquet/encoding/plain"
	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/internal/perr"
)

// Decimal is a fixed-point value reconstructed from a DECIMAL converted
// type: unscaled × 10^-scale.
type Decimal struct {
	Unscaled *big.Int
	Scale    int32
}

// Float64 renders the decimal as a float64, losing precision for values
// that don't fit exactly.
func (d Decimal) Float64() float64 {
	f := new(big.Float).SetInt(d.Unscaled)
	scale := new(big.Float).SetFloat64(pow10(d.Scale))
	f.Quo(f, scale)
	v, _ := f.Float64()
	return v
}

func (d Decimal) String() string {
	return new(big.Float).Quo(new(big.Float).SetInt(d.Unscaled), new(big.Float).SetFloat64(pow10(d.Scale))).Text('f', int(d.Scale))
}

func pow10(n int32) float64 {
	v := 1.0
	for i := int32(0); i < n; i++ {
		v *= 10
	}
	return v
}

const julianDayUnixEpoch = 2440588

// int96ToTime converts the legacy INT96 timestamp representation (Julian
// day in the high 32 bits, nanoseconds-of-day in the low 64 bits) to an
// instant.
func int96ToTime(v plain.Int96) time.Time {
	days := int64(v.High) - julianDayUnixEpoch
	return time.Unix(days*86400, int64(v.Low)).UTC()
}

// ConvertValue applies the converted_type transformation named by elem to a
// decoded physical value. A nil ConvertedType passes v through
// unchanged, except that a bare INT96 defaults to the instant
// interpretation.
func ConvertValue(v any, elem *format.SchemaElement) (any, error) {
	if v == nil {
		return nil, nil
	}
	if elem.ConvertedType == nil {
		if i96, ok := v.(plain.Int96); ok {
			return int96ToTime(i96), nil
		}
		return v, nil
	}

	switch *elem.ConvertedType {
	case format.UTF8:
		return string(asBytes(v)), nil

	case format.Json:
		var out any
		if err := json.Unmarshal(asBytes(v), &out); err != nil {
			return nil, perr.Wrap(perr.ThriftDecode, err, "parsing JSON converted-type value")
		}
		return out, nil

	case format.Bson:
		return nil, perr.New(perr.UnsupportedConvertedType, "BSON converted type is not supported")

	case format.Interval:
		return nil, perr.New(perr.UnsupportedConvertedType, "INTERVAL converted type is not supported")

	case format.Date:
		days := int64(v.(int32))
		return time.Unix(days*86400, 0).UTC(), nil

	case format.TimeMillis:
		ms := int64(v.(int32))
		return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC(), nil

	case format.TimeMicros:
		us := v.(int64)
		return time.Unix(us/1e6, (us%1e6)*int64(time.Microsecond)).UTC(), nil

	case format.TimestampMillis:
		ms := v.(int64)
		return time.Unix(ms/1000, (ms%1000)*int64(time.Millisecond)).UTC(), nil

	case format.TimestampMicros:
		us := v.(int64)
		return time.Unix(us/1e6, (us%1e6)*int64(time.Microsecond)).UTC(), nil

	case format.Decimal:
		scale := int32(0)
		if elem.Scale != nil {
			scale = *elem.Scale
		}
		return decodeDecimal(v, scale)

	case format.Uint8:
		return uint8(asInt64(v)), nil
	case format.Uint16:
		return uint16(asInt64(v)), nil
	case format.Uint32:
		return uint32(asInt64(v)), nil
	case format.Uint64:
		return uint64(asInt64(v)), nil
	case format.Int8:
		return int8(asInt64(v)), nil
	case format.Int16:
		return int16(asInt64(v)), nil
	case format.Int32Converted:
		return int32(asInt64(v)), nil
	case format.Int64Converted:
		return asInt64(v), nil

	default:
		return v, nil
	}
}

func decodeDecimal(v any, scale int32) (Decimal, error) {
	switch t := v.(type) {
	case int32:
		return Decimal{Unscaled: big.NewInt(int64(t)), Scale: scale}, nil
	case int64:
		return Decimal{Unscaled: big.NewInt(t), Scale: scale}, nil
	case []byte:
		return Decimal{Unscaled: bigIntFromTwosComplement(t), Scale: scale}, nil
	default:
		return Decimal{}, perr.New(perr.InternalInvariant, "DECIMAL converted type applied to unsupported physical value %T", v)
	}
}

// bigIntFromTwosComplement interprets b as a big-endian two's complement
// integer.
func bigIntFromTwosComplement(b []byte) *big.Int {
	n := new(big.Int).SetBytes(b)
	if len(b) > 0 && b[0]&0x80 != 0 {
		full := new(big.Int).Lsh(big.NewInt(1), uint(len(b)*8))
		n.Sub(n, full)
	}
	return n
}

func asBytes(v any) []byte {
	switch t := v.(type) {
	case []byte:
		return t
	case string:
		return []byte(t)
	default:
		return nil
	}
}

func asInt64(v any) int64 {
	switch t := v.(type) {
	case int32:
		return int64(t)
	case int64:
		return t
	default:
		return 0
	}
}
