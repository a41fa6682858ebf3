package operations

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// field is one decoded protobuf field. Only varint and length-delimited
// values are kept; fields of other wire types are skipped.
type field struct {
	num    protowire.Number
	typ    protowire.Type
	varint uint64
	bytes  []byte
}

func parseFields(body []byte) ([]field, error) {
	var fields []field
	for len(body) > 0 {
		num, typ, n := protowire.ConsumeTag(body)
		if n < 0 {
			return nil, fmt.Errorf("%w: %w", ErrMalformedBody, protowire.ParseError(n))
		}
		body = body[n:]

		f := field{num: num, typ: typ}
		switch typ {
		case protowire.VarintType:
			f.varint, n = protowire.ConsumeVarint(body)
		case protowire.BytesType:
			f.bytes, n = protowire.ConsumeBytes(body)
		default:
			n = protowire.ConsumeFieldValue(num, typ, body)
		}
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %w", ErrMalformedBody, num, protowire.ParseError(n))
		}
		body = body[n:]

		if typ == protowire.VarintType || typ == protowire.BytesType {
			fields = append(fields, f)
		}
	}
	return fields, nil
}

func (f field) expect(typ protowire.Type) error {
	if f.typ != typ {
		return fmt.Errorf("%w: field %d has wire type %d, want %d", ErrMalformedBody, f.num, f.typ, typ)
	}
	return nil
}

func (f field) asUint32() (uint32, error) {
	if err := f.expect(protowire.VarintType); err != nil {
		return 0, err
	}
	if f.varint > math.MaxUint32 {
		return 0, fmt.Errorf("%w: field %d overflows uint32", ErrMalformedBody, f.num)
	}
	return uint32(f.varint), nil
}

func (f field) asUint8() (uint8, error) {
	v, err := f.asUint32()
	if err != nil {
		return 0, err
	}
	if v > math.MaxUint8 {
		return 0, fmt.Errorf("%w: field %d overflows uint8", ErrMalformedBody, f.num)
	}
	return uint8(v), nil
}

func (f field) asString() (string, error) {
	if err := f.expect(protowire.BytesType); err != nil {
		return "", err
	}
	return string(f.bytes), nil
}

// asRepeatedUint32 accepts both the packed and the unpacked encoding.
func (f field) asRepeatedUint32() ([]uint32, error) {
	if f.typ == protowire.VarintType {
		v, err := f.asUint32()
		if err != nil {
			return nil, err
		}
		return []uint32{v}, nil
	}
	if err := f.expect(protowire.BytesType); err != nil {
		return nil, err
	}

	var out []uint32
	packed := f.bytes
	for len(packed) > 0 {
		v, n := protowire.ConsumeVarint(packed)
		if n < 0 {
			return nil, fmt.Errorf("%w: field %d: %w", ErrMalformedBody, f.num, protowire.ParseError(n))
		}
		if v > math.MaxUint32 {
			return nil, fmt.Errorf("%w: field %d overflows uint32", ErrMalformedBody, f.num)
		}
		out = append(out, uint32(v))
		packed = packed[n:]
	}
	return out, nil
}

// appendUint32 follows proto3 and omits zero values.
func appendUint32(b []byte, num protowire.Number, v uint32) []byte {
	if v == 0 {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, uint64(v))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendRepeatedString(b []byte, num protowire.Number, ss []string) []byte {
	for _, s := range ss {
		b = protowire.AppendTag(b, num, protowire.BytesType)
		b = protowire.AppendString(b, s)
	}
	return b
}

func appendPackedUint32(b []byte, num protowire.Number, vs []uint32) []byte {
	if len(vs) == 0 {
		return b
	}
	var packed []byte
	for _, v := range vs {
		packed = protowire.AppendVarint(packed, uint64(v))
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, packed)
}
