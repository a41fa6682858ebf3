// Package wire implements the Parsec fixed-header envelope.
//
// Every request and response starts with the same 36-byte header, all fields
// little-endian:
//
//	 0       4     6  7  8     10 11        19 20 21 22       26     28       32     34 35 36
//	┌───────┬─────┬──┬──┬─────┬──┬──────────┬──┬──┬──┬────────┬──────┬────────┬──────┬──┬──┐
//	│ magic │hsize│mj│mn│flags│pv│ session  │ct│at│au│bodyLen │authLn│ opcode │status│r1│r2│
//	└───────┴─────┴──┴──┴─────┴──┴──────────┴──┴──┴──┴────────┴──────┴────────┴──────┴──┴──┘
//
// A request is followed by bodyLen body bytes and authLen authentication
// bytes. A response is followed by bodyLen body bytes only.
package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	MagicNumber  uint32 = 0x5EC0A710
	HeaderSize   uint16 = 30 // bytes after the magic number and the size field
	VersionMajor uint8  = 1
	VersionMinor uint8  = 0

	// FixedHeaderSize is the full header length on the wire.
	FixedHeaderSize = 4 + 2 + int(HeaderSize)
)

var (
	ErrInvalidHeader = errors.New("invalid header")
	ErrTruncated     = errors.New("truncated envelope")
	ErrTooLarge      = errors.New("field too large for header")
)

// ProviderID selects the backend a request is routed to.
type ProviderID uint8

const (
	ProviderCore           ProviderID = 0
	ProviderMbedCrypto     ProviderID = 1
	ProviderPKCS11         ProviderID = 2
	ProviderTPM            ProviderID = 3
	ProviderTrustedService ProviderID = 4
	ProviderCryptoAuthLib  ProviderID = 5
)

// BodyType is the serialization format of the body.
type BodyType uint8

const BodyTypeProtobuf BodyType = 0

// AuthType identifies how the authentication field is to be read.
type AuthType uint8

const (
	AuthNoAuth              AuthType = 0
	AuthDirect              AuthType = 1
	AuthTokens              AuthType = 2
	AuthUnixPeerCredentials AuthType = 3
	AuthJWTSVID             AuthType = 4
)

// Header is the decoded fixed header. Lengths are derived from the body and
// auth slices on encode and filled in on decode.
type Header struct {
	Flags       uint16
	Provider    ProviderID
	Session     uint64
	ContentType BodyType
	AcceptType  BodyType
	AuthType    AuthType
	BodyLen     uint32
	AuthLen     uint16
	Opcode      Opcode
	Status      ResponseStatus
}

// Request is a full request envelope.
type Request struct {
	Header Header
	Body   []byte
	Auth   []byte
}

// Response is a full response envelope.
type Response struct {
	Header Header
	Body   []byte
}

func putHeader(buf []byte, h *Header) {
	le := binary.LittleEndian
	le.PutUint32(buf[0:4], MagicNumber)
	le.PutUint16(buf[4:6], HeaderSize)
	buf[6] = VersionMajor
	buf[7] = VersionMinor
	le.PutUint16(buf[8:10], h.Flags)
	buf[10] = byte(h.Provider)
	le.PutUint64(buf[11:19], h.Session)
	buf[19] = byte(h.ContentType)
	buf[20] = byte(h.AcceptType)
	buf[21] = byte(h.AuthType)
	le.PutUint32(buf[22:26], h.BodyLen)
	le.PutUint16(buf[26:28], h.AuthLen)
	le.PutUint32(buf[28:32], uint32(h.Opcode))
	le.PutUint16(buf[32:34], uint16(h.Status))
	// reserved bytes 34 and 35 stay zero
}

func parseHeader(buf []byte) (*Header, error) {
	le := binary.LittleEndian
	if magic := le.Uint32(buf[0:4]); magic != MagicNumber {
		return nil, fmt.Errorf("%w: magic number %#08x", ErrInvalidHeader, magic)
	}
	if size := le.Uint16(buf[4:6]); size != HeaderSize {
		return nil, fmt.Errorf("%w: header size %d", ErrInvalidHeader, size)
	}
	if buf[6] != VersionMajor || buf[7] != VersionMinor {
		return nil, fmt.Errorf("%w: wire protocol version %d.%d", ErrInvalidHeader, buf[6], buf[7])
	}
	if BodyType(buf[19]) != BodyTypeProtobuf {
		return nil, fmt.Errorf("%w: content type %d", ErrInvalidHeader, buf[19])
	}
	if buf[34] != 0 || buf[35] != 0 {
		return nil, fmt.Errorf("%w: reserved bytes must be zero", ErrInvalidHeader)
	}

	return &Header{
		Flags:       le.Uint16(buf[8:10]),
		Provider:    ProviderID(buf[10]),
		Session:     le.Uint64(buf[11:19]),
		ContentType: BodyType(buf[19]),
		AcceptType:  BodyType(buf[20]),
		AuthType:    AuthType(buf[21]),
		BodyLen:     le.Uint32(buf[22:26]),
		AuthLen:     le.Uint16(buf[26:28]),
		Opcode:      Opcode(le.Uint32(buf[28:32])),
		Status:      ResponseStatus(le.Uint16(buf[32:34])),
	}, nil
}

func encode(w io.Writer, h Header, body, auth []byte) error {
	if uint64(len(body)) > math.MaxUint32 {
		return fmt.Errorf("%w: body of %d bytes", ErrTooLarge, len(body))
	}
	if len(auth) > math.MaxUint16 {
		return fmt.Errorf("%w: auth of %d bytes", ErrTooLarge, len(auth))
	}
	h.BodyLen = uint32(len(body))
	h.AuthLen = uint16(len(auth))

	buf := make([]byte, FixedHeaderSize, FixedHeaderSize+len(body)+len(auth))
	putHeader(buf, &h)
	buf = append(buf, body...)
	buf = append(buf, auth...)

	_, err := w.Write(buf)
	return err
}

func decode(r io.Reader) (*Header, []byte, []byte, error) {
	headerBuf := make([]byte, FixedHeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: header: %w", ErrTruncated, err)
	}

	h, err := parseHeader(headerBuf)
	if err != nil {
		return nil, nil, nil, err
	}

	body := make([]byte, h.BodyLen)
	if _, err := io.ReadFull(r, body); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: body: %w", ErrTruncated, err)
	}
	auth := make([]byte, h.AuthLen)
	if _, err := io.ReadFull(r, auth); err != nil {
		return nil, nil, nil, fmt.Errorf("%w: auth: %w", ErrTruncated, err)
	}
	return h, body, auth, nil
}

// EncodeRequest writes a complete request envelope to w.
func EncodeRequest(w io.Writer, req *Request) error {
	return encode(w, req.Header, req.Body, req.Auth)
}

// DecodeRequest reads one request envelope from r.
func DecodeRequest(r io.Reader) (*Request, error) {
	h, body, auth, err := decode(r)
	if err != nil {
		return nil, err
	}
	return &Request{Header: *h, Body: body, Auth: auth}, nil
}

// EncodeResponse writes a complete response envelope to w. Responses never
// carry authentication.
func EncodeResponse(w io.Writer, resp *Response) error {
	h := resp.Header
	h.AuthType = AuthNoAuth
	return encode(w, h, resp.Body, nil)
}

// DecodeResponse reads one response envelope from r.
func DecodeResponse(r io.Reader) (*Response, error) {
	h, body, auth, err := decode(r)
	if err != nil {
		return nil, err
	}
	if len(auth) != 0 {
		return nil, fmt.Errorf("%w: response carries %d auth bytes", ErrInvalidHeader, len(auth))
	}
	return &Response{Header: *h, Body: body}, nil
}
