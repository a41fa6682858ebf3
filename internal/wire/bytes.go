package wire

import (
	"bytes"
	"fmt"
)

func MarshalRequest(req *Request) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeRequest(&buf, req); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func MarshalResponse(resp *Response) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeResponse(&buf, resp); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalRequest decodes data, which must hold exactly one request.
func UnmarshalRequest(data []byte) (*Request, error) {
	r := bytes.NewReader(data)
	req, err := DecodeRequest(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after request", ErrInvalidHeader, r.Len())
	}
	return req, nil
}

// UnmarshalResponse decodes data, which must hold exactly one response.
func UnmarshalResponse(data []byte) (*Response, error) {
	r := bytes.NewReader(data)
	resp, err := DecodeResponse(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after response", ErrInvalidHeader, r.Len())
	}
	return resp, nil
}
