package fixture

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

var (
	ErrEncoding          = errors.New("fixture encoding failed")
	ErrUnsupportedOpcode = errors.New("no fixtures for opcode")
)

// WrapperOpcode is the opcode written into every fixture header. The body
// decides which operation is meant; runners dispatch on the suite op_code.
const WrapperOpcode = wire.OpcodePing

// requestHeader is the header every fixture request is framed with: core
// provider, no session, protobuf bodies and no authentication.
func requestHeader() wire.Header {
	return wire.Header{
		Provider:    wire.ProviderCore,
		ContentType: wire.BodyTypeProtobuf,
		AcceptType:  wire.BodyTypeProtobuf,
		AuthType:    wire.AuthNoAuth,
		Opcode:      WrapperOpcode,
	}
}

// OperationToBin serializes op into a full request envelope.
func OperationToBin(op operations.Operation) ([]byte, error) {
	body, err := op.MarshalBody()
	if err != nil {
		return nil, fmt.Errorf("%w: %v operation body: %w", ErrEncoding, op.Opcode(), err)
	}
	data, err := wire.MarshalRequest(&wire.Request{Header: requestHeader(), Body: body})
	if err != nil {
		return nil, fmt.Errorf("%w: %v request: %w", ErrEncoding, op.Opcode(), err)
	}
	return data, nil
}

// ResultToBin serializes res into a full response envelope with the given
// status. Error responses carry no body, like the service sends them.
func ResultToBin(res operations.Result, status wire.ResponseStatus) ([]byte, error) {
	var body []byte
	if status.IsSuccess() {
		var err error
		if body, err = res.MarshalBody(); err != nil {
			return nil, fmt.Errorf("%w: %v result body: %w", ErrEncoding, res.Opcode(), err)
		}
	}

	h := requestHeader()
	h.Status = status
	data, err := wire.MarshalResponse(&wire.Response{Header: h, Body: body})
	if err != nil {
		return nil, fmt.Errorf("%w: %v response: %w", ErrEncoding, res.Opcode(), err)
	}
	return data, nil
}

func viewJSON(b operations.Body) (json.RawMessage, error) {
	data, err := json.Marshal(b.View())
	if err != nil {
		return nil, fmt.Errorf("%w: %v view: %w", ErrEncoding, b.Opcode(), err)
	}
	return data, nil
}

// scenario is one hand-written case before serialization.
type scenario struct {
	name      string
	operation operations.Operation
	result    operations.Result
	status    wire.ResponseStatus
}

func (s scenario) build() (TestCase, error) {
	if s.operation.Opcode() != s.result.Opcode() {
		return TestCase{}, fmt.Errorf("%w: case %s mixes %v operation with %v result",
			ErrEncoding, s.name, s.operation.Opcode(), s.result.Opcode())
	}

	request, err := OperationToBin(s.operation)
	if err != nil {
		return TestCase{}, fmt.Errorf("case %s: %w", s.name, err)
	}
	response, err := ResultToBin(s.result, s.status)
	if err != nil {
		return TestCase{}, fmt.Errorf("case %s: %w", s.name, err)
	}
	requestData, err := viewJSON(s.operation)
	if err != nil {
		return TestCase{}, fmt.Errorf("case %s: %w", s.name, err)
	}
	expected, err := viewJSON(s.result)
	if err != nil {
		return TestCase{}, fmt.Errorf("case %s: %w", s.name, err)
	}

	return TestCase{
		Name:                  s.name,
		RequestData:           requestData,
		ExpectedRequestBinary: base64.StdEncoding.EncodeToString(request),
		ResponseBinary:        base64.StdEncoding.EncodeToString(response),
		ExpectedResponse:      expected,
		ExpectSuccess:         s.status.IsSuccess(),
	}, nil
}
