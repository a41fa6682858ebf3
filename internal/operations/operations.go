// Package operations holds the logical request and result bodies of the
// Parsec operations the generator covers, and their protobuf encodings.
//
// Operation and Result form a closed tagged union keyed by wire.Opcode: every
// supported opcode has exactly one Operation type and one Result type.
package operations

import (
	"errors"
	"fmt"
	"slices"

	"github.com/jn9e9/parsec-client-go/internal/wire"
)

var (
	ErrUnknownOpcode = errors.New("unsupported opcode")
	ErrMalformedBody = errors.New("malformed body")
	ErrInvalidField  = errors.New("invalid field value")
)

// Body is the behaviour shared by operations and results.
type Body interface {
	Opcode() wire.Opcode
	// MarshalBody returns the protobuf encoding carried in the envelope.
	MarshalBody() ([]byte, error)
	// View returns the logical value as it appears in fixture JSON.
	View() any
}

type Operation interface {
	Body
	isOperation()
}

type Result interface {
	Body
	isResult()
}

type kind struct {
	operation func(body []byte) (Operation, error)
	result    func(body []byte) (Result, error)
}

var kinds = map[wire.Opcode]kind{
	wire.OpcodePing: {
		operation: func(b []byte) (Operation, error) { return unmarshalPingOperation(b) },
		result:    func(b []byte) (Result, error) { return unmarshalPingResult(b) },
	},
	wire.OpcodeListOpcodes: {
		operation: func(b []byte) (Operation, error) { return unmarshalListOpcodesOperation(b) },
		result:    func(b []byte) (Result, error) { return unmarshalListOpcodesResult(b) },
	},
	wire.OpcodeListClients: {
		operation: func(b []byte) (Operation, error) { return unmarshalListClientsOperation(b) },
		result:    func(b []byte) (Result, error) { return unmarshalListClientsResult(b) },
	},
	wire.OpcodeDeleteClient: {
		operation: func(b []byte) (Operation, error) { return unmarshalDeleteClientOperation(b) },
		result:    func(b []byte) (Result, error) { return unmarshalDeleteClientResult(b) },
	},
}

// Supported returns the opcodes with body codecs, in ascending order.
func Supported() []wire.Opcode {
	ops := make([]wire.Opcode, 0, len(kinds))
	for op := range kinds {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

func UnmarshalOperation(op wire.Opcode, body []byte) (Operation, error) {
	k, ok := kinds[op]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOpcode, op)
	}
	o, err := k.operation(body)
	if err != nil {
		return nil, fmt.Errorf("%v operation: %w", op, err)
	}
	return o, nil
}

func UnmarshalResult(op wire.Opcode, body []byte) (Result, error) {
	k, ok := kinds[op]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnknownOpcode, op)
	}
	r, err := k.result(body)
	if err != nil {
		return nil, fmt.Errorf("%v result: %w", op, err)
	}
	return r, nil
}
