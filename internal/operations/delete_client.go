package operations

import (
	"fmt"

	"github.com/jn9e9/parsec-client-go/internal/wire"
)

// DeleteClientOperation removes every key owned by Client. Admin only.
type DeleteClientOperation struct {
	Client string `json:"client"`
}

func (DeleteClientOperation) Opcode() wire.Opcode { return wire.OpcodeDeleteClient }

func (o DeleteClientOperation) MarshalBody() ([]byte, error) {
	if o.Client == "" {
		return nil, fmt.Errorf("%w: client name is empty", ErrInvalidField)
	}
	return appendString(nil, 1, o.Client), nil
}

func (o DeleteClientOperation) View() any  { return o }
func (DeleteClientOperation) isOperation() {}

func unmarshalDeleteClientOperation(body []byte) (DeleteClientOperation, error) {
	fields, err := parseFields(body)
	if err != nil {
		return DeleteClientOperation{}, err
	}

	var o DeleteClientOperation
	for _, f := range fields {
		if f.num != 1 {
			continue
		}
		if o.Client, err = f.asString(); err != nil {
			return DeleteClientOperation{}, err
		}
	}
	return o, nil
}

type DeleteClientResult struct{}

func (DeleteClientResult) Opcode() wire.Opcode          { return wire.OpcodeDeleteClient }
func (DeleteClientResult) MarshalBody() ([]byte, error) { return []byte{}, nil }
func (r DeleteClientResult) View() any                  { return r }
func (DeleteClientResult) isResult()                    {}

func unmarshalDeleteClientResult(body []byte) (DeleteClientResult, error) {
	_, err := parseFields(body)
	return DeleteClientResult{}, err
}
