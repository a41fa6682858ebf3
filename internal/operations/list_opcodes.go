package operations

import (
	"fmt"

	"github.com/jn9e9/parsec-client-go/internal/wire"
)

// ListOpcodesOperation asks which opcodes a provider implements.
type ListOpcodesOperation struct {
	ProviderID wire.ProviderID `json:"provider_id"`
}

func (ListOpcodesOperation) Opcode() wire.Opcode { return wire.OpcodeListOpcodes }

func (o ListOpcodesOperation) MarshalBody() ([]byte, error) {
	if o.ProviderID > wire.ProviderCryptoAuthLib {
		return nil, fmt.Errorf("%w: provider_id %d", ErrInvalidField, o.ProviderID)
	}
	return appendUint32(nil, 1, uint32(o.ProviderID)), nil
}

func (o ListOpcodesOperation) View() any  { return o }
func (ListOpcodesOperation) isOperation() {}

func unmarshalListOpcodesOperation(body []byte) (ListOpcodesOperation, error) {
	fields, err := parseFields(body)
	if err != nil {
		return ListOpcodesOperation{}, err
	}

	var o ListOpcodesOperation
	for _, f := range fields {
		if f.num != 1 {
			continue
		}
		id, err := f.asUint8()
		if err != nil {
			return ListOpcodesOperation{}, err
		}
		o.ProviderID = wire.ProviderID(id)
	}
	return o, nil
}

type ListOpcodesResult struct {
	Opcodes []uint32
}

func (ListOpcodesResult) Opcode() wire.Opcode { return wire.OpcodeListOpcodes }

func (r ListOpcodesResult) MarshalBody() ([]byte, error) {
	return appendPackedUint32(nil, 1, r.Opcodes), nil
}

func (r ListOpcodesResult) View() any {
	if r.Opcodes == nil {
		return []uint32{}
	}
	return r.Opcodes
}

func (ListOpcodesResult) isResult() {}

func unmarshalListOpcodesResult(body []byte) (ListOpcodesResult, error) {
	fields, err := parseFields(body)
	if err != nil {
		return ListOpcodesResult{}, err
	}

	r := ListOpcodesResult{Opcodes: []uint32{}}
	for _, f := range fields {
		if f.num != 1 {
			continue
		}
		vs, err := f.asRepeatedUint32()
		if err != nil {
			return ListOpcodesResult{}, err
		}
		r.Opcodes = append(r.Opcodes, vs...)
	}
	return r, nil
}
