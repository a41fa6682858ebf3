package operations

import "github.com/jn9e9/parsec-client-go/internal/wire"

type ListClientsOperation struct{}

func (ListClientsOperation) Opcode() wire.Opcode          { return wire.OpcodeListClients }
func (ListClientsOperation) MarshalBody() ([]byte, error) { return []byte{}, nil }
func (o ListClientsOperation) View() any                  { return o }
func (ListClientsOperation) isOperation()                 {}

func unmarshalListClientsOperation(body []byte) (ListClientsOperation, error) {
	_, err := parseFields(body)
	return ListClientsOperation{}, err
}

// ListClientsResult names the clients known to the service. Order is
// significant.
type ListClientsResult struct {
	Clients []string
}

func (ListClientsResult) Opcode() wire.Opcode { return wire.OpcodeListClients }

func (r ListClientsResult) MarshalBody() ([]byte, error) {
	return appendRepeatedString(nil, 1, r.Clients), nil
}

func (r ListClientsResult) View() any {
	if r.Clients == nil {
		return []string{}
	}
	return r.Clients
}

func (ListClientsResult) isResult() {}

func unmarshalListClientsResult(body []byte) (ListClientsResult, error) {
	fields, err := parseFields(body)
	if err != nil {
		return ListClientsResult{}, err
	}

	r := ListClientsResult{Clients: []string{}}
	for _, f := range fields {
		if f.num != 1 {
			continue
		}
		name, err := f.asString()
		if err != nil {
			return ListClientsResult{}, err
		}
		r.Clients = append(r.Clients, name)
	}
	return r, nil
}
