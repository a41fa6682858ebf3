package operations

import "github.com/jn9e9/parsec-client-go/internal/wire"

type PingOperation struct{}

func (PingOperation) Opcode() wire.Opcode          { return wire.OpcodePing }
func (PingOperation) MarshalBody() ([]byte, error) { return []byte{}, nil }
func (o PingOperation) View() any                  { return o }
func (PingOperation) isOperation()                 {}

func unmarshalPingOperation(body []byte) (PingOperation, error) {
	_, err := parseFields(body)
	return PingOperation{}, err
}

// PingResult reports the wire protocol version spoken by the service.
type PingResult struct {
	WireProtocolVersionMaj uint8 `json:"wire_protocol_version_maj"`
	WireProtocolVersionMin uint8 `json:"wire_protocol_version_min"`
}

func (PingResult) Opcode() wire.Opcode { return wire.OpcodePing }

func (r PingResult) MarshalBody() ([]byte, error) {
	var b []byte
	b = appendUint32(b, 1, uint32(r.WireProtocolVersionMaj))
	b = appendUint32(b, 2, uint32(r.WireProtocolVersionMin))
	return b, nil
}

func (r PingResult) View() any { return r }
func (PingResult) isResult()   {}

func unmarshalPingResult(body []byte) (PingResult, error) {
	fields, err := parseFields(body)
	if err != nil {
		return PingResult{}, err
	}

	var r PingResult
	for _, f := range fields {
		switch f.num {
		case 1:
			r.WireProtocolVersionMaj, err = f.asUint8()
		case 2:
			r.WireProtocolVersionMin, err = f.asUint8()
		}
		if err != nil {
			return PingResult{}, err
		}
	}
	return r, nil
}
