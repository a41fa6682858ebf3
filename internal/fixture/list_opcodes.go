package fixture

import (
	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

// coreOpcodes is what the core provider answers to ListOpcodes.
var coreOpcodes = []wire.Opcode{
	wire.OpcodePing,
	wire.OpcodeListProviders,
	wire.OpcodeListOpcodes,
	wire.OpcodeListAuthenticators,
	wire.OpcodeListKeys,
	wire.OpcodeListClients,
	wire.OpcodeDeleteClient,
}

func listOpcodesScenarios() []scenario {
	opcodes := make([]uint32, len(coreOpcodes))
	for i, op := range coreOpcodes {
		opcodes[i] = uint32(op)
	}

	return []scenario{
		{
			name:      "normal_response",
			operation: operations.ListOpcodesOperation{ProviderID: wire.ProviderCore},
			result:    operations.ListOpcodesResult{Opcodes: opcodes},
			status:    wire.StatusSuccess,
		},
		{
			name:      "fail_response",
			operation: operations.ListOpcodesOperation{ProviderID: wire.ProviderTPM},
			result:    operations.ListOpcodesResult{},
			status:    wire.StatusProviderNotRegistered,
		},
	}
}
