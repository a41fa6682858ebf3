package fixture

import (
	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

func pingScenarios() []scenario {
	return []scenario{
		{
			name:      "normal_response",
			operation: operations.PingOperation{},
			result: operations.PingResult{
				WireProtocolVersionMaj: wire.VersionMajor,
				WireProtocolVersionMin: wire.VersionMinor,
			},
			status: wire.StatusSuccess,
		},
		{
			name:      "fail_response",
			operation: operations.PingOperation{},
			result:    operations.PingResult{},
			status:    wire.StatusWireProtocolVersionNotSupported,
		},
	}
}
