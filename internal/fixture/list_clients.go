package fixture

import (
	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

func listClientsScenarios() []scenario {
	return []scenario{
		{
			name:      "normal_response",
			operation: operations.ListClientsOperation{},
			result:    operations.ListClientsResult{Clients: []string{"jim", "bob"}},
			status:    wire.StatusSuccess,
		},
		{
			name:      "fail_response",
			operation: operations.ListClientsOperation{},
			result:    operations.ListClientsResult{Clients: []string{}},
			status:    wire.StatusPsaErrorNotSupported,
		},
	}
}
