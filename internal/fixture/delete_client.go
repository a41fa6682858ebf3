package fixture

import (
	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

func deleteClientScenarios() []scenario {
	return []scenario{
		{
			name:      "normal_response",
			operation: operations.DeleteClientOperation{Client: "jim"},
			result:    operations.DeleteClientResult{},
			status:    wire.StatusSuccess,
		},
		{
			// non-admin callers are refused
			name:      "fail_response",
			operation: operations.DeleteClientOperation{Client: "jim"},
			result:    operations.DeleteClientResult{},
			status:    wire.StatusAdminOperation,
		},
	}
}
