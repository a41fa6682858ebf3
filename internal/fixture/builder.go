// Package fixture builds the golden request/response fixtures consumed by
// the Parsec client conformance tests.
//
// Each supported opcode has a scenario list. BuildSuite serializes the list
// into a TestSuite; nothing is returned unless every case encodes.
package fixture

import (
	"fmt"
	"slices"

	"github.com/jn9e9/parsec-client-go/internal/wire"
)

var scenarioSets = map[wire.Opcode]func() []scenario{
	wire.OpcodePing:         pingScenarios,
	wire.OpcodeListOpcodes:  listOpcodesScenarios,
	wire.OpcodeListClients:  listClientsScenarios,
	wire.OpcodeDeleteClient: deleteClientScenarios,
}

// Kinds returns the opcodes BuildSuite supports, in ascending order.
func Kinds() []wire.Opcode {
	ops := make([]wire.Opcode, 0, len(scenarioSets))
	for op := range scenarioSets {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}

func BuildSuite(op wire.Opcode) (*TestSuite, error) {
	scenarios, ok := scenarioSets[op]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOpcode, op)
	}
	return buildSuite(op, scenarios())
}

func buildSuite(op wire.Opcode, scenarios []scenario) (*TestSuite, error) {
	suite := &TestSuite{
		OpCode: op,
		Tests:  make([]TestCase, 0, len(scenarios)),
	}
	for _, s := range scenarios {
		if s.operation.Opcode() != op {
			return nil, fmt.Errorf("%w: %v suite has %v case %s", ErrEncoding, op, s.operation.Opcode(), s.name)
		}
		tc, err := s.build()
		if err != nil {
			return nil, fmt.Errorf("%v suite: %w", op, err)
		}
		suite.Tests = append(suite.Tests, tc)
	}
	return suite, nil
}
