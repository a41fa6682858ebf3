package fixture

import (
	"encoding/json"

	"github.com/jn9e9/parsec-client-go/internal/wire"
)

// TestSuite is every fixture for one operation kind. It is the document the
// conformance runner loads.
type TestSuite struct {
	OpCode wire.Opcode `json:"op_code"`
	Tests  []TestCase  `json:"tests"`
}

// TestCase pairs serialized envelopes with the logical values they carry.
type TestCase struct {
	Name                  string          `json:"name"`                    // unique within the suite, e.g. "normal_response"
	RequestData           json.RawMessage `json:"request_data"`            // logical request body
	ExpectedRequestBinary string          `json:"expected_request_binary"` // base64 request envelope
	ResponseBinary        string          `json:"response_binary"`         // base64 response envelope fed to the decoder under test
	ExpectedResponse      json.RawMessage `json:"expected_response"`       // logical result
	ExpectSuccess         bool            `json:"expect_success"`
}
