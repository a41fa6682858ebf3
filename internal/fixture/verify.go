package fixture

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

var ErrInvalidFixture = errors.New("invalid fixture")

// Verify decodes every case of suite the way a conformance runner would and
// checks it against the logical values recorded next to it. All problems
// are reported, joined.
func Verify(suite *TestSuite) error {
	if suite == nil {
		return fmt.Errorf("%w: nil suite", ErrInvalidFixture)
	}

	var errs []error
	seen := make(map[string]bool, len(suite.Tests))
	for i, tc := range suite.Tests {
		if tc.Name == "" {
			errs = append(errs, fmt.Errorf("%w: case %d has no name", ErrInvalidFixture, i))
		} else if seen[tc.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate case name %q", ErrInvalidFixture, tc.Name))
		}
		seen[tc.Name] = true

		if err := verifyCase(suite.OpCode, tc); err != nil {
			errs = append(errs, fmt.Errorf("%v case %q: %w", suite.OpCode, tc.Name, err))
		}
	}
	return errors.Join(errs...)
}

func verifyCase(op wire.Opcode, tc TestCase) error {
	reqBytes, err := base64.StdEncoding.DecodeString(tc.ExpectedRequestBinary)
	if err != nil {
		return fmt.Errorf("%w: expected_request_binary: %w", ErrInvalidFixture, err)
	}
	req, err := wire.UnmarshalRequest(reqBytes)
	if err != nil {
		return fmt.Errorf("%w: request envelope: %w", ErrInvalidFixture, err)
	}
	operation, err := operations.UnmarshalOperation(op, req.Body)
	if err != nil {
		return fmt.Errorf("%w: request body: %w", ErrInvalidFixture, err)
	}
	if err := sameJSON("request_data", operation, tc.RequestData); err != nil {
		return err
	}

	respBytes, err := base64.StdEncoding.DecodeString(tc.ResponseBinary)
	if err != nil {
		return fmt.Errorf("%w: response_binary: %w", ErrInvalidFixture, err)
	}
	resp, err := wire.UnmarshalResponse(respBytes)
	if err != nil {
		return fmt.Errorf("%w: response envelope: %w", ErrInvalidFixture, err)
	}
	if got := resp.Header.Status.IsSuccess(); got != tc.ExpectSuccess {
		return fmt.Errorf("%w: status %v but expect_success is %t", ErrInvalidFixture, resp.Header.Status, tc.ExpectSuccess)
	}
	if !tc.ExpectSuccess {
		if len(resp.Body) != 0 {
			return fmt.Errorf("%w: error response carries a %d byte body", ErrInvalidFixture, len(resp.Body))
		}
		return nil
	}

	result, err := operations.UnmarshalResult(op, resp.Body)
	if err != nil {
		return fmt.Errorf("%w: response body: %w", ErrInvalidFixture, err)
	}
	return sameJSON("expected_response", result, tc.ExpectedResponse)
}

func sameJSON(field string, decoded operations.Body, recorded json.RawMessage) error {
	want, err := json.Marshal(decoded.View())
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidFixture, field, err)
	}

	var got bytes.Buffer
	if err := json.Compact(&got, recorded); err != nil {
		return fmt.Errorf("%w: %s is not valid JSON: %w", ErrInvalidFixture, field, err)
	}
	if !bytes.Equal(got.Bytes(), want) {
		return fmt.Errorf("%w: %s is %s but the binary decodes to %s", ErrInvalidFixture, field, got.Bytes(), want)
	}
	return nil
}
