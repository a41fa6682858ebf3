package fixture

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jn9e9/parsec-client-go/internal/operations"
	"github.com/jn9e9/parsec-client-go/internal/test"
	"github.com/jn9e9/parsec-client-go/internal/wire"
)

func TestKinds(t *testing.T) {
	t.Parallel()

	want := []wire.Opcode{
		wire.OpcodePing,
		wire.OpcodeListOpcodes,
		wire.OpcodeListClients,
		wire.OpcodeDeleteClient,
	}
	if diff := cmp.Diff(want, Kinds()); diff != "" {
		t.Fatalf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(operations.Supported(), Kinds()); diff != "" {
		t.Fatalf("every kind needs a body codec (-codecs +kinds):\n%s", diff)
	}
}

func TestBuildSuite_Golden(t *testing.T) {
	t.Parallel()

	for _, op := range Kinds() {
		t.Run(op.String(), func(t *testing.T) {
			t.Parallel()

			suite, err := BuildSuite(op)
			if err != nil {
				t.Fatalf("BuildSuite() error = %v", err)
			}
			got, err := Marshal(suite)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}

			want := test.ReadGolden(t, FileName(op))
			if diff := cmp.Diff(want, string(got)); diff != "" {
				t.Fatalf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildSuite_ListClients(t *testing.T) {
	t.Parallel()

	suite, err := BuildSuite(wire.OpcodeListClients)
	if err != nil {
		t.Fatalf("BuildSuite() error = %v", err)
	}
	if suite.OpCode != wire.OpcodeListClients {
		t.Fatalf("OpCode = %v, want %v", suite.OpCode, wire.OpcodeListClients)
	}
	if len(suite.Tests) != 2 {
		t.Fatalf("len(Tests) = %d, want 2", len(suite.Tests))
	}

	t.Run("normal_response", func(t *testing.T) {
		tc := suite.Tests[0]
		if tc.Name != "normal_response" || !tc.ExpectSuccess {
			t.Fatalf("case = %q success %t, want normal_response success true", tc.Name, tc.ExpectSuccess)
		}
		if string(tc.RequestData) != `{}` {
			t.Fatalf("RequestData = %s, want {}", tc.RequestData)
		}
		if string(tc.ExpectedResponse) != `["jim","bob"]` {
			t.Fatalf("ExpectedResponse = %s, want [\"jim\",\"bob\"]", tc.ExpectedResponse)
		}

		req := decodeRequest(t, tc.ExpectedRequestBinary)
		if len(req.Body) != 0 {
			t.Fatalf("request body = %x, want empty", req.Body)
		}

		resp := decodeResponse(t, tc.ResponseBinary)
		if resp.Header.Status != wire.StatusSuccess {
			t.Fatalf("status = %v, want %v", resp.Header.Status, wire.StatusSuccess)
		}
		result, err := operations.UnmarshalResult(wire.OpcodeListClients, resp.Body)
		if err != nil {
			t.Fatalf("UnmarshalResult() error = %v", err)
		}
		want := operations.ListClientsResult{Clients: []string{"jim", "bob"}}
		if diff := cmp.Diff(want, result); diff != "" {
			t.Fatalf("result mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("fail_response", func(t *testing.T) {
		tc := suite.Tests[1]
		if tc.Name != "fail_response" || tc.ExpectSuccess {
			t.Fatalf("case = %q success %t, want fail_response success false", tc.Name, tc.ExpectSuccess)
		}
		if string(tc.ExpectedResponse) != `[]` {
			t.Fatalf("ExpectedResponse = %s, want []", tc.ExpectedResponse)
		}

		resp := decodeResponse(t, tc.ResponseBinary)
		if resp.Header.Status != wire.StatusPsaErrorNotSupported {
			t.Fatalf("status = %v, want %v", resp.Header.Status, wire.StatusPsaErrorNotSupported)
		}
		result, err := operations.UnmarshalResult(wire.OpcodeListClients, resp.Body)
		if err != nil {
			t.Fatalf("UnmarshalResult() error = %v", err)
		}
		if diff := cmp.Diff(operations.ListClientsResult{Clients: []string{}}, result); diff != "" {
			t.Fatalf("result mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestBuildSuite_Envelope(t *testing.T) {
	t.Parallel()

	for _, op := range Kinds() {
		suite, err := BuildSuite(op)
		if err != nil {
			t.Fatalf("BuildSuite(%v) error = %v", op, err)
		}
		for _, tc := range suite.Tests {
			req := decodeRequest(t, tc.ExpectedRequestBinary)
			want := requestHeader()
			want.BodyLen = uint32(len(req.Body))
			if diff := cmp.Diff(want, req.Header); diff != "" {
				t.Errorf("%v/%s request header mismatch (-want +got):\n%s", op, tc.Name, diff)
			}
			if len(req.Auth) != 0 {
				t.Errorf("%v/%s request auth = %x, want none", op, tc.Name, req.Auth)
			}

			resp := decodeResponse(t, tc.ResponseBinary)
			if resp.Header.Opcode != WrapperOpcode {
				t.Errorf("%v/%s response opcode = %v, want %v", op, tc.Name, resp.Header.Opcode, WrapperOpcode)
			}
		}
	}
}

func TestBuildSuite_Idempotent(t *testing.T) {
	t.Parallel()

	for _, op := range Kinds() {
		first, err := BuildSuite(op)
		if err != nil {
			t.Fatalf("BuildSuite(%v) error = %v", op, err)
		}
		second, err := BuildSuite(op)
		if err != nil {
			t.Fatalf("BuildSuite(%v) error = %v", op, err)
		}

		a, err := Marshal(first)
		if err != nil {
			t.Fatal(err)
		}
		b, err := Marshal(second)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Fatalf("%v: two builds differ:\n%s\n%s", op, a, b)
		}
	}
}

func TestBuildSuite_UniqueNames(t *testing.T) {
	t.Parallel()

	for _, op := range Kinds() {
		suite, err := BuildSuite(op)
		if err != nil {
			t.Fatalf("BuildSuite(%v) error = %v", op, err)
		}
		seen := map[string]bool{}
		for _, tc := range suite.Tests {
			if seen[tc.Name] {
				t.Fatalf("%v: duplicate case name %q", op, tc.Name)
			}
			seen[tc.Name] = true
		}
	}
}

func TestBuildSuite_Unsupported(t *testing.T) {
	t.Parallel()

	suite, err := BuildSuite(wire.OpcodePsaGenerateKey)
	if !errors.Is(err, ErrUnsupportedOpcode) {
		t.Fatalf("BuildSuite() error = %v, want %v", err, ErrUnsupportedOpcode)
	}
	if suite != nil {
		t.Fatalf("BuildSuite() suite = %+v, want nil", suite)
	}
}

func TestBuildSuite_EncodingFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		op        wire.Opcode
		scenarios []scenario
	}{
		{
			name: "operation body",
			op:   wire.OpcodeDeleteClient,
			scenarios: []scenario{
				{
					name:      "normal_response",
					operation: operations.DeleteClientOperation{Client: "jim"},
					result:    operations.DeleteClientResult{},
					status:    wire.StatusSuccess,
				},
				{
					name:      "no_client",
					operation: operations.DeleteClientOperation{},
					result:    operations.DeleteClientResult{},
					status:    wire.StatusSuccess,
				},
			},
		},
		{
			name: "mixed kinds",
			op:   wire.OpcodeListClients,
			scenarios: []scenario{
				{
					name:      "mixed",
					operation: operations.ListClientsOperation{},
					result:    operations.PingResult{},
					status:    wire.StatusSuccess,
				},
			},
		},
		{
			name: "wrong suite",
			op:   wire.OpcodeListClients,
			scenarios: []scenario{
				{
					name:      "ping",
					operation: operations.PingOperation{},
					result:    operations.PingResult{},
					status:    wire.StatusSuccess,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			suite, err := buildSuite(tt.op, tt.scenarios)
			if !errors.Is(err, ErrEncoding) {
				t.Fatalf("buildSuite() error = %v, want %v", err, ErrEncoding)
			}
			if suite != nil {
				t.Fatalf("buildSuite() returned a partial suite: %+v", suite)
			}
		})
	}
}

func TestResultToBin_ErrorDropsBody(t *testing.T) {
	t.Parallel()

	data, err := ResultToBin(operations.ListClientsResult{Clients: []string{"jim"}}, wire.StatusPsaErrorNotSupported)
	if err != nil {
		t.Fatalf("ResultToBin() error = %v", err)
	}
	resp, err := wire.UnmarshalResponse(data)
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	if len(resp.Body) != 0 {
		t.Fatalf("body = %x, want empty", resp.Body)
	}
}

func decodeRequest(t *testing.T, encoded string) *wire.Request {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	req, err := wire.UnmarshalRequest(data)
	if err != nil {
		t.Fatalf("UnmarshalRequest() error = %v", err)
	}
	return req
}

func decodeResponse(t *testing.T, encoded string) *wire.Response {
	t.Helper()
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("base64 decode: %v", err)
	}
	resp, err := wire.UnmarshalResponse(data)
	if err != nil {
		t.Fatalf("UnmarshalResponse() error = %v", err)
	}
	return resp
}
