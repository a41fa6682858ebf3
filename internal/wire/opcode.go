package wire

import (
	"fmt"
	"strconv"

	"github.com/jn9e9/parsec-client-go/internal/strcase"
)

// Opcode identifies the operation a request invokes.
type Opcode uint32

const (
	OpcodePing                  Opcode = 0x0001
	OpcodePsaGenerateKey        Opcode = 0x0002
	OpcodePsaDestroyKey         Opcode = 0x0003
	OpcodePsaSignHash           Opcode = 0x0004
	OpcodePsaVerifyHash         Opcode = 0x0005
	OpcodePsaImportKey          Opcode = 0x0006
	OpcodePsaExportPublicKey    Opcode = 0x0007
	OpcodeListProviders         Opcode = 0x0008
	OpcodeListOpcodes           Opcode = 0x0009
	OpcodePsaAsymmetricEncrypt  Opcode = 0x000A
	OpcodePsaAsymmetricDecrypt  Opcode = 0x000B
	OpcodePsaExportKey          Opcode = 0x000C
	OpcodePsaGenerateRandom     Opcode = 0x000D
	OpcodeListAuthenticators    Opcode = 0x000E
	OpcodePsaHashCompute        Opcode = 0x000F
	OpcodePsaHashCompare        Opcode = 0x0010
	OpcodePsaAeadEncrypt        Opcode = 0x0011
	OpcodePsaAeadDecrypt        Opcode = 0x0012
	OpcodePsaRawKeyAgreement    Opcode = 0x0013
	OpcodePsaCipherEncrypt      Opcode = 0x0014
	OpcodePsaCipherDecrypt      Opcode = 0x0015
	OpcodePsaMacCompute         Opcode = 0x0016
	OpcodePsaMacVerify          Opcode = 0x0017
	OpcodePsaSignMessage        Opcode = 0x0018
	OpcodePsaVerifyMessage      Opcode = 0x0019
	OpcodeListKeys              Opcode = 0x001A
	OpcodeListClients           Opcode = 0x001B
	OpcodeDeleteClient          Opcode = 0x001C
	OpcodeAttestKey             Opcode = 0x001E
	OpcodePrepareKeyAttestation Opcode = 0x001F
	OpcodeCanDoCrypto           Opcode = 0x0020
)

var opcodeNames = map[Opcode]string{
	OpcodePing:                  "Ping",
	OpcodePsaGenerateKey:        "PsaGenerateKey",
	OpcodePsaDestroyKey:         "PsaDestroyKey",
	OpcodePsaSignHash:           "PsaSignHash",
	OpcodePsaVerifyHash:         "PsaVerifyHash",
	OpcodePsaImportKey:          "PsaImportKey",
	OpcodePsaExportPublicKey:    "PsaExportPublicKey",
	OpcodeListProviders:         "ListProviders",
	OpcodeListOpcodes:           "ListOpcodes",
	OpcodePsaAsymmetricEncrypt:  "PsaAsymmetricEncrypt",
	OpcodePsaAsymmetricDecrypt:  "PsaAsymmetricDecrypt",
	OpcodePsaExportKey:          "PsaExportKey",
	OpcodePsaGenerateRandom:     "PsaGenerateRandom",
	OpcodeListAuthenticators:    "ListAuthenticators",
	OpcodePsaHashCompute:        "PsaHashCompute",
	OpcodePsaHashCompare:        "PsaHashCompare",
	OpcodePsaAeadEncrypt:        "PsaAeadEncrypt",
	OpcodePsaAeadDecrypt:        "PsaAeadDecrypt",
	OpcodePsaRawKeyAgreement:    "PsaRawKeyAgreement",
	OpcodePsaCipherEncrypt:      "PsaCipherEncrypt",
	OpcodePsaCipherDecrypt:      "PsaCipherDecrypt",
	OpcodePsaMacCompute:         "PsaMacCompute",
	OpcodePsaMacVerify:          "PsaMacVerify",
	OpcodePsaSignMessage:        "PsaSignMessage",
	OpcodePsaVerifyMessage:      "PsaVerifyMessage",
	OpcodeListKeys:              "ListKeys",
	OpcodeListClients:           "ListClients",
	OpcodeDeleteClient:          "DeleteClient",
	OpcodeAttestKey:             "AttestKey",
	OpcodePrepareKeyAttestation: "PrepareKeyAttestation",
	OpcodeCanDoCrypto:           "CanDoCrypto",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%#x)", uint32(op))
}

// IsValid reports whether op is part of the Parsec opcode table.
func (op Opcode) IsValid() bool {
	_, ok := opcodeNames[op]
	return ok
}

// ParseOpcode accepts the CamelCase name ("ListClients"), the snake_case
// name ("list_clients") or the decimal/hex number ("27", "0x1b").
func ParseOpcode(s string) (Opcode, error) {
	for op, name := range opcodeNames {
		if s == name || s == strcase.ToSnakeCase(name) {
			return op, nil
		}
	}
	if n, err := strconv.ParseUint(s, 0, 32); err == nil {
		if op := Opcode(n); op.IsValid() {
			return op, nil
		}
	}
	return 0, fmt.Errorf("unknown opcode %q", s)
}
