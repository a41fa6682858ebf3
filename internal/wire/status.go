package wire

import "fmt"

// ResponseStatus is the status code carried in a response header. Codes
// from 1000 upwards mirror PSA Crypto error codes (1000 - psa_status_t).
type ResponseStatus uint16

const (
	StatusSuccess                         ResponseStatus = 0
	StatusWrongProviderID                 ResponseStatus = 1
	StatusContentTypeNotSupported         ResponseStatus = 2
	StatusAcceptTypeNotSupported          ResponseStatus = 3
	StatusWireProtocolVersionNotSupported ResponseStatus = 4
	StatusProviderNotRegistered           ResponseStatus = 5
	StatusProviderDoesNotExist            ResponseStatus = 6
	StatusDeserializingBodyFailed         ResponseStatus = 7
	StatusSerializingBodyFailed           ResponseStatus = 8
	StatusOpcodeDoesNotExist              ResponseStatus = 9
	StatusResponseTooLarge                ResponseStatus = 10
	StatusAuthenticationError             ResponseStatus = 11
	StatusAuthenticatorDoesNotExist       ResponseStatus = 12
	StatusAuthenticatorNotRegistered      ResponseStatus = 13
	StatusKeyInfoManagerError             ResponseStatus = 14
	StatusConnectionError                 ResponseStatus = 15
	StatusInvalidEncoding                 ResponseStatus = 16
	StatusInvalidHeader                   ResponseStatus = 17
	StatusWrongProviderUUID               ResponseStatus = 18
	StatusNotAuthenticated                ResponseStatus = 19
	StatusBodySizeExceedsLimit            ResponseStatus = 20
	StatusAdminOperation                  ResponseStatus = 21
	StatusDeprecatedPrimitive             ResponseStatus = 22

	StatusPsaErrorGenericError         ResponseStatus = 1132
	StatusPsaErrorNotPermitted         ResponseStatus = 1133
	StatusPsaErrorNotSupported         ResponseStatus = 1134
	StatusPsaErrorInvalidArgument      ResponseStatus = 1135
	StatusPsaErrorInvalidHandle        ResponseStatus = 1136
	StatusPsaErrorBadState             ResponseStatus = 1137
	StatusPsaErrorBufferTooSmall       ResponseStatus = 1138
	StatusPsaErrorAlreadyExists        ResponseStatus = 1139
	StatusPsaErrorDoesNotExist         ResponseStatus = 1140
	StatusPsaErrorInsufficientMemory   ResponseStatus = 1141
	StatusPsaErrorInsufficientStorage  ResponseStatus = 1142
	StatusPsaErrorInsufficientData     ResponseStatus = 1143
	StatusPsaErrorCommunicationFailure ResponseStatus = 1145
	StatusPsaErrorStorageFailure       ResponseStatus = 1146
	StatusPsaErrorHardwareFailure      ResponseStatus = 1147
	StatusPsaErrorInsufficientEntropy  ResponseStatus = 1148
	StatusPsaErrorInvalidSignature     ResponseStatus = 1149
	StatusPsaErrorInvalidPadding       ResponseStatus = 1150
	StatusPsaErrorCorruptionDetected   ResponseStatus = 1151
	StatusPsaErrorDataCorrupt          ResponseStatus = 1152
	StatusPsaErrorDataInvalid          ResponseStatus = 1153
)

var statusNames = map[ResponseStatus]string{
	StatusSuccess:                         "Success",
	StatusWrongProviderID:                 "WrongProviderID",
	StatusContentTypeNotSupported:         "ContentTypeNotSupported",
	StatusAcceptTypeNotSupported:          "AcceptTypeNotSupported",
	StatusWireProtocolVersionNotSupported: "WireProtocolVersionNotSupported",
	StatusProviderNotRegistered:           "ProviderNotRegistered",
	StatusProviderDoesNotExist:            "ProviderDoesNotExist",
	StatusDeserializingBodyFailed:         "DeserializingBodyFailed",
	StatusSerializingBodyFailed:           "SerializingBodyFailed",
	StatusOpcodeDoesNotExist:              "OpcodeDoesNotExist",
	StatusResponseTooLarge:                "ResponseTooLarge",
	StatusAuthenticationError:             "AuthenticationError",
	StatusAuthenticatorDoesNotExist:       "AuthenticatorDoesNotExist",
	StatusAuthenticatorNotRegistered:      "AuthenticatorNotRegistered",
	StatusKeyInfoManagerError:             "KeyInfoManagerError",
	StatusConnectionError:                 "ConnectionError",
	StatusInvalidEncoding:                 "InvalidEncoding",
	StatusInvalidHeader:                   "InvalidHeader",
	StatusWrongProviderUUID:               "WrongProviderUuid",
	StatusNotAuthenticated:                "NotAuthenticated",
	StatusBodySizeExceedsLimit:            "BodySizeExceedsLimit",
	StatusAdminOperation:                  "AdminOperation",
	StatusDeprecatedPrimitive:             "DeprecatedPrimitive",
	StatusPsaErrorGenericError:            "PsaErrorGenericError",
	StatusPsaErrorNotPermitted:            "PsaErrorNotPermitted",
	StatusPsaErrorNotSupported:            "PsaErrorNotSupported",
	StatusPsaErrorInvalidArgument:         "PsaErrorInvalidArgument",
	StatusPsaErrorInvalidHandle:           "PsaErrorInvalidHandle",
	StatusPsaErrorBadState:                "PsaErrorBadState",
	StatusPsaErrorBufferTooSmall:          "PsaErrorBufferTooSmall",
	StatusPsaErrorAlreadyExists:           "PsaErrorAlreadyExists",
	StatusPsaErrorDoesNotExist:            "PsaErrorDoesNotExist",
	StatusPsaErrorInsufficientMemory:      "PsaErrorInsufficientMemory",
	StatusPsaErrorInsufficientStorage:     "PsaErrorInsufficientStorage",
	StatusPsaErrorInsufficientData:        "PsaErrorInsufficientData",
	StatusPsaErrorCommunicationFailure:    "PsaErrorCommunicationFailure",
	StatusPsaErrorStorageFailure:          "PsaErrorStorageFailure",
	StatusPsaErrorHardwareFailure:         "PsaErrorHardwareFailure",
	StatusPsaErrorInsufficientEntropy:     "PsaErrorInsufficientEntropy",
	StatusPsaErrorInvalidSignature:        "PsaErrorInvalidSignature",
	StatusPsaErrorInvalidPadding:          "PsaErrorInvalidPadding",
	StatusPsaErrorCorruptionDetected:      "PsaErrorCorruptionDetected",
	StatusPsaErrorDataCorrupt:             "PsaErrorDataCorrupt",
	StatusPsaErrorDataInvalid:             "PsaErrorDataInvalid",
}

func (s ResponseStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("ResponseStatus(%d)", uint16(s))
}

func (s ResponseStatus) IsSuccess() bool {
	return s == StatusSuccess
}

// IsPsaError reports whether s is in the PSA Crypto error range.
func (s ResponseStatus) IsPsaError() bool {
	return s >= 1000
}
