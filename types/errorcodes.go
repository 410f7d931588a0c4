package types

// PlatformErrorCode is the status code carried in every Platform
// response envelope. ErrorCodeSuccess is the only code under which the
// Response payload is valid. The vendor defines several thousand codes;
// the constants below cover the ones the client inspects plus the
// common failure modes callers are likely to branch on.
type PlatformErrorCode int32

const (
	ErrorCodeNone                             PlatformErrorCode = 0
	ErrorCodeSuccess                          PlatformErrorCode = 1
	ErrorCodeTransportException               PlatformErrorCode = 2
	ErrorCodeUnhandledException               PlatformErrorCode = 3
	ErrorCodeNotImplemented                   PlatformErrorCode = 4
	ErrorCodeSystemDisabled                   PlatformErrorCode = 5
	ErrorCodeParameterParseFailure            PlatformErrorCode = 7
	ErrorCodeParameterInvalidRange            PlatformErrorCode = 8
	ErrorCodeBadRequest                       PlatformErrorCode = 9
	ErrorCodeAuthenticationInvalid            PlatformErrorCode = 10
	ErrorCodeDataNotFound                     PlatformErrorCode = 11
	ErrorCodeInsufficientPrivileges           PlatformErrorCode = 12
	ErrorCodeDuplicate                        PlatformErrorCode = 13
	ErrorCodeValidationError                  PlatformErrorCode = 15
	ErrorCodeInvalidParameters                PlatformErrorCode = 18
	ErrorCodeParameterNotFound                PlatformErrorCode = 19
	ErrorCodeNotFound                         PlatformErrorCode = 21
	ErrorCodeUserBanned                       PlatformErrorCode = 24
	ErrorCodeInvalidPostBody                  PlatformErrorCode = 25
	ErrorCodeMissingPostBody                  PlatformErrorCode = 26
	ErrorCodeExternalServiceTimeout           PlatformErrorCode = 27
	ErrorCodeJsonDeserializationError         PlatformErrorCode = 30
	ErrorCodeThrottleLimitExceeded            PlatformErrorCode = 31
	ErrorCodeThrottleLimitExceededMinutes     PlatformErrorCode = 35
	ErrorCodeThrottleLimitExceededMomentarily PlatformErrorCode = 36
	ErrorCodeThrottleLimitExceededSeconds     PlatformErrorCode = 37
	ErrorCodeWebAuthRequired                  PlatformErrorCode = 99
	ErrorCodeDestinyAccountNotFound           PlatformErrorCode = 1601
	ErrorCodeApiInvalidOrExpiredKey           PlatformErrorCode = 2101
	ErrorCodeApiKeyMissingFromRequest         PlatformErrorCode = 2102
)
