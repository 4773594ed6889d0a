package types

// ErrorType categorizes an error code for the coordinator.
type ErrorType int32

const (
	ErrorTypeUser ErrorType = iota
	ErrorTypeInternal
	ErrorTypeInsufficientResources
	ErrorTypeExternal
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUser:
		return "USER_ERROR"
	case ErrorTypeInsufficientResources:
		return "INSUFFICIENT_RESOURCES"
	case ErrorTypeExternal:
		return "EXTERNAL"
	default:
		return "INTERNAL_ERROR"
	}
}

// ErrorCode identifies one entry of the standard error-code catalogue.
type ErrorCode struct {
	Code int32     `json:"code"`
	Name string    `json:"name"`
	Type ErrorType `json:"type"`
}

// Standard error codes. User errors occupy the low range, internal errors
// start at 0x1_0000 and insufficient-resource errors at 0x2_0000.
var (
	GenericUserError  = ErrorCode{0x0000_0000, "GENERIC_USER_ERROR", ErrorTypeUser}
	UserCanceled      = ErrorCode{0x0000_0003, "USER_CANCELED", ErrorTypeUser}
	PermissionDenied  = ErrorCode{0x0000_0004, "PERMISSION_DENIED", ErrorTypeUser}
	NotFound          = ErrorCode{0x0000_0005, "NOT_FOUND", ErrorTypeUser}
	AlreadyExists     = ErrorCode{0x0000_000C, "ALREADY_EXISTS", ErrorTypeUser}
	NotSupported      = ErrorCode{0x0000_000D, "NOT_SUPPORTED", ErrorTypeUser}
	InvalidArguments  = ErrorCode{0x0000_0013, "INVALID_ARGUMENTS", ErrorTypeUser}
	AbandonedTask     = ErrorCode{0x0001_0001, "ABANDONED_TASK", ErrorTypeInternal}
	GenericInternal   = ErrorCode{0x0001_0000, "GENERIC_INTERNAL_ERROR", ErrorTypeInternal}
	ExceededTimeLimit = ErrorCode{0x0002_0003, "EXCEEDED_TIME_LIMIT", ErrorTypeInsufficientResources}
	ExceededMemory    = ErrorCode{0x0002_0007, "EXCEEDED_LOCAL_MEMORY_LIMIT", ErrorTypeInsufficientResources}
)

// ErrorLocation points at the failing position in the query text, when the
// origin carries one. Reserved; always zero for engine-raised failures.
type ErrorLocation struct {
	LineNumber   int32 `json:"lineNumber"`
	ColumnNumber int32 `json:"columnNumber"`
}

// ExecutionFailureInfo is the uniform failure descriptor delivered to the
// coordinator. Every internal failure kind translates to one of these.
type ExecutionFailureInfo struct {
	Type      string                `json:"type"`
	Message   string                `json:"message"`
	Cause     *ExecutionFailureInfo `json:"cause"`
	Stack     []string              `json:"stack"`
	ErrorCode ErrorCode             `json:"errorCode"`
}
