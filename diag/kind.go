package diag

// Kind classifies an argument error.
type Kind uint8

const (
	// KindUnknownArgument reports an argument that is not recognized at all.
	KindUnknownArgument Kind = iota
	// KindNoMoreArguments reports that another argument was expected but the
	// argument list ended.
	KindNoMoreArguments
	// KindFailedToParse reports that a string could not be decoded into the
	// target type.
	KindFailedToParse
	// KindNoValue reports a key-value pair without a value.
	KindNoValue
	// KindInvalidValue reports a well-formed value that is not acceptable.
	KindInvalidValue
	// KindTooManyArguments reports an argument given more times than allowed.
	KindTooManyArguments
	// KindIo wraps an I/O failure from a byte-stream source.
	KindIo
	// KindNoLastArgument marks caller misuse: a cur-style accessor was used
	// before any argument was consumed. Not a parsing condition.
	KindNoLastArgument
)

func (k Kind) String() string {
	switch k {
	case KindUnknownArgument:
		return "UnknownArgument"
	case KindNoMoreArguments:
		return "NoMoreArguments"
	case KindFailedToParse:
		return "FailedToParse"
	case KindNoValue:
		return "NoValue"
	case KindInvalidValue:
		return "InvalidValue"
	case KindTooManyArguments:
		return "TooManyArguments"
	case KindIo:
		return "Io"
	case KindNoLastArgument:
		return "NoLastArgument"
	}
	return "Unknown"
}

// Message is the default headline used when an error carries no explicit
// inline or long message.
func (k Kind) Message() string {
	switch k {
	case KindUnknownArgument:
		return "Unknown argument."
	case KindNoMoreArguments:
		return "No more arguments."
	case KindFailedToParse:
		return "Failed to parse."
	case KindNoValue:
		return "No value."
	case KindInvalidValue:
		return "Invalid value."
	case KindTooManyArguments:
		return "Too many arguments."
	case KindIo:
		return "IO error."
	case KindNoLastArgument:
		return "There was no last argument when it was expected. " +
			"If you see this error, it is propably a bug."
	}
	return "Unknown error."
}
