package ruleset

import "errors"

var (
	ErrNilParser     = errors.New("rule set parser is nil")
	ErrEmptyPath     = errors.New("rule set path is empty")
	ErrEmptyDocument = errors.New("rule set document is empty")

	// ErrInvalidDefinition is joined with the field level failures reported
	// by the structural checks.
	ErrInvalidDefinition = errors.New("invalid rule definition")

	// Callback registry
	ErrEmptyCallbackName         = errors.New("callback name is empty")
	ErrNilCallback               = errors.New("callback function is nil")
	ErrCallbackAlreadyRegistered = errors.New("callback already registered")
	ErrUnknownCallback           = errors.New("unknown callback")

	// Parsing
	ErrParsingCancelled  = errors.New("rule set parsing cancelled")
	ErrFailedToParseJSON = errors.New("failed to parse JSON rule set")
	ErrFailedToParseYAML = errors.New("failed to parse YAML rule set")
	ErrUnsupportedFormat = errors.New("unsupported rule set format")

	// File operations
	ErrLoadingCancelled = errors.New("loading rule set cancelled")
	ErrFailedToReadFile = errors.New("failed to read rule set file")
)
