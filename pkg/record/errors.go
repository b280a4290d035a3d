package record

import "errors"

var (
	ErrInvalidJSON       = errors.New("invalid JSON document")
	ErrInvalidYAML       = errors.New("invalid YAML document")
	ErrNotObject         = errors.New("record must be an object")
	ErrPathNotFound      = errors.New("path not found in document")
	ErrEmptyPath         = errors.New("record path is empty")
	ErrUnsupportedFormat = errors.New("unsupported record format")
	ErrFailedToReadFile  = errors.New("failed to read record file")
)
