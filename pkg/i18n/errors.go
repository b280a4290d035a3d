package i18n

import "errors"

var (
	ErrNilAdapter        = errors.New("catalog adapter is nil")
	ErrNilParser         = errors.New("catalog parser is nil")
	ErrEmptyPath         = errors.New("catalog path is empty")
	ErrEmptyLanguageCode = errors.New("empty language code found")
	ErrNilCatalog        = errors.New("nil catalog for language")
	ErrEmptyCatalogFile  = errors.New("catalog file is empty")
	ErrNoCatalogFiles    = errors.New("no catalog files found")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")
	ErrInvalidYAMLCatalog   = errors.New("invalid YAML catalog structure")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading catalog file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read catalog file")
	ErrFailedToParseFile    = errors.New("failed to parse catalog file")

	// Embedded filesystem operations
	ErrLoadingCatalogsCancelled      = errors.New("loading catalogs canceled before starting")
	ErrFailedToReadEmbeddedDirectory = errors.New("failed to read embedded directory")
)
