package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// CatalogAdapter loads message catalogs keyed by language.
type CatalogAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FileAdapter loads catalogs from a single file on disk.
type FileAdapter struct {
	parser Parser
	path   string
}

// NewFileAdapter returns nil if parser is nil or path is empty.
func NewFileAdapter(parser Parser, path string) *FileAdapter {
	if parser == nil || path == "" {
		return nil
	}
	return &FileAdapter{parser: parser, path: path}
}

func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil {
		return nil, ErrNilParser
	}
	if a.path == "" {
		return nil, ErrEmptyPath
	}

	done := make(chan struct{})
	var content []byte
	var readErr error

	go func() {
		content, readErr = os.ReadFile(a.path)
		close(done)
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Join(ErrLoadingFileCancelled, ctx.Err())
	case <-done:
	}

	if readErr != nil {
		return nil, errors.Join(ErrFailedToReadFile, readErr)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyCatalogFile, a.path)
	}

	catalogs, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return catalogs, nil
}

// FSAdapter loads every supported file of a directory in an fs.FS, such as
// an embed.FS. Files are merged per language in directory order; nested
// message groups are merged key by key, later files winning on conflicts.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

// NewFSAdapter returns nil if parser or fsys is nil or dir is empty.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil || dir == "" {
		return nil
	}
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCatalogsCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadEmbeddedDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}

		filePath := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, filePath)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}
		if len(content) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCatalogFile, filePath)
		}

		catalogs, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, errors.Join(ErrFailedToParseFile, fmt.Errorf("%s: %w", filePath, err))
		}

		for lang, messages := range catalogs {
			if all[lang] == nil {
				all[lang] = make(map[string]any)
			}
			mergeMessages(all[lang], messages)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalogFiles, a.dir)
	}
	return all, nil
}

// mergeMessages copies src into dst, descending into groups present in both.
func mergeMessages(dst, src map[string]any) {
	for key, val := range src {
		srcGroup, ok := val.(map[string]any)
		if !ok {
			dst[key] = val
			continue
		}
		dstGroup, ok := dst[key].(map[string]any)
		if !ok {
			dstGroup = make(map[string]any, len(srcGroup))
			dst[key] = dstGroup
		}
		mergeMessages(dstGroup, srcGroup)
	}
}
