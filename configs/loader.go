package configs

import (
	"fmt"
	"iter"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// Loader reads config roots lazily, once. Roots keep file order: earlier
// files win for single-value lookups.
type Loader struct {
	getRoots func() ([]rootInfo, error)
}

type rootInfo struct {
	value cue.Value
	path  string
}

// NewLoader makes a loader over the given cue files. A non-empty
// schemaSrc is compiled as a closed struct that every file must satisfy.
func NewLoader(filePaths []string, schemaSrc string) Loader {
	return Loader{
		getRoots: sync.OnceValues(func() ([]rootInfo, error) {
			return loadRoots(filePaths, schemaSrc)
		}),
	}
}

func loadRoots(filePaths []string, schemaSrc string) ([]rootInfo, error) {
	ctx := cuecontext.New()

	var schema cue.Value
	if schemaSrc != "" {
		schema = ctx.CompileString("close({" + schemaSrc + "})")
		if err := schema.Err(); err != nil {
			return nil, err
		}
	}

	var roots []rootInfo
	for _, filePath := range filePaths {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, err
		}
		value := ctx.CompileBytes(
			content,
			cue.Filename(filePath),
		)
		if err := value.Err(); err != nil {
			return nil, err
		}
		if schema.Exists() {
			if err := schema.Unify(value).Validate(); err != nil {
				return nil, err
			}
		}
		roots = append(roots, rootInfo{
			value: value,
			path:  filePath,
		})
	}
	return roots, nil
}

// IterCueValues yields the value at path from every root defining it,
// in file order.
func (l Loader) IterCueValues(path string) iter.Seq2[*cue.Value, error] {
	return func(yield func(*cue.Value, error) bool) {
		roots, err := l.getRoots()
		if err != nil {
			yield(nil, err)
			return
		}
		cuePath := cue.ParsePath(path)
		for _, info := range roots {
			value := info.value.LookupPath(cuePath)
			if value.Err() != nil {
				continue
			}
			if !yield(&value, nil) {
				break
			}
		}
	}
}

// AssignFirst decodes the first definition of path into target,
// ErrValueNotFound when no root defines it.
func (l Loader) AssignFirst(path string, target any) error {
	roots, err := l.getRoots()
	if err != nil {
		return err
	}
	cuePath := cue.ParsePath(path)
	for _, info := range roots {
		value := info.value.LookupPath(cuePath)
		if value.Err() != nil {
			continue
		}
		if err := value.Decode(target); err != nil {
			return fmt.Errorf("%s: %w", info.path, err)
		}
		return nil
	}
	return ErrValueNotFound
}
