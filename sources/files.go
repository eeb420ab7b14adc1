package sources

import (
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/dscope"
)

type Walker struct {
	FileNameOK dscope.Inject[FileNameOK]
	NameMatch  dscope.Inject[NameMatch]
}

type FileInfo struct {
	Path     string
	Content  []byte
	MimeType string
}

func (w Walker) IterFiles(root string) iter.Seq2[FileInfo, error] {
	return func(yield func(FileInfo, error) bool) {
		queue := []string{root}

		handlePath := func(path string) (stop bool, err error) {
			baseName := filepath.Base(path)

			// ignore hidden files, but not a root given explicitly
			if path != root && strings.HasPrefix(baseName, ".") {
				return false, nil
			}

			file, err := os.Open(path)
			if err != nil {
				return false, err
			}
			defer file.Close()

			stat, err := file.Stat()
			if err != nil {
				return false, err
			}

			if stat.IsDir() {
				// queue dir files
				entries, err := file.ReadDir(0)
				if err != nil {
					return false, err
				}
				for _, entry := range entries {
					queue = append(queue, filepath.Join(path, entry.Name()))
				}

			} else {
				// plain file

				// filter
				if !w.FileNameOK()(path) {
					return false, nil
				}
				if !w.NameMatch()(path) {
					return false, nil
				}

				content, err := io.ReadAll(file)
				if err != nil {
					return false, err
				}

				// mime type
				mtype := mimetype.Detect(content)
				isText := false
				for t := mtype; t != nil; t = t.Parent() {
					if t.Is("text/plain") {
						isText = true
						break
					}
				}

				if !isText {
					return false, nil
				}

				if !yield(FileInfo{
					Path:     path,
					Content:  content,
					MimeType: mtype.String(),
				}, nil) {
					return true, nil
				}

			}

			return false, nil
		}

		for len(queue) > 0 {
			path := queue[0]
			queue = queue[1:]
			if stop, err := handlePath(path); err != nil {
				if !yield(FileInfo{}, err) {
					return
				}
			} else if stop {
				break
			}
		}

	}
}

func (Module) Walker(
	inject dscope.InjectStruct,
) (ret Walker) {
	inject(&ret)
	return
}
