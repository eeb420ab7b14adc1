package sources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/reusee/aide/aideconfigs"
	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/logs"
)

var debug = cmds.Switch("-debug")

// RenderTarget reads the target path and renders its text content for
// prompting. A file target is rendered whole. A directory target is walked
// and rendered file by file until the token budget runs out.
type RenderTarget func(target string) (string, error)

func (Module) RenderTarget(
	walker Walker,
	maxTokens aideconfigs.MaxTokens,
	countTokens BPETokenCounter,
	logger logs.Logger,
) RenderTarget {
	return func(target string) (string, error) {
		stat, err := os.Stat(target)
		if err != nil {
			return "", err
		}

		if !stat.IsDir() {
			content, err := os.ReadFile(target)
			if err != nil {
				return "", err
			}
			return renderFile(target, content), nil
		}

		var sb strings.Builder
		totalTokens := 0
		for info, err := range walker.IterFiles(target) {
			if err != nil {
				return "", err
			}

			path := info.Path
			if rel, err := filepath.Rel(target, info.Path); err == nil {
				path = rel
			}
			text := renderFile(path, info.Content)

			numTokens, err := countTokens(text)
			if err != nil {
				return "", err
			}
			if totalTokens+numTokens > int(maxTokens) {
				logger.Info("file skipped due to token limit",
					"at file", info.Path,
					"file tokens", numTokens,
					"total tokens", totalTokens,
					"max tokens", int(maxTokens),
				)
				break
			}
			totalTokens += numTokens

			if *debug {
				logger.Info("file",
					"path", info.Path,
					"tokens", numTokens,
					"mime type", info.MimeType,
				)
			}

			sb.WriteString(text)
		}

		logger.Info("target rendered",
			"target", target,
			"max tokens", int(maxTokens),
			"total tokens", totalTokens,
		)

		return sb.String(), nil
	}
}

func renderFile(path string, content []byte) string {
	text := "==== file: " + path + " ====\n" + string(content)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text
}
