package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/aide/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

func init() {
	define := func(name string, l slog.Level) {
		cmds.Define("-log-"+name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+name))
	}
	define("debug", slog.LevelDebug)
	define("info", slog.LevelInfo)
	define("warn", slog.LevelWarn)
	define("error", slog.LevelError)
}

type Logger = *slog.Logger

// Logger fans out to a terminal handler and the systemd journal. The
// terminal handler is skipped when running as a systemd service, where
// stderr would be duplicated into the journal anyway.
func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	var terminalHandler slog.Handler
	if !runningAsService() {
		terminalHandler = slog.NewTextHandler(
			writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	journalHandler, err := newJournalHandler()
	if err != nil {
		if terminalHandler != nil {
			record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
			record.Add("error", err)
			_ = terminalHandler.Handle(context.Background(), record)
		}
	} else {
		handlers = append(handlers, journalHandler)
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

func newJournalHandler() (slog.Handler, error) {
	return slogjournal.NewHandler(&slogjournal.Options{
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
}

func runningAsService() bool {
	cgroup, err := cgroupOfSelf()
	if err != nil {
		return false
	}
	return strings.HasSuffix(path.Dir(cgroup), ".service")
}

// toJournalKey maps an attribute key to the journal field charset,
// uppercase alphanumerics and underscores.
func toJournalKey(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, r := range strings.ToUpper(str) {
		if r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

func cgroupOfSelf() (string, error) {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return "", err
	}
	parts := strings.SplitN(string(content), ":", 3)
	if len(parts) == 3 {
		return strings.TrimSpace(parts[2]), nil
	}
	return "", nil
}
