package assistants

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reusee/aide/logs"
	"github.com/reusee/dscope"
)

type CommandAssistant struct {
	spec Spec

	Logger dscope.Inject[logs.Logger]
}

var _ Assistant = new(CommandAssistant)

func (c *CommandAssistant) Name() string {
	return c.spec.Name
}

func (c *CommandAssistant) Complete(ctx context.Context, prompt string) (string, error) {
	if len(c.spec.Command) == 0 {
		return "", fmt.Errorf("assistant %q has no command configured", c.spec.Name)
	}

	c.Logger().InfoContext(ctx, "running assistant command",
		"argv", c.spec.Command,
	)

	cmd := exec.CommandContext(ctx, c.spec.Command[0], c.spec.Command[1:]...)
	cmd.Stdin = strings.NewReader(prompt)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("%s: %w: %s", c.spec.Command[0], err, msg)
		}
		return "", fmt.Errorf("%s: %w", c.spec.Command[0], err)
	}
	return stdout.String(), nil
}

type NewCommandAssistant func(spec Spec) *CommandAssistant

func (Module) NewCommandAssistant(
	inject dscope.InjectStruct,
) NewCommandAssistant {
	return func(spec Spec) *CommandAssistant {
		ret := &CommandAssistant{
			spec: spec,
		}
		inject(&ret)
		return ret
	}
}
