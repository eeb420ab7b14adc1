package actions

import (
	"context"

	"github.com/reusee/aide/assistants"
	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/prompts"
)

// Complete runs the prompt through the selected assistant. An assistant
// failure is recovered: the returned response is then the remediation
// message and failed is true, so callers print it instead of writing files
// from it.
type Complete func(ctx context.Context, operation string, prompt string) (response string, failed bool)

func (Module) Complete(
	defaultName assistants.DefaultAssistantName,
	getAssistant assistants.GetAssistant,
	logger logs.Logger,
) Complete {
	return func(ctx context.Context, operation string, prompt string) (string, bool) {
		assistant, err := getAssistant(string(defaultName))
		if err != nil {
			logger.Error("no usable assistant",
				"name", string(defaultName),
				"error", err,
			)
			return prompts.Remediation(operation, string(defaultName), err), true
		}

		response, err := assistant.Complete(ctx, prompt)
		if err != nil {
			logger.Error("assistant failed",
				"assistant", assistant.Name(),
				"error", err,
			)
			return prompts.Remediation(operation, assistant.Name(), err), true
		}
		return response, false
	}
}
