package assistants

import (
	"context"
	"fmt"
)

type Assistant interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

type GetAssistant func(name string) (Assistant, error)

func (Module) GetAssistant(
	getSpecs GetSpecs,
	newCommand NewCommandAssistant,
	newOpenAI NewOpenAIAssistant,
) GetAssistant {
	return func(name string) (Assistant, error) {
		specs, err := getSpecs()
		if err != nil {
			return nil, err
		}
		for _, spec := range specs {
			if spec.Name != name {
				continue
			}
			switch spec.Kind {
			case "command":
				return newCommand(spec), nil
			case "openai":
				return newOpenAI(spec), nil
			default:
				return nil, fmt.Errorf("assistant %q: unknown kind %q", name, spec.Kind)
			}
		}
		return nil, fmt.Errorf("no assistant named %q", name)
	}
}
