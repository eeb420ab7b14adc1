package assistants

import (
	"os"
	"strings"
	"sync"

	"github.com/reusee/aide/cmds"
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/logs"
	"github.com/reusee/aide/vars"
)

type Spec struct {
	Name        string   `json:"name"`
	Kind        string   `json:"kind"` // "command" or "openai"
	Command     []string `json:"command"`
	BaseURL     string   `json:"base_url"`
	Model       string   `json:"model"`
	APIKey      string   `json:"api_key"`
	APIKeyEnv   string   `json:"api_key_env"`
	Temperature *float32 `json:"temperature"`
}

type GetSpecs func() ([]Spec, error)

func (Module) GetSpecs(
	loader configs.Loader,
) GetSpecs {
	return sync.OnceValues(func() (ret []Spec, err error) {
		for value, err := range loader.IterCueValues("assistants") {
			if err != nil {
				return nil, err
			}
			var specs []Spec
			if err := value.Decode(&specs); err != nil {
				return nil, err
			}
			ret = append(ret, specs...)
		}
		// the built-in command assistant is always available as a last resort
		ret = append(ret, builtinCommandSpec())
		return
	})
}

func builtinCommandSpec() Spec {
	argv := []string{"ai"}
	if env := os.Getenv("AIDE_ASSISTANT_COMMAND"); env != "" {
		argv = strings.Fields(env)
	}
	return Spec{
		Name:    "command",
		Kind:    "command",
		Command: argv,
	}
}

var assistantFlag = cmds.Var[string]("-assistant")

type DefaultAssistantName string

var _ configs.Configurable = DefaultAssistantName("")

func (d DefaultAssistantName) ConfigExpr() string {
	return "assistant"
}

func (Module) DefaultAssistantName(
	loader configs.Loader,
	getSpecs GetSpecs,
	logger logs.Logger,
) (ret DefaultAssistantName) {
	defer func() {
		logger.Info("default assistant", "name", ret)
	}()
	if name := vars.FirstNonZero(
		DefaultAssistantName(*assistantFlag),
		configs.First[DefaultAssistantName](loader, "assistant"),
	); name != "" {
		return name
	}
	specs, err := getSpecs()
	if err != nil || len(specs) == 0 {
		return "command"
	}
	return DefaultAssistantName(specs[0].Name)
}
