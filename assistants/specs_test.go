package assistants

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
)

func TestGetSpecs(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "aide.cue")
	if err := os.WriteFile(configPath, []byte(`
assistants: [
	{
		name: "local"
		kind: "command"
		command: ["cat"]
	},
	{
		name: "svc"
		kind: "openai"
		base_url: "http://127.0.0.1:1"
		model: "m"
	},
]
`), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader([]string{configPath}, "")
	}).Call(func(
		getSpecs GetSpecs,
		getAssistant GetAssistant,
		defaultName DefaultAssistantName,
	) {
		specs, err := getSpecs()
		if err != nil {
			t.Fatal(err)
		}
		// two configured plus the built-in command spec
		if len(specs) != 3 {
			t.Fatalf("got %v", len(specs))
		}
		if specs[0].Name != "local" {
			t.Fatalf("got %q", specs[0].Name)
		}

		if defaultName != "local" {
			t.Fatalf("got %q", defaultName)
		}

		assistant, err := getAssistant("local")
		if err != nil {
			t.Fatal(err)
		}
		if assistant.Name() != "local" {
			t.Fatalf("got %q", assistant.Name())
		}

		if _, err := getAssistant("nope"); err == nil {
			t.Fatal("expected error")
		} else if !strings.Contains(err.Error(), `no assistant named "nope"`) {
			t.Fatalf("got %v", err)
		}
	})
}

func TestDefaultAssistantNameFromConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "aide.cue")
	if err := os.WriteFile(configPath, []byte(`assistant: "svc"`+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(func() configs.Loader {
		return configs.NewLoader([]string{configPath}, "")
	}).Call(func(
		defaultName DefaultAssistantName,
	) {
		if defaultName != "svc" {
			t.Fatalf("got %q", defaultName)
		}
	})
}

func TestDefaultAssistantNameFallback(t *testing.T) {
	testScope(t).Call(func(
		defaultName DefaultAssistantName,
	) {
		if defaultName != "command" {
			t.Fatalf("got %q", defaultName)
		}
	})
}

func TestBuiltinCommandSpecEnv(t *testing.T) {
	t.Setenv("AIDE_ASSISTANT_COMMAND", "cat -u")

	testScope(t).Call(func(
		getSpecs GetSpecs,
	) {
		specs, err := getSpecs()
		if err != nil {
			t.Fatal(err)
		}
		last := specs[len(specs)-1]
		if last.Name != "command" {
			t.Fatalf("got %q", last.Name)
		}
		if len(last.Command) != 2 || last.Command[0] != "cat" || last.Command[1] != "-u" {
			t.Fatalf("got %v", last.Command)
		}
	})
}
