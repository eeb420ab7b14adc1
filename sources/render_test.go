package sources

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/aide/aideconfigs"
	"github.com/reusee/aide/configs"
	"github.com/reusee/aide/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(nil, "")
		},
	)
}

func TestRenderDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("hello, world!\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".secret"), []byte("hidden\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "blob.bin"), []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}, 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "sub", "b.txt"), []byte("nested\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Call(func(
		render RenderTarget,
	) {
		text, err := render(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(text, "==== file: a.txt ====") {
			t.Fatalf("got %q", text)
		}
		if !strings.Contains(text, "hello, world!") {
			t.Fatalf("got %q", text)
		}
		if !strings.Contains(text, "==== file: "+filepath.Join("sub", "b.txt")+" ====") {
			t.Fatalf("got %q", text)
		}
		if strings.Contains(text, ".secret") {
			t.Fatalf("got %q", text)
		}
		if strings.Contains(text, "blob.bin") {
			t.Fatalf("got %q", text)
		}
	})
}

func TestRenderExplicitHiddenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".notes")
	if err := os.WriteFile(path, []byte("keep me"), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Call(func(
		render RenderTarget,
	) {
		text, err := render(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(text, "keep me") {
			t.Fatalf("got %q", text)
		}
		if !strings.HasSuffix(text, "\n") {
			t.Fatalf("got %q", text)
		}
	})
}

func TestRenderNameMatch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "foo.py"), []byte("python content\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "bar.txt"), []byte("text content\n"), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Fork(
		func() Match {
			return `\.py$`
		},
	).Call(func(
		render RenderTarget,
	) {
		text, err := render(dir)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(text, "python content") {
			t.Fatalf("got %q", text)
		}
		if strings.Contains(text, "text content") {
			t.Fatalf("got %q", text)
		}
	})
}

func TestRenderTokenBudget(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte(strings.Repeat("long content ", 32)), 0644); err != nil {
		t.Fatal(err)
	}

	testScope(t).Fork(
		func() aideconfigs.MaxTokens {
			return 1
		},
	).Call(func(
		render RenderTarget,
	) {
		text, err := render(dir)
		if err != nil {
			t.Fatal(err)
		}
		if text != "" {
			t.Fatalf("got %q", text)
		}
	})
}

func TestRenderMissingTarget(t *testing.T) {
	testScope(t).Call(func(
		render RenderTarget,
	) {
		_, err := render(filepath.Join(t.TempDir(), "not-exists"))
		if err == nil {
			t.Fatal("expected error")
		}
	})
}
