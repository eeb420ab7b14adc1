package debugs

import (
	"errors"
	"testing"

	"go.starlark.net/starlark"
)

func TestStarlarkValue(t *testing.T) {
	type step struct {
		Name   string
		Status int
		hidden bool
	}

	dictOf := func(pairs ...starlark.Value) *starlark.Dict {
		d := starlark.NewDict(len(pairs) / 2)
		for i := 0; i < len(pairs); i += 2 {
			d.SetKey(pairs[i], pairs[i+1])
		}
		return d
	}

	cases := []struct {
		name string
		in   any
		want starlark.Value
	}{
		{"nil", nil, starlark.None},
		{"bool", true, starlark.True},
		{"bytes", []byte("blob"), starlark.Bytes("blob")},
		{"error", errors.New("step exploded"), starlark.String("step exploded")},
		{"string", "main.py", starlark.String("main.py")},
		{"int", 42, starlark.MakeInt(42)},
		{"int64", int64(-7), starlark.MakeInt64(-7)},
		{"uint32", uint32(7), starlark.MakeUint(7)},
		{"float", 0.5, starlark.Float(0.5)},
		{"strings", []string{"a", "b"}, starlark.NewList([]starlark.Value{
			starlark.String("a"), starlark.String("b"),
		})},
		{"any slice", []any{1, "a"}, starlark.NewList([]starlark.Value{
			starlark.MakeInt(1), starlark.String("a"),
		})},
		{"map", map[string]int{"n": 3}, dictOf(
			starlark.String("n"), starlark.MakeInt(3),
		)},
		{"struct", step{Name: "explain", Status: 2, hidden: true}, dictOf(
			starlark.String("Name"), starlark.String("explain"),
			starlark.String("Status"), starlark.MakeInt(2),
		)},
		{"pointer", &step{Name: "explain"}, dictOf(
			starlark.String("Name"), starlark.String("explain"),
			starlark.String("Status"), starlark.MakeInt(0),
		)},
		{"nil pointer", (*step)(nil), starlark.None},
		{"nested", map[string]any{
			"steps": []any{step{Name: "a"}},
		}, dictOf(
			starlark.String("steps"), starlark.NewList([]starlark.Value{
				dictOf(
					starlark.String("Name"), starlark.String("a"),
					starlark.String("Status"), starlark.MakeInt(0),
				),
			}),
		)},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := starlarkValue(c.in)
			equal, err := starlark.Equal(got, c.want)
			if err != nil {
				t.Fatal(err)
			}
			if !equal {
				t.Fatalf("got %v, want %v", got, c.want)
			}
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic")
			}
		}()
		starlarkValue(make(chan int))
	})
}
