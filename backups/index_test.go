package backups

import (
	"encoding/json"
	"testing"
)

func TestIndexWireFormat(t *testing.T) {
	index := NewIndex()
	index.Add(&Entry{
		ID:        "id1",
		FilePath:  "/tmp/a.txt",
		Timestamp: "2026-01-02T03:04:05.000000006Z",
		Operation: "refactor",
	})
	index.Add(&Entry{
		ID:        "id2",
		FilePath:  "/tmp/b.txt",
		Timestamp: "2026-01-02T03:04:06.000000007Z",
		Operation: "docstrings",
	})

	content, err := json.Marshal(index)
	if err != nil {
		t.Fatal(err)
	}

	var wire struct {
		Files map[string][]struct {
			ID        string `json:"id"`
			Timestamp string `json:"timestamp"`
			Operation string `json:"operation"`
		} `json:"files"`
		History []struct {
			ID        string `json:"id"`
			FilePath  string `json:"filePath"`
			Timestamp string `json:"timestamp"`
			Operation string `json:"operation"`
		} `json:"history"`
	}
	if err := json.Unmarshal(content, &wire); err != nil {
		t.Fatal(err)
	}
	if len(wire.Files) != 2 {
		t.Fatalf("got %v", len(wire.Files))
	}
	if got := wire.Files["/tmp/a.txt"]; len(got) != 1 || got[0].ID != "id1" {
		t.Fatalf("got %+v", got)
	}
	if len(wire.History) != 2 {
		t.Fatalf("got %v", len(wire.History))
	}
	// most recent first
	if wire.History[0].ID != "id2" || wire.History[0].FilePath != "/tmp/b.txt" {
		t.Fatalf("got %+v", wire.History[0])
	}

	loaded := NewIndex()
	if err := json.Unmarshal(content, loaded); err != nil {
		t.Fatal(err)
	}
	if got := loaded.File("/tmp/a.txt"); len(got) != 1 || got[0].ID != "id1" || got[0].Operation != "refactor" {
		t.Fatalf("got %+v", got)
	}
	history := loaded.History()
	if len(history) != 2 || history[0].ID != "id2" {
		t.Fatalf("got %+v", history)
	}
}

func TestIndexArenaSharing(t *testing.T) {
	index := NewIndex()
	for i := range 3 {
		index.Add(&Entry{
			ID:       string(rune('a' + i)),
			FilePath: "/tmp/x.txt",
		})
	}

	// trimming the per-file list keeps entries alive while the history still
	// references them
	evicted := index.TrimFile("/tmp/x.txt", 2)
	if len(evicted) != 1 || evicted[0].ID != "a" {
		t.Fatalf("got %+v", evicted)
	}
	history := index.History()
	if len(history) != 3 {
		t.Fatalf("got %v", len(history))
	}

	// once the history drops it too, the entry leaves the arena
	index.TrimHistory(2)
	if len(index.entries) != 2 {
		t.Fatalf("got %v", len(index.entries))
	}
}

func TestIndexTrimOrder(t *testing.T) {
	index := NewIndex()
	for i := range 5 {
		index.Add(&Entry{
			ID:       string(rune('a' + i)),
			FilePath: "/tmp/x.txt",
		})
	}

	// eviction removes the oldest entries
	evicted := index.TrimFile("/tmp/x.txt", 3)
	if len(evicted) != 2 {
		t.Fatalf("got %v", len(evicted))
	}
	if evicted[0].ID != "b" || evicted[1].ID != "a" {
		t.Fatalf("got %+v", evicted)
	}
	remaining := index.File("/tmp/x.txt")
	if len(remaining) != 3 || remaining[0].ID != "e" || remaining[2].ID != "c" {
		t.Fatalf("got %+v", remaining)
	}
}
