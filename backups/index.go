package backups

import (
	"encoding/json"
	"slices"
)

// Index catalogues all backup entries. One arena holds every entry by id;
// the per-file lists and the global history are orderings over arena ids,
// most recent first. The two orderings evict independently, so an entry may
// be referenced by one and not the other; it leaves the arena only when
// neither references it.
type Index struct {
	entries map[string]*Entry
	files   map[string][]string
	history []string
}

func NewIndex() *Index {
	return &Index{
		entries: make(map[string]*Entry),
		files:   make(map[string][]string),
	}
}

// Add prepends the entry to its per-file list and to the global history.
func (i *Index) Add(entry *Entry) {
	i.entries[entry.ID] = entry
	i.files[entry.FilePath] = append([]string{entry.ID}, i.files[entry.FilePath]...)
	i.history = append([]string{entry.ID}, i.history...)
}

// File returns the entries for path, most recent first.
func (i *Index) File(path string) []*Entry {
	return i.resolve(i.files[path])
}

// History returns the global history, most recent first.
func (i *Index) History() []*Entry {
	return i.resolve(i.history)
}

func (i *Index) resolve(ids []string) (ret []*Entry) {
	for _, id := range ids {
		if entry, ok := i.entries[id]; ok {
			ret = append(ret, entry)
		}
	}
	return
}

// TrimFile drops the oldest per-file entries beyond max and returns them;
// the caller owns deleting their blobs.
func (i *Index) TrimFile(path string, max int) (evicted []*Entry) {
	ids := i.files[path]
	if len(ids) <= max {
		return nil
	}
	drop := ids[max:]
	i.files[path] = slices.Clip(ids[:max])
	for _, id := range drop {
		evicted = append(evicted, i.entries[id])
		i.maybeRelease(id)
	}
	return
}

// TrimHistory drops the oldest history entries beyond max. History eviction
// alone never deletes blobs.
func (i *Index) TrimHistory(max int) {
	if len(i.history) <= max {
		return
	}
	drop := i.history[max:]
	i.history = slices.Clip(i.history[:max])
	for _, id := range drop {
		i.maybeRelease(id)
	}
}

func (i *Index) maybeRelease(id string) {
	entry, ok := i.entries[id]
	if !ok {
		return
	}
	if slices.Contains(i.history, id) {
		return
	}
	if slices.Contains(i.files[entry.FilePath], id) {
		return
	}
	delete(i.entries, id)
}

// wire format: per-file entries omit the path (it is the map key), history
// entries carry it.

type fileEntryJSON struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	Operation string `json:"operation"`
}

type historyEntryJSON struct {
	ID        string `json:"id"`
	FilePath  string `json:"filePath"`
	Timestamp string `json:"timestamp"`
	Operation string `json:"operation"`
}

type indexJSON struct {
	Files   map[string][]fileEntryJSON `json:"files"`
	History []historyEntryJSON         `json:"history"`
}

func (i *Index) MarshalJSON() ([]byte, error) {
	out := indexJSON{
		Files:   make(map[string][]fileEntryJSON),
		History: make([]historyEntryJSON, 0, len(i.history)),
	}
	for path, ids := range i.files {
		list := make([]fileEntryJSON, 0, len(ids))
		for _, entry := range i.resolve(ids) {
			list = append(list, fileEntryJSON{
				ID:        entry.ID,
				Timestamp: entry.Timestamp,
				Operation: entry.Operation,
			})
		}
		out.Files[path] = list
	}
	for _, entry := range i.resolve(i.history) {
		out.History = append(out.History, historyEntryJSON{
			ID:        entry.ID,
			FilePath:  entry.FilePath,
			Timestamp: entry.Timestamp,
			Operation: entry.Operation,
		})
	}
	return json.Marshal(out)
}

func (i *Index) UnmarshalJSON(data []byte) error {
	var in indexJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	i.entries = make(map[string]*Entry)
	i.files = make(map[string][]string)
	i.history = nil

	for path, list := range in.Files {
		ids := make([]string, 0, len(list))
		for _, e := range list {
			if _, ok := i.entries[e.ID]; !ok {
				i.entries[e.ID] = &Entry{
					ID:        e.ID,
					FilePath:  path,
					Timestamp: e.Timestamp,
					Operation: e.Operation,
				}
			}
			ids = append(ids, e.ID)
		}
		i.files[path] = ids
	}

	for _, e := range in.History {
		if _, ok := i.entries[e.ID]; !ok {
			i.entries[e.ID] = &Entry{
				ID:        e.ID,
				FilePath:  e.FilePath,
				Timestamp: e.Timestamp,
				Operation: e.Operation,
			}
		}
		i.history = append(i.history, e.ID)
	}

	return nil
}
