package overlapstats

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync"

	overlapbatch "aabb.theprimeagen.com/pkg/overlap-batch"
)

type JSONMemoryFile struct {
	Results []Result `json:"results"`
}

var _ ResultStore = (*JSONMemory)(nil)

// JSONMemory holds results in memory and rewrites the whole file on every
// Record.
type JSONMemory struct {
	file    string
	results []Result
	mutex   sync.Mutex
	logger  *slog.Logger
}

func newJSONMemory(path string, results []Result) *JSONMemory {
	return &JSONMemory{
		file:    path,
		results: results,
		logger:  slog.Default().With("area", "JSONMemory"),
	}
}

func NewJSONMemoryAndClear(path string) (*JSONMemory, error) {
	j := newJSONMemory(path, []Result{})
	if err := j.flush(); err != nil {
		return nil, err
	}
	return j, nil
}

// JSONMemoryFrom picks up an existing file, or starts empty when there is
// none.
func JSONMemoryFrom(path string) (*JSONMemory, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewJSONMemoryAndClear(path)
	}
	if err != nil {
		return nil, fmt.Errorf("json store: read %s: %w", path, err)
	}

	var data JSONMemoryFile
	if err := json.Unmarshal(contents, &data); err != nil {
		return nil, fmt.Errorf("json store: decode %s: %w", path, err)
	}
	if data.Results == nil {
		data.Results = []Result{}
	}

	return newJSONMemory(path, data.Results), nil
}

// flush expects the mutex to be held or the store to be unshared.
func (j *JSONMemory) flush() error {
	bytes, err := json.MarshalIndent(JSONMemoryFile{Results: j.results}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(j.file, bytes, 0644)
}

func (j *JSONMemory) Record(result Result) error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	update := false
	for i, r := range j.results {
		if r.Name == result.Name {
			j.results[i] = result
			update = true
		}
	}

	if !update {
		j.results = append(j.results, result)
	}

	if err := j.flush(); err != nil {
		j.logger.Error("unable to write json file", "file", j.file, "error", err)
		return err
	}
	return nil
}

func (j *JSONMemory) Iter() func(yield func(i int, r Result) bool) {
	return func(yield func(i int, r Result) bool) {
		j.mutex.Lock()
		defer j.mutex.Unlock()
		for i, r := range j.results {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (j *JSONMemory) GetByName(name string) *Result {
	for _, r := range j.Iter() {
		if r.Name == name {
			return &r
		}
	}
	return nil
}

func (j *JSONMemory) GetAll() ([]Result, error) {
	out := []Result{}
	for _, r := range j.Iter() {
		out = append(out, r)
	}
	return out, nil
}

func (j *JSONMemory) Summary() Summary {
	all, _ := j.GetAll()
	return overlapbatch.Summarize(all)
}

// Clear drops every result and truncates the file.
func (j *JSONMemory) Clear() error {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	j.results = []Result{}
	return j.flush()
}

func (j *JSONMemory) Close() error {
	return nil
}
