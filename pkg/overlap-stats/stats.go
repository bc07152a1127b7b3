package overlapstats

import (
	overlapbatch "aabb.theprimeagen.com/pkg/overlap-batch"
)

type Result = overlapbatch.Result
type Summary = overlapbatch.Summary

// ResultStore keeps the latest result per pair name.
type ResultStore interface {
	Record(result Result) error
	GetByName(name string) *Result
	GetAll() ([]Result, error)
	Summary() Summary
	Clear() error
	Close() error
}

func RecordAll(store ResultStore, results []Result) error {
	for _, r := range results {
		if err := store.Record(r); err != nil {
			return err
		}
	}
	return nil
}
