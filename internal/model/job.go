package model

import "fmt"

// Job is one synthesis scheduled by a batch run. Index is the job's position
// in the full, unsharded batch.
type Job struct {
	Index   int
	Order   int
	Method  Method
	Variant Variant
}

func (j Job) String() string {
	return fmt.Sprintf("#%d order %d %s %s", j.Index, j.Order, j.Method, j.Variant)
}
