// Package schedule implements the task plan derivation.
package schedule

import (
	"errors"
	"fmt"
	"io"
	"sort"
)

var (
	// ErrBadComponentOrder indicates an order that is not a permutation
	// of the component indices.
	ErrBadComponentOrder = errors.New("schedule: order is not a permutation of component indices")

	// ErrBadPartition indicates components that do not partition the
	// task range [0, n).
	ErrBadPartition = errors.New("schedule: components do not partition the task range")
)

// TaskPlan is the vertex-level rendering of a component-level order.
type TaskPlan struct {
	// VertexOrder lists every task: each component's tasks sorted
	// ascending, components in execution order.
	VertexOrder []int

	// Groups holds the same tasks split per phase, one group per
	// component in execution order.
	Groups [][]int

	// Phases maps each task to its phase number: the position of its
	// component in the execution order.
	Phases []int
}

// Plan derives the task plan from a component execution order and the
// component partition. order must be a permutation of [0, len(components));
// the components must partition [0, n) where n is their total size.
func Plan(order []int, components [][]int) (*TaskPlan, error) {
	// 1. The order must touch every component exactly once.
	k := len(components)
	if len(order) != k {
		return nil, fmt.Errorf("%w: %d entries for %d components",
			ErrBadComponentOrder, len(order), k)
	}
	seen := make([]bool, k)
	for _, comp := range order {
		if comp < 0 || comp >= k || seen[comp] {
			return nil, fmt.Errorf("%w: bad entry %d", ErrBadComponentOrder, comp)
		}
		seen[comp] = true
	}

	// 2. The components must partition [0, n).
	n := 0
	for _, comp := range components {
		n += len(comp)
	}
	claimed := make([]bool, n)
	for _, comp := range components {
		for _, v := range comp {
			if v < 0 || v >= n || claimed[v] {
				return nil, fmt.Errorf("%w: bad task %d", ErrBadPartition, v)
			}
			claimed[v] = true
		}
	}

	// 3. Concatenate sorted copies in execution order; number the phases.
	plan := &TaskPlan{
		VertexOrder: make([]int, 0, n),
		Groups:      make([][]int, 0, k),
		Phases:      make([]int, n),
	}
	for phase, comp := range order {
		group := append([]int(nil), components[comp]...)
		sort.Ints(group)
		plan.Groups = append(plan.Groups, group)
		plan.VertexOrder = append(plan.VertexOrder, group...)
		for _, v := range group {
			plan.Phases[v] = phase
		}
	}

	return plan, nil
}

// PhaseCount returns the number of phases (one per component).
func (p *TaskPlan) PhaseCount() int { return len(p.Groups) }

// TaskCount returns the number of tasks across all phases.
func (p *TaskPlan) TaskCount() int { return len(p.Phases) }

// WriteText renders the phase-by-phase listing.
func (p *TaskPlan) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "Task execution plan: %d phases, %d tasks\n",
		p.PhaseCount(), p.TaskCount()); err != nil {
		return err
	}
	for phase, group := range p.Groups {
		if _, err := fmt.Fprintf(w, "  Phase %d: tasks %v\n", phase, group); err != nil {
			return err
		}
	}

	return nil
}
