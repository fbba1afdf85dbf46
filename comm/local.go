// SPDX-License-Identifier: MIT
// Package: kagen/comm
//
// local.go — in-process collective runtime.
//
// Design:
//   • Every collective is built on one primitive: a generation-counted
//     allgather guarded by a condition variable. Participants deposit their
//     contribution; the last arriver snapshots the round and wakes the rest.
//   • A participant cannot start round g+1 before finishing round g, so the
//     snapshot of round g stays stable until every member has read it.
//
// Determinism:
//   • Collective results are pure functions of the deposited values and rank
//     order; goroutine scheduling cannot change them.

package comm

import (
	"fmt"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// hub is the shared state of one local group.
type hub struct {
	size int

	mu      sync.Mutex
	cond    *sync.Cond
	arrived int
	round   uint64
	slots   [][]uint64 // contributions of the round being assembled
	current [][]uint64 // snapshot of the last completed round

	collectives atomic.Uint64 // completed rounds, for diagnostics
}

// allgather deposits data for this rank and returns the per-rank
// contributions of the round, indexed by rank, on every participant.
func (h *hub) allgather(rank int, data []uint64) [][]uint64 {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.slots[rank] = data
	h.arrived++

	if h.arrived == h.size {
		// Last arriver: snapshot the round and release everyone.
		h.current = make([][]uint64, h.size)
		copy(h.current, h.slots)
		for i := range h.slots {
			h.slots[i] = nil
		}
		h.arrived = 0
		h.round++
		h.collectives.Inc()
		h.cond.Broadcast()

		return h.current
	}

	mine := h.round
	for h.round == mine {
		h.cond.Wait()
	}

	return h.current
}

// LocalComm is one participant's handle into an in-process group.
type LocalComm struct {
	rank int
	h    *hub
}

// NewLocalGroup creates an in-process group of the given size and returns
// one Communicator per rank, in rank order.
// Complexity: O(size) time and space.
func NewLocalGroup(size int) ([]Communicator, error) {
	if size <= 0 {
		return nil, fmt.Errorf("NewLocalGroup: size=%d: %w", size, ErrGroupSize)
	}

	h := &hub{size: size, slots: make([][]uint64, size)}
	h.cond = sync.NewCond(&h.mu)

	comms := make([]Communicator, size)
	for rank := 0; rank < size; rank++ {
		comms[rank] = &LocalComm{rank: rank, h: h}
	}

	return comms, nil
}

// Rank returns this participant's id.
func (c *LocalComm) Rank() int { return c.rank }

// Size returns the group size.
func (c *LocalComm) Size() int { return c.h.size }

// Collectives returns the number of completed collective rounds, a
// diagnostic for tests and the CLI summary.
func (c *LocalComm) Collectives() uint64 { return c.h.collectives.Load() }

// Barrier blocks until every participant has entered it.
func (c *LocalComm) Barrier() {
	c.h.allgather(c.rank, nil)
}

// AllreduceSum returns the group-wide sum of v on every participant.
func (c *LocalComm) AllreduceSum(v uint64) uint64 {
	parts := c.h.allgather(c.rank, []uint64{v})

	var sum uint64
	for _, p := range parts {
		sum += p[0]
	}

	return sum
}

// ReduceSum sums vals element-wise; the root receives the result.
func (c *LocalComm) ReduceSum(vals []uint64, root int) []uint64 {
	parts := c.h.allgather(c.rank, vals)
	if c.rank != root {
		return nil
	}

	out := make([]uint64, len(vals))
	for _, p := range parts {
		for i, v := range p {
			out[i] += v
		}
	}

	return out
}

// Gather collects one value per rank at the root.
func (c *LocalComm) Gather(v uint64, root int) []uint64 {
	parts := c.h.allgather(c.rank, []uint64{v})
	if c.rank != root {
		return nil
	}

	out := make([]uint64, len(parts))
	for rank, p := range parts {
		out[rank] = p[0]
	}

	return out
}

// GatherSlices collects one variable-length slice per rank at the root.
func (c *LocalComm) GatherSlices(local []uint64, root int) [][]uint64 {
	parts := c.h.allgather(c.rank, local)
	if c.rank != root {
		return nil
	}

	return parts
}

// Bcast returns the root's value on every participant.
func (c *LocalComm) Bcast(v uint64, root int) uint64 {
	parts := c.h.allgather(c.rank, []uint64{v})

	return parts[root][0]
}

// Run creates a local group of the given size and executes body once per
// participant, each on its own goroutine. It waits for every participant to
// return and reports the first non-nil error; see the package doc for
// collective preconditions.
func Run(size int, body func(Communicator) error) error {
	comms, err := NewLocalGroup(size)
	if err != nil {
		return fmt.Errorf("Run: %w", err)
	}

	g := new(errgroup.Group)
	for _, c := range comms {
		c := c
		g.Go(func() error { return body(c) })
	}

	return g.Wait()
}
