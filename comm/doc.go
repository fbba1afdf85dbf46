// Package comm defines the communicator capability that ties a group of
// cooperating participants together, and an in-process implementation that
// runs the whole group inside one OS process.
//
// What:
//
//   - Communicator: rank/size identity plus the collective operations the
//     generators and writers need (barrier, sum reductions, gathers, bcast).
//   - NewLocalGroup: one Communicator per participant, all sharing a hub.
//   - Run: drives P participant goroutines and joins their errors.
//
// Why:
//
//   - Collectives are tied to an explicitly passed handle rather than a
//     process-wide global, so several independent runs can coexist in one
//     process (and tests can spin groups up freely).
//
// Collective preconditions:
//
//   - Every collective must be entered by all members of the group, in the
//     same order. A participant that returns early while peers are inside a
//     collective leaves them blocked; this mirrors message-passing runtimes
//     and is a caller bug, not a recoverable condition.
//
// Concurrency:
//
//   - One goroutine per Communicator. Slices passed into collectives are
//     read by peers until the call returns on all members; callers must not
//     mutate them mid-collective.
package comm
