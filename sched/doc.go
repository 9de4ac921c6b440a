// Package sched runs named units of analysis work on background goroutines
// and delivers their results through a single-consumer polling inbox.
//
// Model:
//
//   - Submit never blocks the caller. Each task gets its own goroutine,
//     admitted through a weighted semaphore so at most MaxConcurrent
//     executions run at once (fairness comes from the semaphore's FIFO
//     waiters).
//   - Every execution acquires the network's shared read lock for its whole
//     duration via core.Network.View, so a task never observes a topology
//     mid-mutation and a reset never discards state a task still reads.
//   - Results arrive as Messages on an ordered FIFO inbox. Poll drains
//     everything currently queued without blocking; an empty drain is a
//     normal outcome, not an error. Messages of one task preserve program
//     order (a graph annotation enqueues before the final report); messages
//     of different tasks may interleave arbitrarily.
//   - A task always runs to completion or failure: there is no mid-flight
//     cancellation. An error (or a panic) inside the work function is
//     caught at the goroutine boundary, logged, and turned into a Failure
//     message; it never terminates the scheduler or other in-flight tasks.
//
// Task lifecycle: Pending → Running → Completed | Failed. Wait blocks
// until a terminal state, which tests and synchronous callers use to
// rendezvous with background completion.
package sched
