// Package rate implements the fixed-window login attempt budget consulted before
// password verification.
//
// # Window semantics
//
// A client identifier owns at most one record {count, resetAt}. The first recorded
// attempt opens a window of Config.Window; later attempts inside the window
// increment the count. A record whose resetAt has passed is treated as absent and
// replaced by the next attempt instead of being deleted.
//
// Two backends share the [Limiter] contract:
//   - [MemoryLimiter]: process-local map, the default. Each instance enforces its
//     own budget.
//   - [RedisLimiter]: INCR + PEXPIRE on first hit, shared by every instance that
//     points at the same Redis.
//
// # What this package must NOT do
//
//   - Decide what counts as an attempt (the Engine records failures only).
//   - Log or store anything other than the client identifier and a counter.
//   - Be imported outside the boardAuth module.
package rate
