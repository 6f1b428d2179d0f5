// Package session is the single source of truth for who is logged in.
//
// A Store owns one State record (user, loading flag, last error). It is
// mutated only through SetUser, Hydrate and the settlement of the two
// asynchronous actions, RegisterUser and LoginUser. Each action checks its
// required fields, raises the loading flag, waits out a simulated network
// latency and then settles exactly once, either fulfilled (user replaced) or
// rejected (error recorded, user untouched).
//
// # Ordering
//
// Actions are not serialized or cancelled. With OrderingLastWins (the
// default) whichever settlement is applied last determines the state, even
// if it belongs to an older dispatch. OrderingLatestDispatch keeps a
// generation counter per action kind and drops settlements that were
// overtaken by a newer dispatch of the same kind; such results are still
// delivered to their caller, flagged Stale.
//
// # Subscriptions
//
// Subscribe registers a listener that is called with a snapshot after every
// mutation. The persistence layer uses it for write-through.
package session
