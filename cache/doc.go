// Package cache provides a small, thread-safe, bounded LRU intended as an
// explicit compilation arena: a caller that builds many validation fields
// sharing paths can hand one LRU to the constructors so identical paths
// compile once.
//
// The engine never creates one of these on its own. Earlier designs kept a
// process-wide accessor cache and it grew without bound in long-lived
// servers compiling many distinct schemas; caching is therefore opt-in,
// bounded, and scoped to whatever lifetime the caller gives the instance.
package cache
