// Package idlekit is a toolkit for idle-session tracking in Go applications:
// inactivity detection with warning and idle callbacks, activity-event
// sources with throttling, and the supporting utilities a session shell
// needs around them (network-aware retries, bounded bulk execution, platform
// capability detection). The library implements modern Go patterns including
// generics for type safety, functional options for configuration, and
// interface-based design for flexibility and testability.
//
// # Package Organization
//
// Core packages implement the tracking domain:
//
//	github.com/dmitrymomot/idlekit/core/activity  - Activity-event model and subscription sources
//	github.com/dmitrymomot/idlekit/core/config    - Type-safe environment variable loading
//	github.com/dmitrymomot/idlekit/core/idletrack - Inactivity state machine with warning/idle/active callbacks
//
// Utility packages are standalone and usable independently:
//
//	github.com/dmitrymomot/idlekit/pkg/bulk       - Concurrency-limited batch execution with per-task outcomes
//	github.com/dmitrymomot/idlekit/pkg/capability - Platform/version capability rules (web push, install, badging)
//	github.com/dmitrymomot/idlekit/pkg/netstatus  - Injectable network-status provider with subscriptions
//	github.com/dmitrymomot/idlekit/pkg/retry      - Exponential backoff with jitter and offline fail-fast
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/dmitrymomot/idlekit/core/idletrack
//	go doc -all github.com/dmitrymomot/idlekit/pkg/retry
package idlekit
