// Package bulk runs a batch of independent tasks with a concurrency cap and
// aggregates per-task outcomes, in the spirit of settling a list of promises
// rather than failing the whole batch on the first error.
//
// # Usage
//
//	tasks := make([]bulk.Task[ApprovalResult], len(requests))
//	for i, req := range requests {
//	    tasks[i] = func(ctx context.Context) (ApprovalResult, error) {
//	        return approve(ctx, req)
//	    }
//	}
//
//	summary := bulk.Run(ctx, tasks, bulk.WithConcurrency(5))
//	for _, r := range summary.Rejected() {
//	    log.Printf("task %d failed: %v", r.Index, r.Err)
//	}
//
// # Semantics
//
//   - At most the configured number of tasks run simultaneously
//     (default 5).
//   - Results keep input order; Result.Index always matches the position of
//     the task in the input slice.
//   - One task's failure never cancels its siblings.
//   - Context cancellation rejects tasks not yet started with the context
//     error; running tasks receive the same context and decide for
//     themselves.
//
// Run blocks until every started task has returned. For fire-and-forget of a
// single operation, a plain goroutine is simpler.
package bulk
