// Package pipeline fans per-file work out to a bounded set of workers and
// hands the results back in input order.
package pipeline
