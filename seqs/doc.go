/*
Package seqs provides lazy, pull-based sequence combinators.

Everything is built on [Sequence], a single-pass cursor: Next pulls one element
or reports exhaustion, Traits describes what is known about the remaining
elements and Stop releases the sequence. Nothing is produced until a consumer
pulls, and every combinator owns the sequences it wraps.

  - **Sources**: [FromSlice], [Of], [FromSeq] (any iter.Seq), [Unfold], [Iterate],
    [Indices], [Range], [Repeat].
  - **Grouping**: [Aggregate], [AggregateN], [AggregateAdjacent], [GroupRuns], [Window].
  - **Multiple sources**: [Interleave] driven by a [Selector] ([RoundRobin], [TakeMin],
    [TakeMax]), [Merge], [MergeToList], [Zip], [ZipWithIndex], [Concat].
  - **Flow Control**: [TakeWhile], [TakeUntil], [SkipWhile], [SkipUntil], [Take], [Skip].
  - **Transform**: [Map], [Filter], [Reject], [Peek].
  - **Sinks**: [Collect], [First], [Last], [Count], [Any], [All], [Reduce], [ForEach],
    [Sum], [Min], [Max].
  - **Observability**: [Trace] (zap) and [Metered] (OpenTelemetry).

Sequences interoperate with range-over-func through [Values]:

	for batch := range seqs.Values(seqs.AggregateN(seqs.FromSeq(input), 100)) {
		insert(batch)
	}

# Errors

Constructors panic with an error wrapping [ErrInvalidArgument] when an argument
is nil, empty or out of range, before any element is pulled. Panics raised by
user functions (predicates, step functions, comparators, merge functions)
propagate to the caller of Next unchanged; the combinator must not be used
afterwards.

# Concurrency

None. Combinators never split work and never produce in the background. A
sequence must be driven by one goroutine at a time.
*/
package seqs
