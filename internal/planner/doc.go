// Package planner turns a target course and its outstanding prerequisites into a
// term-by-term schedule.
//
// A planning run has four phases that share one data model:
//
//  1. BuildGraph turns the course list and the edge list into prerequisite and
//     dependent adjacency.
//  2. TopoOrder, EarliestOffsets, LatestOffsets and DownstreamCounts analyze the
//     graph. Earliest is the longest path from a root; latest is propagated back
//     from the target, which is pinned to its own earliest offset.
//  3. The allocator walks term offsets forward and greedily fills each term with
//     the highest scoring eligible courses that fit the per-term limits.
//  4. The assembler anchors the target offset on the requested term and year,
//     drops empty terms and explains what could not be placed.
//
// Plan never returns an error. Cycles, unknown targets and capacity problems are
// reported as blockers inside the Result so callers always get a well formed plan.
// A run holds no state outside the call and is deterministic for a given input order.
package planner
