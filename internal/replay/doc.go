// Package replay turns per-row sorting traces into an animation.
//
// An [Engine] owns the live permutation of every row. [Engine.Sort] runs a
// sorting algorithm on a copy of each row and records its trace;
// [Engine.Replay] then walks all traces in lock-step, applying an equal
// share of events per step and materializing one frame after every step:
//
//	StateIdle --Sort--> StateSorted --Replay--> StateReplaying --> StateDone
//
// The first frame is the state before sorting and the last one is fully
// sorted. Rows may be processed by several goroutines, but every frame is
// taken only after all rows finished the same step.
package replay
