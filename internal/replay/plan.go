package replay

// FrameCount clamps a requested frame budget against the number of
// recorded events and returns the resulting number of frames and replay
// steps. Frame 0 is the unsorted state, so frames == steps+1.
//
// A budget larger than the event count drops to one event per step. A
// budget below 2 is raised to 2 so the animation still ends sorted. With no
// events at all there is nothing to animate and a single frame remains.
func FrameCount(budget, events int) (frames, steps int) {
	if events <= 0 {
		return 1, 0
	}
	steps = min(max(budget-1, 1), events)
	return steps + 1, steps
}

// Plan splits total events into steps chunks whose sizes differ by at most
// one. The remainder is spread over the first chunks, so the sizes always
// add up to total.
func Plan(total, steps int) []int {
	if steps <= 0 {
		return nil
	}
	base, rem := total/steps, total%steps
	chunks := make([]int, steps)
	for i := range chunks {
		chunks[i] = base
		if i < rem {
			chunks[i]++
		}
	}
	return chunks
}
