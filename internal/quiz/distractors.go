package quiz

import "math/rand/v2"

var distractorOffsets = [...]int{-2, -1, 1, 2}

// NumberOptions returns the correct count plus two distinct positive
// distractors within two of it, in random order.
func NumberOptions(correct int) []int {
	if correct < 1 {
		correct = 1
	}
	options := []int{correct}
	used := map[int]bool{correct: true}

	for len(options) < 3 {
		candidate := correct + distractorOffsets[rand.IntN(len(distractorOffsets))]
		if candidate <= 0 || used[candidate] {
			continue
		}
		used[candidate] = true
		options = append(options, candidate)
	}

	rand.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}
