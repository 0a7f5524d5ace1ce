package y2022

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/puzzle"
	"github.com/katalvlaran/advent/scan"
)

// Disk geometry of the puzzle statement.
const (
	d07DiskSize   = 70_000_000
	d07NeededFree = 30_000_000
	d07SmallDir   = 100_000
)

// Day07 — No Space Left On Device. The shell transcript is replayed
// with a directory-size stack: a size is emitted every time a directory
// is left, the remainder flushes bottom-up at end of input. Part A sums
// the directories up to 100k; part B picks the smallest directory whose
// removal frees enough disk.
func Day07(lines []string) (puzzle.Solution, error) {
	sizes, err := d07DirSizes(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	small := 0
	for _, size := range sizes {
		if size <= d07SmallDir {
			small += size
		}
	}

	// The root directory flushes last.
	root := sizes[len(sizes)-1]
	toFree := d07NeededFree - (d07DiskSize - root)
	best := -1
	for _, size := range sizes {
		if size >= toFree && (best < 0 || size < best) {
			best = size
		}
	}
	if best < 0 {
		return puzzle.Solution{}, fmt.Errorf("%w: no directory frees %d", puzzle.ErrNoAnswer, toFree)
	}

	return puzzle.Solution{PartA: small, PartB: best}, nil
}

// d07DirSizes replays the transcript and returns every directory's
// total size, children before parents.
func d07DirSizes(lines []string) ([]int, error) {
	var sizes []int
	var stack []int

	pop := func() {
		size := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1] += size
		}
		sizes = append(sizes, size)
	}

	for _, ln := range lines {
		switch {
		case ln == "" || ln == "$ ls" || strings.HasPrefix(ln, "dir "):
		case ln == "$ cd ..":
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: cd above root", puzzle.ErrBadInput)
			}
			pop()
		case strings.HasPrefix(ln, "$ cd "):
			stack = append(stack, 0)
		default:
			nums := scan.Numbers(ln)
			if len(nums) != 1 || !strings.HasPrefix(ln, fmt.Sprint(nums[0])) {
				return nil, fmt.Errorf("%w: transcript line %q", puzzle.ErrBadInput, ln)
			}
			if len(stack) == 0 {
				return nil, fmt.Errorf("%w: file outside a directory", puzzle.ErrBadInput)
			}
			stack[len(stack)-1] += nums[0]
		}
	}
	for len(stack) > 0 {
		pop()
	}
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: empty transcript", puzzle.ErrBadInput)
	}

	return sizes, nil
}
