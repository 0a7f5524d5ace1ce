package y2024

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
)

// d09Free marks an unoccupied block.
const d09Free = -1

// d09Extent is one run of blocks on the dense disk map: a file (with
// its id) or free space.
type d09Extent struct {
	id   int // d09Free for gaps
	at   int // first block position
	size int
}

// Day09 — Disk Fragmenter. The input is a dense disk map alternating
// file and gap lengths. Part A compacts single blocks from the end into
// the leftmost gaps; part B moves whole files into the leftmost gap
// that fits. Both answers are position-weighted checksums.
func Day09(lines []string) (puzzle.Solution, error) {
	if len(lines) == 0 || lines[0] == "" {
		return puzzle.Solution{}, fmt.Errorf("%w: empty disk map", puzzle.ErrBadInput)
	}

	extents, err := d09Parse(lines[0])
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{
		PartA: d09CompactBlocks(extents),
		PartB: d09CompactFiles(extents),
	}, nil
}

// d09Parse expands the dense map into extents with absolute positions.
func d09Parse(dense string) ([]d09Extent, error) {
	var out []d09Extent
	pos := 0
	for i := 0; i < len(dense); i++ {
		b := dense[i]
		if b < '0' || b > '9' {
			return nil, fmt.Errorf("%w: disk map byte %q", puzzle.ErrBadInput, b)
		}
		size := int(b - '0')
		id := d09Free
		if i%2 == 0 {
			id = i / 2
		}
		if size > 0 {
			out = append(out, d09Extent{id: id, at: pos, size: size})
		}
		pos += size
	}

	return out, nil
}

// d09CompactBlocks moves file blocks one at a time from the disk end
// into the leftmost free block and returns the resulting checksum.
func d09CompactBlocks(extents []d09Extent) int {
	// Flatten to per-block ids.
	total := 0
	for _, e := range extents {
		total = e.at + e.size
	}
	disk := make([]int, total)
	for i := range disk {
		disk[i] = d09Free
	}
	for _, e := range extents {
		for i := 0; i < e.size; i++ {
			disk[e.at+i] = e.id
		}
	}

	lo, hi := 0, len(disk)-1
	for {
		for lo < len(disk) && disk[lo] != d09Free {
			lo++
		}
		for hi >= 0 && disk[hi] == d09Free {
			hi--
		}
		if lo >= hi {
			break
		}
		disk[lo], disk[hi] = disk[hi], d09Free
	}

	checksum := 0
	for pos, id := range disk {
		if id != d09Free {
			checksum += pos * id
		}
	}

	return checksum
}

// d09CompactFiles moves each whole file, highest id first, into the
// leftmost gap that fits and lies left of the file.
func d09CompactFiles(extents []d09Extent) int {
	var files, gaps []d09Extent
	for _, e := range extents {
		if e.id == d09Free {
			gaps = append(gaps, e)
		} else {
			files = append(files, e)
		}
	}

	checksum := 0
	for i := len(files) - 1; i >= 0; i-- {
		f := files[i]
		for gi := range gaps {
			gap := &gaps[gi]
			if gap.at >= f.at {
				break
			}
			if gap.size < f.size {
				continue
			}
			f.at = gap.at
			gap.at += f.size
			gap.size -= f.size
			break
		}
		for k := 0; k < f.size; k++ {
			checksum += (f.at + k) * f.id
		}
	}

	return checksum
}
