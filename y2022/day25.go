package y2022

import (
	"fmt"

	"github.com/katalvlaran/advent/puzzle"
)

// Day25 — Full of Hot Air. Fuel amounts come in SNAFU, a base-5
// notation whose digits run from -2 ('=') to 2. The answer is the sum
// of all amounts, written back in SNAFU. There is no second puzzle on
// the last day.
func Day25(lines []string) (puzzle.Solution, error) {
	sum := 0
	for _, line := range lines {
		n, err := d25Decode(line)
		if err != nil {
			return puzzle.Solution{}, err
		}
		sum += n
	}

	return puzzle.Solution{TextA: d25Encode(sum)}, nil
}

func d25Decode(line string) (int, error) {
	if line == "" {
		return 0, fmt.Errorf("%w: empty fuel amount", puzzle.ErrBadInput)
	}

	n := 0
	for i := 0; i < len(line); i++ {
		n *= 5
		switch line[i] {
		case '0', '1', '2':
			n += int(line[i] - '0')
		case '-':
			n--
		case '=':
			n -= 2
		default:
			return 0, fmt.Errorf("%w: digit %q in %q", puzzle.ErrBadInput, line[i], line)
		}
	}

	return n, nil
}

// d25Encode writes n in SNAFU: base 5 with a carry whenever a digit
// exceeds 2.
func d25Encode(n int) string {
	if n == 0 {
		return "0"
	}

	var digits []byte
	for n > 0 {
		d := n % 5
		n /= 5
		if d >= 3 {
			d -= 5
			n++
		}
		switch d {
		case -2:
			digits = append(digits, '=')
		case -1:
			digits = append(digits, '-')
		default:
			digits = append(digits, byte('0'+d))
		}
	}

	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		digits[i], digits[j] = digits[j], digits[i]
	}

	return string(digits)
}
