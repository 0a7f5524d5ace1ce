package y2022

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/graphs"
	"github.com/katalvlaran/advent/puzzle"
)

const (
	d21Root  = "root"
	d21Human = "humn"
)

// d21Job is one monkey's job: a literal number, or a binary operation
// over two other monkeys.
type d21Job struct {
	num   int
	op    byte // 0 when the job is a literal
	left  string
	right string
}

// Day21 — Monkey Math. Each monkey yells a number or an operation over
// two other monkeys. Part A evaluates the monkey root. In part B root
// becomes an equality check and humn is ours to choose: the answer is
// the number to yell so both of root's operands match.
func Day21(lines []string) (puzzle.Solution, error) {
	jobs, err := d21Jobs(lines)
	if err != nil {
		return puzzle.Solution{}, err
	}

	values, err := d21Eval(jobs)
	if err != nil {
		return puzzle.Solution{}, err
	}
	root, ok := values[d21Root]
	if !ok {
		return puzzle.Solution{}, fmt.Errorf("%w: no monkey %q", puzzle.ErrBadInput, d21Root)
	}

	yell, err := d21Yell(jobs, values)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Solution{PartA: root, PartB: yell}, nil
}

func d21Jobs(lines []string) (map[string]d21Job, error) {
	jobs := make(map[string]d21Job, len(lines))
	for _, line := range lines {
		name, rest, ok := strings.Cut(line, ": ")
		if !ok {
			return nil, fmt.Errorf("%w: monkey %q", puzzle.ErrBadInput, line)
		}

		if num, err := strconv.Atoi(rest); err == nil {
			jobs[name] = d21Job{num: num}
			continue
		}

		parts := strings.Fields(rest)
		if len(parts) != 3 || len(parts[1]) != 1 || !strings.Contains("+-*/", parts[1]) {
			return nil, fmt.Errorf("%w: job %q", puzzle.ErrBadInput, line)
		}
		jobs[name] = d21Job{op: parts[1][0], left: parts[0], right: parts[2]}
	}

	return jobs, nil
}

// d21Eval computes every monkey's number in dependency order.
func d21Eval(jobs map[string]d21Job) (map[string]int, error) {
	order, err := graphs.TopoSort(jobs, func(job d21Job) []string {
		if job.op == 0 {
			return nil
		}

		return []string{job.left, job.right}
	})
	if err != nil {
		return nil, fmt.Errorf("monkey jobs: %w", err)
	}

	values := make(map[string]int, len(order))
	for _, name := range order {
		job, ok := jobs[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown monkey %q", puzzle.ErrBadInput, name)
		}
		if job.op == 0 {
			values[name] = job.num
			continue
		}

		l, r := values[job.left], values[job.right]
		switch job.op {
		case '+':
			values[name] = l + r
		case '-':
			values[name] = l - r
		case '*':
			values[name] = l * r
		case '/':
			if r == 0 {
				return nil, fmt.Errorf("%w: monkey %q divides by zero", puzzle.ErrBadInput, name)
			}
			values[name] = l / r
		}
	}

	return values, nil
}

// d21Yell solves for the human's number. Walking down from root, each
// operation is inverted against the value of the branch that does not
// contain humn, until only humn remains.
func d21Yell(jobs map[string]d21Job, values map[string]int) (int, error) {
	onPath := map[string]bool{d21Human: true}
	var marks func(name string) bool
	marks = func(name string) bool {
		if onPath[name] {
			return true
		}
		job := jobs[name]
		if job.op != 0 && (marks(job.left) || marks(job.right)) {
			onPath[name] = true
		}

		return onPath[name]
	}
	if !marks(d21Root) {
		return 0, fmt.Errorf("%w: no monkey %q", puzzle.ErrBadInput, d21Human)
	}

	job := jobs[d21Root]
	cur, want := job.left, values[job.right]
	if onPath[job.right] {
		cur, want = job.right, values[job.left]
	}

	for cur != d21Human {
		job := jobs[cur]
		if onPath[job.left] {
			r := values[job.right]
			switch job.op {
			case '+':
				want -= r
			case '-':
				want += r
			case '*':
				want /= r
			case '/':
				want *= r
			}
			cur = job.left
			continue
		}

		l := values[job.left]
		switch job.op {
		case '+':
			want -= l
		case '-':
			want = l - want
		case '*':
			want /= l
		case '/':
			want = l / want
		}
		cur = job.right
	}

	return want, nil
}
