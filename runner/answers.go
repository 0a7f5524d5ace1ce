package runner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/advent/puzzle"
)

// ErrBadAnswers indicates answers.yaml does not have the
// year -> day -> [partA, partB] shape.
var ErrBadAnswers = errors.New("runner: malformed answers.yaml")

// Verdict is the answer check of one result.
type Verdict int

const (
	// VerdictUnknown means no expected answer is on file.
	VerdictUnknown Verdict = iota
	// VerdictPass means both parts match the expected answers.
	VerdictPass
	// VerdictFail means at least one part differs.
	VerdictFail
)

func (v Verdict) String() string {
	switch v {
	case VerdictPass:
		return "ok"
	case VerdictFail:
		return "MISMATCH"
	default:
		return "unverified"
	}
}

// Answers is the expected-answer table of answers.yaml: year -> day ->
// [partA, partB], each part in its rendered string form. A nil table
// verifies nothing.
type Answers map[int]map[int][2]string

// LoadAnswers reads answers.yaml from dir. A missing file is not an
// error: verification is simply off.
func LoadAnswers(dir string) (Answers, error) {
	raw, err := os.ReadFile(filepath.Join(dir, "answers.yaml"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnswers, err)
	}

	var file map[int]map[int][]string
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadAnswers, err)
	}

	answers := make(Answers, len(file))
	for year, days := range file {
		answers[year] = make(map[int][2]string, len(days))
		for day, parts := range days {
			if len(parts) != 2 {
				return nil, fmt.Errorf("%w: year %d day %d has %d parts", ErrBadAnswers, year, day, len(parts))
			}
			answers[year][day] = [2]string{parts[0], parts[1]}
		}
	}

	return answers, nil
}

// Check compares a solution against the table.
func (a Answers) Check(year, day int, sol puzzle.Solution) Verdict {
	want, ok := a[year][day]
	if !ok {
		return VerdictUnknown
	}
	if sol.A() == want[0] && sol.B() == want[1] {
		return VerdictPass
	}

	return VerdictFail
}
