package grids_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/advent/grids"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// byteDec decodes any byte to itself; used where all input is acceptable.
func byteDec(b byte) (byte, error) { return b, nil }

// byteEnc renders a byte cell as itself.
func byteEnc(c byte) byte { return c }

// TestParse_Errors verifies empty and rejected inputs.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoLines", nil, grids.ErrEmptyGrid},
		{"BlankFirstLine", []string{"", "abc"}, grids.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grids.Parse(tc.lines, byteDec, byteEnc)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestParse_BadCharacter ensures decoder rejections surface as ErrBadCharacter.
func TestParse_BadCharacter(t *testing.T) {
	dec := func(b byte) (int, error) {
		if b < '0' || b > '9' {
			return 0, errors.New("not a digit")
		}

		return int(b - '0'), nil
	}
	_, err := grids.Parse([]string{"12x"}, dec, nil)
	assert.ErrorIs(t, err, grids.ErrBadCharacter)
}

// TestParse_RaggedRows checks that short rows are padded with decoded spaces.
func TestParse_RaggedRows(t *testing.T) {
	g, err := grids.Parse([]string{"ab", "a"}, byteDec, byteEnc)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, byte(' '), g.At(grids.Pt(1, 1)))
}

// TestParse_StopsAtBlankLine checks the map/instructions split convention.
func TestParse_StopsAtBlankLine(t *testing.T) {
	g, err := grids.Parse([]string{"ab", "cd", "", "<<vv"}, byteDec, byteEnc)
	require.NoError(t, err)

	assert.Equal(t, 2, g.Height())
}

// TestAccessors covers At/TryAt/Set/Index/Coordinate round trips.
func TestAccessors(t *testing.T) {
	g, err := grids.Parse([]string{"abc", "def"}, byteDec, byteEnc)
	require.NoError(t, err)

	assert.Equal(t, byte('f'), g.At(grids.Pt(2, 1)))

	_, ok := g.TryAt(grids.Pt(3, 0))
	assert.False(t, ok)

	g.Set(grids.Pt(0, 0), 'z')
	c, ok := g.TryAt(grids.Pt(0, 0))
	assert.True(t, ok)
	assert.Equal(t, byte('z'), c)

	idx := g.Index(grids.Pt(2, 1))
	assert.Equal(t, grids.Pt(2, 1), g.Coordinate(idx))
}

// TestFind locates the first matching cell in row-major order.
func TestFind(t *testing.T) {
	g, err := grids.Parse([]string{".#.", "#.."}, byteDec, byteEnc)
	require.NoError(t, err)

	p, ok := g.Find(func(c byte) bool { return c == '#' })
	assert.True(t, ok)
	assert.Equal(t, grids.Pt(1, 0), p)

	_, ok = g.Find(func(c byte) bool { return c == 'x' })
	assert.False(t, ok)
}

// TestInflated checks the margin copy keeps the original content centered.
func TestInflated(t *testing.T) {
	g, err := grids.Parse([]string{"ab"}, byteDec, byteEnc)
	require.NoError(t, err)

	big := g.Inflated(1)
	assert.Equal(t, 4, big.Width())
	assert.Equal(t, 3, big.Height())
	assert.Equal(t, byte('a'), big.At(grids.Pt(1, 1)))
	assert.Equal(t, byte(0), big.At(grids.Pt(0, 0)))
}

// TestWrap folds coordinates one grid-size outside back in.
func TestWrap(t *testing.T) {
	g := grids.New[byte](3, 2, byteEnc)

	assert.Equal(t, grids.Pt(2, 0), g.Wrap(grids.Pt(-1, 0)))
	assert.Equal(t, grids.Pt(0, 1), g.Wrap(grids.Pt(3, 1)))
	assert.Equal(t, grids.Pt(1, 0), g.Wrap(grids.Pt(1, 2)))
	assert.Equal(t, grids.Pt(1, 1), g.Wrap(grids.Pt(1, -1)))
}

// TestString renders rows with the encoder.
func TestString(t *testing.T) {
	g, err := grids.Parse([]string{"ab", "cd"}, byteDec, byteEnc)
	require.NoError(t, err)

	assert.Equal(t, "ab\ncd\n", g.String())
}

// TestClone ensures mutation of the copy leaves the original intact.
func TestClone(t *testing.T) {
	g, err := grids.Parse([]string{"ab"}, byteDec, byteEnc)
	require.NoError(t, err)

	c := g.Clone()
	c.Set(grids.Pt(0, 0), 'x')
	assert.Equal(t, byte('a'), g.At(grids.Pt(0, 0)))
}
