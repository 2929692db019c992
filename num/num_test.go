package num_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dancsi/RationaLP/num"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want num.Num
	}{
		{"3", num.FromInt(3)},
		{"-7", num.FromInt(-7)},
		{"5/2", num.FromFrac(5, 2)},
		{"-5/2", num.FromFrac(-5, 2)},
		{"4/2", num.FromInt(2)},
		{"0.5", num.FromFrac(1, 2)},
		{"2.25", num.FromFrac(9, 4)},
		{"0", num.Zero()},
	}
	for _, c := range cases {
		got, err := num.Parse(c.in)
		require.NoError(t, err, c.in)
		assert.True(t, got.Equal(c.want), "Parse(%q) = %s, want %s", c.in, got, c.want)
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1/0", "1/2/3", "1 2"} {
		_, err := num.Parse(in)
		assert.Error(t, err, "Parse(%q)", in)
	}
}

func TestArithmetic(t *testing.T) {
	third := num.FromFrac(1, 3)
	sixth := num.FromFrac(1, 6)
	assert.True(t, third.Add(sixth).Equal(num.FromFrac(1, 2)))
	assert.True(t, third.Sub(sixth).Equal(sixth))
	assert.True(t, num.FromFrac(2, 3).Mul(num.FromFrac(3, 4)).Equal(num.FromFrac(1, 2)))
	assert.True(t, num.One().Div(num.FromInt(3)).Equal(third))
	assert.True(t, third.Neg().Equal(num.FromFrac(-1, 3)))
	assert.Equal(t, -1, third.Neg().Sign())
	assert.Equal(t, 1, third.Cmp(sixth))
}

func TestDivByZeroPanics(t *testing.T) {
	require.Panics(t, func() { num.One().Div(num.Zero()) })
}

func TestFromFracZeroDenominatorPanics(t *testing.T) {
	require.Panics(t, func() { num.FromFrac(1, 0) })
}

func TestZeroValue(t *testing.T) {
	var n num.Num
	assert.True(t, n.IsZero())
	assert.Equal(t, "0", n.String())
	assert.True(t, n.Add(num.One()).Equal(num.One()))
	assert.True(t, n.Equal(num.Zero()))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2", num.FromFrac(4, 2).String())
	assert.Equal(t, "-1/3", num.FromFrac(1, -3).String())
	assert.Equal(t, "5/2", num.FromFrac(5, 2).String())
}

func TestFloat64(t *testing.T) {
	assert.Equal(t, 0.5, num.FromFrac(1, 2).Float64())
	assert.Equal(t, -3.0, num.FromInt(-3).Float64())
}
