package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirst(t *testing.T) {
	calls := 0
	counted := func(v string) Candidate[string] {
		return func() (string, bool) {
			calls++
			return v, v != ""
		}
	}

	assert.Equal(t, "b", First("z", counted(""), counted("b"), counted("c")))
	assert.Equal(t, 2, calls, "candidates after the winner are not evaluated")

	assert.Equal(t, "z", First("z", counted(""), nil))
	assert.Equal(t, "z", First[string]("z"))
}

func TestOnce(t *testing.T) {
	calls := 0
	lookup := Once(func() (int, bool) {
		calls++
		return 7, true
	})
	v1, ok1 := lookup()
	v2, ok2 := lookup()
	assert.Equal(t, 7, v1)
	assert.Equal(t, 7, v2)
	assert.True(t, ok1 && ok2)
	assert.Equal(t, 1, calls)
}

func TestPositiveAndNonEmpty(t *testing.T) {
	zero, rate := 0.0, 90.0
	assert.Equal(t, 75.0, First(75, Positive(nil), Positive(&zero)))
	assert.Equal(t, 90.0, First(75, Positive(&zero), Positive(&rate)))
	assert.Equal(t, "USD", First("USD", NonEmpty("")))
	assert.Equal(t, "CAD", First("USD", NonEmpty("CAD")))
}
