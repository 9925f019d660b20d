package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixSetAndGet(t *testing.T) {
	M := NewIntMatrix(10, 10, DefaultNullValue)
	assert.Equal(t, int32(DefaultNullValue), M.Value(2, 3))
	old := M.Set(2, 3, 4711)
	assert.Equal(t, M.NullValue(), old)
	assert.Equal(t, int32(4711), M.Value(2, 3))
	old = M.Set(2, 3, 123)
	assert.Equal(t, int32(4711), old)
	assert.Equal(t, int32(123), M.Value(2, 3))
	assert.Equal(t, 1, M.ValueCount())
}

func TestMatrixOrdering(t *testing.T) {
	M := NewIntMatrix(5, 5, -1)
	M.Set(3, 1, 31)
	M.Set(0, 4, 4)
	M.Set(3, 0, 30)
	M.Set(1, 2, 12)
	var seen []int32
	M.Each(func(i, j int, v int32) {
		seen = append(seen, v)
	})
	assert.Equal(t, []int32{4, 12, 30, 31}, seen)
	assert.Equal(t, int32(30), M.Value(3, 0))
	assert.Equal(t, int32(-1), M.Value(4, 4))
}

func TestMatrixOutOfRange(t *testing.T) {
	M := NewIntMatrix(2, 2, -1)
	assert.Panics(t, func() { M.Set(2, 0, 1) })
	assert.Equal(t, int32(-1), M.Value(7, 7))
}
