package favorites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Set_Toggle(t *testing.T) {
	var s Set
	assert.True(t, s.Toggle(5), "absent id is added")
	assert.True(t, s.Contains(5))
	assert.False(t, s.Toggle(5), "present id is removed")
	assert.False(t, s.Contains(5))
	assert.Equal(t, 0, s.Len())
}

func Test_Set_IDs(t *testing.T) {
	assert.Equal(t, []int64{}, Set{}.IDs())
	assert.Equal(t, []int64{9, 1, 3}, NewSet(9, 1, 3, 1).IDs())
}

func Test_Set_KeepsInsertionOrder(t *testing.T) {
	// given
	s := NewSet(7, 2)

	// when
	s.Toggle(5)
	s.Toggle(2)
	s.Toggle(2)

	// then
	assert.Equal(t, []int64{7, 5, 2}, s.IDs(), "a re-added id moves to the end")
	assert.Equal(t, 3, s.Len())
}

func Test_Set_Clone(t *testing.T) {
	orig := NewSet(1, 2)
	clone := orig.Clone()
	clone.Toggle(3)
	clone.Toggle(1)
	assert.Equal(t, []int64{1, 2}, orig.IDs())
	assert.Equal(t, []int64{2, 3}, clone.IDs())
}
