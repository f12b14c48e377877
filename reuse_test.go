package singular

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	Count int
	Tags  []string
}

// Reset keeps the Tags backing array so refills reuse its capacity.
func (r *record) Reset() {
	r.Count = 0
	r.Tags = r.Tags[:0]
}

func TestSetDefaultResetsRetained(t *testing.T) {
	f := Some(record{Count: 10})
	f.Clear()

	r := SetDefault(&f)
	require.True(t, f.IsPresent())
	require.Equal(t, 0, r.Count)

	r.Count = 11
	// no Clear in between: SetDefault still resets
	r = SetDefault(&f)
	require.Equal(t, 0, r.Count)
}

func TestSetDefaultReusesAllocation(t *testing.T) {
	var f Field[record]

	p1 := SetDefault(&f)
	p1.Count = 7
	p1.Tags = append(p1.Tags, "a", "b")
	f.Clear()
	require.True(t, f.IsAbsent())
	// retained allocation still holds the stale contents
	require.Equal(t, 7, f.value.Count)

	p2 := SetDefault(&f)
	require.Same(t, p1, p2)
	require.Equal(t, 0, p2.Count)
	require.Len(t, p2.Tags, 0)
}

func TestSetDefaultOnEmptyAllocates(t *testing.T) {
	var f Field[record]
	require.Nil(t, f.value)
	r := SetDefault(&f)
	require.NotNil(t, r)
	require.Equal(t, 0, r.Count)
	require.True(t, f.IsPresent())
}

func TestTakeThenSetDefaultAllocatesFresh(t *testing.T) {
	var f Field[record]
	p1 := SetDefault(&f)
	p1.Count = 3

	v, ok := f.Take()
	require.True(t, ok)
	require.Equal(t, 3, v.Count)
	require.Nil(t, f.value)

	p2 := SetDefault(&f)
	require.NotSame(t, p1, p2)
	require.Equal(t, 0, p2.Count)
	// the taken value belongs to the caller now
	require.Equal(t, 3, v.Count)
}

func TestGetOrDefault(t *testing.T) {
	f := Some(record{Count: 5})
	require.Equal(t, 5, GetOrDefault(&f).Count)

	f.Clear()
	got := GetOrDefault(&f)
	require.Equal(t, 0, got.Count)
	require.True(t, f.IsAbsent())

	var empty Field[record]
	got = GetOrDefault(&empty)
	require.Equal(t, 0, got.Count)
	require.Nil(t, empty.value)
}

func TestEqualIgnoresRetainedAllocation(t *testing.T) {
	f := Some(3)
	f.Clear()
	require.True(t, Equal(f, None[int]()))
	require.False(t, Equal(f, Some(3)))
	require.NotNil(t, f.value)
}
