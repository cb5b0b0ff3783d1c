package inspect

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/vector"
	"github.com/npillmayer/vector/alloc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plain(width int) *Console {
	return NewConsole(&Config{LineWidth: width}, nil)
}

func TestSnapshot(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v, err := vector.FromSlice([]int{1, 2, 3})
	require.NoError(t, err)
	require.NoError(t, v.Reserve(4))
	l := Snapshot(v)
	assert.Equal(t, 3, l.Len)
	assert.Equal(t, 4, l.Cap)
	assert.Equal(t, v.Generation(), l.Generation)
	assert.Equal(t, []string{"1", "2", "3"}, l.Cells)
}

func TestRenderBar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	var b strings.Builder
	err := plain(80).Render(Layout{Len: 3, Cap: 4, Generation: 2, Cells: []string{"1", "2", "3"}}, &b)
	require.NoError(t, err)
	assert.Equal(t, "len=3 cap=4 gen=2\n[ 1 | 2 | 3 | · ]\n", b.String())
}

func TestRenderEmpty(t *testing.T) {
	var b strings.Builder
	require.NoError(t, plain(80).Render(Layout{}, &b))
	assert.Equal(t, "len=0 cap=0 gen=0\n[]\n", b.String())
}

func TestRenderElidesWideBars(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	l := Layout{Len: 10, Cap: 16}
	for i := 0; i < 10; i++ {
		l.Cells = append(l.Cells, "x")
	}
	var b strings.Builder
	require.NoError(t, plain(20).Render(l, &b))
	bar := strings.Split(b.String(), "\n")[1]
	assert.Equal(t, "[ x | x | … | · ]", bar)
	assert.LessOrEqual(t, len([]rune(bar)), 20)
}

func TestRenderMeasuresWideCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	cells := make([]string, 6)
	for i := range cells {
		cells[i] = "漢字漢字"
	}
	v, err := vector.FromSlice(cells)
	require.NoError(t, err)
	var b strings.Builder
	require.NoError(t, plain(40).Render(Snapshot(v), &b))
	bar := strings.Split(b.String(), "\n")[1]
	assert.Equal(t, "[ 漢字漢字 | 漢字漢字 | … | 漢字漢字 ]", bar)
	assert.Equal(t, 8, cellWidth("漢字漢字", uax11.LatinContext))
	assert.Equal(t, 38, cellWidth(bar, uax11.LatinContext))
}

func TestFitKeepsNarrowBars(t *testing.T) {
	slots := []slot{{"a", true}, {"b", true}, {reservedMark, false}}
	ctx := uax11.LatinContext
	assert.Equal(t, slots, fit(slots, 0, ctx))
	assert.Equal(t, slots, fit(slots, barWidth(slots, ctx), ctx))
	assert.Len(t, fit(slots, 5, ctx), 3, "shortening must keep first and last slot")
}

func TestTraceGrowthDoubles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	steps, err := TraceGrowth(vector.New[int](), 9, 0)
	require.NoError(t, err)
	require.Len(t, steps, 9)
	var caps []int
	for _, s := range Reallocations(steps) {
		caps = append(caps, s.Cap)
	}
	assert.Equal(t, []int{1, 2, 4, 8, 16}, caps)
	var b strings.Builder
	require.NoError(t, plain(80).GrowthTable(steps, &b))
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "       9       16    2.00", lines[5])
	assert.Contains(t, lines[1], "-")
}

func TestTraceGrowthStopsOnFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "vector")
	defer teardown()
	//
	v := vector.New(vector.WithAllocator[int](alloc.NewBounded[int](nil, 4, 0)))
	steps, err := TraceGrowth(v, 10, 1)
	assert.ErrorIs(t, err, vector.ErrLength)
	assert.Len(t, steps, 4)
}
