package linq_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linq_tool/pkg/linq"
)

type employee struct {
	Name string
	Dept string
}

var employees = linq.Of([]employee{
	{"Tom", "dev"},
	{"Amy", "ops"},
	{"Bob", "dev"},
	{"Eve", "qa"},
	{"Joe", "ops"},
})

func dept(e employee) string { return e.Dept }
func name(e employee) string { return e.Name }

// 测试 GroupBy，分组按第一次出现的顺序
func TestGroupBy(t *testing.T) {
	groups := linq.GroupBy(employees, dept).ToSlice()
	require.Len(t, groups, 3)

	keys := make([]string, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []string{"dev", "ops", "qa"}, keys)
	assert.Equal(t, []string{"Tom", "Bob"}, linq.Select(groups[0].Items, name).ToSlice())
	assert.Equal(t, []string{"Amy", "Joe"}, linq.Select(groups[1].Items, name).ToSlice())

	assert.True(t, linq.GroupBy(linq.Empty[employee](), dept).IsEmpty())
}

func TestGroupBySorted(t *testing.T) {
	groups := linq.GroupBySorted(sample, func(v int) int { return v % 3 }).ToSlice()

	keys := make([]int, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	assert.Equal(t, []int{-1, 0, 1, 2}, keys)
	// -1%3=-1  -4%3=-1
	assert.Equal(t, []int{-1, -4}, groups[0].Items.ToSlice())
	assert.Equal(t, []int{3, 6}, groups[1].Items.ToSlice())
	assert.Equal(t, []int{1}, groups[2].Items.ToSlice())
	assert.Equal(t, []int{5, 2, 5}, groups[3].Items.ToSlice())
}

func TestToLookup(t *testing.T) {
	lookup := linq.ToLookup(employees, dept)
	assert.Len(t, lookup, 3)
	assert.Equal(t, []employee{{"Eve", "qa"}}, lookup["qa"])
	assert.Empty(t, lookup["hr"])
}

// 测试 ToMap
func TestToMap(t *testing.T) {
	byName, err := linq.ToMap(employees, name, dept)
	require.NoError(t, err)
	assert.Equal(t, "ops", byName["Joe"])
	assert.Len(t, byName, 5)

	_, err = linq.ToMap(employees, dept, name)
	require.Error(t, err)
	assert.ErrorIs(t, err, linq.ErrDuplicateKey)
	assert.ErrorIs(t, err, linq.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "dev")
}

type project struct {
	Title string
	Dept  string
}

var projects = linq.Of([]project{
	{"api", "dev"},
	{"deploy", "ops"},
	{"web", "dev"},
})

// 测试 Join
func TestJoin(t *testing.T) {
	got := linq.Join(employees, projects, dept,
		func(p project) string { return p.Dept },
		func(e employee, p project) string { return fmt.Sprintf("%s:%s", e.Name, p.Title) },
	)
	assert.Equal(t, []string{"Tom:api", "Tom:web", "Amy:deploy", "Bob:api", "Bob:web", "Joe:deploy"}, got.ToSlice())
}

func TestGroupJoin(t *testing.T) {
	got := linq.GroupJoin(employees, projects, dept,
		func(p project) string { return p.Dept },
		func(e employee, ps linq.Stream[project]) linq.Pair[string, int] {
			return linq.Pair[string, int]{First: e.Name, Second: ps.Len()}
		},
	).ToSlice()

	require.Len(t, got, 5)
	assert.Equal(t, linq.Pair[string, int]{First: "Tom", Second: 2}, got[0])
	// 没有匹配的也保留，组为空
	assert.Equal(t, linq.Pair[string, int]{First: "Eve", Second: 0}, got[3])
}
