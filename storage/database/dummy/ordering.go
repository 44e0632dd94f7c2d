package dummydb

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/volatiletech/null/v8"

	"github.com/trezcool/scolarite/core"
)

// fieldCompare compares rows i and j on one field: <0, 0 or >0.
type fieldCompare func(i, j int) int

// lessFunc builds a sort.Slice less func applying orderings in turn.
func lessFunc(ordering []core.DBOrdering, fields map[string]fieldCompare) (func(i, j int) bool, error) {
	cmps := make([]fieldCompare, 0, len(ordering))
	for _, ord := range ordering {
		cmp, ok := fields[ord.Field]
		if !ok {
			return nil, core.NewFieldError("ordering", errors.Errorf("unknown ordering field: %s", ord.Field))
		}
		if !ord.Ascending {
			asc := cmp
			cmp = func(i, j int) int { return -asc(i, j) }
		}
		cmps = append(cmps, cmp)
	}
	return func(i, j int) bool {
		for _, cmp := range cmps {
			if c := cmp(i, j); c != 0 {
				return c < 0
			}
		}
		return false
	}, nil
}

// null values sort first

func compareInt(a, b null.Int) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}
	return a.Int - b.Int
}

func compareString(a, b null.String) int {
	switch {
	case !a.Valid && !b.Valid:
		return 0
	case !a.Valid:
		return -1
	case !b.Valid:
		return 1
	}
	return strings.Compare(strings.ToLower(a.String), strings.ToLower(b.String))
}
