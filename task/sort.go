package task

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/maruel/natural"
)

// SortKey orders task listings.
type SortKey string

const (
	SortByID    SortKey = "id"
	SortByName  SortKey = "name"
	SortBySpent SortKey = "spent"
)

// ParseSortKey validates a sort key given on the command line.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByID, SortByName, SortBySpent:
		return k, nil
	case "":
		return SortByID, nil
	}

	return "", fmt.Errorf("unknown sort key %q: use id, name or spent", s)
}

// Sort orders tasks in place. Names use natural ordering so "task 2" comes
// before "task 10". Spent sorts the most worked-on tasks first.
func Sort(tasks []Task, key SortKey) {
	slices.SortStableFunc(tasks, func(a, b Task) int {
		switch key {
		case SortByName:
			switch {
			case natural.Less(a.Desc, b.Desc):
				return -1
			case natural.Less(b.Desc, a.Desc):
				return 1
			}

			return cmp.Compare(a.ID, b.ID)
		case SortBySpent:
			if c := cmp.Compare(b.Spent, a.Spent); c != 0 {
				return c
			}

			return cmp.Compare(a.ID, b.ID)
		default:
			return cmp.Compare(a.ID, b.ID)
		}
	})
}
