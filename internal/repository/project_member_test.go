package repository

import (
	"reflect"
	"sort"
	"testing"
)

func TestDiffMemberIDs(t *testing.T) {
	tests := []struct {
		name       string
		current    []string
		desired    []string
		wantAdd    []string
		wantRemove []string
	}{
		{"replace A with C", []string{"A"}, []string{"C"}, []string{"C"}, []string{"A"}},
		{"no change", []string{"A", "B"}, []string{"B", "A"}, nil, nil},
		{"clear all", []string{"A", "B"}, nil, nil, []string{"A", "B"}},
		{"from empty", nil, []string{"A"}, []string{"A"}, nil},
		{"duplicates in desired collapse", nil, []string{"A", "A", "B"}, []string{"A", "B"}, nil},
		{"empty ids are ignored", []string{"A"}, []string{"", "A"}, nil, nil},
		{"mixed add and remove", []string{"A", "B"}, []string{"B", "C"}, []string{"C"}, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			add, remove := DiffMemberIDs(tt.current, tt.desired)
			sort.Strings(add)
			sort.Strings(remove)
			sort.Strings(tt.wantAdd)
			sort.Strings(tt.wantRemove)

			if !reflect.DeepEqual(add, tt.wantAdd) {
				t.Errorf("DiffMemberIDs() add = %v, want %v", add, tt.wantAdd)
			}
			if !reflect.DeepEqual(remove, tt.wantRemove) {
				t.Errorf("DiffMemberIDs() remove = %v, want %v", remove, tt.wantRemove)
			}
		})
	}
}
