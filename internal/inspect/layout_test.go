package inspect

import (
	"strings"
	"testing"

	"github.com/rivo/uniseg"

	"github.com/dshills/arbor/internal/engine/bst"
)

func sampleTree(pairs map[string]string, order []string) *bst.Tree[string, string] {
	t := bst.New[string, string]()
	for _, k := range order {
		t.Insert(k, pairs[k])
	}
	return t
}

func TestComputeLayoutEmpty(t *testing.T) {
	l := ComputeLayout(bst.New[string, string]())
	if len(l.Boxes) != 0 || l.Columns != 0 || l.Rows != 0 {
		t.Errorf("empty layout = %+v, want no boxes", l)
	}
}

func TestComputeLayoutPlacement(t *testing.T) {
	// Shape:      m
	//           /   \
	//          f     s
	//         /
	//        a
	tr := sampleTree(map[string]string{"m": "1", "f": "2", "s": "3", "a": "4"},
		[]string{"m", "f", "s", "a"})
	l := ComputeLayout(tr)

	if l.Columns != 4 {
		t.Fatalf("Columns = %d, want 4", l.Columns)
	}
	if l.Rows != 3 {
		t.Errorf("Rows = %d, want 3", l.Rows)
	}

	tests := []struct {
		key    string
		column int
		row    int
	}{
		{"a", 0, 2},
		{"f", 1, 1},
		{"m", 2, 0},
		{"s", 3, 1},
	}
	for _, tt := range tests {
		box, ok := l.Find(tt.key)
		if !ok {
			t.Fatalf("Find(%q) missing", tt.key)
		}
		if box.Column != tt.column || box.Row != tt.row {
			t.Errorf("%q at (%d, %d), want (%d, %d)", tt.key, box.Column, box.Row, tt.column, tt.row)
		}
	}

	// Inorder column order matches ascending keys.
	for i := 1; i < len(l.Boxes); i++ {
		if l.Boxes[i-1].Key >= l.Boxes[i].Key {
			t.Errorf("boxes not in ascending key order at %d", i)
		}
	}
}

func TestColumnWidth(t *testing.T) {
	tr := sampleTree(map[string]string{"a": "x", "bb": "yyyy"}, []string{"a", "bb"})
	l := ComputeLayout(tr)

	// Widest label is "bb=yyyy" (7 cells) plus one separator.
	if l.ColumnWidth != 8 {
		t.Errorf("ColumnWidth = %d, want 8", l.ColumnWidth)
	}
}

func TestMakeLabelTruncation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"long ascii", "key", strings.Repeat("v", 60)},
		{"wide runes", "键", strings.Repeat("值", 30)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			label := makeLabel(tt.key, tt.value)
			if w := uniseg.StringWidth(label); w > MaxLabelWidth {
				t.Errorf("label width = %d, want <= %d", w, MaxLabelWidth)
			}
			if !strings.HasSuffix(label, "…") {
				t.Errorf("truncated label %q should end with ellipsis", label)
			}
		})
	}
}

func TestMakeLabelShort(t *testing.T) {
	if got := makeLabel("k", "v"); got != "k=v" {
		t.Errorf("makeLabel = %q, want k=v", got)
	}
}

func TestFindAbsent(t *testing.T) {
	l := ComputeLayout(sampleTree(map[string]string{"a": "1"}, []string{"a"}))
	if _, ok := l.Find("zzz"); ok {
		t.Error("Find of absent key should report false")
	}
}
