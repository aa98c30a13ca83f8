package typst

import (
	"strings"
	"testing"
)

func testDoc() Content {
	return Group{
		NewElem("heading", attrs("level", "1"), Text("Title")),
		NewMultiElem[none]("list",
			nil,
			Text("first"),
			NewElem[none]("strong", nil, Text("second")),
		),
		NewInlineElem[none]("grid", nil, Text("cell")),
	}
}

func TestQueryOrder(t *testing.T) {
	var items []string
	Query(testDoc(), func(e Text) WalkResult {
		items = append(items, string(e))
		return WalkContinue
	})
	const expected = "Title,first,second,cell"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestQuerySkip(t *testing.T) {
	var names []string
	Query(testDoc(), func(e *Elem) WalkResult {
		names = append(names, e.Name)
		return WalkSkip
	})
	const expected = "heading,list,grid"
	if result := strings.Join(names, ","); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestQueryStop(t *testing.T) {
	var items []string
	Query(testDoc(), func(e Text) WalkResult {
		items = append(items, string(e))
		return WalkStop
	})
	const expected = "Title"
	if result := strings.Join(items, ","); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFilterReplace(t *testing.T) {
	doc := testDoc()
	before := Render(doc)
	upper := Filter(doc, func(e Text) ([]Content, WalkResult) {
		return []Content{Text(strings.ToUpper(string(e)))}, WalkReplace
	})
	const expected = `#heading(level: 1)[TITLE]#list[FIRST][#strong[SECOND]]#grid("CELL")`
	if result := Render(upper); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
	// the input tree is shared, never mutated
	if result := Render(doc); result != before {
		t.Errorf("Expected %q, got %q", before, result)
	}
}

func TestFilterRemove(t *testing.T) {
	pruned := Filter(testDoc(), func(e *Elem) ([]Content, WalkResult) {
		if e.Name == "strong" {
			return nil, WalkReplace
		}
		return nil, WalkContinue
	})
	const expected = `#heading(level: 1)[Title]#list[first]#grid("cell")`
	if result := Render(pruned); result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFilterSplice(t *testing.T) {
	doubled := Filter(Group{Text("a")}, func(e Text) ([]Content, WalkResult) {
		return []Content{e, e}, WalkReplace
	})
	if result, expected := Render(doubled), "aa"; result != expected {
		t.Errorf("Expected %q, got %q", expected, result)
	}
}

func TestFilterUntouchedShares(t *testing.T) {
	doc := testDoc()
	same := Filter(doc, func(e Text) ([]Content, WalkResult) {
		return nil, WalkContinue
	})
	if same.(Group)[0] != doc.(Group)[0] {
		t.Error("Expected untouched subtree to be shared")
	}
}

func BenchmarkWalk(b *testing.B) {
	b.StopTimer()
	doc := testDoc()
	b.ReportAllocs()
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		Query(doc, func(e Text) WalkResult { return WalkContinue })
	}
}
