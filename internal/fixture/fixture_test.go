package fixture

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/vango-dev/carbon/internal/errors"
	"github.com/vango-dev/carbon/pkg/diff"
)

const fruits = `
sections:
  - id: fruits
    header: {id: title, content: "Fruits"}
    items:
      - {id: apple, content: "Apple"}
      - {id: pear, content: {name: "Pear", price: 3}}
  - id: empty
    items: []
`

func TestParse(t *testing.T) {
	tree, err := Parse([]byte(fruits))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if tree.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", tree.Len())
	}
	if tree[0].Header == nil || tree[0].Header.Content().(Item).Content != "Fruits" {
		t.Errorf("header = %v, want Fruits", tree[0].Header)
	}
	if tree[0].Footer != nil {
		t.Errorf("footer = %v, want nil", tree[0].Footer)
	}
	if got := tree.ItemCount(); got != 2 {
		t.Errorf("ItemCount() = %d, want 2", got)
	}
	pear := tree[0].Items[1].Content().(Item)
	want := map[string]any{"name": "Pear", "price": 3}
	if d := cmp.Diff(want, pear.Content); d != "" {
		t.Errorf("pear content mismatch (-want +got):\n%s", d)
	}
}

func TestParseMissingID(t *testing.T) {
	_, err := Parse([]byte("sections:\n  - items:\n      - {id: a}\n"))
	if !errors.HasCode(err, "E302") {
		t.Fatalf("err = %v, want E302", err)
	}

	_, err = Parse([]byte("sections:\n  - id: s\n    items:\n      - {content: x}\n"))
	if !errors.HasCode(err, "E302") {
		t.Fatalf("err = %v, want E302", err)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("sections: [\n"))
	if !errors.HasCode(err, "E301") {
		t.Fatalf("err = %v, want E301", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(path, []byte(fruits), 0o644); err != nil {
		t.Fatal(err)
	}
	tree, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if tree.Len() != 2 {
		t.Errorf("Len() = %d, want 2", tree.Len())
	}

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.HasCode(err, "E301") {
		t.Errorf("err = %v, want E301", err)
	}
}

func TestItemIdentityAndEquality(t *testing.T) {
	a := Item{Key: "a", Content: map[string]any{"n": 1}}
	b := Item{Key: "a", Content: map[string]any{"n": 2}}
	if a.ID() != b.ID() {
		t.Error("items with the same key should share an ID")
	}
	if a.ContentEquals(b) {
		t.Error("different content should not be equal")
	}
	if !a.ContentEquals(Item{Key: "a", Content: map[string]any{"n": 1}}) {
		t.Error("equal content should be equal")
	}
}

func TestMarshalChangeset(t *testing.T) {
	old, err := Parse([]byte(`
sections:
  - id: s
    items:
      - {id: a, content: 1}
      - {id: b, content: 2}
`))
	if err != nil {
		t.Fatal(err)
	}
	next, err := Parse([]byte(`
sections:
  - id: s
    items:
      - {id: b, content: 3}
      - {id: c, content: 4}
`))
	if err != nil {
		t.Fatal(err)
	}

	out, err := MarshalChangeset(diff.Diff(old, next))
	if err != nil {
		t.Fatalf("MarshalChangeset() error: %v", err)
	}
	var got []OpDoc
	if err := yaml.Unmarshal(out, &got); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	want := []OpDoc{
		{Op: "DeleteItem", From: "[0,0]"},
		{Op: "InsertItem", To: "[0,1]"},
		{Op: "UpdateItem", From: "[0,1]"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("ops mismatch (-want +got):\n%s\n%s", d, out)
	}
	if !strings.Contains(string(out), "op: DeleteItem") {
		t.Errorf("unexpected YAML:\n%s", out)
	}
}
