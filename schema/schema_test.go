package schema_test

import (
	"strings"
	"testing"

	"github.com/goparquet/goparquet/format"
	"github.com/goparquet/goparquet/schema"
)

func repType(r format.FieldRepetitionType) *format.FieldRepetitionType { return &r }
func physType(t format.Type) *format.Type                              { return &t }
func int32p(n int32) *int32                                            { return &n }

// A message with one REQUIRED leaf "id" and one OPTIONAL leaf "name".
func simpleSchema() []format.SchemaElement {
	return []format.SchemaElement{
		{Name: "root", NumChildren: int32p(2)},
		{Name: "id", Type: physType(format.Int64), RepetitionType: repType(format.Required)},
		{Name: "name", Type: physType(format.ByteArray), RepetitionType: repType(format.Optional)},
	}
}

func TestBuildLevelsAndLookup(t *testing.T) {
	tree, err := schema.Build(simpleSchema())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(tree.Leaves) != 2 {
		t.Fatalf("len(Leaves) = %d, want 2", len(tree.Leaves))
	}

	id, ok := tree.Lookup("id")
	if !ok {
		t.Fatal("Lookup(id): not found")
	}
	if id.MaxDefinitionLevel != 0 || id.MaxRepetitionLevel != 0 {
		t.Fatalf("id levels = (%d,%d), want (0,0)", id.MaxDefinitionLevel, id.MaxRepetitionLevel)
	}
	if !id.Required() {
		t.Fatal("id.Required() = false, want true")
	}

	name, ok := tree.Lookup("name")
	if !ok {
		t.Fatal("Lookup(name): not found")
	}
	if name.MaxDefinitionLevel != 1 || name.MaxRepetitionLevel != 0 {
		t.Fatalf("name levels = (%d,%d), want (1,0)", name.MaxDefinitionLevel, name.MaxRepetitionLevel)
	}
	if name.Required() {
		t.Fatal("name.Required() = true, want false")
	}
}

func TestBuildNestedRepeated(t *testing.T) {
	// root -> list (REPEATED group, 1 child) -> element (REQUIRED leaf)
	flat := []format.SchemaElement{
		{Name: "root", NumChildren: int32p(1)},
		{Name: "list", RepetitionType: repType(format.Repeated), NumChildren: int32p(1)},
		{Name: "element", Type: physType(format.Int32), RepetitionType: repType(format.Required)},
	}
	tree, err := schema.Build(flat)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	leaf, ok := tree.Lookup("list.element")
	if !ok {
		t.Fatal("Lookup(list.element): not found")
	}
	if leaf.MaxDefinitionLevel != 1 || leaf.MaxRepetitionLevel != 1 {
		t.Fatalf("levels = (%d,%d), want (1,1)", leaf.MaxDefinitionLevel, leaf.MaxRepetitionLevel)
	}

	if tree.Root.Count != 3 {
		t.Fatalf("root.Count = %d, want 3 (root + list + element)", tree.Root.Count)
	}
	if leaf.Parent.Count != 2 {
		t.Fatalf("list.Count = %d, want 2 (list + element)", leaf.Parent.Count)
	}
}

func TestBuildTruncatedSchema(t *testing.T) {
	flat := []format.SchemaElement{
		{Name: "root", NumChildren: int32p(2)},
		{Name: "only_child", Type: physType(format.Int32), RepetitionType: repType(format.Required)},
	}
	if _, err := schema.Build(flat); err == nil {
		t.Fatal("Build: expected error for truncated schema, got nil")
	}
}

func TestPrint(t *testing.T) {
	tree, err := schema.Build(simpleSchema())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var sb strings.Builder
	tree.Print(&sb)
	out := sb.String()
	if !strings.Contains(out, "id") || !strings.Contains(out, "name") {
		t.Fatalf("Print output missing leaf names: %q", out)
	}
	if !strings.Contains(out, "INT64") || !strings.Contains(out, "BYTE_ARRAY") {
		t.Fatalf("Print output missing physical types: %q", out)
	}
}
