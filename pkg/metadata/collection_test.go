package metadata_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/esnalabu/opencast/pkg/metadata"
)

func TestCollectionCopyIndependence(t *testing.T) {
	m := metadata.NewMaterializer(nil)
	if err := m.AddField(metadata.NewTextField("title"), []string{"Original"}, nil); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if err := m.AddField(metadata.NewIterableTextField("subjects", ","), []string{"a", "b"}, nil); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	original := m.Collection()

	copied := original.GetCopy()
	if copied.Len() != original.Len() {
		t.Fatalf("copy holds %d fields, want %d", copied.Len(), original.Len())
	}

	title, ok := copied.Get("title")
	if !ok {
		t.Fatal("copied collection is missing the title field")
	}
	if err := title.SetValue(metadata.StringValue("Changed")); err != nil {
		t.Fatalf("SetValue: %v", err)
	}

	subjects, ok := copied.Get("subjects")
	if !ok {
		t.Fatal("copied collection is missing the subjects field")
	}
	subjects.Value.(metadata.StringListValue)[0] = "mutated"

	origTitle, _ := original.Get("title")
	if origTitle.Value != metadata.StringValue("Original") {
		t.Fatalf("original title = %#v, copy mutation leaked", origTitle.Value)
	}
	origSubjects, _ := original.Get("subjects")
	if diff := cmp.Diff(metadata.StringListValue{"a", "b"}, origSubjects.Value); diff != "" {
		t.Fatalf("original subjects changed (-want +got):\n%s", diff)
	}
}

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	c := metadata.NewCollection()
	for _, id := range []string{"title", "subjects", "language"} {
		c.Add(metadata.NewTextField(id))
	}
	got := make([]string, 0, c.Len())
	for _, f := range c.Fields() {
		got = append(got, f.InputID)
	}
	if diff := cmp.Diff([]string{"title", "subjects", "language"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectionExplicitOrderPlacement(t *testing.T) {
	c := metadata.NewCollection()
	c.Add(metadata.NewTextField("title"))
	c.Add(metadata.NewTextField("language"))

	first := 0
	described := metadata.NewTextField("identifier")
	described.Order = &first
	c.Add(described)

	got := make([]string, 0, c.Len())
	for _, f := range c.Fields() {
		got = append(got, f.InputID)
	}
	if diff := cmp.Diff([]string{"identifier", "title", "language"}, got); diff != "" {
		t.Fatalf("order mismatch (-want +got):\n%s", diff)
	}

	// An order beyond the current size appends.
	tenth := 10
	trailing := metadata.NewTextField("notes")
	trailing.Order = &tenth
	c.Add(trailing)
	if last := c.Fields()[c.Len()-1].InputID; last != "notes" {
		t.Fatalf("last field = %q, want notes", last)
	}
}

func TestCollectionGetUsesOutputID(t *testing.T) {
	c := metadata.NewCollection()
	f := metadata.NewTextField("title")
	f.Namespace = "dc"
	c.Add(f)

	if _, ok := c.Get("dc:title"); !ok {
		t.Fatal("expected lookup under namespace-qualified id")
	}

	g := metadata.NewTextField("title")
	g.OutputID = "displayTitle"
	c.Add(g)
	if _, ok := c.Get("displayTitle"); !ok {
		t.Fatal("expected lookup under explicit output id")
	}
}

func TestCollectionJSONIsOrderedArray(t *testing.T) {
	m := metadata.NewMaterializer(nil)
	if err := m.AddField(metadata.NewTextField("title"), []string{"Talk"}, nil); err != nil {
		t.Fatalf("AddField: %v", err)
	}
	if err := m.AddField(metadata.NewBooleanField("live"), []string{"true"}, nil); err != nil {
		t.Fatalf("AddField: %v", err)
	}

	data, err := json.Marshal(m.Collection())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var fields []map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(fields) != 2 || fields[0]["id"] != "title" || fields[1]["id"] != "live" {
		t.Fatalf("unexpected JSON shape: %s", data)
	}
	if fields[1]["value"] != true {
		t.Fatalf("boolean value serialised as %v", fields[1]["value"])
	}
	if !strings.HasPrefix(string(data), "[") {
		t.Fatalf("expected array payload, got %s", data)
	}
}

func TestSetValueRejectsWrongShape(t *testing.T) {
	f := metadata.NewBooleanField("live")
	if err := f.SetValue(metadata.StringValue("yes")); err == nil {
		t.Fatal("expected shape mismatch to be rejected")
	}
	if err := f.SetValue(metadata.BoolValue(true)); err != nil {
		t.Fatalf("SetValue: %v", err)
	}
	if err := f.SetValue(nil); err != nil {
		t.Fatalf("SetValue(nil): %v", err)
	}
	if f.Value != nil {
		t.Fatal("nil SetValue should clear the value")
	}
}

func TestParseFieldType(t *testing.T) {
	got, err := metadata.ParseFieldType("mixed_text")
	if err != nil {
		t.Fatalf("ParseFieldType: %v", err)
	}
	if got != metadata.FieldTypeMixedText {
		t.Fatalf("type = %q, want mixed_text", got)
	}
	if _, err := metadata.ParseFieldType("hologram"); err == nil {
		t.Fatal("expected unknown type to fail")
	}
}
