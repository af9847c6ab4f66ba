package appwrite

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestDocument_UnmarshalSplitsSystemAttrs(t *testing.T) {
	t.Parallel()

	raw := `{
		"$id": "q1",
		"$createdAt": "2026-08-01T00:00:00Z",
		"$updatedAt": "2026-08-02T00:00:00Z",
		"$permissions": ["read(\"any\")"],
		"$collectionId": "questions",
		"$databaseId": "main",
		"title": "How do I reverse a string?",
		"tags": ["go", "strings"],
		"attachmentId": null
	}`

	var d Document
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if d.ID != "q1" || d.CreatedAt != "2026-08-01T00:00:00Z" || d.UpdatedAt != "2026-08-02T00:00:00Z" {
		t.Fatalf("system attrs = %+v", d)
	}
	if !reflect.DeepEqual(d.Permissions, []string{`read("any")`}) {
		t.Fatalf("permissions = %v", d.Permissions)
	}
	if _, ok := d.Data["$collectionId"]; ok {
		t.Fatal("collection id leaked into data")
	}
	if d.String("title") != "How do I reverse a string?" {
		t.Fatalf("title = %q", d.String("title"))
	}
	if !reflect.DeepEqual(d.Strings("tags"), []string{"go", "strings"}) {
		t.Fatalf("tags = %v", d.Strings("tags"))
	}
	if d.String("attachmentId") != "" {
		t.Fatalf("null attachment = %q", d.String("attachmentId"))
	}
}

func TestDocument_Accessors(t *testing.T) {
	t.Parallel()

	d := Document{Data: map[string]any{"n": float64(3), "tags": []any{"a", 7, "b"}}}
	if d.String("n") != "" {
		t.Fatalf("non-string should be empty, got %q", d.String("n"))
	}
	if d.String("missing") != "" {
		t.Fatal("missing key should be empty")
	}
	if !reflect.DeepEqual(d.Strings("tags"), []string{"a", "b"}) {
		t.Fatalf("mixed tags = %v", d.Strings("tags"))
	}
	if d.Strings("missing") != nil {
		t.Fatal("missing array should be nil")
	}
}
