package models

import "testing"

func TestSearch_HasResponses(t *testing.T) {
	s := Search{ID: "s1"}
	if s.HasResponses() {
		t.Error("a fresh search must have no responses")
	}

	s.Responses = append(s.Responses, Response{SearchID: "s1", PharmacistID: 1})
	if !s.HasResponses() {
		t.Error("a search with a response row must report HasResponses")
	}
}

func TestStringArray_ScanFormats(t *testing.T) {
	var fromBytes StringArray
	if err := fromBytes.Scan([]byte(`["a","b"]`)); err != nil {
		t.Fatalf("Scan([]byte) error = %v", err)
	}
	if len(fromBytes) != 2 || fromBytes[0] != "a" {
		t.Errorf("Scan([]byte) = %v, want [a b]", fromBytes)
	}

	var fromString StringArray
	if err := fromString.Scan(`["x"]`); err != nil {
		t.Fatalf("Scan(string) error = %v", err)
	}
	if len(fromString) != 1 || fromString[0] != "x" {
		t.Errorf("Scan(string) = %v, want [x]", fromString)
	}

	var fromNil StringArray
	if err := fromNil.Scan(nil); err != nil {
		t.Fatalf("Scan(nil) error = %v", err)
	}
	if fromNil != nil {
		t.Errorf("Scan(nil) = %v, want nil", fromNil)
	}

	if v, err := StringArray(nil).Value(); err != nil || v != nil {
		t.Errorf("empty Value() = (%v, %v), want (nil, nil)", v, err)
	}
}
