package model

import (
	"reflect"
	"testing"
)

func TestNormalizeServiceName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"a/b", "a.b"},
		{"a/b/c", "a.b.c"},
		{"plain", "plain"},
		{"already.namespaced", "already.namespaced"},
		{"", ""},
		{"/leading", ".leading"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := NormalizeServiceName(tt.raw); got != tt.want {
				t.Errorf("NormalizeServiceName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestServiceSet_Dedup(t *testing.T) {
	s := NewServiceSet()
	s.Add("auth")
	s.Add("billing")
	s.Add("auth")

	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if !s.Contains("auth") {
		t.Error("set should contain auth")
	}
	if s.Contains("gateway") {
		t.Error("set should not contain gateway")
	}
}

func TestServiceSet_NamesSorted(t *testing.T) {
	s := NewServiceSet()
	s.Add("zuul")
	s.Add("auth")
	s.Add("billing")

	got := s.Names()
	want := []string{"auth", "billing", "zuul"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names = %v, want %v", got, want)
	}
}

func TestServiceSet_IgnoresEmpty(t *testing.T) {
	s := NewServiceSet()
	s.Add("")
	if s.Len() != 0 {
		t.Errorf("Len = %d, want 0 after adding empty name", s.Len())
	}
}
