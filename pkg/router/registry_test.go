package router

import (
	"context"
	"testing"
)

func nopHandler(context.Context, *Request) (any, error) { return nil, nil }

func TestRegistryNormalizesPaths(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFunc("./departments/get.go", nopHandler)

	tests := []string{
		"departments/get",
		"departments/get.go",
		"/departments/get",
		"./departments/get",
	}
	for _, p := range tests {
		if _, ok := reg.Lookup(p); !ok {
			t.Errorf("Lookup(%q) missed a registration under an equivalent path", p)
		}
	}

	if _, ok := reg.Lookup("departments/post"); ok {
		t.Error("Lookup(departments/post) should miss")
	}
}

func TestRegistryPathsSorted(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterFunc("b/get", nopHandler)
	reg.RegisterFunc("a/get", nopHandler)
	reg.RegisterFunc("c/post", nopHandler)

	paths := reg.Paths()
	want := []string{"a/get", "b/get", "c/post"}
	if len(paths) != len(want) {
		t.Fatalf("len(Paths()) = %d, want %d", len(paths), len(want))
	}
	for i := range want {
		if paths[i] != want[i] {
			t.Errorf("Paths()[%d] = %q, want %q", i, paths[i], want[i])
		}
	}
}

func TestRegisterPanics(t *testing.T) {
	tests := []struct {
		name string
		do   func(reg *Registry)
	}{
		{"nil module", func(reg *Registry) { reg.Register("a/get", nil) }},
		{"missing handler", func(reg *Registry) { reg.Register("a/get", &Module{}) }},
		{"duplicate path", func(reg *Registry) {
			reg.RegisterFunc("a/get", nopHandler)
			reg.RegisterFunc("a/get.go", nopHandler)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: Register did not panic", tt.name)
				}
			}()
			tt.do(NewRegistry())
		})
	}
}
