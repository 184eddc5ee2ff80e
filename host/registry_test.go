package host

import (
	"errors"
	"testing"
)

func newTestModel(slug string) Model {
	return Model{
		Slug: slug,
		Name: slug,
		New: func(ctx Context) (Module, error) {
			return newCounter(ctx)
		},
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(newTestModel("B")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if err := reg.Register(newTestModel("A")); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	m, err := reg.Lookup("B")
	if err != nil {
		t.Fatalf("Lookup() error = %v", err)
	}

	if m.Slug != "B" {
		t.Fatalf("Lookup().Slug = %q, want B", m.Slug)
	}

	models := reg.Models()
	if len(models) != 2 || models[0].Slug != "A" || models[1].Slug != "B" {
		t.Fatalf("Models() = %v, want [A B]", models)
	}
}

func TestRegistryErrors(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(newTestModel("X"))

	if err := reg.Register(newTestModel("X")); !errors.Is(err, ErrDuplicateModel) {
		t.Fatalf("Register(duplicate) error = %v, want ErrDuplicateModel", err)
	}

	if _, err := reg.Lookup("missing"); !errors.Is(err, ErrUnknownModel) {
		t.Fatalf("Lookup(missing) error = %v, want ErrUnknownModel", err)
	}

	if err := reg.Register(Model{Slug: ""}); err == nil {
		t.Fatal("Register(empty slug) expected error")
	}

	if err := reg.Register(Model{Slug: "Y"}); err == nil {
		t.Fatal("Register(nil factory) expected error")
	}
}

func TestMustRegisterPanicsOnDuplicate(t *testing.T) {
	reg := NewRegistry()
	reg.MustRegister(newTestModel("X"))

	defer func() {
		if recover() == nil {
			t.Fatal("MustRegister(duplicate) did not panic")
		}
	}()

	reg.MustRegister(newTestModel("X"))
}
