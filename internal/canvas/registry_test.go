package canvas

import (
	"strings"
	"testing"
)

func TestBuiltinsStableOrder(t *testing.T) {
	first := Builtins()
	second := Builtins()

	if len(first) == 0 {
		t.Fatalf("expected builtin placeholders")
	}
	if first[0].ID != "name" {
		t.Fatalf("expected first builtin to be name, got %s", first[0].ID)
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Fatalf("builtin order must be stable, index %d: %s vs %s", i, first[i].ID, second[i].ID)
		}
	}

	// 返回的是拷贝，调用方修改不影响目录
	first[0].Name = "mutated"
	if Builtins()[0].Name == "mutated" {
		t.Fatalf("Builtins must return a copy")
	}
}

func TestBuiltinsCoverAllTypes(t *testing.T) {
	types := make(map[PlaceholderType]bool)
	for _, def := range Builtins() {
		types[def.Type] = true
	}
	for _, want := range []PlaceholderType{TypeText, TypeDate, TypeNumber, TypeBoolean, TypeSelect} {
		if !types[want] {
			t.Fatalf("missing builtin of type %s", want)
		}
	}
}

func TestCreateCustomSameNameDistinctIDs(t *testing.T) {
	reg := NewRegistry()

	a := reg.CreateCustom("Case Reference", TypeText)
	b := reg.CreateCustom("Case Reference", TypeText)

	if a.ID == b.ID {
		t.Fatalf("custom placeholders must get distinct ids")
	}
	if a.Name != b.Name {
		t.Fatalf("name is not a uniqueness key")
	}
	if !strings.HasPrefix(a.ID, customIDPrefix) || !strings.HasPrefix(b.ID, customIDPrefix) {
		t.Fatalf("custom ids must carry the custom prefix: %s %s", a.ID, b.ID)
	}
	if len(reg.Customs()) != 2 {
		t.Fatalf("expected 2 customs, got %d", len(reg.Customs()))
	}
}

func TestCreateCustomDefaultType(t *testing.T) {
	reg := NewRegistry()
	def := reg.CreateCustom("Notes", "")
	if def.Type != TypeText {
		t.Fatalf("expected default type text, got %s", def.Type)
	}
}

func TestResolve(t *testing.T) {
	reg := NewRegistry()
	custom := reg.CreateCustom("Reference", TypeText)

	if def, ok := reg.Resolve("name"); !ok || def.Name != "Full Name" {
		t.Fatalf("builtin resolve failed: %+v ok=%v", def, ok)
	}
	if def, ok := reg.Resolve(custom.ID); !ok || def.Name != "Reference" {
		t.Fatalf("custom resolve failed: %+v ok=%v", def, ok)
	}
	if _, ok := reg.Resolve("no-such-id"); ok {
		t.Fatalf("unknown id must not resolve")
	}
}

func TestInstantiate(t *testing.T) {
	reg := NewRegistry()
	def, _ := reg.Resolve("patientName")

	obj := reg.Instantiate(def)
	if obj.Kind != KindPlaceholderText {
		t.Fatalf("expected placeholder-text kind, got %s", obj.Kind)
	}
	if obj.Text != "{{Patient Name}}" {
		t.Fatalf("unexpected token text: %q", obj.Text)
	}
	if !obj.Metadata.IsPlaceholder || obj.Metadata.PlaceholderID != "patientName" || obj.Metadata.PlaceholderType != TypeText {
		t.Fatalf("unexpected metadata: %+v", obj.Metadata)
	}
	if obj.Style.Fill == "" || obj.Style.Stroke == "" {
		t.Fatalf("placeholder must carry accent styling")
	}
	if obj.ID == "" {
		t.Fatalf("instantiated object must carry an id")
	}
}

func TestNewRegistryWith(t *testing.T) {
	defs := []PlaceholderDefinition{
		{ID: "name", Name: "Full Name", Type: TypeText}, // 内置，不重复收录
		{ID: "custom-abc", Name: "Reference", Type: TypeText},
	}
	reg := NewRegistryWith(defs)

	if len(reg.Customs()) != 1 {
		t.Fatalf("expected 1 custom after restore, got %d", len(reg.Customs()))
	}
	if def, ok := reg.Resolve("custom-abc"); !ok || def.Name != "Reference" {
		t.Fatalf("restored custom must resolve: %+v ok=%v", def, ok)
	}
}
