package ast

import "testing"

func TestEveryKindHasFields(t *testing.T) {
	nodes := []Node{
		&Module{}, &FuncDef{}, &FuncArg{}, &VarDecl{}, &Assign{}, &Return{},
		&If{}, &While{}, &ExprStmt{}, &Name{}, &Constant{}, &BinOp{},
		&Call{}, &ListLit{}, &GetAttr{},
	}
	for _, n := range nodes {
		if Fields(n.Kind()) == nil {
			t.Errorf("kind %s has no field table entry", n.Kind())
		}
	}
}

func TestFieldsUnknownKind(t *testing.T) {
	if got := Fields("Bogus"); got != nil {
		t.Errorf("Fields(Bogus) = %v, want nil", got)
	}
}

func TestFieldOrderAndGetters(t *testing.T) {
	n := &VarDecl{
		Name:      "x",
		Type:      &Name{ID: "int"},
		Value:     7,
		Loc:       Loc{Line: 1, Col: 1},
		TargetLoc: Loc{Line: 1, Col: 5},
	}

	fields := Fields(n.Kind())
	wantOrder := []string{"name", "type", "value", "loc", "target_loc"}
	if len(fields) != len(wantOrder) {
		t.Fatalf("VarDecl has %d fields, want %d", len(fields), len(wantOrder))
	}
	for i, f := range fields {
		if f.Name != wantOrder[i] {
			t.Errorf("field[%d] = %s, want %s", i, f.Name, wantOrder[i])
		}
	}

	if got := fields[0].Get(n); got != "x" {
		t.Errorf("name getter = %v, want x", got)
	}
	if got := fields[2].Get(n); got != 7 {
		t.Errorf("value getter = %v, want 7", got)
	}
	if got := fields[4].Get(n).(Loc); got.Col != 5 {
		t.Errorf("target_loc getter col = %d, want 5", got.Col)
	}
}

func TestSequenceFieldsWidenToAnySlice(t *testing.T) {
	mod := &Module{Name: "m", Decls: []Node{&ExprStmt{Value: 1}}}
	decls := Fields("Module")[1].Get(mod)

	items, ok := decls.([]any)
	if !ok {
		t.Fatalf("decls getter returned %T, want []any", decls)
	}
	if len(items) != 1 {
		t.Fatalf("len = %d, want 1", len(items))
	}
	if _, ok := items[0].(*ExprStmt); !ok {
		t.Errorf("items[0] is %T, want *ExprStmt", items[0])
	}
}

func TestDisplayColor(t *testing.T) {
	n := &Constant{Value: 1}
	if n.DisplayColor() != "" {
		t.Errorf("fresh node has color %q", n.DisplayColor())
	}
	n.SetColor("yellow")
	if n.DisplayColor() != "yellow" {
		t.Errorf("DisplayColor() = %q, want yellow", n.DisplayColor())
	}
}

func TestLocString(t *testing.T) {
	if got := (Loc{Line: 3, Col: 14}).String(); got != "3:14" {
		t.Errorf("Loc.String() = %q, want 3:14", got)
	}
}
