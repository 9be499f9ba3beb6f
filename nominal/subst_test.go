package nominal

import "testing"

func TestIdentitySubst(t *testing.T) {
	b, _ := FreshBinder(EmptyScope())
	s := IdentitySubst()
	got := s.Lookup(b.Name())
	v, ok := got.(*Var)
	if !ok || v.Name != b.Name() {
		t.Errorf("IdentitySubst().Lookup(%v) = %v, want free Var", b.Name(), got)
	}
	if s.Len() != 0 {
		t.Errorf("IdentitySubst().Len() = %d, want 0", s.Len())
	}
}

func TestSubstAdd(t *testing.T) {
	b0, s1 := FreshBinder(EmptyScope())
	b1, _ := FreshBinder(s1)

	repl := &Var{Name: b1.Name()}
	s := IdentitySubst().Add(b0, repl)
	if got := s.Lookup(b0.Name()); got != repl {
		t.Errorf("Lookup after Add = %v, want %v", got, repl)
	}
	// Other names are unaffected.
	if v, ok := s.Lookup(b1.Name()).(*Var); !ok || v.Name != b1.Name() {
		t.Error("Add affected an unrelated name")
	}
}

func TestSubstsAreValues(t *testing.T) {
	b0, s1 := FreshBinder(EmptyScope())
	b1, _ := FreshBinder(s1)

	base := IdentitySubst().Add(b0, &Var{Name: b1.Name()})
	ext := base.Add(b1, &Var{Name: b0.Name()})

	if base.Len() != 1 {
		t.Errorf("extending a substitution modified the original: Len = %d", base.Len())
	}
	if ext.Len() != 2 {
		t.Errorf("ext.Len() = %d, want 2", ext.Len())
	}
}

func TestAddRenameNoop(t *testing.T) {
	// Renaming a binder to its own identifier must remove the entry,
	// not insert an identity mapping: non-clashing binder crossings
	// must not grow the working set.
	b0, s1 := FreshBinder(EmptyScope())
	b1, _ := FreshBinder(s1)

	s := IdentitySubst().AddRename(b0, b0.Name())
	if s.Len() != 0 {
		t.Errorf("identity AddRename grew the substitution: Len = %d", s.Len())
	}

	// The no-op rule also removes a previously added entry.
	s = IdentitySubst().Add(b0, &Var{Name: b1.Name()}).AddRename(b0, b0.Name())
	if s.Len() != 0 {
		t.Errorf("AddRename did not remove the shadowed entry: Len = %d", s.Len())
	}
	if v, ok := s.Lookup(b0.Name()).(*Var); !ok || v.Name != b0.Name() {
		t.Error("renamed name is not free after identity AddRename")
	}
}

func TestAddRename(t *testing.T) {
	b0, s1 := FreshBinder(EmptyScope())
	b1, _ := FreshBinder(s1)

	s := IdentitySubst().AddRename(b0, b1.Name())
	v, ok := s.Lookup(b0.Name()).(*Var)
	if !ok || v.Name != b1.Name() {
		t.Errorf("Lookup after AddRename = %v, want Var %v", s.Lookup(b0.Name()), b1.Name())
	}
}

func TestSink(t *testing.T) {
	b0, _ := FreshBinder(EmptyScope())
	s := IdentitySubst().Add(b0, &Var{Name: b0.Name()})
	if got := s.Sink(); got.Len() != s.Len() {
		t.Error("Sink is not the identity")
	}
}
