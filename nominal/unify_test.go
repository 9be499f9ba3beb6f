package nominal

import "testing"

func TestUnifyBindersIdentical(t *testing.T) {
	scope := EmptyScope()
	b, _ := FreshBinder(scope)
	res := UnifyBinders(scope, b, b)
	if res.Outcome != Identical {
		t.Errorf("unifying a binder with itself: %v, want identical", res.Outcome)
	}
	if res.Pattern.(NameBinder) != b {
		t.Errorf("canonical pattern = %v, want %v", res.Pattern, b)
	}
}

func TestUnifyBindersTieBreak(t *testing.T) {
	// The smaller identifier is canonical; the other side is renamed to
	// it. Two binders extending the same scope independently.
	scope := EmptyScope()
	small := NameBinder{name: Name{id: 0}}
	big := NameBinder{name: Name{id: 1}}

	res := UnifyBinders(scope, small, big)
	if res.Outcome != RenameRight {
		t.Errorf("unify(0, 1) = %v, want rename-right", res.Outcome)
	}
	if res.Pattern.(NameBinder) != small {
		t.Errorf("canonical = %v, want %v", res.Pattern, small)
	}
	if got := res.renameR[big.name]; got != small.name {
		t.Errorf("right renaming maps %v to %v, want %v", big.name, got, small.name)
	}
	if len(res.renameL) != 0 {
		t.Error("rename-right result carries a left renaming")
	}

	res = UnifyBinders(scope, big, small)
	if res.Outcome != RenameLeft {
		t.Errorf("unify(1, 0) = %v, want rename-left", res.Outcome)
	}
	if res.Pattern.(NameBinder) != small {
		t.Errorf("canonical = %v, want %v", res.Pattern, small)
	}
}

func TestUnifyBindersRenameBoth(t *testing.T) {
	// Neither identifier is reusable when both already belong to the
	// outer scope; a fresh identifier is picked for both sides.
	b0, s1 := FreshBinder(EmptyScope())
	b1, s2 := FreshBinder(s1)

	res := UnifyBinders(s2, b0, b1)
	if res.Outcome != RenameBoth {
		t.Fatalf("unify of scope-clashing binders = %v, want rename-both", res.Outcome)
	}
	fresh := res.Pattern.(NameBinder).Name()
	if s2.Member(fresh) {
		t.Errorf("rename-both picked non-fresh name %v for %v", fresh, s2)
	}
	if got := res.renameL[b0.Name()]; got != fresh {
		t.Errorf("left renaming maps to %v, want %v", got, fresh)
	}
	if got := res.renameR[b1.Name()]; got != fresh {
		t.Errorf("right renaming maps to %v, want %v", got, fresh)
	}
}

func TestUnifyPatternShapes(t *testing.T) {
	scope := EmptyScope()
	b := NameBinder{name: Name{id: 0}}
	pair := NameBinderList{
		NameBinder{name: Name{id: 0}},
		NameBinder{name: Name{id: 1}},
	}

	for _, test := range []struct {
		desc string
		l, r Pattern
		want UnifyOutcome
	}{
		{"wildcard/wildcard", WildcardPattern{}, WildcardPattern{}, Identical},
		{"wildcard/binder", WildcardPattern{}, b, NotUnifiable},
		{"binder/pair", b, pair, NotUnifiable},
		{"pair/binder", pair, b, NotUnifiable},
		{"pair/pair", pair, pair, Identical},
		{"pair/singleton list", pair, NameBinderList{b}, NotUnifiable},
	} {
		if got := UnifyPatterns(scope, test.l, test.r).Outcome; got != test.want {
			t.Errorf("%s: UnifyPatterns = %v, want %v", test.desc, got, test.want)
		}
	}
}

func TestUnifyListMerge(t *testing.T) {
	scope := EmptyScope()

	// Component outcomes rename-right then rename-left merge to
	// rename-both for the composite.
	l := NameBinderList{
		NameBinder{name: Name{id: 0}}, // canonical (smaller)
		NameBinder{name: Name{id: 5}},
	}
	r := NameBinderList{
		NameBinder{name: Name{id: 3}},
		NameBinder{name: Name{id: 4}}, // canonical (smaller)
	}
	res := UnifyPatterns(scope, l, r)
	if res.Outcome != RenameBoth {
		t.Fatalf("mixed-direction list unification = %v, want rename-both", res.Outcome)
	}
	merged := res.Pattern.(NameBinderList)
	if len(merged) != 2 || merged[0].Name().ID() != 0 || merged[1].Name().ID() != 4 {
		t.Errorf("merged pattern = %v, want [@0 @4]", merged)
	}

	// All-identical components stay identical.
	res = UnifyPatterns(scope, l, l)
	if res.Outcome != Identical {
		t.Errorf("self unification of a list = %v, want identical", res.Outcome)
	}
}

func TestMergeOutcomes(t *testing.T) {
	for _, test := range []struct {
		a, b, want UnifyOutcome
	}{
		{Identical, Identical, Identical},
		{Identical, RenameRight, RenameRight},
		{RenameLeft, Identical, RenameLeft},
		{RenameLeft, RenameLeft, RenameLeft},
		{RenameRight, RenameRight, RenameRight},
		{RenameLeft, RenameRight, RenameBoth},
		{RenameRight, RenameLeft, RenameBoth},
		{RenameBoth, RenameLeft, RenameBoth},
		{Identical, NotUnifiable, NotUnifiable},
		{NotUnifiable, RenameBoth, NotUnifiable},
	} {
		if got := mergeOutcomes(test.a, test.b); got != test.want {
			t.Errorf("mergeOutcomes(%v, %v) = %v, want %v", test.a, test.b, got, test.want)
		}
	}
}

func TestBinderSetList(t *testing.T) {
	l := NameBinderList{
		NameBinder{name: Name{id: 3}},
		NameBinder{name: Name{id: 1}},
		NameBinder{name: Name{id: 2}},
	}
	set := l.Set()
	if set.Len() != 3 {
		t.Fatalf("set.Len() = %d, want 3", set.Len())
	}
	for _, b := range l {
		if !set.Member(b.Name()) {
			t.Errorf("set missing %v", b)
		}
	}
	// set → list is ascending, and round-trips to the same set.
	back := set.List()
	want := []int{1, 2, 3}
	for i, b := range back {
		if b.Name().ID() != want[i] {
			t.Errorf("set.List()[%d] = %v, want @%d", i, b, want[i])
		}
	}
	if u := set.Union(back.Set()); u.Len() != 3 {
		t.Errorf("idempotent union has Len %d, want 3", u.Len())
	}
}
