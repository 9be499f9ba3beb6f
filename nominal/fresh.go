package nominal

// FreshName returns a name that is not a member of scope: 0 for the
// empty scope, otherwise one past the largest identifier in scope.
//
// Identifiers are never reclaimed, so they grow with the number of
// binders crossed. That is deliberate: monotone allocation makes
// freshness a single comparison instead of a search, and identifiers
// are process-local — they are never serialized or compared across
// unrelated scopes.
func FreshName(scope Scope) Name {
	if max, ok := scope.max(); ok {
		return Name{id: max + 1}
	}
	return Name{id: 0}
}

// FreshBinder allocates a fresh binder for scope and returns it together
// with the extended scope. The binder's identifier is distinct from
// every member of scope by construction.
func FreshBinder(scope Scope) (NameBinder, Scope) {
	b := NameBinder{name: FreshName(scope)}
	return b, scope.Extend(b)
}

// WithFreshBinder allocates a fresh binder for scope and passes it,
// with the extended scope, to f.
func WithFreshBinder(scope Scope, f func(NameBinder, Scope)) {
	f(FreshBinder(scope))
}

// Refreshed returns a binder introducing name into scope, allocating a
// fresh identifier only if name already appears there; otherwise the
// binder reuses name unchanged. This no-op path is what keeps
// substitution cheap when binders do not clash.
func Refreshed(scope Scope, name Name) (NameBinder, Scope) {
	if scope.Member(name) {
		return FreshBinder(scope)
	}
	b := NameBinder{name: name}
	return b, scope.Extend(b)
}

// WithRefreshed is Refreshed in continuation style.
func WithRefreshed(scope Scope, name Name, f func(NameBinder, Scope)) {
	f(Refreshed(scope, name))
}
