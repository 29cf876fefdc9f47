package registry

import "github.com/aretw0/recipebook/pkg/domain"

// Hooks defines callbacks for registry observability.
// Any field may be nil. Callbacks run outside the registry lock.
type Hooks struct {
	OnAdd    func(recipe domain.Recipe, replaced bool, size int)
	OnReject func(recipe domain.Recipe, reason error)
	OnClear  func(removed int)
	OnLookup func(name string, found bool)
}

// Combine returns Hooks that call every non-nil callback of each hs, in order.
func Combine(hs ...Hooks) Hooks {
	return Hooks{
		OnAdd: func(recipe domain.Recipe, replaced bool, size int) {
			for _, h := range hs {
				h.add(recipe, replaced, size)
			}
		},
		OnReject: func(recipe domain.Recipe, reason error) {
			for _, h := range hs {
				h.reject(recipe, reason)
			}
		},
		OnClear: func(removed int) {
			for _, h := range hs {
				h.clear(removed)
			}
		},
		OnLookup: func(name string, found bool) {
			for _, h := range hs {
				h.lookup(name, found)
			}
		},
	}
}

func (h Hooks) add(recipe domain.Recipe, replaced bool, size int) {
	if h.OnAdd != nil {
		h.OnAdd(recipe, replaced, size)
	}
}

func (h Hooks) reject(recipe domain.Recipe, reason error) {
	if h.OnReject != nil {
		h.OnReject(recipe, reason)
	}
}

func (h Hooks) clear(removed int) {
	if h.OnClear != nil {
		h.OnClear(removed)
	}
}

func (h Hooks) lookup(name string, found bool) {
	if h.OnLookup != nil {
		h.OnLookup(name, found)
	}
}
