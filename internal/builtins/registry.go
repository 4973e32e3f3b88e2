package builtins

import "github.com/soapkit/xsd/qname"

// Registry maps qualified type names to descriptors. It is immutable once
// built and safe for concurrent readers.
type Registry[T any] struct {
	byName  map[qname.QName]T
	ordered []T
}

// New builds a registry from items in order. When two items share a name
// the first one wins.
func New[T any](items []T, name func(T) qname.QName) *Registry[T] {
	byName := make(map[qname.QName]T, len(items))
	ordered := make([]T, 0, len(items))

	for _, item := range items {
		key := name(item)
		if key.IsZero() {
			continue
		}
		if _, exists := byName[key]; exists {
			continue
		}
		byName[key] = item
		ordered = append(ordered, item)
	}

	return &Registry[T]{
		byName:  byName,
		ordered: ordered,
	}
}

// Get returns the descriptor registered under name.
func (r *Registry[T]) Get(name qname.QName) (T, bool) {
	item, ok := r.byName[name]
	return item, ok
}

// GetNS returns the descriptor for an expanded name.
func (r *Registry[T]) GetNS(namespace, local string) (T, bool) {
	return r.Get(qname.New(namespace, local))
}

// GetBuiltin returns the descriptor for a local name in the XML Schema
// namespace.
func (r *Registry[T]) GetBuiltin(name TypeName) (T, bool) {
	return r.GetNS(XSDNamespace, string(name))
}

// MustGet returns the descriptor and panics when unknown.
func (r *Registry[T]) MustGet(name qname.QName) T {
	item, ok := r.Get(name)
	if ok {
		return item
	}
	panic("builtins: unknown type " + name.String())
}

// Contains reports whether name is registered.
func (r *Registry[T]) Contains(name qname.QName) bool {
	_, ok := r.byName[name]
	return ok
}

// List returns descriptors in registration order.
func (r *Registry[T]) List() []T {
	if len(r.ordered) == 0 {
		return nil
	}
	items := make([]T, len(r.ordered))
	copy(items, r.ordered)
	return items
}
