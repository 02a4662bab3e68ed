package rjson

import "github.com/pkg/errors"

// reserveHook models allocation failure for the mutation API. When non-nil
// it runs before any container mutation; a non-nil return aborts the append
// with the container untouched and ownership of the value still with the
// caller. Only tests set it.
var reserveHook func(extra int) error

func reserve(extra int) error {
	if reserveHook == nil {
		return nil
	}
	return reserveHook(extra)
}

// AppendElement appends child as the new last element of the array n.
// On success n takes exclusive ownership of child. On failure n is left
// unmodified and the caller keeps ownership; a node that is already
// attached to a parent is rejected, the tree stays acyclic by construction.
func (n *Node) AppendElement(child *Node) error {
	if child == nil {
		return errors.Wrap(ErrNilNode, "append element")
	}
	if n.Type() != Array {
		return errors.Wrapf(ErrNotArrayOrObject, "append element to %s", n.Type())
	}
	if child.parent != nil {
		return errors.Wrap(ErrAttached, "append element")
	}
	if err := reserve(1); err != nil {
		return errors.Wrapf(ErrAlloc, "growing array: %v", err)
	}
	child.parent = n
	n.value = append(n.value.([]*Node), child)
	return nil
}

// AppendField appends the member (key, child) to the object n. Keys need
// not be unique. The same all-or-nothing contract as AppendElement holds:
// on failure n is unmodified and both key and child remain the caller's.
func (n *Node) AppendField(key string, child *Node) error {
	if child == nil {
		return errors.Wrapf(ErrNilNode, "append field %q", key)
	}
	if n.Type() != Object {
		return errors.Wrapf(ErrNotArrayOrObject, "append field to %s", n.Type())
	}
	if child.parent != nil {
		return errors.Wrapf(ErrAttached, "append field %q", key)
	}
	if err := reserve(1); err != nil {
		return errors.Wrapf(ErrAlloc, "growing object: %v", err)
	}
	child.parent = n
	n.value = append(n.value.([]KeyNode), KeyNode{Key: key, Node: child})
	return nil
}
