// Package sortattr orders an element's attributes (and the synthesized
// namespace-declaration pseudo-attributes standing in for them) the way
// Exclusive Canonical XML requires.
package sortattr

import (
	"github.com/xmldom/dom/c14n/internal/stack"
	"github.com/xmldom/dom/dom"
)

// Attr is one node to render on an element's attribute axis: either a real
// attribute, or a synthesized "xmlns"/"xmlns:prefix" namespace declaration
// that did not necessarily exist on the source element.
type Attr struct {
	Prefix    string // "" for the default namespace declaration or an unprefixed attribute
	LocalName string
	Value     string
	IsNSDecl  bool
}

// SortAttr sorts Attrs in compliance with the c14n specification's
// document-order rules for the namespace and attribute axes.
type SortAttr struct {
	Stack *stack.Stack
	Attrs []Attr
}

func (s SortAttr) Len() int      { return len(s.Attrs) }
func (s SortAttr) Swap(i, j int) { s.Attrs[i], s.Attrs[j] = s.Attrs[j], s.Attrs[i] }

// Less implements the ordering from
// https://www.w3.org/TR/2001/REC-xml-c14n-20010315#DocumentOrder: namespace
// nodes sort before attribute nodes, the default namespace node sorts
// first among namespace nodes, namespace nodes are otherwise ordered by
// prefix, and attribute nodes are ordered by namespace URI then local name.
func (s SortAttr) Less(i, j int) bool {
	a, b := s.Attrs[i], s.Attrs[j]

	if a.IsNSDecl && a.Prefix == "" {
		return true
	}
	if b.IsNSDecl && b.Prefix == "" {
		return false
	}

	if a.IsNSDecl && !b.IsNSDecl {
		return true
	}
	if !a.IsNSDecl && b.IsNSDecl {
		return false
	}

	if a.IsNSDecl && b.IsNSDecl {
		return a.Prefix < b.Prefix
	}

	uriA, _ := s.Stack.Get(a.Prefix)
	uriB, _ := s.Stack.Get(b.Prefix)
	if uriA != uriB {
		return uriA < uriB
	}
	return a.LocalName < b.LocalName
}

// AttrOf converts a real dom.Attr into the Attr shape SortAttr operates on.
func AttrOf(a *dom.Attr) Attr {
	return Attr{Prefix: a.Prefix(), LocalName: a.LocalName(), Value: a.Value()}
}
