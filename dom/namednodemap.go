package dom

// NamedNodeMap represents a collection of Attr objects, identified by
// expanded name (namespace URI, local name) rather than by position. It
// backs Element.Attributes and the entities/notations exposed on a
// DocumentType's internal subset.
type NamedNodeMap struct {
	ownerElement *Element
	attrs        []*Attr
}

// newNamedNodeMap creates a new NamedNodeMap for the given element.
func newNamedNodeMap(element *Element) *NamedNodeMap {
	return &NamedNodeMap{
		ownerElement: element,
		attrs:        make([]*Attr, 0),
	}
}

// Length returns the number of attributes in the map.
func (nm *NamedNodeMap) Length() int {
	return len(nm.attrs)
}

// Item returns the attribute at the given index, or nil if out of bounds.
func (nm *NamedNodeMap) Item(index int) *Attr {
	if index < 0 || index >= len(nm.attrs) {
		return nil
	}
	return nm.attrs[index]
}

// GetNamedItem returns the attribute with the given qualified name, or nil.
func (nm *NamedNodeMap) GetNamedItem(name string) *Attr {
	for _, attr := range nm.attrs {
		if attr.name == name {
			return attr
		}
	}
	return nil
}

// GetNamedItemNS returns the attribute with the given expanded name, or nil.
func (nm *NamedNodeMap) GetNamedItemNS(namespaceURI, localName string) *Attr {
	for _, attr := range nm.attrs {
		if attr.namespaceURI == namespaceURI && attr.localName == localName {
			return attr
		}
	}
	return nil
}

// SetNamedItem adds attr to the map, or replaces the existing attribute
// sharing its expanded name. Returns the replaced attribute, or nil if none.
// Per DOM Core Level 2, setting an attribute already owned by a different
// element is an InUseAttributeError; the caller (Element.SetAttributeNode)
// is responsible for raising it before calling this.
func (nm *NamedNodeMap) SetNamedItem(attr *Attr) *Attr {
	return nm.setAttr(attr)
}

// SetNamedItemNS behaves identically to SetNamedItem; attributes are always
// keyed by expanded name regardless of which method added them.
func (nm *NamedNodeMap) SetNamedItemNS(attr *Attr) *Attr {
	return nm.setAttr(attr)
}

// SetAttr adds attr to the map (or replaces the attribute sharing its
// expanded name) without the InUseAttributeError check Element performs;
// callers that need that check should do it before calling SetAttr.
func (nm *NamedNodeMap) SetAttr(attr *Attr) *Attr {
	return nm.setAttr(attr)
}

func (nm *NamedNodeMap) setAttr(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}

	attr.ownerElement = nm.ownerElement

	for i, existing := range nm.attrs {
		if existing.namespaceURI == attr.namespaceURI && existing.localName == attr.localName {
			nm.attrs[i] = attr
			existing.ownerElement = nil
			return existing
		}
	}

	nm.attrs = append(nm.attrs, attr)
	return nil
}

// RemoveNamedItem removes the attribute with the given qualified name.
// Returns the removed attribute, or nil if none existed.
func (nm *NamedNodeMap) RemoveNamedItem(name string) *Attr {
	for i, attr := range nm.attrs {
		if attr.name == name {
			nm.attrs = append(nm.attrs[:i], nm.attrs[i+1:]...)
			attr.ownerElement = nil
			return attr
		}
	}
	return nil
}

// RemoveNamedItemNS removes the attribute with the given expanded name.
func (nm *NamedNodeMap) RemoveNamedItemNS(namespaceURI, localName string) *Attr {
	for i, attr := range nm.attrs {
		if attr.namespaceURI == namespaceURI && attr.localName == localName {
			nm.attrs = append(nm.attrs[:i], nm.attrs[i+1:]...)
			attr.ownerElement = nil
			return attr
		}
	}
	return nil
}

// GetValue returns the value of the attribute with the given qualified
// name, or the empty string if it is not present.
func (nm *NamedNodeMap) GetValue(name string) string {
	if attr := nm.GetNamedItem(name); attr != nil {
		return attr.value
	}
	return ""
}

// SetValue sets the value of the attribute with the given qualified name,
// creating it if it does not already exist.
func (nm *NamedNodeMap) SetValue(name, value string) {
	if attr := nm.GetNamedItem(name); attr != nil {
		attr.SetValue(value)
		return
	}
	nm.setAttr(NewAttr(name, value))
}

// Has returns true if an attribute with the given qualified name exists.
func (nm *NamedNodeMap) Has(name string) bool {
	return nm.GetNamedItem(name) != nil
}

// HasNS returns true if an attribute with the given expanded name exists.
func (nm *NamedNodeMap) HasNS(namespaceURI, localName string) bool {
	return nm.GetNamedItemNS(namespaceURI, localName) != nil
}

// Names returns the qualified names of every attribute in the map, in
// document order.
func (nm *NamedNodeMap) Names() []string {
	names := make([]string, len(nm.attrs))
	for i, attr := range nm.attrs {
		names[i] = attr.name
	}
	return names
}

// OwnerElement returns the element that owns this NamedNodeMap.
func (nm *NamedNodeMap) OwnerElement() *Element {
	return nm.ownerElement
}

// Clone creates an unattached deep copy of this NamedNodeMap for newOwner.
func (nm *NamedNodeMap) Clone(newOwner *Element) *NamedNodeMap {
	clone := newNamedNodeMap(newOwner)
	for _, attr := range nm.attrs {
		newAttr := attr.CloneAttr()
		newAttr.ownerElement = newOwner
		clone.attrs = append(clone.attrs, newAttr)
	}
	return clone
}
