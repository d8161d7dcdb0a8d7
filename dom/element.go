package dom

import "strings"

// Element represents an element node in the DOM tree.
type Element Node

// AsNode returns the underlying Node.
func (e *Element) AsNode() *Node {
	return (*Node)(e)
}

// NodeType returns ElementNode (1).
func (e *Element) NodeType() NodeType {
	return ElementNode
}

// NodeName returns the tag name.
func (e *Element) NodeName() string {
	return e.TagName()
}

// TagName returns the qualified name of the element as it appeared in the
// source, or as given to createElement/createElementNS.
func (e *Element) TagName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.tagName
	}
	return e.AsNode().nodeName
}

// LocalName returns the local part of the element's qualified name.
func (e *Element) LocalName() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.localName
	}
	return e.AsNode().nodeName
}

// NamespaceURI returns the namespace URI of the element, or "" if none.
func (e *Element) NamespaceURI() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.namespaceURI
	}
	return ""
}

// Prefix returns the namespace prefix of the element, or "" if none.
func (e *Element) Prefix() string {
	if e.AsNode().elementData != nil {
		return e.AsNode().elementData.prefix
	}
	return ""
}

// Id returns the id attribute value.
func (e *Element) Id() string {
	return e.GetAttribute("id")
}

// SetId sets the id attribute value.
func (e *Element) SetId(id string) {
	e.SetAttribute("id", id)
}

// Attributes returns the NamedNodeMap of attributes.
func (e *Element) Attributes() *NamedNodeMap {
	if e.AsNode().elementData == nil {
		e.AsNode().elementData = &elementData{}
	}
	if e.AsNode().elementData.attributes == nil {
		e.AsNode().elementData.attributes = newNamedNodeMap(e)
	}
	return e.AsNode().elementData.attributes
}

// GetAttribute returns the value of the attribute with the given qualified
// name, or "" if it is not present.
func (e *Element) GetAttribute(name string) string {
	return e.Attributes().GetValue(name)
}

// GetAttributeNS returns the value of the attribute with the given
// namespace URI and local name, or "" if it is not present.
func (e *Element) GetAttributeNS(namespaceURI, localName string) string {
	if attr := e.Attributes().GetNamedItemNS(namespaceURI, localName); attr != nil {
		return attr.value
	}
	return ""
}

// SetAttribute sets the value of the attribute with the given qualified
// name, creating it if it does not already exist.
func (e *Element) SetAttribute(name, value string) {
	e.SetAttributeWithError(name, value)
}

// SetAttributeWithError sets the value of the attribute with the given
// qualified name. Returns InvalidCharacterError if name is not a valid
// XML Name.
func (e *Element) SetAttributeWithError(name, value string) error {
	if !IsXMLName(name) {
		return ErrInvalidCharacter("'" + name + "' is not a valid attribute name")
	}
	e.Attributes().SetValue(name, value)
	return nil
}

// SetAttributeNS sets the value of the attribute with the given namespace
// URI and qualified name.
func (e *Element) SetAttributeNS(namespaceURI, qualifiedName, value string) {
	e.SetAttributeNSWithError(namespaceURI, qualifiedName, value)
}

// SetAttributeNSWithError sets the value of the attribute with the given
// namespace URI and qualified name, validating and splitting the qualified
// name per the DOM "validate and extract" algorithm.
func (e *Element) SetAttributeNSWithError(namespaceURI, qualifiedName, value string) error {
	namespace, prefix, localName, err := ValidateAndExtractQualifiedName(namespaceURI, qualifiedName)
	if err != nil {
		return err
	}

	if existing := e.Attributes().GetNamedItemNS(namespace, localName); existing != nil {
		existing.SetValue(value)
		return nil
	}

	attr := &Attr{
		namespaceURI: namespace,
		prefix:       prefix,
		localName:    localName,
		name:         qualifiedName,
		value:        value,
		specified:    true,
	}
	e.Attributes().SetAttr(attr)
	return nil
}

// HasAttribute returns true if the element has the given qualified name.
func (e *Element) HasAttribute(name string) bool {
	return e.Attributes().Has(name)
}

// HasAttributeNS returns true if the element has an attribute with the
// given namespace URI and local name.
func (e *Element) HasAttributeNS(namespaceURI, localName string) bool {
	return e.Attributes().HasNS(namespaceURI, localName)
}

// RemoveAttribute removes the attribute with the given qualified name.
func (e *Element) RemoveAttribute(name string) {
	e.Attributes().RemoveNamedItem(name)
}

// RemoveAttributeNS removes the attribute with the given namespace URI and
// local name.
func (e *Element) RemoveAttributeNS(namespaceURI, localName string) {
	e.Attributes().RemoveNamedItemNS(namespaceURI, localName)
}

// ToggleAttribute toggles the presence of an attribute, returning true if
// it is present after the call. If force is given, it forces the
// attribute to be added (true) or removed (false) rather than toggling.
func (e *Element) ToggleAttribute(name string, force ...bool) bool {
	result, _ := e.ToggleAttributeWithError(name, force...)
	return result
}

// ToggleAttributeWithError is ToggleAttribute, returning InvalidCharacterError
// if name is not a valid XML Name.
func (e *Element) ToggleAttributeWithError(name string, force ...bool) (bool, error) {
	if !IsXMLName(name) {
		return false, ErrInvalidCharacter("'" + name + "' is not a valid attribute name")
	}

	has := e.Attributes().Has(name)

	if len(force) > 0 {
		if force[0] {
			if !has {
				e.Attributes().SetValue(name, "")
			}
			return true, nil
		}
		if has {
			e.Attributes().RemoveNamedItem(name)
		}
		return false, nil
	}

	if has {
		e.Attributes().RemoveNamedItem(name)
		return false, nil
	}
	e.Attributes().SetValue(name, "")
	return true, nil
}

// GetAttributeNode returns the Attr for the given qualified name, or nil.
func (e *Element) GetAttributeNode(name string) *Attr {
	return e.Attributes().GetNamedItem(name)
}

// GetAttributeNodeNS returns the Attr for the given namespace URI and
// local name, or nil.
func (e *Element) GetAttributeNodeNS(namespaceURI, localName string) *Attr {
	return e.Attributes().GetNamedItemNS(namespaceURI, localName)
}

// SetAttributeNode adds attr to this element's attribute map, returning
// any attribute it replaced.
func (e *Element) SetAttributeNode(attr *Attr) *Attr {
	result, _ := e.SetAttributeNodeWithError(attr)
	return result
}

// SetAttributeNodeWithError is SetAttributeNode, returning InUseAttributeError
// if attr is already owned by a different element.
func (e *Element) SetAttributeNodeWithError(attr *Attr) (*Attr, error) {
	if attr == nil {
		return nil, nil
	}
	if attr.ownerElement != nil && attr.ownerElement != e {
		return nil, ErrInUseAttribute("the attribute is already in use by another element")
	}
	return e.Attributes().SetAttr(attr), nil
}

// SetAttributeNodeNS behaves identically to SetAttributeNode; attributes
// are always keyed by expanded name regardless of which method added them.
func (e *Element) SetAttributeNodeNS(attr *Attr) *Attr {
	result, _ := e.SetAttributeNodeNSWithError(attr)
	return result
}

// SetAttributeNodeNSWithError is SetAttributeNodeNS, returning
// InUseAttributeError if attr is already owned by a different element.
func (e *Element) SetAttributeNodeNSWithError(attr *Attr) (*Attr, error) {
	return e.SetAttributeNodeWithError(attr)
}

// RemoveAttributeNode removes attr from this element's attribute map.
func (e *Element) RemoveAttributeNode(attr *Attr) *Attr {
	if attr == nil {
		return nil
	}
	return e.Attributes().RemoveNamedItemNS(attr.namespaceURI, attr.localName)
}

// Children returns a live HTMLCollection of this element's child elements.
func (e *Element) Children() *HTMLCollection {
	return newHTMLCollection(e.AsNode(), func(el *Element) bool {
		return el.AsNode().parentNode == e.AsNode()
	})
}

// ChildElementCount returns the number of child elements.
func (e *Element) ChildElementCount() int {
	count := 0
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			count++
		}
	}
	return count
}

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() *Element {
	for child := e.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// LastElementChild returns the last child element, or nil.
func (e *Element) LastElementChild() *Element {
	for child := e.AsNode().lastChild; child != nil; child = child.prevSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// PreviousElementSibling returns the nearest preceding sibling element, or nil.
func (e *Element) PreviousElementSibling() *Element {
	for sibling := e.AsNode().prevSibling; sibling != nil; sibling = sibling.prevSibling {
		if sibling.nodeType == ElementNode {
			return (*Element)(sibling)
		}
	}
	return nil
}

// NextElementSibling returns the nearest following sibling element, or nil.
func (e *Element) NextElementSibling() *Element {
	for sibling := e.AsNode().nextSibling; sibling != nil; sibling = sibling.nextSibling {
		if sibling.nodeType == ElementNode {
			return (*Element)(sibling)
		}
	}
	return nil
}

// GetElementsByTagName returns a live HTMLCollection of descendant
// elements with the given qualified name, or all descendants if tagName
// is "*".
func (e *Element) GetElementsByTagName(tagName string) *HTMLCollection {
	return NewHTMLCollectionByTagName(e.AsNode(), tagName)
}

// GetElementsByTagNameNS returns a live HTMLCollection of descendant
// elements matching the given namespace URI and local name, where "*"
// matches any value for that component.
func (e *Element) GetElementsByTagNameNS(namespaceURI, localName string) *HTMLCollection {
	return NewHTMLCollectionByTagNameNS(e.AsNode(), namespaceURI, localName)
}

// TextContent returns the concatenated text content of this element's
// descendants.
func (e *Element) TextContent() string {
	return e.AsNode().TextContent()
}

// SetTextContent replaces this element's children with a single text
// node holding text, or removes all children if text is empty.
func (e *Element) SetTextContent(text string) {
	e.AsNode().SetTextContent(text)
}

// Append appends nodes or strings as children of this element.
func (e *Element) Append(nodes ...interface{}) {
	_ = e.AppendWithError(nodes...)
}

// AppendWithError is Append, returning any validation error (e.g.
// HierarchyRequestError) instead of discarding it.
func (e *Element) AppendWithError(nodes ...interface{}) error {
	if len(nodes) == 0 {
		return nil
	}
	node := e.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return nil
	}
	_, err := e.AsNode().AppendChildWithError(node)
	return err
}

// Prepend inserts nodes or strings as the first children of this element.
func (e *Element) Prepend(nodes ...interface{}) {
	_ = e.PrependWithError(nodes...)
}

// PrependWithError is Prepend, returning any validation error instead of
// discarding it.
func (e *Element) PrependWithError(nodes ...interface{}) error {
	if len(nodes) == 0 {
		return nil
	}
	node := e.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return nil
	}
	_, err := e.AsNode().InsertBeforeWithError(node, e.AsNode().firstChild)
	return err
}

// Before inserts nodes before this element among its siblings.
func (e *Element) Before(nodes ...interface{}) {
	parent := e.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viablePrevSibling := e.AsNode().findViablePreviousSibling(nodeSet)

	node := e.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	var refNode *Node
	if viablePrevSibling == nil {
		refNode = parent.firstChild
	} else {
		refNode = viablePrevSibling.nextSibling
	}
	parent.InsertBefore(node, refNode)
}

// After inserts nodes after this element among its siblings.
func (e *Element) After(nodes ...interface{}) {
	parent := e.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := e.AsNode().findViableNextSibling(nodeSet)

	node := e.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return
	}

	parent.InsertBefore(node, viableNextSibling)
}

// ReplaceWith replaces this element with nodes among its siblings.
func (e *Element) ReplaceWith(nodes ...interface{}) {
	parent := e.AsNode().parentNode
	if parent == nil {
		return
	}
	nodeSet := extractNodeSet(nodes)
	viableNextSibling := e.AsNode().findViableNextSibling(nodeSet)

	node := e.AsNode().convertNodesToFragment(nodes)

	if e.AsNode().parentNode == parent {
		if node != nil {
			parent.ReplaceChild(node, e.AsNode())
		} else {
			parent.RemoveChild(e.AsNode())
		}
	} else if node != nil {
		parent.InsertBefore(node, viableNextSibling)
	}
}

// Remove removes this element from its parent.
func (e *Element) Remove() {
	if e.AsNode().parentNode != nil {
		e.AsNode().parentNode.RemoveChild(e.AsNode())
	}
}

// ReplaceChildren replaces all children of this element with nodes.
func (e *Element) ReplaceChildren(nodes ...interface{}) {
	_ = e.ReplaceChildrenWithError(nodes...)
}

// ReplaceChildrenWithError is ReplaceChildren; validation happens before
// any existing child is removed, so a rejected replacement leaves this
// element's children untouched.
func (e *Element) ReplaceChildrenWithError(nodes ...interface{}) error {
	var node *Node
	if len(nodes) > 0 {
		node = e.AsNode().convertNodesToFragment(nodes)
	}

	if node != nil {
		if err := e.AsNode().validatePreInsertion(node, nil); err != nil {
			return err
		}
	}

	for e.AsNode().firstChild != nil {
		e.AsNode().RemoveChild(e.AsNode().firstChild)
	}

	if node != nil {
		e.AsNode().AppendChild(node)
	}

	return nil
}

// InsertAdjacentElement inserts element at the given position relative to
// this element ("beforebegin", "afterbegin", "beforeend", "afterend") and
// returns it.
func (e *Element) InsertAdjacentElement(position string, element *Element) (*Element, error) {
	if element == nil {
		return nil, nil
	}
	if err := e.insertAdjacentNode(position, element.AsNode()); err != nil {
		return nil, err
	}
	return element, nil
}

// InsertAdjacentText inserts a new text node holding data at the given
// position relative to this element.
func (e *Element) InsertAdjacentText(position string, data string) error {
	doc := e.AsNode().ownerDoc
	if doc == nil {
		return ErrHierarchyRequest("element has no owner document")
	}
	return e.insertAdjacentNode(position, doc.CreateTextNode(data))
}

func (e *Element) insertAdjacentNode(position string, node *Node) error {
	switch strings.ToLower(position) {
	case "beforebegin":
		parent := e.AsNode().parentNode
		if parent == nil {
			return nil
		}
		_, err := parent.InsertBeforeWithError(node, e.AsNode())
		return err

	case "afterbegin":
		_, err := e.AsNode().InsertBeforeWithError(node, e.AsNode().firstChild)
		return err

	case "beforeend":
		_, err := e.AsNode().AppendChildWithError(node)
		return err

	case "afterend":
		parent := e.AsNode().parentNode
		if parent == nil {
			return nil
		}
		_, err := parent.InsertBeforeWithError(node, e.AsNode().nextSibling)
		return err

	default:
		return ErrSyntax("the value provided ('" + position + "') is not one of 'beforebegin', 'afterbegin', 'beforeend', or 'afterend'")
	}
}

// CloneNode clones this element. If deep is true, its descendants are
// cloned as well.
func (e *Element) CloneNode(deep bool) *Element {
	clonedNode := e.AsNode().CloneNode(deep)
	return (*Element)(clonedNode)
}
