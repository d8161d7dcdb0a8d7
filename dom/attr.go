package dom

// Attr represents an attribute of an Element.
type Attr struct {
	ownerElement *Element
	namespaceURI string
	prefix       string
	localName    string
	name         string
	value        string
	// specified is true for attributes explicitly given a value (in the
	// source document, or via setAttribute/setAttributeNS) and false for
	// ones defaulted from a DTD that have never been touched by the
	// application. This library does not apply DTD default values, so in
	// practice every live Attr is specified; the field exists so that
	// CloneNode and future DTD-default support have somewhere to record it.
	specified bool
}

// NewAttr creates a new Attr with the given name and value.
func NewAttr(name, value string) *Attr {
	return &Attr{
		localName: name,
		name:      name,
		value:     value,
		specified: true,
	}
}

// NewAttrNS creates a new Attr with the given namespace, name, and value.
func NewAttrNS(namespaceURI, qualifiedName, value string) *Attr {
	prefix, localName := SplitQName(qualifiedName)

	return &Attr{
		namespaceURI: namespaceURI,
		prefix:       prefix,
		localName:    localName,
		name:         qualifiedName,
		value:        value,
		specified:    true,
	}
}

// NodeType returns AttributeNode (2).
func (a *Attr) NodeType() NodeType {
	return AttributeNode
}

// NodeName returns the attribute name.
func (a *Attr) NodeName() string {
	return a.name
}

// NodeValue returns the attribute value.
func (a *Attr) NodeValue() string {
	return a.value
}

// SetNodeValue sets the attribute value.
func (a *Attr) SetNodeValue(value string) {
	a.value = value
}

// OwnerElement returns the element that owns this attribute.
func (a *Attr) OwnerElement() *Element {
	return a.ownerElement
}

// OwnerDocument returns the Document that owns this attribute.
// For Attr nodes, this is determined via the ownerElement.
func (a *Attr) OwnerDocument() *Document {
	if a.ownerElement != nil {
		return a.ownerElement.AsNode().OwnerDocument()
	}
	return nil
}

// BaseURI returns the absolute base URL of this attribute.
// For Attr nodes, this is the same as the ownerElement's baseURI,
// or the owner document's URL if no owner element.
func (a *Attr) BaseURI() string {
	if a.ownerElement != nil {
		return a.ownerElement.AsNode().BaseURI()
	}
	// For unattached attrs, return about:blank (no document context)
	return "about:blank"
}

// NamespaceURI returns the namespace URI of the attribute.
func (a *Attr) NamespaceURI() string {
	return a.namespaceURI
}

// Prefix returns the namespace prefix of the attribute.
func (a *Attr) Prefix() string {
	return a.prefix
}

// LocalName returns the local name of the attribute.
func (a *Attr) LocalName() string {
	return a.localName
}

// Name returns the qualified name of the attribute.
func (a *Attr) Name() string {
	return a.name
}

// Value returns the attribute value.
func (a *Attr) Value() string {
	return a.value
}

// SetValue sets the attribute value from raw source text: end-of-line
// sequences are normalized to "\n" and character/entity references are
// expanded using the owner document's EntityResolver, per XML attribute-value
// normalization (XML 1.0 Sec 3.3.3). a is modified in place, so any
// NamedNodeMap or Element holding a pointer to it observes the change.
// If value contains an entity reference the resolver cannot resolve, the
// attribute is left unchanged and the failure is not reported; use
// SetValueWithError to be told about it.
func (a *Attr) SetValue(value string) {
	_ = a.SetValueWithError(value)
}

// SetValueWithError is SetValue, reporting a Syntax error for any entity
// reference in value that the owner document's EntityResolver cannot
// resolve. a is left unmodified on error.
func (a *Attr) SetValueWithError(value string) error {
	normalized, err := NormalizeAttrValue(NormalizeEOL(value), a.resolveEntity)
	if err != nil {
		return err
	}
	a.value = normalized
	a.specified = true
	return nil
}

func (a *Attr) resolveEntity(name string) (string, bool) {
	doc := a.OwnerDocument()
	if doc == nil {
		return "", false
	}
	resolver := doc.EntityResolver()
	if resolver == nil {
		return "", false
	}
	return resolver.Resolve(name)
}

// Specified reports whether the attribute's value was explicitly given,
// as opposed to defaulted from a DTD declaration.
func (a *Attr) Specified() bool {
	return a.specified
}

// CloneAttr returns an unattached copy of this attribute. Per DOM Core
// Level 2, a cloned Attr always has specified = true, since the clone is
// no longer tied to whatever DTD declared the original's default.
func (a *Attr) CloneAttr() *Attr {
	return &Attr{
		namespaceURI: a.namespaceURI,
		prefix:       a.prefix,
		localName:    a.localName,
		name:         a.name,
		value:        a.value,
		specified:    true,
	}
}

// LookupNamespaceURI returns the namespace URI for the given prefix.
// For Attr nodes, this delegates to the owner element if connected.
// Disconnected Attrs have no namespace context and return empty for all prefixes.
func (a *Attr) LookupNamespaceURI(prefix string) string {
	// If connected to an element, delegate to the element
	// (which will handle the special xml/xmlns prefixes)
	if a.ownerElement != nil {
		return (*Node)(a.ownerElement).LookupNamespaceURI(prefix)
	}
	// Disconnected attrs have no namespace context
	return ""
}

// IsDefaultNamespace returns true if the given namespace URI is the default namespace.
func (a *Attr) IsDefaultNamespace(namespaceURI string) bool {
	defaultNS := a.LookupNamespaceURI("")
	return defaultNS == namespaceURI
}

// LookupPrefix returns the prefix associated with a given namespace URI.
func (a *Attr) LookupPrefix(namespaceURI string) string {
	if a.ownerElement != nil {
		return (*Node)(a.ownerElement).LookupPrefix(namespaceURI)
	}
	return ""
}
