package dom

import "strings"

// Document represents an XML document: the root of a DOM tree, and the
// factory through which every other node kind in the tree is created.
type Document Node

// NewDocument creates a new empty XML document with content type
// "application/xml" and XML version "1.0".
func NewDocument() *Document {
	node := newNode(DocumentNode, "#document", nil)
	node.documentData = &documentData{
		contentType: "application/xml",
		xmlVersion:  "1.0",
	}
	doc := (*Document)(node)
	node.ownerDoc = doc
	return doc
}

// AsNode returns the underlying Node.
func (d *Document) AsNode() *Node {
	return (*Node)(d)
}

// NodeType returns DocumentNode (9).
func (d *Document) NodeType() NodeType {
	return DocumentNode
}

// NodeName returns "#document".
func (d *Document) NodeName() string {
	return "#document"
}

// ContentType returns the MIME type of the document.
func (d *Document) ContentType() string {
	if d.AsNode().documentData.contentType == "" {
		return "application/xml"
	}
	return d.AsNode().documentData.contentType
}

// URL returns the document's URL. Defaults to "about:blank".
func (d *Document) URL() string {
	if d.AsNode().documentData.url == "" {
		return "about:blank"
	}
	return d.AsNode().documentData.url
}

// SetURL sets the document's URL.
func (d *Document) SetURL(url string) {
	d.AsNode().documentData.url = url
}

// DocumentURI returns the document's URI. Same as URL per spec.
func (d *Document) DocumentURI() string {
	return d.URL()
}

// CharacterSet returns the document's character encoding. Defaults to "UTF-8".
func (d *Document) CharacterSet() string {
	if d.AsNode().documentData.characterSet == "" {
		return "UTF-8"
	}
	return d.AsNode().documentData.characterSet
}

// SetCharacterSet sets the document's character encoding.
func (d *Document) SetCharacterSet(charset string) {
	d.AsNode().documentData.characterSet = charset
}

// XMLVersion returns the document's declared XML version, e.g. "1.0" or "1.1".
func (d *Document) XMLVersion() string {
	if d.AsNode().documentData.xmlVersion == "" {
		return "1.0"
	}
	return d.AsNode().documentData.xmlVersion
}

// SetXMLVersion sets the document's declared XML version.
func (d *Document) SetXMLVersion(version string) {
	d.AsNode().documentData.xmlVersion = version
}

// XMLStandalone reports the document's standalone declaration.
func (d *Document) XMLStandalone() bool {
	return d.AsNode().documentData.xmlStandalone
}

// SetXMLStandalone sets the document's standalone declaration.
func (d *Document) SetXMLStandalone(standalone bool) {
	d.AsNode().documentData.xmlStandalone = standalone
}

// EntityResolver returns the resolver used to expand general entity
// references during attribute normalization and unescaping, or nil.
func (d *Document) EntityResolver() EntityResolver {
	return d.AsNode().documentData.entityResolver
}

// SetEntityResolver installs the resolver used to expand general entity
// references during attribute normalization and unescaping.
func (d *Document) SetEntityResolver(resolver EntityResolver) {
	d.AsNode().documentData.entityResolver = resolver
}

// ProcessingOptions returns the options this document was created with,
// defaulting to DefaultProcessingOptions if none were set.
func (d *Document) ProcessingOptions() *ProcessingOptions {
	if d.AsNode().documentData.processingOptions == nil {
		d.AsNode().documentData.processingOptions = DefaultProcessingOptions()
	}
	return d.AsNode().documentData.processingOptions
}

// Doctype returns the DocumentType node, or nil if there is none.
func (d *Document) Doctype() *Node {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == DocumentTypeNode {
			return child
		}
	}
	return nil
}

// DocumentElement returns the root element of the document.
func (d *Document) DocumentElement() *Element {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// XmlDeclaration returns the document's XML declaration node, or nil.
func (d *Document) XmlDeclaration() *XmlDeclaration {
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == XMLDeclarationNode {
			return (*XmlDeclaration)(child)
		}
	}
	return nil
}

// Implementation returns the DOMImplementation for this document.
func (d *Document) Implementation() *DOMImplementation {
	if d.AsNode().documentData.implementation == nil {
		d.AsNode().documentData.implementation = NewDOMImplementation(d)
	}
	return d.AsNode().documentData.implementation
}

// CreateElement creates a new element with the given tag name.
// This method ignores errors for backwards compatibility; use
// CreateElementWithError for proper error handling.
func (d *Document) CreateElement(tagName string) *Element {
	el, _ := d.CreateElementWithError(tagName)
	return el
}

// CreateElementWithError creates a new element with the given tag name.
// Returns an InvalidCharacterError if the tag name is not a valid XML Name.
func (d *Document) CreateElementWithError(tagName string) (*Element, error) {
	if !IsXMLName(tagName) {
		return nil, ErrInvalidCharacter("the tag name is not a valid XML name")
	}

	node := newNode(ElementNode, tagName, d)
	node.elementData = &elementData{
		localName: tagName,
		tagName:   tagName,
	}
	node.elementData.attributes = newNamedNodeMap((*Element)(node))

	return (*Element)(node), nil
}

// CreateElementNS creates a new element with the given namespace and
// qualified name, ignoring errors for backwards compatibility.
func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) *Element {
	el, _ := d.CreateElementNSWithError(namespaceURI, qualifiedName)
	return el
}

// CreateElementNSWithError creates a new element with the given namespace
// and qualified name. Returns an error if the qualified name is invalid or
// the namespace binding is inconsistent.
func (d *Document) CreateElementNSWithError(namespaceURI, qualifiedName string) (*Element, error) {
	namespace, prefix, localName, err := ValidateAndExtractQualifiedName(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}

	var tagName string
	if prefix != "" {
		tagName = prefix + ":" + localName
	} else {
		tagName = localName
	}

	node := newNode(ElementNode, tagName, d)
	node.elementData = &elementData{
		localName:    localName,
		namespaceURI: namespace,
		prefix:       prefix,
		tagName:      tagName,
	}
	node.elementData.attributes = newNamedNodeMap((*Element)(node))

	return (*Element)(node), nil
}

// CreateTextNode creates a new text node with the given data.
func (d *Document) CreateTextNode(data string) *Node {
	node := newNode(TextNode, "#text", d)
	node.textData = &data
	node.nodeValue = &data
	return node
}

// CreateComment creates a new comment node with the given data.
func (d *Document) CreateComment(data string) *Node {
	node := newNode(CommentNode, "#comment", d)
	node.commentData = &data
	node.nodeValue = &data
	return node
}

// CreateCDATASection creates a new CDATASection node with the given data,
// ignoring errors for backwards compatibility.
func (d *Document) CreateCDATASection(data string) *Node {
	node, _ := d.CreateCDATASectionWithError(data)
	return node
}

// CreateCDATASectionWithError creates a new CDATASection node with the
// given data. Returns an InvalidCharacterError if data contains "]]>".
func (d *Document) CreateCDATASectionWithError(data string) (*Node, error) {
	if containsCDATASectionClose(data) {
		return nil, ErrInvalidCharacter("CDATASection data cannot contain ']]>'")
	}

	node := newNode(CDATASectionNode, "#cdata-section", d)
	node.textData = &data
	node.nodeValue = &data
	return node, nil
}

func containsCDATASectionClose(data string) bool {
	return strings.Contains(data, "]]>")
}

// CreateProcessingInstruction creates a new processing instruction node.
// Returns nil if target is not a valid XML name or data contains "?>".
func (d *Document) CreateProcessingInstruction(target, data string) *Node {
	node, _ := d.CreateProcessingInstructionWithError(target, data)
	return node
}

// CreateProcessingInstructionWithError creates a new processing instruction
// node. Returns an error if target is not a valid XML name or data contains
// "?>".
func (d *Document) CreateProcessingInstructionWithError(target, data string) (*Node, error) {
	if err := ValidateProcessingInstructionTarget(target); err != nil {
		return nil, err
	}
	if err := ValidateProcessingInstructionData(data); err != nil {
		return nil, err
	}

	node := newNode(ProcessingInstructionNode, target, d)
	node.nodeValue = &data
	return node, nil
}

// CreateXmlDeclaration creates a new XML declaration node with the given
// version and encoding. standalone is only honored when hasStandalone is
// true, since the "standalone" attribute is optional in the declaration.
func (d *Document) CreateXmlDeclaration(version, encoding string, standalone, hasStandalone bool) *XmlDeclaration {
	node := NewXmlDeclarationNode(version, encoding, standalone, hasStandalone)
	node.ownerDoc = d
	return (*XmlDeclaration)(node)
}

// CreateDocumentFragment creates a new empty document fragment.
func (d *Document) CreateDocumentFragment() *DocumentFragment {
	node := newNode(DocumentFragmentNode, "#document-fragment", d)
	return (*DocumentFragment)(node)
}

// CreateAttribute creates a new attribute with the given name, ignoring
// errors for backwards compatibility.
func (d *Document) CreateAttribute(name string) *Attr {
	attr, _ := d.CreateAttributeWithError(name)
	return attr
}

// CreateAttributeWithError creates a new attribute with the given name.
// Returns an InvalidCharacterError if the name is not a valid XML Name.
func (d *Document) CreateAttributeWithError(name string) (*Attr, error) {
	if !IsXMLName(name) {
		return nil, ErrInvalidCharacter("the attribute name is not a valid XML name")
	}
	return NewAttr(name, ""), nil
}

// CreateAttributeNS creates a new attribute with the given namespace,
// ignoring errors for backwards compatibility.
func (d *Document) CreateAttributeNS(namespaceURI, qualifiedName string) *Attr {
	attr, _ := d.CreateAttributeNSWithError(namespaceURI, qualifiedName)
	return attr
}

// CreateAttributeNSWithError creates a new attribute with the given
// namespace and qualified name.
func (d *Document) CreateAttributeNSWithError(namespaceURI, qualifiedName string) (*Attr, error) {
	_, _, _, err := ValidateAndExtractQualifiedName(namespaceURI, qualifiedName)
	if err != nil {
		return nil, err
	}
	return NewAttrNS(namespaceURI, qualifiedName, ""), nil
}

// CreateEntityReference creates a new, detached EntityReference node with
// the given name. The node has no children and is never expanded: the
// serializer writes it back as "&name;" without consulting the document's
// EntityResolver or its DocumentType entity declarations.
func (d *Document) CreateEntityReference(name string) (*Node, error) {
	if !IsXMLName(name) {
		return nil, ErrInvalidCharacter("the entity reference name is not a valid XML name")
	}
	node := newNode(EntityReferenceNode, name, d)
	return node, nil
}

// GetElementById returns the first element, in document order, whose xml:id
// attribute equals id, or nil. No DTD is consulted, so an attribute named
// plain "id" is not treated as an ID. Returns nil for an empty id.
func (d *Document) GetElementById(id string) *Element {
	if id == "" {
		return nil
	}
	return d.findElementById(d.AsNode(), id)
}

func (d *Document) findElementById(node *Node, id string) *Element {
	for child := node.firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			el := (*Element)(child)
			if el.GetAttributeNS(XMLNamespaceURI, "id") == id {
				return el
			}
			if result := d.findElementById(child, id); result != nil {
				return result
			}
		}
	}
	return nil
}

// GetElementsByTagName returns a live HTMLCollection of elements with the
// given tag name.
func (d *Document) GetElementsByTagName(tagName string) *HTMLCollection {
	return NewHTMLCollectionByTagName(d.AsNode(), tagName)
}

// GetElementsByTagNameNS returns a live HTMLCollection of elements with the
// given namespace and local name.
func (d *Document) GetElementsByTagNameNS(namespaceURI, localName string) *HTMLCollection {
	return NewHTMLCollectionByTagNameNS(d.AsNode(), namespaceURI, localName)
}

// Children returns a live HTMLCollection of child elements.
func (d *Document) Children() *HTMLCollection {
	return newHTMLCollection(d.AsNode(), func(el *Element) bool {
		return el.AsNode().parentNode == d.AsNode()
	})
}

// ChildElementCount returns the number of child elements.
func (d *Document) ChildElementCount() int {
	count := 0
	for child := d.AsNode().firstChild; child != nil; child = child.nextSibling {
		if child.nodeType == ElementNode {
			count++
		}
	}
	return count
}

// FirstElementChild returns the first child element (the document element).
func (d *Document) FirstElementChild() *Element {
	return d.DocumentElement()
}

// LastElementChild returns the last child element.
func (d *Document) LastElementChild() *Element {
	for child := d.AsNode().lastChild; child != nil; child = child.prevSibling {
		if child.nodeType == ElementNode {
			return (*Element)(child)
		}
	}
	return nil
}

// Append appends nodes or strings to this document.
// For error handling, use AppendWithError.
func (d *Document) Append(nodes ...interface{}) {
	_ = d.AppendWithError(nodes...)
}

// AppendWithError appends nodes or strings to this document.
// Implements the ParentNode.append() algorithm from the DOM spec.
func (d *Document) AppendWithError(nodes ...interface{}) error {
	if len(nodes) == 0 {
		return nil
	}
	node := d.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return nil
	}
	_, err := d.AsNode().AppendChildWithError(node)
	return err
}

// Prepend prepends nodes or strings to this document.
// For error handling, use PrependWithError.
func (d *Document) Prepend(nodes ...interface{}) {
	_ = d.PrependWithError(nodes...)
}

// PrependWithError prepends nodes or strings to this document.
// Implements the ParentNode.prepend() algorithm from the DOM spec.
func (d *Document) PrependWithError(nodes ...interface{}) error {
	if len(nodes) == 0 {
		return nil
	}
	node := d.AsNode().convertNodesToFragment(nodes)
	if node == nil {
		return nil
	}
	firstChild := d.AsNode().firstChild
	_, err := d.AsNode().InsertBeforeWithError(node, firstChild)
	return err
}

// ReplaceChildren replaces all children with the given nodes.
// For error handling, use ReplaceChildrenWithError.
func (d *Document) ReplaceChildren(nodes ...interface{}) {
	_ = d.ReplaceChildrenWithError(nodes...)
}

// ReplaceChildrenWithError replaces all children with the given nodes.
// Implements the ParentNode.replaceChildren() algorithm from the DOM spec.
func (d *Document) ReplaceChildrenWithError(nodes ...interface{}) error {
	return d.AsNode().replaceChildrenImpl(nodes)
}

// ImportNode imports a node from another document, returning a deep or
// shallow copy (per deep) whose owner document is this document.
func (d *Document) ImportNode(node *Node, deep bool) *Node {
	if node == nil {
		return nil
	}
	clone := node.CloneNode(deep)
	d.adoptNode(clone)
	return clone
}

// AdoptNode adopts a node from another document in place, detaching it
// from its current parent.
func (d *Document) AdoptNode(node *Node) *Node {
	result, _ := d.AdoptNodeWithError(node)
	return result
}

// AdoptNodeWithError adopts a node from another document in place,
// returning an error if the node cannot be adopted (Document nodes cannot).
func (d *Document) AdoptNodeWithError(node *Node) (*Node, error) {
	if node == nil {
		return nil, nil
	}
	if node.nodeType == DocumentNode {
		return nil, ErrNotSupported("Document nodes cannot be adopted")
	}
	if node.parentNode != nil {
		node.parentNode.RemoveChild(node)
	}
	d.adoptNode(node)
	return node, nil
}

func (d *Document) adoptNode(node *Node) {
	node.ownerDoc = d
	for child := node.firstChild; child != nil; child = child.nextSibling {
		d.adoptNode(child)
	}
}
