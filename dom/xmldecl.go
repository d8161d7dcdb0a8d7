package dom

// XmlDeclaration represents the "<?xml version="1.0" ...?>" declaration that,
// when present, is always the first child of a Document.
type XmlDeclaration Node

// AsNode returns the underlying Node.
func (x *XmlDeclaration) AsNode() *Node {
	return (*Node)(x)
}

// NodeType returns XMLDeclarationNode (13).
func (x *XmlDeclaration) NodeType() NodeType {
	return XMLDeclarationNode
}

// NodeName returns "xml".
func (x *XmlDeclaration) NodeName() string {
	return "xml"
}

// Version returns the declared XML version, e.g. "1.0".
func (x *XmlDeclaration) Version() string {
	if x.xmlDeclData == nil {
		return ""
	}
	return x.xmlDeclData.version
}

// SetVersion sets the declared XML version.
func (x *XmlDeclaration) SetVersion(version string) {
	x.xmlDeclData.version = version
}

// Encoding returns the declared encoding, or "" if none was declared.
func (x *XmlDeclaration) Encoding() string {
	if x.xmlDeclData == nil {
		return ""
	}
	return x.xmlDeclData.encoding
}

// SetEncoding sets the declared encoding. An empty string omits the
// attribute when the declaration is serialized.
func (x *XmlDeclaration) SetEncoding(encoding string) {
	x.xmlDeclData.encoding = encoding
}

// Standalone returns the declared standalone value and whether one was
// present at all; the "standalone" attribute is optional.
func (x *XmlDeclaration) Standalone() (value, ok bool) {
	if x.xmlDeclData == nil {
		return false, false
	}
	return x.xmlDeclData.standalone, x.xmlDeclData.hasStandalone
}

// SetStandalone sets the declared standalone value.
func (x *XmlDeclaration) SetStandalone(value bool) {
	x.xmlDeclData.standalone = value
	x.xmlDeclData.hasStandalone = true
}

// ClearStandalone removes the standalone attribute from the declaration.
func (x *XmlDeclaration) ClearStandalone() {
	x.xmlDeclData.standalone = false
	x.xmlDeclData.hasStandalone = false
}

// CloneNode clones this XML declaration node.
func (x *XmlDeclaration) CloneNode(deep bool) *XmlDeclaration {
	clone := x.AsNode().CloneNode(deep)
	return (*XmlDeclaration)(clone)
}

// NewXmlDeclarationNode creates a new detached XML declaration node. The
// node has no owner document.
func NewXmlDeclarationNode(version, encoding string, standalone bool, hasStandalone bool) *Node {
	node := newNode(XMLDeclarationNode, "xml", nil)
	node.xmlDeclData = &xmlDeclData{
		version:       version,
		encoding:      encoding,
		standalone:    standalone,
		hasStandalone: hasStandalone,
	}
	return node
}
