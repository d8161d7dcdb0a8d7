package dom

// DOMImplementation provides methods for creating Document and DocumentType
// objects independent of any particular document instance. Per the DOM
// spec it carries no mutable state of its own beyond a back-reference to
// the document it was vended from.
type DOMImplementation struct {
	document *Document
}

// NewDOMImplementation creates a new DOMImplementation for the given document.
func NewDOMImplementation(doc *Document) *DOMImplementation {
	return &DOMImplementation{document: doc}
}

// HasFeature reports whether the requested feature and version are
// supported. This implementation supports the Core and XML feature strings
// at version "2.0", and their version-less forms.
func (impl *DOMImplementation) HasFeature(feature, version string) bool {
	if version != "" && version != "2.0" {
		return false
	}
	switch feature {
	case "Core", "core", "XML", "xml":
		return true
	default:
		return false
	}
}

// CreateDocumentType creates a new, unattached DocumentType node.
func (impl *DOMImplementation) CreateDocumentType(qualifiedName, publicId, systemId string) (*Node, error) {
	_, _, _, err := ValidateAndExtractQualifiedName("", qualifiedName)
	if err != nil {
		if !IsXMLName(qualifiedName) {
			return nil, ErrInvalidCharacter("the qualified name is not a valid XML name")
		}
	}

	doctype := newNode(DocumentTypeNode, qualifiedName, nil)
	doctype.docTypeData = &docTypeData{
		name:      qualifiedName,
		publicId:  publicId,
		systemId:  systemId,
		entities:  newNamedNodeMap(nil),
		notations: newNamedNodeMap(nil),
	}
	doctype.readOnlyNode = true
	return doctype, nil
}

// CreateDocument creates a new XML document, optionally with a root element
// and/or a DocumentType. If qualifiedName is non-empty a root element is
// created and attached in namespaceURI. If doctype is non-nil it is
// attached before the root element.
func (impl *DOMImplementation) CreateDocument(namespaceURI, qualifiedName string, doctype *Node) (*Document, error) {
	return impl.CreateDocumentWithOptions(namespaceURI, qualifiedName, doctype)
}

// CreateDocumentWithOptions is CreateDocument with explicit processing
// options applied to the new document.
func (impl *DOMImplementation) CreateDocumentWithOptions(namespaceURI, qualifiedName string, doctype *Node, opts ...ProcessingOption) (*Document, error) {
	if qualifiedName != "" {
		if _, _, _, err := ValidateAndExtractQualifiedName(namespaceURI, qualifiedName); err != nil {
			return nil, err
		}
	}

	if doctype != nil && doctype.ownerDoc != nil {
		return nil, ErrWrongDocument("the document type already belongs to a document")
	}

	doc := NewDocument()
	doc.AsNode().documentData.processingOptions = newProcessingOptions(opts...)

	if doctype != nil {
		doctype.ownerDoc = doc
		doc.AsNode().AppendChild(doctype)
	}

	if qualifiedName != "" {
		root, err := doc.CreateElementNSWithError(namespaceURI, qualifiedName)
		if err != nil {
			return nil, err
		}
		doc.AsNode().AppendChild(root.AsNode())
	}

	return doc, nil
}

// ProcessingOptions configures how a Document created through the
// DOMImplementation factory treats declarations and namespaces.
type ProcessingOptions struct {
	hasDeclaration bool
	hasNamespaces  bool
	addNamespaces  bool
}

// ProcessingOption mutates a ProcessingOptions during construction.
type ProcessingOption func(*ProcessingOptions)

// DefaultProcessingOptions returns the default option set: declarations,
// namespace support, and automatic xmlns synthesis all enabled.
func DefaultProcessingOptions() *ProcessingOptions {
	return &ProcessingOptions{
		hasDeclaration: true,
		hasNamespaces:  true,
		addNamespaces:  true,
	}
}

func newProcessingOptions(opts ...ProcessingOption) *ProcessingOptions {
	po := DefaultProcessingOptions()
	for _, opt := range opts {
		opt(po)
	}
	return po
}

// WithDeclarations controls whether a Document may carry an XmlDeclaration
// child.
func WithDeclarations(enabled bool) ProcessingOption {
	return func(po *ProcessingOptions) { po.hasDeclaration = enabled }
}

// WithNamespaces controls whether namespace semantics (xmlns scoping,
// expanded names) are honored for the document.
func WithNamespaces(enabled bool) ProcessingOption {
	return func(po *ProcessingOptions) { po.hasNamespaces = enabled }
}

// WithAutoNamespaces controls whether xmlns/xmlns:* attributes are
// synthesized automatically when elements are created with a namespace URI.
func WithAutoNamespaces(enabled bool) ProcessingOption {
	return func(po *ProcessingOptions) { po.addNamespaces = enabled }
}

// HasDeclaration reports whether XmlDeclaration children are permitted.
func (po *ProcessingOptions) HasDeclaration() bool { return po.hasDeclaration }

// HasNamespaces reports whether namespace semantics are enabled.
func (po *ProcessingOptions) HasNamespaces() bool { return po.hasNamespaces }

// AddNamespaces reports whether xmlns attributes are synthesized automatically.
func (po *ProcessingOptions) AddNamespaces() bool { return po.addNamespaces }
