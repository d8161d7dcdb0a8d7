package dom

// NormalizeMappings walks el and its descendants and rewrites the minimal
// set of xmlns/xmlns:prefix declarations needed so that every element's and
// attribute's effective prefix resolves, from an ancestor within the
// subtree, to the namespace URI it was actually built with: redundant
// declarations (ones an ancestor already supplies with the same value) are
// removed, and a declaration is synthesized wherever none is in scope.
// Built fresh atop the ancestor-walk (*Node).LookupNamespaceURI already
// used for Node.LookupNamespaceURI/LookupPrefix, since neither the teacher
// nor any DOM implementation needs to re-derive a minimal declaration set
// on demand the way a canonicalizer or a hand-assembled tree does.
//
// A nil return from el.AsNode().OwnerDocument() or a document with
// namespace processing disabled (ProcessingOptions.HasNamespaces() false)
// makes this a no-op, since xmlns attributes carry no meaning in that mode.
func NormalizeMappings(el *Element) error {
	doc := el.AsNode().OwnerDocument()
	if doc != nil && !doc.ProcessingOptions().HasNamespaces() {
		return nil
	}
	return normalizeMappings(el)
}

func normalizeMappings(el *Element) error {
	removeRedundantNamespaceDecls(el)
	if err := ensureNamespaceDecls(el); err != nil {
		return err
	}
	for child := el.FirstElementChild(); child != nil; child = child.NextElementSibling() {
		if err := normalizeMappings(child); err != nil {
			return err
		}
	}
	return nil
}

// removeRedundantNamespaceDecls drops any xmlns/xmlns:prefix attribute on el
// whose binding is already supplied, with the same value, by an ancestor —
// it has no effect on what any descendant resolves and only adds noise.
func removeRedundantNamespaceDecls(el *Element) {
	parent := elementParent(el)
	if parent == nil {
		return
	}

	attrs := el.Attributes()
	var redundant []string
	for i := 0; i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		prefix, ok := declaredNamespacePrefix(attr)
		if !ok {
			continue
		}
		if parent.AsNode().LookupNamespaceURI(prefix) == attr.Value() {
			redundant = append(redundant, attr.Name())
		}
	}
	for _, name := range redundant {
		el.RemoveAttribute(name)
	}
}

// ensureNamespaceDecls synthesizes an xmlns/xmlns:prefix declaration on el
// for every (prefix, namespaceURI) pair el's own name or one of its
// attributes' names actually uses, unless an xmlns attribute on el itself or
// the nearest ancestor declaring that prefix already binds it to the same
// URI. An element's own qualified name does not count as a declaration.
func ensureNamespaceDecls(el *Element) error {
	for _, need := range neededMappings(el) {
		if need.prefix == "xml" || need.prefix == "xmlns" {
			continue
		}
		qualifiedName := "xmlns"
		if need.prefix != "" {
			qualifiedName = "xmlns:" + need.prefix
		}
		declared := false
		for n := el.AsNode(); n != nil && n.NodeType() == ElementNode; n = n.ParentNode() {
			if attr := (*Element)(n).Attributes().GetNamedItem(qualifiedName); attr != nil {
				declared = attr.Value() == need.uri
				break
			}
		}
		if declared {
			continue
		}
		if err := el.SetAttributeNSWithError(XMLNSNamespaceURI, qualifiedName, need.uri); err != nil {
			return err
		}
	}
	return nil
}

type namespaceMapping struct {
	prefix string
	uri    string
}

// neededMappings collects the distinct (prefix, namespaceURI) pairs el's own
// qualified name and its non-declaration attributes' qualified names
// actually use. An attribute's namespace is never the default namespace
// (an unprefixed attribute has no namespace per the Namespaces in XML
// recommendation), so only prefixed attributes contribute here.
func neededMappings(el *Element) []namespaceMapping {
	var needed []namespaceMapping
	seen := map[string]bool{}
	add := func(prefix, uri string) {
		if uri == "" {
			return
		}
		key := prefix + "\x00" + uri
		if seen[key] {
			return
		}
		seen[key] = true
		needed = append(needed, namespaceMapping{prefix: prefix, uri: uri})
	}

	add(el.Prefix(), el.NamespaceURI())

	attrs := el.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		if _, ok := declaredNamespacePrefix(attr); ok {
			continue
		}
		if attr.Prefix() != "" {
			add(attr.Prefix(), attr.NamespaceURI())
		}
	}
	return needed
}

// declaredNamespacePrefix reports the prefix a namespace-declaration
// attribute introduces ("" for a bare "xmlns", the suffix for "xmlns:foo").
func declaredNamespacePrefix(attr *Attr) (string, bool) {
	if attr.NamespaceURI() == XMLNSNamespaceURI {
		if attr.LocalName() == "xmlns" {
			return "", true
		}
		return attr.LocalName(), true
	}
	return "", false
}

func elementParent(el *Element) *Element {
	parent := el.AsNode().ParentNode()
	if parent == nil || parent.NodeType() != ElementNode {
		return nil
	}
	return (*Element)(parent)
}
