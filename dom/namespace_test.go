package dom

import "testing"

func TestNormalizeMappings_SynthesizesMissingDeclaration(t *testing.T) {
	doc := NewDocument()
	root, err := doc.CreateElementNSWithError("urn:a", "a:root")
	if err != nil {
		t.Fatalf("CreateElementNSWithError failed: %v", err)
	}
	if _, err := doc.AsNode().AppendChildWithError(root.AsNode()); err != nil {
		t.Fatalf("AppendChildWithError failed: %v", err)
	}

	if err := NormalizeMappings(root); err != nil {
		t.Fatalf("NormalizeMappings failed: %v", err)
	}

	if got := root.GetAttribute("xmlns:a"); got != "urn:a" {
		t.Errorf("Expected synthesized xmlns:a=\"urn:a\", got %q", got)
	}
}

func TestNormalizeMappings_RemovesRedundantDeclaration(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.CreateElementNSWithError("urn:a", "a:root")
	doc.AsNode().AppendChildWithError(root.AsNode())
	root.SetAttributeNS(XMLNSNamespaceURI, "xmlns:a", "urn:a")

	child, _ := doc.CreateElementNSWithError("urn:a", "a:child")
	root.AsNode().AppendChildWithError(child.AsNode())
	child.SetAttributeNS(XMLNSNamespaceURI, "xmlns:a", "urn:a")

	if err := NormalizeMappings(root); err != nil {
		t.Fatalf("NormalizeMappings failed: %v", err)
	}

	if child.Attributes().Has("xmlns:a") {
		t.Error("Expected redundant xmlns:a on child to be removed")
	}
	if got := root.AsNode().LookupNamespaceURI("a"); got != "urn:a" {
		t.Errorf("Expected 'a' to still resolve to urn:a via the root, got %q", got)
	}
}

func TestNormalizeMappings_KeepsConflictingCloserDeclaration(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.CreateElementNSWithError("urn:one", "a:root")
	doc.AsNode().AppendChildWithError(root.AsNode())
	root.SetAttributeNS(XMLNSNamespaceURI, "xmlns:a", "urn:one")

	child, _ := doc.CreateElementNSWithError("urn:two", "a:child")
	root.AsNode().AppendChildWithError(child.AsNode())
	child.SetAttributeNS(XMLNSNamespaceURI, "xmlns:a", "urn:two")

	if err := NormalizeMappings(root); err != nil {
		t.Fatalf("NormalizeMappings failed: %v", err)
	}

	if got := child.GetAttribute("xmlns:a"); got != "urn:two" {
		t.Errorf("Expected child's conflicting declaration to survive, got %q", got)
	}
}

func TestNormalizeMappings_AttributeNamespaceSynthesized(t *testing.T) {
	doc := NewDocument()
	root, _ := doc.CreateElementNSWithError("", "root")
	doc.AsNode().AppendChildWithError(root.AsNode())

	attr, err := doc.CreateAttributeNSWithError("urn:b", "b:x")
	if err != nil {
		t.Fatalf("CreateAttributeNSWithError failed: %v", err)
	}
	if _, err := root.SetAttributeNodeNSWithError(attr); err != nil {
		t.Fatalf("SetAttributeNodeNSWithError failed: %v", err)
	}

	if err := NormalizeMappings(root); err != nil {
		t.Fatalf("NormalizeMappings failed: %v", err)
	}

	if got := root.GetAttribute("xmlns:b"); got != "urn:b" {
		t.Errorf("Expected synthesized xmlns:b=\"urn:b\" for attribute namespace, got %q", got)
	}
}

func TestNormalizeMappings_NoOpWhenNamespacesDisabled(t *testing.T) {
	impl := NewDOMImplementation(nil)
	doc, err := impl.CreateDocumentWithOptions("", "root", nil, WithNamespaces(false))
	if err != nil {
		t.Fatalf("CreateDocumentWithOptions failed: %v", err)
	}
	root := doc.DocumentElement()
	attr, _ := doc.CreateAttributeNSWithError("urn:b", "b:x")
	root.SetAttributeNodeNSWithError(attr)

	if err := NormalizeMappings(root); err != nil {
		t.Fatalf("NormalizeMappings failed: %v", err)
	}
	if root.Attributes().Has("xmlns:b") {
		t.Error("Expected no namespace synthesis when namespace processing is disabled")
	}
}
