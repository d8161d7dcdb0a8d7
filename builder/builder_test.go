package builder

import (
	"log"
	"strings"
	"testing"

	"github.com/xmldom/dom/dom"
)

func TestReadXML_SimpleDocument(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<?xml version="1.0" encoding="UTF-8"?><book id="1"><title>Go</title></book>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	decl := doc.XmlDeclaration()
	if decl == nil {
		t.Fatal("Expected an XML declaration")
	}
	if decl.Version() != "1.0" || decl.Encoding() != "UTF-8" {
		t.Errorf("Unexpected declaration: version=%q encoding=%q", decl.Version(), decl.Encoding())
	}

	root := doc.DocumentElement()
	if root == nil || root.TagName() != "book" {
		t.Fatalf("Expected root element 'book', got %v", root)
	}
	if root.GetAttribute("id") != "1" {
		t.Errorf("Expected id attribute '1', got %q", root.GetAttribute("id"))
	}

	title := root.FirstElementChild()
	if title == nil || title.TagName() != "title" {
		t.Fatalf("Expected child element 'title', got %v", title)
	}
	if title.TextContent() != "Go" {
		t.Errorf("Expected text content 'Go', got %q", title.TextContent())
	}
}

func TestReadXML_Namespaces(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<root xmlns="urn:default" xmlns:b="urn:b"><b:child/></root>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	root := doc.DocumentElement()
	if root.NamespaceURI() != "urn:default" {
		t.Errorf("Expected default namespace 'urn:default', got %q", root.NamespaceURI())
	}

	child := root.FirstElementChild()
	if child == nil {
		t.Fatal("Expected a child element")
	}
	if child.NamespaceURI() != "urn:b" {
		t.Errorf("Expected namespace 'urn:b', got %q", child.NamespaceURI())
	}
	if child.Prefix() != "b" {
		t.Errorf("Expected prefix 'b', got %q", child.Prefix())
	}

	nsAttr := root.Attributes().GetNamedItem("xmlns:b")
	if nsAttr == nil {
		t.Fatal("Expected an xmlns:b attribute on the root element")
	}
	if nsAttr.Name() != "xmlns:b" {
		t.Errorf("Expected attribute name 'xmlns:b', got %q", nsAttr.Name())
	}
	if nsAttr.NamespaceURI() != dom.XMLNSNamespaceURI {
		t.Errorf("Expected xmlns:b's namespace to be %q, got %q", dom.XMLNSNamespaceURI, nsAttr.NamespaceURI())
	}
	if nsAttr.Value() != "urn:b" {
		t.Errorf("Expected xmlns:b value 'urn:b', got %q", nsAttr.Value())
	}
}

func TestReadXML_CommentsAndProcessingInstructions(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<?xml-stylesheet type="text/xsl" href="a.xsl"?><!-- top --><root><!-- inside --></root>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	found := false
	for c := doc.AsNode().FirstChild(); c != nil; c = c.NextSibling() {
		if c.NodeType() == dom.ProcessingInstructionNode {
			found = true
		}
	}
	if !found {
		t.Error("Expected a processing instruction among the document's children")
	}
}

func TestReadXML_Doctype(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<!DOCTYPE greeting PUBLIC "-//example//DTD greeting//EN" "greeting.dtd"><greeting/>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	doctype := (*dom.DocumentType)(doc.Doctype())
	if doctype == nil {
		t.Fatal("Expected a doctype")
	}
	if doctype.Name() != "greeting" {
		t.Errorf("Expected doctype name 'greeting', got %q", doctype.Name())
	}
	if doctype.PublicId() != "-//example//DTD greeting//EN" {
		t.Errorf("Unexpected public id %q", doctype.PublicId())
	}
	if doctype.SystemId() != "greeting.dtd" {
		t.Errorf("Unexpected system id %q", doctype.SystemId())
	}
}

func TestReadXML_EntityReferencePreserved(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<root>a&custom;b</root>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}

	root := doc.DocumentElement()
	var kinds []dom.NodeType
	for c := root.AsNode().FirstChild(); c != nil; c = c.NextSibling() {
		kinds = append(kinds, c.NodeType())
	}
	if len(kinds) != 3 {
		t.Fatalf("Expected 3 children (text, entity ref, text), got %d: %v", len(kinds), kinds)
	}
	if kinds[0] != dom.TextNode || kinds[1] != dom.EntityReferenceNode || kinds[2] != dom.TextNode {
		t.Errorf("Unexpected child kinds: %v", kinds)
	}
}

func TestReadXML_PredefinedEntityExpandedInline(t *testing.T) {
	doc, err := ReadXML(strings.NewReader(`<root>a &amp; b</root>`))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}
	root := doc.DocumentElement()
	if root.TextContent() != "a & b" {
		t.Errorf("Expected 'a & b', got %q", root.TextContent())
	}
}

func TestReadXML_RejectsUnresolvedEntityInAttributeValue(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<root a="&custom;"/>`))
	if err == nil {
		t.Error("Expected an error for an unresolved entity reference in an attribute value")
	}
}

func TestReadXML_ResolvesEntityInAttributeValueViaResolver(t *testing.T) {
	resolver := dom.EntityResolverFunc(func(name string) (string, bool) {
		if name == "custom" {
			return "resolved", true
		}
		return "", false
	})
	doc, err := ReadXML(strings.NewReader(`<root a="&custom;"/>`), WithEntityResolver(resolver))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}
	if got := doc.DocumentElement().GetAttribute("a"); got != "resolved" {
		t.Errorf("Expected attribute value 'resolved', got %q", got)
	}
}

func TestReadXML_RejectsMismatchedEndTag(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<root><a></b></root>`))
	if err == nil {
		t.Error("Expected an error for a mismatched end tag")
	}
}

func TestReadXML_RejectsTrailingGarbage(t *testing.T) {
	_, err := ReadXML(strings.NewReader(`<root/>not allowed`))
	if err == nil {
		t.Error("Expected an error for content after the document element")
	}
}

func TestReadXML_WithLogger_RecordsDiagnostics(t *testing.T) {
	var buf strings.Builder
	logger := log.New(&buf, "", 0)

	_, err := ReadXML(strings.NewReader(`<root>a&custom;b</root>`), WithLogger(logger))
	if err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected WithLogger to record at least one diagnostic line")
	}
}

func TestReadXML_WithoutLogger_NeverPanics(t *testing.T) {
	if _, err := ReadXML(strings.NewReader(`<root>a&custom;b</root>`)); err != nil {
		t.Fatalf("ReadXML failed: %v", err)
	}
}
