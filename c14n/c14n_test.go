package c14n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xmldom/dom/builder"
)

func canonicalize(t *testing.T, xmlText string) string {
	t.Helper()
	doc, err := builder.ReadXML(strings.NewReader(xmlText))
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Canonicalize(&buf, doc.AsNode()))
	return buf.String()
}

func TestCanonicalize_StripsXMLDeclarationAndDoctype(t *testing.T) {
	out := canonicalize(t, `<?xml version="1.0" encoding="UTF-8"?><!DOCTYPE root SYSTEM "root.dtd"><root/>`)
	assert.Equal(t, "<root></root>", out)
}

func TestCanonicalize_NoSelfClosingTags(t *testing.T) {
	out := canonicalize(t, `<a><b/><c></c></a>`)
	assert.Equal(t, "<a><b></b><c></c></a>", out)
}

func TestCanonicalize_SortsAttributesByNamespaceThenLocalName(t *testing.T) {
	out := canonicalize(t, `<e xmlns:n1="urn:n1" xmlns:n0="urn:n0" n1:attr2="y" n0:attr1="x"/>`)
	assert.Equal(t, `<e xmlns:n0="urn:n0" xmlns:n1="urn:n1" n0:attr1="x" n1:attr2="y"></e>`, out)
}

func TestCanonicalize_DefaultNamespaceDeclRendersFirst(t *testing.T) {
	out := canonicalize(t, `<e xmlns:a="urn:a" xmlns="urn:default" a:x="1"/>`)
	assert.Equal(t, `<e xmlns="urn:default" xmlns:a="urn:a" a:x="1"></e>`, out)
}

func TestCanonicalize_InheritedNamespaceNotRedeclared(t *testing.T) {
	out := canonicalize(t, `<n:a xmlns:n="urn:n"><b><n:c/></b></n:a>`)
	assert.Equal(t, `<n:a xmlns:n="urn:n"><b><n:c></n:c></b></n:a>`, out)
}

func TestCanonicalize_UnusedNamespaceNotRendered(t *testing.T) {
	out := canonicalize(t, `<a xmlns:unused="urn:unused"><b/></a>`)
	assert.Equal(t, `<a><b></b></a>`, out)
}

func TestCanonicalize_RedeclaresNamespaceWhenValueChanges(t *testing.T) {
	out := canonicalize(t, `<n:a xmlns:n="urn:one"><n:b xmlns:n="urn:two"/></n:a>`)
	assert.Equal(t, `<n:a xmlns:n="urn:one"><n:b xmlns:n="urn:two"></n:b></n:a>`, out)
}

func TestCanonicalize_EscapesTextAndAttributeValues(t *testing.T) {
	out := canonicalize(t, `<e a="1 &lt; 2 &amp; 3">x &lt; y &amp; z &gt; w</e>`)
	assert.Equal(t, `<e a="1 &lt; 2 &amp; 3">x &lt; y &amp; z &gt; w</e>`, out)
}

func TestCanonicalize_PreservesCommentsAndProcessingInstructions(t *testing.T) {
	out := canonicalize(t, `<?xml-stylesheet type="text/xsl" href="a.xsl"?><!-- top --><root><!-- inside --></root>`)
	assert.Contains(t, out, `<?xml-stylesheet type="text/xsl" href="a.xsl"?>`)
	assert.Contains(t, out, "<!-- top -->")
	assert.Contains(t, out, "<!-- inside -->")
}

func TestCanonicalize_CDATAMergesIntoEscapedText(t *testing.T) {
	out := canonicalize(t, `<e><![CDATA[a < b]]></e>`)
	assert.Equal(t, `<e>a &lt; b</e>`, out)
}
