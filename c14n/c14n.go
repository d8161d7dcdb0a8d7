// Package c14n implements Exclusive Canonical XML canonicalization
// ("c14n") over an already-materialized dom.Node tree.
//
// https://www.w3.org/TR/xml-exc-c14n/
package c14n

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/xmldom/dom/c14n/internal/sortattr"
	"github.com/xmldom/dom/c14n/internal/stack"
	"github.com/xmldom/dom/dom"
)

// Canonicalize writes the canonical byte form of n to w. n must be an
// Element or a Document; for any other node kind nothing is written and a
// NotSupported error is returned.
//
// Canonicalize does not check n for well-formedness beyond what the dom
// package already enforces when n was built; its behavior on a tree built
// by means other than the public dom API is undefined.
func Canonicalize(w io.Writer, n *dom.Node) error {
	var buf bytes.Buffer
	var knownNames, renderedNames stack.Stack

	switch n.NodeType() {
	case dom.DocumentNode:
		if err := canonicalizeDocumentChildren(&buf, &knownNames, &renderedNames, n); err != nil {
			return err
		}
	case dom.ElementNode:
		if err := canonicalizeElement(&buf, &knownNames, &renderedNames, (*dom.Element)(n)); err != nil {
			return err
		}
	default:
		return dom.ErrNotSupported("c14n: only Element and Document nodes can be canonicalized")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// canonicalizeDocumentChildren renders a Document's top-level comments and
// processing instructions alongside its document element. The XML
// declaration and DocumentType are both omitted from the canonical form,
// per the spec's explicit carve-out for the XML declaration; DocumentType
// carries no node-set representation in the canonicalization model either.
func canonicalizeDocumentChildren(buf *bytes.Buffer, knownNames, renderedNames *stack.Stack, doc *dom.Node) error {
	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch child.NodeType() {
		case dom.XMLDeclarationNode, dom.DocumentTypeNode:
			continue
		case dom.CommentNode:
			fmt.Fprintf(buf, "<!--%s-->", escapeText(child.NodeValue()))
		case dom.ProcessingInstructionNode:
			writeProcInst(buf, (*dom.ProcessingInstruction)(child))
		case dom.ElementNode:
			if err := canonicalizeElement(buf, knownNames, renderedNames, (*dom.Element)(child)); err != nil {
				return err
			}
		}
	}
	return nil
}

func canonicalizeElement(buf *bytes.Buffer, knownNames, renderedNames *stack.Stack, el *dom.Element) error {
	names := map[string]string{}         // namespace declarations carried by this element
	visiblyUsed := map[string]struct{}{} // prefixes this element or its attributes actually use
	var plainAttrs []*dom.Attr           // attributes that are not namespace declarations

	visiblyUsed[el.Prefix()] = struct{}{}

	attrs := el.Attributes()
	for i := 0; i < attrs.Length(); i++ {
		attr := attrs.Item(i)
		if prefix, ok := declaredPrefix(attr); ok {
			names[prefix] = attr.Value()
			continue
		}
		if attr.NamespaceURI() != "" {
			visiblyUsed[attr.Prefix()] = struct{}{}
		}
		plainAttrs = append(plainAttrs, attr)
	}

	knownNames.Push(names)

	// A namespace binding renders on this element only if the element or
	// one of its attributes visibly utilizes the prefix, and the binding
	// is not already in effect under the same value from an ancestor.
	toRender := map[string]struct{}{}
	for prefix, uri := range knownNames.GetAll() {
		if _, used := visiblyUsed[prefix]; !used {
			continue
		}
		if renderedValue, rendered := renderedNames.Get(prefix); rendered && renderedValue == uri {
			continue
		}
		toRender[prefix] = struct{}{}
	}

	renderAttrs := make([]sortattr.Attr, 0, len(plainAttrs)+len(toRender))
	for _, attr := range plainAttrs {
		renderAttrs = append(renderAttrs, sortattr.AttrOf(attr))
	}

	renderedValues := map[string]string{}
	for prefix := range toRender {
		uri, _ := knownNames.Get(prefix)
		renderedValues[prefix] = uri
		renderAttrs = append(renderAttrs, sortattr.Attr{Prefix: prefix, Value: uri, IsNSDecl: true})
	}
	renderedNames.Push(renderedValues)

	sorted := sortattr.SortAttr{Stack: knownNames, Attrs: renderAttrs}
	sort.Sort(sorted)

	writeQName(buf, "<", el.Prefix(), el.LocalName())
	for _, attr := range sorted.Attrs {
		writeAttr(buf, attr)
	}
	buf.WriteByte('>')

	for child := el.AsNode().FirstChild(); child != nil; child = child.NextSibling() {
		switch child.NodeType() {
		case dom.ElementNode:
			if err := canonicalizeElement(buf, knownNames, renderedNames, (*dom.Element)(child)); err != nil {
				return err
			}
		case dom.TextNode, dom.CDATASectionNode:
			buf.WriteString(escapeText(child.NodeValue()))
		case dom.CommentNode:
			fmt.Fprintf(buf, "<!--%s-->", escapeText(child.NodeValue()))
		case dom.ProcessingInstructionNode:
			writeProcInst(buf, (*dom.ProcessingInstruction)(child))
		case dom.EntityReferenceNode:
			return dom.ErrNotSupported("c14n: cannot canonicalize an unexpanded entity reference; resolve it first")
		}
	}

	writeQName(buf, "</", el.Prefix(), el.LocalName())
	buf.WriteByte('>')

	knownNames.Pop()
	renderedNames.Pop()
	return nil
}

// declaredPrefix reports the prefix a namespace-declaration attribute
// introduces ("" for a bare "xmlns", the suffix for "xmlns:foo").
func declaredPrefix(attr *dom.Attr) (string, bool) {
	if attr.NamespaceURI() == dom.XMLNSNamespaceURI {
		if attr.LocalName() == "xmlns" {
			return "", true
		}
		return attr.LocalName(), true
	}
	return "", false
}

func writeQName(buf *bytes.Buffer, open, prefix, local string) {
	if prefix == "" {
		fmt.Fprintf(buf, "%s%s", open, local)
	} else {
		fmt.Fprintf(buf, "%s%s:%s", open, prefix, local)
	}
}

func writeAttr(buf *bytes.Buffer, attr sortattr.Attr) {
	if attr.IsNSDecl {
		if attr.Prefix == "" {
			fmt.Fprintf(buf, ` xmlns="%s"`, escapeAttrValue(attr.Value))
		} else {
			fmt.Fprintf(buf, ` xmlns:%s="%s"`, attr.Prefix, escapeAttrValue(attr.Value))
		}
		return
	}
	if attr.Prefix == "" {
		fmt.Fprintf(buf, ` %s="%s"`, attr.LocalName, escapeAttrValue(attr.Value))
	} else {
		fmt.Fprintf(buf, ` %s:%s="%s"`, attr.Prefix, attr.LocalName, escapeAttrValue(attr.Value))
	}
}

func writeProcInst(buf *bytes.Buffer, pi *dom.ProcessingInstruction) {
	fmt.Fprintf(buf, "<?%s", pi.Target())
	if data := pi.Data(); data != "" {
		buf.WriteByte(' ')
		buf.WriteString(data)
	}
	buf.WriteString("?>")
}

// escapeText implements the c14n Text Node escaping rule: & < > and #xD are
// replaced; unlike dom.EscapeText, carriage returns are escaped too.
func escapeText(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '\r':
			b.WriteString("&#xD;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeAttrValue implements the c14n Attribute Node escaping rule: & < "
// and the whitespace characters tab, LF, CR are replaced with character
// references, distinct from dom.EscapeAttr's narrower serialization rule.
func escapeAttrValue(s string) string {
	var b bytes.Buffer
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '"':
			b.WriteString("&quot;")
		case '\t':
			b.WriteString("&#x9;")
		case '\n':
			b.WriteString("&#xA;")
		case '\r':
			b.WriteString("&#xD;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
