package dom

import "strings"

// XMLNamespaceURI is the namespace URI bound by definition to the "xml" prefix.
const XMLNamespaceURI = "http://www.w3.org/XML/1998/namespace"

// XMLNSNamespaceURI is the namespace URI bound by definition to the "xmlns" prefix.
const XMLNSNamespaceURI = "http://www.w3.org/2000/xmlns/"

// isNameStartChar reports whether ch can begin an XML Name, per the
// Name production in XML 1.1 Appendix B (identical character classes to XML 1.0).
func isNameStartChar(ch rune) bool {
	return ch == ':' ||
		(ch >= 'A' && ch <= 'Z') ||
		ch == '_' ||
		(ch >= 'a' && ch <= 'z') ||
		(ch >= 0xC0 && ch <= 0xD6) ||
		(ch >= 0xD8 && ch <= 0xF6) ||
		(ch >= 0xF8 && ch <= 0x2FF) ||
		(ch >= 0x370 && ch <= 0x37D) ||
		(ch >= 0x37F && ch <= 0x1FFF) ||
		(ch >= 0x200C && ch <= 0x200D) ||
		(ch >= 0x2070 && ch <= 0x218F) ||
		(ch >= 0x2C00 && ch <= 0x2FEF) ||
		(ch >= 0x3001 && ch <= 0xD7FF) ||
		(ch >= 0xF900 && ch <= 0xFDCF) ||
		(ch >= 0xFDF0 && ch <= 0xFFFD) ||
		(ch >= 0x10000 && ch <= 0xEFFFF)
}

// isNameChar reports whether ch can occur anywhere in an XML Name after the
// first character.
func isNameChar(ch rune) bool {
	return isNameStartChar(ch) ||
		ch == '-' ||
		ch == '.' ||
		(ch >= '0' && ch <= '9') ||
		ch == 0xB7 ||
		(ch >= 0x0300 && ch <= 0x036F) ||
		(ch >= 0x203F && ch <= 0x2040)
}

// IsXMLName reports whether name matches the XML Name production. Unlike the
// WHATWG DOM's permissive createElement validation, this is the strict XML
// grammar: colons are allowed anywhere a NameChar is allowed, since Name
// itself knows nothing about namespaces.
func IsXMLName(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if !isNameStartChar(runes[0]) {
		return false
	}
	for _, ch := range runes[1:] {
		if !isNameChar(ch) {
			return false
		}
	}
	return true
}

// IsXMLNCName reports whether name matches the NCName production: an XML
// Name that additionally excludes the colon, used for local names and
// namespace prefixes.
func IsXMLNCName(name string) bool {
	if name == "" {
		return false
	}
	runes := []rune(name)
	if runes[0] == ':' || !isNameStartChar(runes[0]) {
		return false
	}
	for _, ch := range runes[1:] {
		if ch == ':' || !isNameChar(ch) {
			return false
		}
	}
	return true
}

// SplitQName splits a qualified name into (prefix, localName). If name
// contains no colon, prefix is empty. The caller is responsible for
// validating the result with IsXMLNCName; SplitQName performs no validation
// of its own.
func SplitQName(qualifiedName string) (prefix, localName string) {
	idx := strings.IndexByte(qualifiedName, ':')
	if idx < 0 {
		return "", qualifiedName
	}
	return qualifiedName[:idx], qualifiedName[idx+1:]
}

// ValidateQualifiedName checks that qualifiedName is well-formed per the XML
// Namespaces "NSName" production: a Name containing at most one colon, with
// non-empty, NCName-valid segments on either side of it.
func ValidateQualifiedName(qualifiedName string) error {
	if !IsXMLName(qualifiedName) {
		return ErrInvalidCharacter("the qualified name is not a valid XML Name")
	}
	if strings.Count(qualifiedName, ":") > 1 {
		return ErrNamespace("the qualified name contains more than one colon")
	}
	prefix, local := SplitQName(qualifiedName)
	if prefix == "" {
		return nil
	}
	if local == "" {
		return ErrNamespace("the qualified name has an empty local name")
	}
	if !IsXMLNCName(prefix) || !IsXMLNCName(local) {
		return ErrNamespace("the qualified name's prefix or local name is not a valid NCName")
	}
	return nil
}

// ValidateAndExtractQualifiedName implements the DOM "validate and extract"
// algorithm (DOM Core Level 2, Namespaces): it validates qualifiedName
// against namespaceURI and splits it into (namespaceURI, prefix, localName).
// An empty namespaceURI is represented as "" throughout, matching this
// library's convention of treating the null namespace as the empty string.
func ValidateAndExtractQualifiedName(namespaceURI, qualifiedName string) (ns, prefix, localName string, err error) {
	if err := ValidateQualifiedName(qualifiedName); err != nil {
		return "", "", "", err
	}

	prefix, localName = SplitQName(qualifiedName)

	if prefix != "" && namespaceURI == "" {
		return "", "", "", ErrNamespace("a prefix cannot be used with the null namespace")
	}
	if prefix == "xml" && namespaceURI != XMLNamespaceURI {
		return "", "", "", ErrNamespace("the 'xml' prefix must be bound to the XML namespace")
	}
	if (qualifiedName == "xmlns" || prefix == "xmlns") && namespaceURI != XMLNSNamespaceURI {
		return "", "", "", ErrNamespace("the 'xmlns' prefix or qualified name must be bound to the XMLNS namespace")
	}
	if namespaceURI == XMLNSNamespaceURI && qualifiedName != "xmlns" && prefix != "xmlns" {
		return "", "", "", ErrNamespace("the XMLNS namespace may only be bound to the 'xmlns' prefix or qualified name")
	}

	return namespaceURI, prefix, localName, nil
}

// xmlNEL is the Unicode NEL (next line) control character, U+0085.
const xmlNEL rune = ''

// xmlLSEP is the Unicode line separator character, U+2028.
const xmlLSEP rune = ' '

// NormalizeEOL implements XML's end-of-line handling (XML 1.0 Sec 2.11 /
// XML 1.1 Sec 2.11): every occurrence of CRLF or a lone CR is translated to
// a single LF before the text is handed to a parser or stored as parsed
// character data. XML 1.1 additionally folds NEL and CR+NEL into LF; both
// are handled here since this library does not distinguish the XML version
// of the source document.
func NormalizeEOL(s string) string {
	if !strings.ContainsRune(s, '\r') && !strings.ContainsRune(s, xmlNEL) && !strings.ContainsRune(s, xmlLSEP) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch ch {
		case '\r':
			b.WriteByte('\n')
			if i+1 < len(runes) && (runes[i+1] == '\n' || runes[i+1] == xmlNEL) {
				i++
			}
		case xmlNEL, xmlLSEP:
			b.WriteByte('\n')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// NormalizeAttrValue implements XML's attribute-value normalization
// (XML 1.0 Sec 3.3.3): each literal tab, newline, and carriage return in
// the value is replaced with a single space, and any character or entity
// reference is expanded in place via resolve before normalization
// continues into its replacement text. Fails with Syntax if value contains
// a reference resolve cannot resolve.
func NormalizeAttrValue(value string, resolve func(name string) (string, bool)) (string, error) {
	expanded, err := Unescape(value, resolve)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.Grow(len(expanded))
	for _, ch := range expanded {
		switch ch {
		case '\t', '\n', '\r':
			b.WriteByte(' ')
		default:
			b.WriteRune(ch)
		}
	}
	return b.String(), nil
}
