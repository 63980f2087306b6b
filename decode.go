package thirteenf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clbanning/mxj/v2"
)

// DecodeFiling decodes a 13F information table XML document into a generic
// tree of maps, lists and strings.
//
// Namespace prefixes are removed from element names and attributes are
// dropped, so that "ns1:infoTable" and "infoTable" read the same. Leading and
// trailing white space of element text is removed, other characters are kept
// as given. The tree
// has the shape of the document: an element repeated several times decodes
// as a list, an element present once decodes as a single value.
func DecodeFiling(r io.Reader) (map[string]any, error) {
	m, err := mxj.NewMapXmlReader(r)
	if err != nil {
		return nil, &DocumentFormatError{Err: err}
	}
	tree, _ := stripMarkup(map[string]any(m)).(map[string]any)
	if len(tree) == 0 {
		return nil, &DocumentFormatError{Err: fmt.Errorf("empty document")}
	}
	return tree, nil
}

// LoadFiling reads and decodes the filing stored in file.
func LoadFiling(file string) (map[string]any, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tree, err := DecodeFiling(f)
	if err != nil {
		if dfe, ok := err.(*DocumentFormatError); ok {
			dfe.Source = file
		}
		return nil, err
	}
	return tree, nil
}

// stripMarkup removes attributes and namespace prefixes from a decoded tree,
// and trims the white space around text.
func stripMarkup(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, child := range v {
			if strings.HasPrefix(k, "-") {
				continue // attribute
			}
			if _, local, ok := strings.Cut(k, ":"); ok {
				k = local
			}
			out[k] = stripMarkup(child)
		}
		// an element that only had attributes around its text is just text.
		if text, ok := out["#text"]; ok && len(out) == 1 {
			return text
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, child := range v {
			out[i] = stripMarkup(child)
		}
		return out
	case string:
		return strings.TrimSpace(v)
	default:
		return v
	}
}
