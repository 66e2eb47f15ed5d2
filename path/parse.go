package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse turns a path string into segments. The empty string is the
// root. The first key segment may carry a leading dot; subsequent
// keys are separated by single dots; bracket segments attach directly
// with no separating dot.
func Parse(p string) (Path, error) {
	if p == "" {
		return Path{}, nil
	}
	res := make(Path, 0, 4)
	if err := parseFrag(p, true, &res); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidPath, p, err)
	}
	return res, nil
}

func parseFrag(frag string, atStart bool, dst *Path) error {
	if len(frag) == 0 {
		return nil
	}
	switch frag[0] {
	case '.':
		if len(frag) == 1 {
			if atStart {
				return fmt.Errorf("leading '.'")
			}
			return fmt.Errorf("trailing '.'")
		}
		switch frag[1] {
		case '.':
			return fmt.Errorf("consecutive '.'")
		case '[':
			return fmt.Errorf("'[' cannot follow '.'")
		case ']':
			return fmt.Errorf("unmatched ']'")
		}
		name, rest, err := parseKey(frag[1:])
		if err != nil {
			return err
		}
		*dst = append(*dst, Key{Name: name})
		return parseFrag(rest, false, dst)
	case '[':
		seg, rest, err := parseBracket(frag[1:])
		if err != nil {
			return err
		}
		*dst = append(*dst, seg)
		return parseFrag(rest, false, dst)
	case ']':
		return fmt.Errorf("unmatched ']'")
	default:
		if !atStart {
			return fmt.Errorf("expected '.' or '[', got %q", frag[0])
		}
		name, rest, err := parseKey(frag)
		if err != nil {
			return err
		}
		*dst = append(*dst, Key{Name: name})
		return parseFrag(rest, false, dst)
	}
}

// parseKey scans a bare key: any run of characters not containing
// '.', '[' or ']'. The returned rest begins at the delimiter.
func parseKey(frag string) (name, rest string, err error) {
	i := strings.IndexAny(frag, ".[]")
	if i == -1 {
		return frag, "", nil
	}
	if frag[i] == ']' {
		return "", "", fmt.Errorf("unmatched ']'")
	}
	return frag[:i], frag[i:], nil
}

// parseBracket scans bracket content, frag starting just past '['.
func parseBracket(frag string) (Segment, string, error) {
	if len(frag) == 0 {
		return nil, "", fmt.Errorf("unmatched '['")
	}
	if frag[0] == '\'' || frag[0] == '"' {
		return parseQuotedKey(frag)
	}
	i := strings.IndexByte(frag, ']')
	if i == -1 {
		return nil, "", fmt.Errorf("unmatched '['")
	}
	content, rest := frag[:i], frag[i+1:]
	switch {
	case content == "":
		return nil, "", fmt.Errorf("empty brackets")
	case content == "*":
		return Wildcard{}, rest, nil
	case content[0] == '?':
		return Filter{Expr: content[1:]}, rest, nil
	case strings.Contains(content, ":"):
		seg, err := parseSlice(content)
		if err != nil {
			return nil, "", err
		}
		return seg, rest, nil
	default:
		idx, err := strconv.Atoi(content)
		if err != nil {
			return nil, "", fmt.Errorf("bracket content %q is neither a quoted key nor an integer", content)
		}
		return Index{I: idx}, rest, nil
	}
}

// parseQuotedKey scans ['name'] or ["name"] content, frag starting at
// the opening quote. There is no escaping inside the quotes; the key
// runs to the next occurrence of the same quote character.
func parseQuotedKey(frag string) (Segment, string, error) {
	q := frag[0]
	j := strings.IndexByte(frag[1:], q)
	if j == -1 {
		return nil, "", fmt.Errorf("unterminated %q-quoted key", q)
	}
	name := frag[1 : 1+j]
	if name == "" {
		return nil, "", fmt.Errorf("empty quoted key")
	}
	rest := frag[2+j:]
	if len(rest) == 0 || rest[0] != ']' {
		return nil, "", fmt.Errorf("expected ']' after quoted key")
	}
	return Key{Name: name}, rest[1:], nil
}

func parseSlice(content string) (Segment, error) {
	parts := strings.Split(content, ":")
	if len(parts) != 2 {
		return nil, fmt.Errorf("bad slice %q", content)
	}
	var res Slice
	for i, part := range parts {
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("bad slice bound %q", part)
		}
		if i == 0 {
			res.Start = &n
		} else {
			res.End = &n
		}
	}
	return res, nil
}

// IsValid reports whether Parse accepts the path.
func IsValid(p string) bool {
	_, err := Parse(p)
	return err == nil
}

// Normalize validates a path and returns it unchanged. No
// canonicalization is done across equivalent spellings: a['b'] stays
// distinct from a.b.
func Normalize(p string) (string, error) {
	if _, err := Parse(p); err != nil {
		return "", err
	}
	return p, nil
}
