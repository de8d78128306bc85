package property

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path. A segment with a Name selects a struct
// field or a map entry; Index selects one element of a collection; Each
// applies the rest of the path to every element of a collection.
type Segment struct {
	Name  string
	Index int // -1 when unused
	Each  bool
}

func (s Segment) String() string {
	switch {
	case s.Each:
		return s.Name + "[]"
	case s.Index >= 0:
		return s.Name + "[" + strconv.Itoa(s.Index) + "]"
	default:
		return s.Name
	}
}

// Path is a parsed property path.
type Path struct {
	Segments []Segment
}

func (p Path) String() string {
	var b strings.Builder

	for i, s := range p.Segments {
		if i > 0 && s.Name != "" {
			b.WriteByte('.')
		}

		b.WriteString(s.String())
	}

	return b.String()
}

// HasEach reports whether the path fans out over a collection.
func (p Path) HasEach() bool {
	for _, s := range p.Segments {
		if s.Each {
			return true
		}
	}

	return false
}

// Each returns p prefixed with a fan-out over the root collection.
func (p Path) Each() Path {
	return Path{Segments: append([]Segment{{Index: -1, Each: true}}, p.Segments...)}
}

// ParsePath parses a property path.
// Supports: "Field", "Nested.Field", "Items[]", "Items[2]", "Items[].ID",
// "[]" and "[0].Name" for a root collection, and map keys as names.
func ParsePath(path string) (Path, error) {
	if path == "" {
		return Path{}, errors.New("empty path")
	}

	var segments []Segment

	for i, part := range strings.Split(path, ".") {
		if part == "" {
			return Path{}, fmt.Errorf("invalid path %q: empty segment", path)
		}

		name, brackets, indexed := strings.Cut(part, "[")
		if name == "" && i > 0 {
			return Path{}, fmt.Errorf("invalid path %q: index without field name", path)
		}

		if strings.Contains(name, "]") {
			return Path{}, fmt.Errorf("invalid path %q: unbalanced bracket in %q", path, part)
		}

		if !indexed {
			segments = append(segments, Segment{Name: name, Index: -1})

			continue
		}

		parsed, err := parseBrackets(name, "["+brackets)
		if err != nil {
			return Path{}, fmt.Errorf("invalid path %q: %w", path, err)
		}

		segments = append(segments, parsed...)
	}

	return Path{Segments: segments}, nil
}

// parseBrackets handles the "[]" and "[n]" suffixes of one part. Only the
// first resulting segment carries the name.
func parseBrackets(name, rest string) ([]Segment, error) {
	var out []Segment

	if name != "" {
		out = append(out, Segment{Name: name, Index: -1})
	}

	for rest != "" {
		if rest[0] != '[' {
			return nil, fmt.Errorf("unexpected %q", rest)
		}

		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return nil, fmt.Errorf("unbalanced bracket in %q", rest)
		}

		inside := rest[1:end]
		rest = rest[end+1:]

		if inside == "" {
			out = append(out, Segment{Index: -1, Each: true})

			continue
		}

		idx, err := strconv.Atoi(inside)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("invalid index %q", inside)
		}

		out = append(out, Segment{Index: idx})
	}

	return out, nil
}
