package router

import (
	"fmt"
	"strings"
)

// SegmentKind distinguishes literal and parameter pattern segments.
type SegmentKind int

const (
	// SegmentLiteral is a fixed path segment.
	SegmentLiteral SegmentKind = iota

	// SegmentParam is a named parameter segment.
	SegmentParam
)

// Segment is one element of a compiled URL pattern. For SegmentLiteral,
// Value is the literal text; for SegmentParam it is the disambiguated
// parameter key.
type Segment struct {
	Kind  SegmentKind
	Value string
}

// ParamBinding records one named path parameter of a compiled route.
type ParamBinding struct {
	// Token is the raw bracket token from the file tree, e.g. "[id]".
	Token string

	// Owner is the literal segment immediately preceding the parameter,
	// i.e. the resource the identifier belongs to. Empty when the
	// parameter sits at the tree root.
	Owner string

	// Key is the parameter key used at runtime, e.g. "departmentId".
	Key string
}

// Pattern is a compiled URL pattern: an ordered sequence of literal and
// parameter segments plus the parameter bindings.
type Pattern struct {
	Segments []Segment
	Params   []ParamBinding
}

// String renders the pattern with :key parameter notation, e.g.
// "/departments/:departmentId/employees/:id". The root pattern is "/".
func (p Pattern) String() string {
	if len(p.Segments) == 0 {
		return "/"
	}
	var sb strings.Builder
	for _, seg := range p.Segments {
		sb.WriteByte('/')
		if seg.Kind == SegmentParam {
			sb.WriteByte(':')
		}
		sb.WriteString(seg.Value)
	}
	return sb.String()
}

// ParamKeys returns the parameter keys in path order.
func (p Pattern) ParamKeys() []string {
	keys := make([]string, 0, len(p.Params))
	for _, b := range p.Params {
		keys = append(keys, b.Key)
	}
	return keys
}

// PatternError reports a directory path the compiler cannot express.
type PatternError struct {
	// Path is the route-file path being compiled.
	Path string

	// Segment is the offending segment.
	Segment string

	// Reason describes why the segment is unsupported.
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("route %s: segment %q: %s", e.Path, e.Segment, e.Reason)
}

// Compile converts a route file's directory chain into a URL pattern,
// renaming every parameter that is not the final segment to
// <singularized-owner><CapitalizedName> so that nested identical bracket
// names never collide. The innermost parameter keeps its bare name.
func Compile(file RouteFile) (Pattern, error) {
	segs, err := parseSegments(file)
	if err != nil {
		return Pattern{}, err
	}
	return disambiguate(file, segs)
}

// rawSegment is a parsed but not yet disambiguated path segment.
type rawSegment struct {
	literal string // set for literal segments
	param   string // bracket name for parameter segments
	token   string // original text
}

// parseSegments splits the directory chain into typed segments.
func parseSegments(file RouteFile) ([]rawSegment, error) {
	segs := make([]rawSegment, 0, len(file.Dir))
	for _, dir := range file.Dir {
		if strings.HasPrefix(dir, "[") && strings.HasSuffix(dir, "]") {
			name := dir[1 : len(dir)-1]
			if name == "" {
				return nil, &PatternError{Path: file.Path, Segment: dir, Reason: "empty parameter name"}
			}
			segs = append(segs, rawSegment{param: name, token: dir})
			continue
		}
		if strings.ContainsAny(dir, "[]") {
			return nil, &PatternError{Path: file.Path, Segment: dir, Reason: "unbalanced brackets"}
		}
		segs = append(segs, rawSegment{literal: dir, token: dir})
	}
	return segs, nil
}

// disambiguate walks the parsed segments and assigns final parameter keys.
// A parameter that is not the last segment is renamed after its owning
// literal; the last one keeps its bare bracket name.
func disambiguate(file RouteFile, segs []rawSegment) (Pattern, error) {
	var p Pattern
	seen := make(map[string]string) // key → token, for collision reporting

	for i, seg := range segs {
		if seg.param == "" {
			p.Segments = append(p.Segments, Segment{Kind: SegmentLiteral, Value: seg.literal})
			continue
		}

		var owner string
		if i > 0 {
			prev := segs[i-1]
			if prev.param != "" {
				return Pattern{}, &PatternError{
					Path:    file.Path,
					Segment: seg.token,
					Reason:  "consecutive parameter segments are not supported",
				}
			}
			owner = prev.literal
		}

		key := seg.param
		if i != len(segs)-1 {
			// An ancestor parameter: deeper segments follow, so the bare
			// name is reserved for the innermost resource.
			if owner == "" {
				return Pattern{}, &PatternError{
					Path:    file.Path,
					Segment: seg.token,
					Reason:  "ancestor parameter has no owning literal segment",
				}
			}
			key = singularize(owner) + upperFirst(seg.param)
		}

		if prior, dup := seen[key]; dup {
			return Pattern{}, &PatternError{
				Path:    file.Path,
				Segment: seg.token,
				Reason:  fmt.Sprintf("parameter key %q collides with %s", key, prior),
			}
		}
		seen[key] = seg.token

		p.Segments = append(p.Segments, Segment{Kind: SegmentParam, Value: key})
		p.Params = append(p.Params, ParamBinding{Token: seg.token, Owner: owner, Key: key})
	}

	return p, nil
}

// singularize reduces a plural resource name to its singular form. It
// covers the conventional REST plurals (departments → department,
// companies → company); names it cannot reduce pass through unchanged.
func singularize(s string) string {
	switch {
	case len(s) > 3 && strings.HasSuffix(s, "ies"):
		return s[:len(s)-3] + "y"
	case strings.HasSuffix(s, "ss"):
		return s
	case len(s) > 1 && strings.HasSuffix(s, "s"):
		return s[:len(s)-1]
	}
	return s
}

// upperFirst capitalizes the first byte of an ASCII identifier.
func upperFirst(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
