package extraction

import (
	"errors"
	"math"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrInvalidJSON = errors.New("payload is not valid JSON")
	ErrNotAnObject = errors.New("payload root is not a JSON object")
)

// Payload is a read-only view over one node of an extraction result. Every
// accessor tolerates missing, null or mistyped values and falls back to the
// zero value or a supplied default.
type Payload struct {
	node gjson.Result
}

// Parse validates raw JSON and returns a Payload rooted at it. The root must
// be an object.
func Parse(raw []byte) (Payload, error) {
	if !gjson.ValidBytes(raw) {
		return Payload{}, ErrInvalidJSON
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return Payload{}, ErrNotAnObject
	}
	return Payload{node: root}, nil
}

// Exists reports whether path resolves to a non-null value.
func (p Payload) Exists(path string) bool {
	r := p.node.Get(path)
	return r.Exists() && r.Type != gjson.Null
}

// Get returns the raw gjson result at path.
func (p Payload) Get(path string) gjson.Result {
	return p.node.Get(path)
}

// Object returns the sub-payload at path. A missing or non-object value yields
// an empty Payload whose accessors all return defaults.
func (p Payload) Object(path string) Payload {
	r := p.node.Get(path)
	if !r.IsObject() {
		return Payload{}
	}
	return Payload{node: r}
}

// IsObject reports whether the payload node is a JSON object.
func (p Payload) IsObject() bool {
	return p.node.IsObject()
}

// Array returns the elements at path. Anything other than an array yields nil.
func (p Payload) Array(path string) []gjson.Result {
	r := p.node.Get(path)
	if !r.IsArray() {
		return nil
	}
	return r.Array()
}

// Objects returns the object elements of the array at path, skipping
// elements that are not objects.
func (p Payload) Objects(path string) []Payload {
	var out []Payload
	for _, el := range p.Array(path) {
		if el.IsObject() {
			out = append(out, Payload{node: el})
		}
	}
	return out
}

// String returns the trimmed text at the first path that has one, or def.
// Numbers are returned in their literal form.
func (p Payload) String(def string, paths ...string) string {
	for _, path := range paths {
		r := p.node.Get(path)
		switch r.Type {
		case gjson.String, gjson.Number:
			if s := strings.TrimSpace(r.String()); s != "" {
				return s
			}
		}
	}
	return def
}

// OptString is String with nil as the default.
func (p Payload) OptString(paths ...string) *string {
	s := p.String("", paths...)
	if s == "" {
		return nil
	}
	return &s
}

// Bool returns the boolean at path. Strings such as "true" or "yes" are
// honoured; everything else is false.
func (p Payload) Bool(path string) bool {
	r := p.node.Get(path)
	switch r.Type {
	case gjson.True:
		return true
	case gjson.String:
		switch strings.ToLower(strings.TrimSpace(r.Str)) {
		case "true", "yes", "y", "1":
			return true
		}
	case gjson.Number:
		return r.Num != 0
	}
	return false
}

// Numeric runs ParseNumeric over the first path that yields a number.
func (p Payload) Numeric(paths ...string) *float64 {
	for _, path := range paths {
		if n := ParseNumeric(p.node.Get(path)); n != nil {
			return n
		}
	}
	return nil
}

// Int is Numeric rounded to the nearest integer.
func (p Payload) Int(paths ...string) *int {
	n := p.Numeric(paths...)
	if n == nil {
		return nil
	}
	v := int(math.Round(*n))
	return &v
}

// Wrap returns a Payload over an already parsed node.
func Wrap(r gjson.Result) Payload {
	return Payload{node: r}
}
