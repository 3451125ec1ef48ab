package registry

import (
	"fmt"
	"strings"
)

// Segment is one step of a [FieldPath]. Array means the value at Name is
// a list and the rest of the path applies to each element.
type Segment struct {
	Name  string
	Array bool
}

// FieldPath is a parsed dotted field path such as "tasks[].title".
type FieldPath []Segment

// ParseFieldPath parses dotted field syntax. A "[]" suffix marks an array.
func ParseFieldPath(s string) (FieldPath, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidFieldPath)
	}

	parts := strings.Split(s, ".")
	fp := make(FieldPath, 0, len(parts))
	for i, part := range parts {
		seg := Segment{Name: part}
		if name, ok := strings.CutSuffix(part, "[]"); ok {
			seg = Segment{Name: name, Array: true}
		}
		if seg.Name == "" || strings.ContainsAny(seg.Name, "[]") {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldPath, s)
		}
		if i == len(parts)-1 && seg.Array {
			return nil, fmt.Errorf("%w: %q must end in a field name", ErrInvalidFieldPath, s)
		}
		fp = append(fp, seg)
	}
	return fp, nil
}

// Leaf returns the name of the field that holds the string value.
func (fp FieldPath) Leaf() string {
	return fp[len(fp)-1].Name
}

func (fp FieldPath) String() string {
	var b strings.Builder
	for i, seg := range fp {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(seg.Name)
		if seg.Array {
			b.WriteString("[]")
		}
	}
	return b.String()
}

// isSystemField reports identifier, timestamp, status and foreign-key
// names, which always stay in plaintext.
func isSystemField(name string) bool {
	lower := strings.ToLower(name)
	switch lower {
	case "id", "uuid", "status", "state", "type", "kind", "createdat", "updatedat", "deletedat",
		"created_at", "updated_at", "deleted_at", "position", "order", "version":
		return true
	}
	return strings.HasSuffix(name, "Id") || strings.HasSuffix(lower, "_id") ||
		strings.HasSuffix(name, "At") || strings.HasSuffix(lower, "_at")
}
