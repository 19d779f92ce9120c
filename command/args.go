package command

import "strconv"

// Args accumulates the ordered argument vector for one command. Caller
// supplied keys and members are referenced as-is; numeric parameters and
// keyword literals are appended as freshly built entries, so every entry
// stays valid for the whole execution call without further tracking.
type Args struct {
	vector [][]byte
}

// NewArgs creates a builder with room for n entries
func NewArgs(n int) *Args {
	return &Args{vector: make([][]byte, 0, n)}
}

// Key appends a caller supplied string argument
func (a *Args) Key(s string) *Args {
	a.vector = append(a.vector, []byte(s))
	return a
}

// Bytes appends a caller supplied byte-string argument
func (a *Args) Bytes(b []byte) *Args {
	a.vector = append(a.vector, b)
	return a
}

// Literal appends a protocol keyword such as "WITHCOORD" or "MATCH"
func (a *Args) Literal(s string) *Args {
	a.vector = append(a.vector, []byte(s))
	return a
}

// Int appends the canonical decimal form of an integer
func (a *Args) Int(v int64) *Args {
	a.vector = append(a.vector, []byte(FormatInt(v)))
	return a
}

// Float appends the canonical decimal form of a double
func (a *Args) Float(v float64) *Args {
	a.vector = append(a.vector, []byte(FormatFloat(v)))
	return a
}

// Len returns the number of entries built so far
func (a *Args) Len() int { return len(a.vector) }

// Vector returns the finished argument vector
func (a *Args) Vector() [][]byte { return a.vector }

// FormatInt renders an integer as byte-exact decimal text
func FormatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a double as the shortest decimal text that parses
// back to the same value. The 'f' format never produces exponent
// notation, which the wire protocol does not accept for these arguments.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatValue renders an arbitrary member value in its canonical string
// form: strings and byte strings pass through, integers and doubles get
// their decimal text, booleans become "1"/"0".
func FormatValue(v interface{}) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case int:
		return []byte(FormatInt(int64(x))), nil
	case int64:
		return []byte(FormatInt(x)), nil
	case float64:
		return []byte(FormatFloat(x)), nil
	case bool:
		if x {
			return []byte("1"), nil
		}
		return []byte("0"), nil
	}
	return nil, ErrValueType
}
