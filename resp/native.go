package resp

// Native converts a reply tree to plain Go values without assuming a
// fixed shape. Arrays and sets become []interface{}, maps become
// map[string]interface{}, bulk strings become string, errors become their
// message. Used by commands whose reply shape depends on their arguments.
func Native(v Value) interface{} {
	switch v.kind {
	case Null:
		return nil
	case Ok:
		return true
	case Int:
		return v.integer
	case Float:
		return v.float
	case Bool:
		return v.boolean
	case String:
		return string(v.bytes)
	case Array, Set:
		out := make([]interface{}, 0, len(v.elems))
		for _, e := range v.elems {
			out = append(out, Native(e))
		}
		return out
	case Map:
		return nativeMap(v.elems)
	case Error:
		return string(v.bytes)
	}
	return nil
}

// NativeAssociative converts a reply to a map, interpreting a flat array
// as alternating field/value pairs. HSCAN and ZSCAN pages arrive in this
// shape. A trailing odd element is dropped.
func NativeAssociative(v Value) map[string]interface{} {
	switch v.kind {
	case Map:
		return nativeMap(v.elems)
	case Array, Set:
		return nativeMap(v.elems)
	}
	return map[string]interface{}{}
}

func nativeMap(pairs []Value) map[string]interface{} {
	out := make(map[string]interface{}, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		key, err := pairs[i].Str()
		if err != nil {
			continue
		}
		out[key] = Native(pairs[i+1])
	}
	return out
}
