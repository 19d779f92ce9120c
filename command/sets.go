package command

// KeyMembersArgs builds the vector for key + variadic member commands
// (SADD, SREM, SMISMEMBER). Non-string member values are converted to
// their canonical string form before entering the vector.
func KeyMembersArgs(key string, members []interface{}) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	a := NewArgs(1 + len(members))
	a.Key(key)
	for _, m := range members {
		b, err := FormatValue(m)
		if err != nil {
			return nil, err
		}
		a.Bytes(b)
	}
	return a.Vector(), nil
}

// KeyOnlyArgs builds the vector for key-only commands (SCARD, SMEMBERS)
func KeyOnlyArgs(key string) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	return NewArgs(1).Key(key).Vector(), nil
}

// KeyMemberArgs builds the vector for key + single member commands
// (SISMEMBER)
func KeyMemberArgs(key, member string) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if member == "" {
		return nil, ErrNoMembers
	}
	return NewArgs(2).Key(key).Key(member).Vector(), nil
}

// KeyCountArgs builds the vector for key + optional count commands
// (SPOP, SRANDMEMBER). hasCount distinguishes "no count" from count 0.
func KeyCountArgs(key string, count int64, hasCount bool) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	a := NewArgs(2)
	a.Key(key)
	if hasCount {
		a.Int(count)
	}
	return a.Vector(), nil
}

// MultiKeyArgs builds the vector for multi-key commands (SINTER, SUNION,
// SDIFF)
func MultiKeyArgs(keys []string) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	a := NewArgs(len(keys))
	for _, k := range keys {
		a.Key(k)
	}
	return a.Vector(), nil
}

// MultiKeyLimitArgs builds the vector for SINTERCARD: numkeys, the keys,
// then an optional LIMIT clause
func MultiKeyLimitArgs(keys []string, limit int64, hasLimit bool) ([][]byte, error) {
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	a := NewArgs(1 + len(keys) + 2)
	a.Int(int64(len(keys)))
	for _, k := range keys {
		a.Key(k)
	}
	if hasLimit {
		a.Literal("LIMIT").Int(limit)
	}
	return a.Vector(), nil
}

// DstMultiKeyArgs builds the vector for destination + source key
// commands (SINTERSTORE, SUNIONSTORE, SDIFFSTORE)
func DstMultiKeyArgs(dst string, keys []string) ([][]byte, error) {
	if dst == "" {
		return nil, ErrNoKey
	}
	if len(keys) == 0 {
		return nil, ErrNoKeys
	}
	a := NewArgs(1 + len(keys))
	a.Key(dst)
	for _, k := range keys {
		a.Key(k)
	}
	return a.Vector(), nil
}

// TwoKeyMemberArgs builds the vector for SMOVE: source, destination,
// member
func TwoKeyMemberArgs(src, dst, member string) ([][]byte, error) {
	if src == "" || dst == "" {
		return nil, ErrNoKey
	}
	if member == "" {
		return nil, ErrNoMembers
	}
	return NewArgs(3).Key(src).Key(dst).Key(member).Vector(), nil
}
