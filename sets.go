package glide

import (
	"github.com/jamesx-improving/valkey-glide-go/command"
)

// SAdd adds members to the set at key and returns the number of members
// that were not already present. Members may be strings, []byte, ints,
// floats or bools; each is serialized to its canonical text form.
func (c *Client) SAdd(key string, members []interface{}) (int64, error) {
	args, err := command.KeyMembersArgs(key, members)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.SAdd, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(command.SAdd, err)
	return n, err
}

// SCard returns the cardinality of the set at key, zero for a missing
// key.
func (c *Client) SCard(key string) (int64, error) {
	args, err := command.KeyOnlyArgs(key)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.SCard, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(command.SCard, err)
	return n, err
}

// SIsMember reports whether member belongs to the set at key
func (c *Client) SIsMember(key, member string) (bool, error) {
	args, err := command.KeyMemberArgs(key, member)
	if err != nil {
		return false, err
	}
	v, err := c.dispatch(command.SIsMember, args)
	if err != nil {
		return false, err
	}
	b, err := command.DecodeBool(v)
	c.noteMismatch(command.SIsMember, err)
	return b, err
}

// SMIsMember reports membership for every requested member, one flag
// per member in request order.
func (c *Client) SMIsMember(key string, members []interface{}) ([]bool, error) {
	args, err := command.KeyMembersArgs(key, members)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.SMIsMember, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeBools(v)
	c.noteMismatch(command.SMIsMember, err)
	return out, err
}

// SMembers returns every member of the set at key. Order is not
// defined.
func (c *Client) SMembers(key string) ([]string, error) {
	args, err := command.KeyOnlyArgs(key)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.SMembers, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeStrings(v)
	c.noteMismatch(command.SMembers, err)
	return out, err
}

// SMove atomically moves member from the set at src to the set at dst
// and reports whether the member was moved.
func (c *Client) SMove(src, dst, member string) (bool, error) {
	args, err := command.TwoKeyMemberArgs(src, dst, member)
	if err != nil {
		return false, err
	}
	v, err := c.dispatch(command.SMove, args)
	if err != nil {
		return false, err
	}
	b, err := command.DecodeBool(v)
	c.noteMismatch(command.SMove, err)
	return b, err
}

// SPop removes and returns one random member. The boolean reports
// whether the set had a member to pop.
func (c *Client) SPop(key string) (string, bool, error) {
	args, err := command.KeyOnlyArgs(key)
	if err != nil {
		return "", false, err
	}
	v, err := c.dispatch(command.SPop, args)
	if err != nil {
		return "", false, err
	}
	if v.IsNull() {
		return "", false, nil
	}
	s, err := v.Str()
	if err != nil {
		c.noteMismatch(command.SPop, command.ErrDecodeMismatch)
		return "", false, command.ErrDecodeMismatch
	}
	return s, true, nil
}

// SPopN removes and returns up to count random members
func (c *Client) SPopN(key string, count int64) ([]string, error) {
	args, err := command.KeyCountArgs(key, count, true)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.SPop, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeStrings(v)
	c.noteMismatch(command.SPop, err)
	return out, err
}

// SRandMember returns one random member without removing it. The
// boolean reports whether the set was non-empty.
func (c *Client) SRandMember(key string) (string, bool, error) {
	args, err := command.KeyOnlyArgs(key)
	if err != nil {
		return "", false, err
	}
	v, err := c.dispatch(command.SRandMember, args)
	if err != nil {
		return "", false, err
	}
	if v.IsNull() {
		return "", false, nil
	}
	s, err := v.Str()
	if err != nil {
		c.noteMismatch(command.SRandMember, command.ErrDecodeMismatch)
		return "", false, command.ErrDecodeMismatch
	}
	return s, true, nil
}

// SRandMemberN returns random members without removing them. A
// negative count allows repeats, per server semantics.
func (c *Client) SRandMemberN(key string, count int64) ([]string, error) {
	args, err := command.KeyCountArgs(key, count, true)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.SRandMember, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeStrings(v)
	c.noteMismatch(command.SRandMember, err)
	return out, err
}

// SRem removes members from the set at key and returns how many were
// actually removed.
func (c *Client) SRem(key string, members []interface{}) (int64, error) {
	args, err := command.KeyMembersArgs(key, members)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.SRem, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(command.SRem, err)
	return n, err
}

// SInter returns the intersection of the sets at keys
func (c *Client) SInter(keys []string) ([]string, error) {
	return c.multiKeyStrings(command.SInter, keys)
}

// SInterCard returns the cardinality of the intersection. A limit of
// zero means unbounded; a positive limit stops counting early.
func (c *Client) SInterCard(keys []string, limit int64) (int64, error) {
	args, err := command.MultiKeyLimitArgs(keys, limit, limit > 0)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.SInterCard, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(command.SInterCard, err)
	return n, err
}

// SInterStore stores the intersection of keys at dst and returns the
// stored cardinality.
func (c *Client) SInterStore(dst string, keys []string) (int64, error) {
	return c.multiKeyStore(command.SInterStore, dst, keys)
}

// SUnion returns the union of the sets at keys
func (c *Client) SUnion(keys []string) ([]string, error) {
	return c.multiKeyStrings(command.SUnion, keys)
}

// SUnionStore stores the union of keys at dst and returns the stored
// cardinality.
func (c *Client) SUnionStore(dst string, keys []string) (int64, error) {
	return c.multiKeyStore(command.SUnionStore, dst, keys)
}

// SDiff returns the members of the first set not present in any of the
// following sets.
func (c *Client) SDiff(keys []string) ([]string, error) {
	return c.multiKeyStrings(command.SDiff, keys)
}

// SDiffStore stores the difference of keys at dst and returns the
// stored cardinality.
func (c *Client) SDiffStore(dst string, keys []string) (int64, error) {
	return c.multiKeyStore(command.SDiffStore, dst, keys)
}

func (c *Client) multiKeyStrings(t command.RequestType, keys []string) ([]string, error) {
	args, err := command.MultiKeyArgs(keys)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(t, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeStrings(v)
	c.noteMismatch(t, err)
	return out, err
}

func (c *Client) multiKeyStore(t command.RequestType, dst string, keys []string) (int64, error) {
	args, err := command.DstMultiKeyArgs(dst, keys)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(t, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(t, err)
	return n, err
}
