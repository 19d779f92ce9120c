package glide

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/metrics"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

// Batch buffers commands in submission order for one Exec round trip.
// Every queueing method returns the batch itself so calls chain, the
// way a pipelined handle does. Encoding happens at queue time, so an
// argument error is captured in the entry and surfaces in that entry's
// Result without disturbing its neighbours.
type Batch struct {
	entries []batchEntry
}

type batchEntry struct {
	cmd    command.RequestType
	args   [][]byte
	argErr error
	decode func(resp.Value) (interface{}, error)
}

// Result is the outcome of one batch entry, in submission order. Value
// carries the family-typed decode of the reply, Err any encode, engine
// or decode failure of this entry.
type Result struct {
	Value interface{}
	Err   error
}

// NewBatch returns an empty command buffer
func NewBatch() *Batch {
	return &Batch{}
}

// Len returns the number of buffered commands
func (b *Batch) Len() int { return len(b.entries) }

func (b *Batch) add(cmd command.RequestType, args [][]byte, argErr error, decode func(resp.Value) (interface{}, error)) *Batch {
	b.entries = append(b.entries, batchEntry{cmd: cmd, args: args, argErr: argErr, decode: decode})
	return b
}

func decodeInt(v resp.Value) (interface{}, error) { return command.DecodeInt(v) }

func decodeBool(v resp.Value) (interface{}, error) { return command.DecodeBool(v) }

func decodeStrings(v resp.Value) (interface{}, error) { return command.DecodeStrings(v) }

// GeoAdd queues a GEOADD
func (b *Batch) GeoAdd(key string, members []GeoMember) *Batch {
	args, err := command.GeoAddArgs(key, members)
	return b.add(command.GeoAdd, args, err, decodeInt)
}

// GeoDist queues a GEODIST. The decoded value is a float64, or nil when
// either member is missing.
func (b *Batch) GeoDist(key, src, dst, unit string) *Batch {
	args, err := command.GeoDistArgs(key, src, dst, unit)
	return b.add(command.GeoDist, args, err, func(v resp.Value) (interface{}, error) {
		if v.IsNull() {
			return nil, nil
		}
		return command.DecodeFloat(v)
	})
}

// GeoHash queues a GEOHASH
func (b *Batch) GeoHash(key string, members []string) *Batch {
	args, err := command.GeoMembersArgs(key, members)
	return b.add(command.GeoHash, args, err, func(v resp.Value) (interface{}, error) {
		return command.DecodeGeoHash(v)
	})
}

// GeoPos queues a GEOPOS
func (b *Batch) GeoPos(key string, members []string) *Batch {
	args, err := command.GeoMembersArgs(key, members)
	return b.add(command.GeoPos, args, err, func(v resp.Value) (interface{}, error) {
		return command.DecodeGeoPos(v)
	})
}

// GeoSearch queues a GEOSEARCH. The WITH flags are captured now so the
// reply decodes against the flags this entry was encoded with, not
// whatever the query holds at Exec time.
func (b *Batch) GeoSearch(key string, q *GeoSearchQuery) *Batch {
	args, err := command.GeoSearchArgs(key, q)
	var flags command.GeoFlags
	if err == nil {
		flags = q.Flags()
	}
	return b.add(command.GeoSearch, args, err, func(v resp.Value) (interface{}, error) {
		return command.DecodeGeoSearch(v, flags)
	})
}

// GeoSearchStore queues a GEOSEARCHSTORE
func (b *Batch) GeoSearchStore(dst, src string, q *GeoSearchQuery) *Batch {
	args, err := command.GeoSearchStoreArgs(dst, src, q)
	return b.add(command.GeoSearchStore, args, err, decodeInt)
}

// SAdd queues an SADD
func (b *Batch) SAdd(key string, members []interface{}) *Batch {
	args, err := command.KeyMembersArgs(key, members)
	return b.add(command.SAdd, args, err, decodeInt)
}

// SCard queues an SCARD
func (b *Batch) SCard(key string) *Batch {
	args, err := command.KeyOnlyArgs(key)
	return b.add(command.SCard, args, err, decodeInt)
}

// SIsMember queues an SISMEMBER
func (b *Batch) SIsMember(key, member string) *Batch {
	args, err := command.KeyMemberArgs(key, member)
	return b.add(command.SIsMember, args, err, decodeBool)
}

// SMIsMember queues an SMISMEMBER
func (b *Batch) SMIsMember(key string, members []interface{}) *Batch {
	args, err := command.KeyMembersArgs(key, members)
	return b.add(command.SMIsMember, args, err, func(v resp.Value) (interface{}, error) {
		return command.DecodeBools(v)
	})
}

// SMembers queues an SMEMBERS
func (b *Batch) SMembers(key string) *Batch {
	args, err := command.KeyOnlyArgs(key)
	return b.add(command.SMembers, args, err, decodeStrings)
}

// SMove queues an SMOVE
func (b *Batch) SMove(src, dst, member string) *Batch {
	args, err := command.TwoKeyMemberArgs(src, dst, member)
	return b.add(command.SMove, args, err, decodeBool)
}

// SPop queues an SPOP without a count; the decoded value is a string or
// nil for an empty set.
func (b *Batch) SPop(key string) *Batch {
	args, err := command.KeyOnlyArgs(key)
	return b.add(command.SPop, args, err, func(v resp.Value) (interface{}, error) {
		if v.IsNull() {
			return nil, nil
		}
		s, err := v.Str()
		if err != nil {
			return nil, command.ErrDecodeMismatch
		}
		return s, nil
	})
}

// SPopN queues an SPOP with a count
func (b *Batch) SPopN(key string, count int64) *Batch {
	args, err := command.KeyCountArgs(key, count, true)
	return b.add(command.SPop, args, err, decodeStrings)
}

// SRandMemberN queues an SRANDMEMBER with a count
func (b *Batch) SRandMemberN(key string, count int64) *Batch {
	args, err := command.KeyCountArgs(key, count, true)
	return b.add(command.SRandMember, args, err, decodeStrings)
}

// SRem queues an SREM
func (b *Batch) SRem(key string, members []interface{}) *Batch {
	args, err := command.KeyMembersArgs(key, members)
	return b.add(command.SRem, args, err, decodeInt)
}

// SInter queues an SINTER
func (b *Batch) SInter(keys []string) *Batch {
	args, err := command.MultiKeyArgs(keys)
	return b.add(command.SInter, args, err, decodeStrings)
}

// SInterCard queues an SINTERCARD
func (b *Batch) SInterCard(keys []string, limit int64) *Batch {
	args, err := command.MultiKeyLimitArgs(keys, limit, limit > 0)
	return b.add(command.SInterCard, args, err, decodeInt)
}

// SInterStore queues an SINTERSTORE
func (b *Batch) SInterStore(dst string, keys []string) *Batch {
	args, err := command.DstMultiKeyArgs(dst, keys)
	return b.add(command.SInterStore, args, err, decodeInt)
}

// SUnion queues an SUNION
func (b *Batch) SUnion(keys []string) *Batch {
	args, err := command.MultiKeyArgs(keys)
	return b.add(command.SUnion, args, err, decodeStrings)
}

// SUnionStore queues an SUNIONSTORE
func (b *Batch) SUnionStore(dst string, keys []string) *Batch {
	args, err := command.DstMultiKeyArgs(dst, keys)
	return b.add(command.SUnionStore, args, err, decodeInt)
}

// SDiff queues an SDIFF
func (b *Batch) SDiff(keys []string) *Batch {
	args, err := command.MultiKeyArgs(keys)
	return b.add(command.SDiff, args, err, decodeStrings)
}

// SDiffStore queues an SDIFFSTORE
func (b *Batch) SDiffStore(dst string, keys []string) *Batch {
	args, err := command.DstMultiKeyArgs(dst, keys)
	return b.add(command.SDiffStore, args, err, decodeInt)
}

// Exec runs the buffered commands strictly in submission order and
// returns one Result per entry. Per-entry encode failures, server
// error replies and decode failures are isolated to their own Result.
// An engine transport failure fills the failing entry's Result and
// aborts the remainder; every unexecuted entry carries the same error
// so callers can tell them apart from decoded outcomes. The buffer is
// drained either way, so the batch can be reused.
func (c *Client) Exec(b *Batch) ([]Result, error) {
	entries := b.entries
	b.entries = nil
	metrics.GetMetrics().BatchSizeHistogram.Observe(float64(len(entries)))

	results := make([]Result, len(entries))
	for i, e := range entries {
		if e.argErr != nil {
			results[i] = Result{Err: e.argErr}
			continue
		}
		v, err := c.execOne(e.cmd, e.args)
		if err != nil {
			results[i] = Result{Err: err}
			for j := i + 1; j < len(entries); j++ {
				results[j] = Result{Err: err}
			}
			return results, err
		}
		if msg, serverErr := v.ErrMsg(); serverErr == nil {
			results[i] = Result{Err: errors.New(msg)}
			continue
		}
		val, err := e.decode(v)
		if err != nil {
			c.noteMismatch(e.cmd, err)
			results[i] = Result{Value: val, Err: err}
			continue
		}
		results[i] = Result{Value: val}
	}
	return results, nil
}

// execOne is one timed engine call that keeps server error replies as
// values. Only transport failures come back as errors.
func (c *Client) execOne(t command.RequestType, args [][]byte) (resp.Value, error) {
	if err := command.CheckArity(t, len(args)); err != nil {
		return resp.NullValue(), err
	}
	c.cliCtx.Touch(t.String())

	mt := metrics.GetMetrics()
	start := time.Now()
	v, err := c.exec.Execute(t, args)
	mt.CommandCallHistogramVec.WithLabelValues(t.String()).Observe(time.Since(start).Seconds())
	if err != nil {
		mt.CommandFailuresCounterVec.WithLabelValues(t.String()).Inc()
		zap.L().Error("engine call failed",
			zap.Int64("clientid", c.cliCtx.ID),
			zap.String("command", t.String()),
			zap.String("traceid", c.cliCtx.TraceID),
			zap.Error(err))
		return resp.NullValue(), err
	}
	return v, nil
}
