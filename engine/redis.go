package engine

import (
	"github.com/gomodule/redigo/redis"

	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

// Redis is an Executor backed by a plain redigo connection. It exists
// for the compat harness and integration tooling: the same argument
// vectors the binding hands to the glide core are sent over a real
// connection and the replies converted back into the typed value model.
// Cluster scans are emulated with the standalone SCAN, so the finished
// sentinel never appears here.
type Redis struct {
	conn redis.Conn
}

// NewRedis wraps an established redigo connection
func NewRedis(conn redis.Conn) *Redis {
	return &Redis{conn: conn}
}

// Execute sends the command and argument vector over the connection
func (r *Redis) Execute(cmd command.RequestType, args [][]byte) (resp.Value, error) {
	iargs := make([]interface{}, len(args))
	for i, a := range args {
		iargs[i] = a
	}
	reply, err := r.conn.Do(cmd.String(), iargs...)
	if err != nil {
		return resp.NullValue(), err
	}
	return fromReply(reply), nil
}

// ClusterScan emulates a cluster scan step with the standalone SCAN,
// splicing the cursor back into the argument vector
func (r *Redis) ClusterScan(cursor string, args [][]byte) (resp.Value, error) {
	iargs := make([]interface{}, 0, len(args)+1)
	iargs = append(iargs, cursor)
	for _, a := range args {
		iargs = append(iargs, a)
	}
	reply, err := r.conn.Do("SCAN", iargs...)
	if err != nil {
		return resp.NullValue(), err
	}
	return fromReply(reply), nil
}

// ReleaseClusterCursor is a no-op: the emulation holds no core-side state
func (r *Redis) ReleaseClusterCursor(id string) {}

// Close closes the underlying connection
func (r *Redis) Close() error {
	return r.conn.Close()
}

func fromReply(reply interface{}) resp.Value {
	switch x := reply.(type) {
	case nil:
		return resp.NullValue()
	case int64:
		return resp.IntValue(x)
	case []byte:
		return resp.BytesValue(x)
	case string:
		if x == "OK" {
			return resp.OkValue()
		}
		return resp.StringValue(x)
	case []interface{}:
		elems := make([]resp.Value, 0, len(x))
		for _, e := range x {
			elems = append(elems, fromReply(e))
		}
		return resp.ArrayValue(elems...)
	case redis.Error:
		return resp.ErrorValue(x.Error())
	}
	return resp.NullValue()
}
