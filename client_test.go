package glide

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/engine"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

func TestDispatchArity(t *testing.T) {
	mock := engine.NewMock()
	cli := New(mock)

	_, err := cli.dispatch(command.SCard, nil)
	assert.Error(t, err)
	// the engine is never reached on an arity failure
	assert.Empty(t, mock.Calls)
}

func TestDispatchServerError(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ErrorValue("ERR value is not a valid float"))
	cli := New(mock)

	_, _, err := cli.GeoDist("pts", "a", "b", "")
	assert.EqualError(t, err, "ERR value is not a valid float")
}

func TestGeoAddVector(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.IntValue(2))
	cli := New(mock)

	n, err := cli.GeoAdd("pts", []GeoMember{
		{Longitude: 13.361389, Latitude: 38.115556, Member: "Palermo"},
		{Longitude: 15.087269, Latitude: 37.502669, Member: "Catania"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Len(t, mock.Calls, 1)
	assert.Equal(t, command.GeoAdd, mock.Calls[0].Cmd)
	assert.Len(t, mock.Calls[0].Args, 7)
	assert.Equal(t, "13.361389", string(mock.Calls[0].Args[1]))
}

func TestGeoDistMissingMember(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.NullValue())
	cli := New(mock)

	_, ok, err := cli.GeoDist("pts", "a", "nosuch", "km")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestSMIsMember(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(resp.IntValue(1), resp.IntValue(0)))
	cli := New(mock)

	flags, err := cli.SMIsMember("s", []interface{}{"a", "b"})
	assert.NoError(t, err)
	assert.Equal(t, []bool{true, false}, flags)
}

func TestSPopEmptySet(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.NullValue())
	cli := New(mock)

	_, ok, err := cli.SPop("s")
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestScanLifecycle(t *testing.T) {
	mock := engine.NewMock().
		WillReturn(resp.ArrayValue(
			resp.StringValue("3"),
			resp.ArrayValue(resp.StringValue("k1")),
		)).
		WillReturn(resp.ArrayValue(
			resp.StringValue("0"),
			resp.ArrayValue(resp.StringValue("k2")),
		))
	cli := New(mock)

	cursor := NewScanCursor()
	assert.False(t, cursor.Finished())

	batch, err := cli.Scan(cursor, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"k1"}, batch)
	assert.Equal(t, "3", cursor.Token())
	assert.False(t, cursor.Finished())

	// the terminal step still delivers its batch
	batch, err = cli.Scan(cursor, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"k2"}, batch)
	assert.True(t, cursor.Finished())

	// each step carried the prior token in the vector
	assert.Equal(t, "0", string(mock.Calls[0].Args[0]))
	assert.Equal(t, "3", string(mock.Calls[1].Args[0]))
}

func TestScanCompletedCursorStays(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(resp.StringValue("k")),
	))
	cli := New(mock)

	cursor := NewScanCursor()
	batch, err := cli.Scan(cursor, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"k"}, batch)
	assert.True(t, cursor.Finished())

	// stepping a completed cursor yields an empty batch, stays complete
	// and never reaches the engine again
	batch, err = cli.Scan(cursor, nil)
	assert.NoError(t, err)
	assert.Empty(t, batch)
	assert.True(t, cursor.Finished())
	assert.Len(t, mock.Calls, 1)
}

func TestSScanCarriesKey(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(),
	))
	cli := New(mock)

	cursor := NewScanCursor()
	_, err := cli.SScan("s", cursor, &ScanOptions{Match: "m*"})
	assert.NoError(t, err)
	assert.Equal(t, []string{"s", "0", "MATCH", "m*"}, vectorStrings(mock.Calls[0].Args))
	assert.True(t, cursor.Finished())
}

func TestHScanPairs(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(
			resp.StringValue("f"), resp.StringValue("v"),
		),
	))
	cli := New(mock)

	pairs, err := cli.HScan("h", NewScanCursor(), nil)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"f": "v"}, pairs)
}

func TestClusterScanFinishedSentinel(t *testing.T) {
	mock := engine.NewMock().
		WillReturn(resp.ArrayValue(
			resp.StringValue("c0ffee"),
			resp.ArrayValue(resp.StringValue("k1")),
		)).
		WillReturn(resp.ArrayValue(
			resp.StringValue(engine.FinishedScanCursor),
			resp.ArrayValue(resp.StringValue("k2")),
		))
	cli := New(mock)

	cursor := NewClusterScanCursor()
	batch, err := cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"k1"}, batch)
	assert.Equal(t, "c0ffee", cursor.ID())
	assert.False(t, cursor.Finished())

	batch, err = cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)
	assert.Equal(t, []string{"k2"}, batch)
	assert.True(t, cursor.Finished())
	assert.Equal(t, command.TerminalCursor, cursor.ID())

	// the first step presented the fresh cursor, the second the core's id
	assert.Equal(t, command.TerminalCursor, mock.Calls[0].Cursor)
	assert.Equal(t, "c0ffee", mock.Calls[1].Cursor)

	// the live id was handed back to the core on the terminal step
	assert.Equal(t, []string{"c0ffee"}, mock.Released)

	// a finished cursor never reaches the engine again, and an explicit
	// Release cannot free the id a second time
	batch, err = cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)
	assert.Nil(t, batch)
	assert.Len(t, mock.Calls, 2)
	cursor.Release()
	assert.Equal(t, []string{"c0ffee"}, mock.Released)
}

func TestClusterScanMismatchReleases(t *testing.T) {
	mock := engine.NewMock().
		WillReturn(resp.ArrayValue(
			resp.StringValue("c0ffee"),
			resp.ArrayValue(),
		)).
		WillReturn(resp.IntValue(42))
	cli := New(mock)

	cursor := NewClusterScanCursor()
	_, err := cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)

	// a malformed reply terminates the scan and still frees the live id
	_, err = cli.ClusterScan(cursor, nil)
	assert.Equal(t, command.ErrDecodeMismatch, err)
	assert.True(t, cursor.Finished())
	assert.Equal(t, []string{"c0ffee"}, mock.Released)

	cursor.Release()
	assert.Equal(t, []string{"c0ffee"}, mock.Released)
}

func TestClusterScanRelease(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(
		resp.StringValue("c0ffee"),
		resp.ArrayValue(),
	))
	cli := New(mock)

	cursor := NewClusterScanCursor()
	_, err := cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)

	// abandoning an in-flight scan releases the core id exactly once
	cursor.Release()
	cursor.Release()
	assert.Equal(t, []string{"c0ffee"}, mock.Released)

	// a released cursor yields empty batches without touching the core
	batch, err := cli.ClusterScan(cursor, nil)
	assert.NoError(t, err)
	assert.Nil(t, batch)
	assert.Len(t, mock.Calls, 1)
}

func TestBatchFIFO(t *testing.T) {
	mock := engine.NewMock().
		WillReturn(resp.IntValue(3)).
		WillReturn(resp.ErrorValue("ERR wrong kind")).
		WillReturn(resp.ArrayValue(resp.StringValue("a"), resp.StringValue("b")))
	cli := New(mock)

	batch := NewBatch().
		SAdd("s", []interface{}{"a", "b", "c"}).
		SCard("other").
		SMembers("s")
	results, err := cli.Exec(batch)
	assert.NoError(t, err)
	assert.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Equal(t, int64(3), results[0].Value)

	// a per-entry server error stays isolated
	assert.EqualError(t, results[1].Err, "ERR wrong kind")

	assert.NoError(t, results[2].Err)
	assert.Equal(t, []string{"a", "b"}, results[2].Value)

	// submission order is execution order
	assert.Equal(t, command.SAdd, mock.Calls[0].Cmd)
	assert.Equal(t, command.SCard, mock.Calls[1].Cmd)
	assert.Equal(t, command.SMembers, mock.Calls[2].Cmd)

	// the buffer drained
	assert.Equal(t, 0, batch.Len())
}

func TestBatchEncodeErrorIsolated(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.IntValue(1))
	cli := New(mock)

	batch := NewBatch().
		SAdd("", []interface{}{"a"}).
		SCard("s")
	results, err := cli.Exec(batch)
	assert.NoError(t, err)
	assert.Equal(t, command.ErrNoKey, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.Equal(t, int64(1), results[1].Value)
	// the broken entry never reached the engine
	assert.Len(t, mock.Calls, 1)
}

func TestBatchTransportFailureAborts(t *testing.T) {
	transport := errors.New("connection reset")
	mock := engine.NewMock().
		WillReturn(resp.IntValue(1)).
		WillFail(transport)
	cli := New(mock)

	batch := NewBatch().
		SCard("a").
		SCard("b").
		SCard("c")
	results, err := cli.Exec(batch)
	assert.Equal(t, transport, err)
	assert.Len(t, results, 3)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, transport, results[1].Err)
	assert.Equal(t, transport, results[2].Err)
	// nothing ran past the failure
	assert.Len(t, mock.Calls, 2)
}

func TestBatchGeoSearchNilQuery(t *testing.T) {
	mock := engine.NewMock()
	cli := New(mock)

	// a nil query is captured as an argument-error entry, not a panic
	batch := NewBatch().GeoSearch("pts", nil)
	results, err := cli.Exec(batch)
	assert.NoError(t, err)
	assert.Equal(t, command.ErrSearchFrom, results[0].Err)
	assert.Empty(t, mock.Calls)
}

func TestBatchGeoSearchFlagsCaptured(t *testing.T) {
	mock := engine.NewMock().WillReturn(resp.ArrayValue(
		resp.ArrayValue(
			resp.StringValue("Palermo"),
			resp.ArrayValue(resp.StringValue("190.4424")),
		),
	))
	cli := New(mock)

	q := &GeoSearchQuery{FromMember: "m", Radius: 200, Unit: "km", WithDist: true}
	batch := NewBatch().GeoSearch("pts", q)

	// mutating the query after queueing must not change the decode
	q.WithDist = false
	q.WithHash = true

	results, err := cli.Exec(batch)
	assert.NoError(t, err)
	assert.NoError(t, results[0].Err)
	locs := results[0].Value.([]GeoLocation)
	assert.InDelta(t, 190.4424, locs[0].Dist, 1e-6)
	assert.Equal(t, int64(0), locs[0].Hash)
}

func vectorStrings(args [][]byte) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, string(a))
	}
	return out
}
