package command

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jamesx-improving/valkey-glide-go/resp"
)

func TestDecodeInt(t *testing.T) {
	n, err := DecodeInt(resp.IntValue(7))
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)

	n, err = DecodeInt(resp.NullValue())
	assert.NoError(t, err)
	assert.Equal(t, int64(0), n)

	n, err = DecodeInt(resp.StringValue("x"))
	assert.Equal(t, ErrDecodeMismatch, err)
	assert.Equal(t, int64(0), n)
}

func TestDecodeFloat(t *testing.T) {
	f, err := DecodeFloat(resp.FloatValue(166.27))
	assert.NoError(t, err)
	assert.Equal(t, 166.27, f)

	// decimal bulk-string form decodes too
	f, err = DecodeFloat(resp.StringValue("166.27"))
	assert.NoError(t, err)
	assert.Equal(t, 166.27, f)

	_, err = DecodeFloat(resp.StringValue("not-a-number"))
	assert.Equal(t, ErrDecodeMismatch, err)
}

func TestDecodeBool(t *testing.T) {
	b, err := DecodeBool(resp.BoolValue(true))
	assert.NoError(t, err)
	assert.True(t, b)

	// an OK status reads as true
	b, err = DecodeBool(resp.OkValue())
	assert.NoError(t, err)
	assert.True(t, b)

	_, err = DecodeBool(resp.StringValue("yes"))
	assert.Equal(t, ErrDecodeMismatch, err)
}

func TestDecodeStrings(t *testing.T) {
	out, err := DecodeStrings(resp.ArrayValue(
		resp.StringValue("a"),
		resp.IntValue(3),
		resp.FloatValue(1.5),
	))
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "3", "1.5"}, out)

	out, err = DecodeStrings(resp.NullValue())
	assert.NoError(t, err)
	assert.Nil(t, out)

	out, err = DecodeStrings(resp.SetValue(resp.StringValue("m")))
	assert.NoError(t, err)
	assert.Equal(t, []string{"m"}, out)

	_, err = DecodeStrings(resp.IntValue(1))
	assert.Equal(t, ErrDecodeMismatch, err)
}

func TestDecodeBools(t *testing.T) {
	out, err := DecodeBools(resp.ArrayValue(
		resp.IntValue(1),
		resp.IntValue(0),
		resp.BoolValue(true),
	))
	assert.NoError(t, err)
	assert.Equal(t, []bool{true, false, true}, out)
}

func TestDecodeMixed(t *testing.T) {
	// shape-dependent replies map structurally, scalar or nested alike
	out, err := DecodeMixed(resp.StringValue("one"))
	assert.NoError(t, err)
	assert.Equal(t, "one", out)

	out, err = DecodeMixed(resp.ArrayValue(resp.StringValue("a"), resp.IntValue(2)))
	assert.NoError(t, err)
	assert.Equal(t, []interface{}{"a", int64(2)}, out)
}

func TestDecodeGeoHash(t *testing.T) {
	out, err := DecodeGeoHash(resp.ArrayValue(
		resp.StringValue("sqc8b49rny0"),
		resp.NullValue(),
	))
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "sqc8b49rny0", *out[0])
	assert.Nil(t, out[1])
}

func TestGeoPosNaming(t *testing.T) {
	// the command tag and the coordinate struct are distinct identifiers
	assert.Equal(t, "GEOPOS", GeoPos.String())
	p := Position{Longitude: 13.36, Latitude: 38.11}
	assert.Equal(t, 13.36, p.Longitude)
}

func TestDecodeGeoPos(t *testing.T) {
	out, err := DecodeGeoPos(resp.ArrayValue(
		resp.ArrayValue(resp.StringValue("13.36138933897018433"), resp.StringValue("38.11555639549629859")),
		resp.NullValue(),
		resp.ArrayValue(resp.StringValue("only-one")),
	))
	assert.NoError(t, err)
	assert.Len(t, out, 3)
	assert.InDelta(t, 13.3613893, out[0].Longitude, 1e-6)
	assert.InDelta(t, 38.1155563, out[0].Latitude, 1e-6)
	assert.Nil(t, out[1])
	// a malformed entry degrades to a nil slot, not a failure
	assert.Nil(t, out[2])
}

func TestDecodeGeoSearchPlain(t *testing.T) {
	out, err := DecodeGeoSearch(resp.ArrayValue(
		resp.StringValue("Palermo"),
		resp.StringValue("Catania"),
	), GeoFlags{})
	assert.NoError(t, err)
	assert.Equal(t, []GeoLocation{{Name: "Palermo"}, {Name: "Catania"}}, out)
}

func TestDecodeGeoSearchFlagged(t *testing.T) {
	// the reply carries dist, hash, coord in that fixed order no matter
	// how the flags were spelled in the request
	reply := resp.ArrayValue(
		resp.ArrayValue(
			resp.StringValue("Palermo"),
			resp.ArrayValue(
				resp.StringValue("190.4424"),
				resp.IntValue(3479099956230698),
				resp.ArrayValue(resp.StringValue("13.361389"), resp.StringValue("38.115556")),
			),
		),
	)
	out, err := DecodeGeoSearch(reply, GeoFlags{WithCoord: true, WithDist: true, WithHash: true})
	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, "Palermo", out[0].Name)
	assert.InDelta(t, 190.4424, out[0].Dist, 1e-6)
	assert.Equal(t, int64(3479099956230698), out[0].Hash)
	assert.NotNil(t, out[0].Coord)
	assert.InDelta(t, 13.361389, out[0].Coord.Longitude, 1e-6)
}

func TestDecodeGeoSearchDistOnly(t *testing.T) {
	reply := resp.ArrayValue(
		resp.ArrayValue(
			resp.StringValue("Catania"),
			resp.ArrayValue(resp.StringValue("56.4413")),
		),
	)
	out, err := DecodeGeoSearch(reply, GeoFlags{WithDist: true})
	assert.NoError(t, err)
	assert.InDelta(t, 56.4413, out[0].Dist, 1e-6)
	assert.Nil(t, out[0].Coord)
	assert.Equal(t, int64(0), out[0].Hash)
}

func TestDecodeScan(t *testing.T) {
	page, err := DecodeScan(Scan, resp.ArrayValue(
		resp.StringValue("17"),
		resp.ArrayValue(resp.StringValue("k1"), resp.StringValue("k2")),
	))
	assert.NoError(t, err)
	assert.Equal(t, "17", page.Cursor)
	assert.Equal(t, []string{"k1", "k2"}, page.Items)

	// terminal step may still carry a batch
	page, err = DecodeScan(SScan, resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(resp.StringValue("last")),
	))
	assert.NoError(t, err)
	assert.Equal(t, TerminalCursor, page.Cursor)
	assert.Equal(t, []string{"last"}, page.Items)
}

func TestDecodeScanPairs(t *testing.T) {
	page, err := DecodeScan(HScan, resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(
			resp.StringValue("f1"), resp.StringValue("v1"),
			resp.StringValue("f2"), resp.StringValue("v2"),
		),
	))
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"f1": "v1", "f2": "v2"}, page.Pairs)

	page, err = DecodeScan(ZScan, resp.ArrayValue(
		resp.StringValue("0"),
		resp.ArrayValue(resp.StringValue("m"), resp.StringValue("1.5")),
	))
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"m": "1.5"}, page.Pairs)
}

func TestDecodeScanMalformed(t *testing.T) {
	// a malformed reply decodes to the terminal cursor so a loop driven
	// by the cursor cannot spin forever
	page, err := DecodeScan(Scan, resp.IntValue(42))
	assert.Equal(t, ErrDecodeMismatch, err)
	assert.Equal(t, TerminalCursor, page.Cursor)
	assert.Empty(t, page.Items)
}
