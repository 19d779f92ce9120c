package command

import (
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

// TerminalCursor is the token the server returns when a scan has walked
// the whole keyspace. It is also the token a fresh scan starts from.
const TerminalCursor = "0"

// Position is a decoded coordinate pair
type Position struct {
	Longitude float64
	Latitude  float64
}

// GeoLocation is one member of a flagged geo search reply. Dist, Hash
// and Coord are populated according to the WITH flags captured at encode
// time; the wire reply identifies the extra fields only by position.
type GeoLocation struct {
	Name  string
	Dist  float64
	Hash  int64
	Coord *Position
}

// ScanPage is one decoded step of a scan. Items carries the flat batch
// of SCAN and SSCAN, Pairs carries the field/value shaping of HSCAN and
// ZSCAN. Cursor is the continuation token for the next step.
type ScanPage struct {
	Cursor string
	Items  []string
	Pairs  map[string]string
}

// DecodeInt decodes an integer reply. Null is a defined empty result,
// anything else is a shape mismatch.
func DecodeInt(v resp.Value) (int64, error) {
	if v.IsNull() {
		return 0, nil
	}
	n, err := v.Int64()
	if err != nil {
		return 0, ErrDecodeMismatch
	}
	return n, nil
}

// DecodeFloat decodes a double reply, accepting the core's native double
// and decimal bulk-string representations
func DecodeFloat(v resp.Value) (float64, error) {
	if v.IsNull() {
		return 0, nil
	}
	f, err := v.Float64()
	if err != nil {
		return 0, ErrDecodeMismatch
	}
	return f, nil
}

// DecodeBool decodes a boolean reply, treating an OK status as true
func DecodeBool(v resp.Value) (bool, error) {
	b, err := v.Bool()
	if err != nil {
		return false, ErrDecodeMismatch
	}
	return b, nil
}

// DecodeStrings decodes a flat collection reply into ordered strings.
// Null decodes to nil, numeric elements keep their decimal text.
func DecodeStrings(v resp.Value) ([]string, error) {
	if v.IsNull() {
		return nil, nil
	}
	elems, err := v.Elems()
	if err != nil {
		return nil, ErrDecodeMismatch
	}
	out := make([]string, 0, len(elems))
	for _, e := range elems {
		s, ok := stringify(e)
		if !ok {
			return nil, ErrDecodeMismatch
		}
		out = append(out, s)
	}
	return out, nil
}

// DecodeBools decodes a reply of per-member membership flags
// (SMISMEMBER), accepting boolean and 0/1 integer elements
func DecodeBools(v resp.Value) ([]bool, error) {
	elems, err := v.Elems()
	if err != nil {
		return nil, ErrDecodeMismatch
	}
	out := make([]bool, 0, len(elems))
	for _, e := range elems {
		if b, err := e.Bool(); err == nil {
			out = append(out, b)
			continue
		}
		n, err := e.Int64()
		if err != nil {
			return nil, ErrDecodeMismatch
		}
		out = append(out, n != 0)
	}
	return out, nil
}

// DecodeMixed decodes a reply whose shape depends on the request, e.g.
// SPOP with and without a count
func DecodeMixed(v resp.Value) (interface{}, error) {
	return resp.Native(v), nil
}

// DecodeGeoHash decodes a GEOHASH reply: one String-or-Null per
// requested member
func DecodeGeoHash(v resp.Value) ([]*string, error) {
	elems, err := v.Elems()
	if err != nil {
		return nil, ErrDecodeMismatch
	}
	out := make([]*string, 0, len(elems))
	for _, e := range elems {
		if e.IsNull() {
			out = append(out, nil)
			continue
		}
		s, err := e.Str()
		if err != nil {
			return nil, ErrDecodeMismatch
		}
		out = append(out, &s)
	}
	return out, nil
}

// DecodeGeoPos decodes a GEOPOS reply: one [longitude, latitude] pair or
// Null per requested member. Coordinates arrive either string-encoded or
// as native doubles. Entries of any other shape decode to a nil slot.
func DecodeGeoPos(v resp.Value) ([]*Position, error) {
	elems, err := v.Elems()
	if err != nil {
		return nil, ErrDecodeMismatch
	}
	out := make([]*Position, 0, len(elems))
	for _, e := range elems {
		pair, err := e.Elems()
		if err != nil || len(pair) != 2 {
			out = append(out, nil)
			continue
		}
		lon, lonErr := pair[0].Float64()
		lat, latErr := pair[1].Float64()
		if lonErr != nil || latErr != nil {
			out = append(out, nil)
			continue
		}
		out = append(out, &Position{Longitude: lon, Latitude: lat})
	}
	return out, nil
}

// DecodeGeoSearch decodes a GEOSEARCH reply. Without WITH flags the
// reply is a flat member list. With flags each element is
// (member, [dist?, hash?, coord?]) and the fields are consumed
// positionally in the order distance, hash, coordinates, matching the
// flags that were requested.
func DecodeGeoSearch(v resp.Value, flags GeoFlags) ([]GeoLocation, error) {
	if flags.None() {
		names, err := DecodeStrings(v)
		if err != nil {
			return nil, err
		}
		out := make([]GeoLocation, 0, len(names))
		for _, name := range names {
			out = append(out, GeoLocation{Name: name})
		}
		return out, nil
	}

	elems, err := v.Elems()
	if err != nil {
		return nil, ErrDecodeMismatch
	}
	out := make([]GeoLocation, 0, len(elems))
	for _, e := range elems {
		entry, err := e.Elems()
		if err != nil || len(entry) < 2 {
			return nil, ErrDecodeMismatch
		}
		name, err := entry[0].Str()
		if err != nil {
			return nil, ErrDecodeMismatch
		}
		fields, err := entry[1].Elems()
		if err != nil {
			return nil, ErrDecodeMismatch
		}
		loc := GeoLocation{Name: name}
		idx := 0
		if flags.WithDist && idx < len(fields) {
			if loc.Dist, err = fields[idx].Float64(); err != nil {
				return nil, ErrDecodeMismatch
			}
			idx++
		}
		if flags.WithHash && idx < len(fields) {
			if loc.Hash, err = fields[idx].Int64(); err != nil {
				return nil, ErrDecodeMismatch
			}
			idx++
		}
		if flags.WithCoord && idx < len(fields) {
			pair, err := fields[idx].Elems()
			if err != nil || len(pair) != 2 {
				return nil, ErrDecodeMismatch
			}
			lon, lonErr := pair[0].Float64()
			lat, latErr := pair[1].Float64()
			if lonErr != nil || latErr != nil {
				return nil, ErrDecodeMismatch
			}
			loc.Coord = &Position{Longitude: lon, Latitude: lat}
		}
		out = append(out, loc)
	}
	return out, nil
}

// DecodeScan decodes one scan step: element 0 is the next cursor token,
// element 1 the result batch, flat for SCAN and SSCAN, alternating
// field/value pairs for HSCAN and ZSCAN. A malformed reply decodes to
// the terminal cursor with an empty batch so a scan loop cannot spin.
func DecodeScan(t RequestType, v resp.Value) (*ScanPage, error) {
	page := &ScanPage{Cursor: TerminalCursor}
	elems, err := v.Elems()
	if err != nil || len(elems) < 2 {
		return page, ErrDecodeMismatch
	}
	cursor, err := elems[0].Str()
	if err != nil {
		return page, ErrDecodeMismatch
	}
	page.Cursor = cursor

	if t == HScan || t == ZScan {
		items, err := DecodeStrings(elems[1])
		if err != nil {
			page.Cursor = TerminalCursor
			return page, ErrDecodeMismatch
		}
		page.Pairs = make(map[string]string, len(items)/2)
		for i := 0; i+1 < len(items); i += 2 {
			page.Pairs[items[i]] = items[i+1]
		}
		return page, nil
	}

	items, err := DecodeStrings(elems[1])
	if err != nil {
		page.Cursor = TerminalCursor
		return page, ErrDecodeMismatch
	}
	page.Items = items
	return page, nil
}

func stringify(v resp.Value) (string, bool) {
	switch v.Kind() {
	case resp.String:
		s, _ := v.Str()
		return s, true
	case resp.Int:
		n, _ := v.Int64()
		return FormatInt(n), true
	case resp.Float:
		f, _ := v.Float64()
		return FormatFloat(f), true
	}
	return "", false
}
