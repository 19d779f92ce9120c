package command

// MaxSearchArgs is the ceiling on the argument vector length of a
// compound geo search: two keys, FROM (3), BY (3), unit, sort,
// COUNT+value+ANY, three WITH flags and STOREDIST.
const MaxSearchArgs = 16

// GeoMember is one (longitude, latitude, member) entry for GEOADD
type GeoMember struct {
	Longitude float64
	Latitude  float64
	Member    string
}

// GeoCoord is a coordinate pair used by the coordinate-form FROM clause
type GeoCoord struct {
	Longitude float64
	Latitude  float64
}

// GeoBox is the box-form search shape
type GeoBox struct {
	Width  float64
	Height float64
}

// GeoSearchQuery collects the parameters of GEOSEARCH and
// GEOSEARCHSTORE. Exactly one of FromMember and FromCoord must be set,
// and exactly one of Radius and Box. StoreDist only applies to the store
// variant, the WITH flags only to the plain search.
type GeoSearchQuery struct {
	FromMember string
	FromCoord  *GeoCoord

	Radius float64
	Box    *GeoBox

	Unit  string
	Sort  string // "ASC" or "DESC", empty for server order
	Count int64
	Any   bool

	WithCoord bool
	WithDist  bool
	WithHash  bool

	StoreDist bool
}

// Flags returns the WITH-flag set requested by the query. It is captured
// at encode time and threaded to the decoder, the reply itself does not
// identify its fields.
func (q *GeoSearchQuery) Flags() GeoFlags {
	return GeoFlags{WithCoord: q.WithCoord, WithDist: q.WithDist, WithHash: q.WithHash}
}

// GeoFlags is the decode context of a flagged geo search
type GeoFlags struct {
	WithCoord bool
	WithDist  bool
	WithHash  bool
}

// None reports whether no WITH flag was requested
func (f GeoFlags) None() bool { return !f.WithCoord && !f.WithDist && !f.WithHash }

// GeoAddArgs builds the vector for GEOADD: key followed by
// (longitude, latitude, member) triplets
func GeoAddArgs(key string, members []GeoMember) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if len(members) == 0 {
		return nil, ErrGeoTriplets
	}
	a := NewArgs(1 + 3*len(members))
	a.Key(key)
	for _, m := range members {
		a.Float(m.Longitude).Float(m.Latitude).Key(m.Member)
	}
	return a.Vector(), nil
}

// GeoDistArgs builds the vector for GEODIST, arity 3 or 4 depending on
// whether a unit is given
func GeoDistArgs(key, src, dst, unit string) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if src == "" || dst == "" {
		return nil, ErrNoMembers
	}
	a := NewArgs(4)
	a.Key(key).Key(src).Key(dst)
	if unit != "" {
		a.Key(unit)
	}
	return a.Vector(), nil
}

// GeoMembersArgs builds the vector for GEOHASH and GEOPOS: key + members
func GeoMembersArgs(key string, members []string) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	a := NewArgs(1 + len(members))
	a.Key(key)
	for _, m := range members {
		a.Key(m)
	}
	return a.Vector(), nil
}

// GeoSearchArgs builds the vector for GEOSEARCH
func GeoSearchArgs(key string, q *GeoSearchQuery) ([][]byte, error) {
	if key == "" {
		return nil, ErrNoKey
	}
	a := NewArgs(MaxSearchArgs)
	a.Key(key)
	if err := appendGeoSearch(a, q, false); err != nil {
		return nil, err
	}
	return a.Vector(), nil
}

// GeoSearchStoreArgs builds the vector for GEOSEARCHSTORE: destination
// and source keys followed by the shared search clauses
func GeoSearchStoreArgs(dst, src string, q *GeoSearchQuery) ([][]byte, error) {
	if dst == "" || src == "" {
		return nil, ErrNoKey
	}
	a := NewArgs(MaxSearchArgs)
	a.Key(dst).Key(src)
	if err := appendGeoSearch(a, q, true); err != nil {
		return nil, err
	}
	return a.Vector(), nil
}

// appendGeoSearch emits the clauses shared by both search variants in
// the protocol's fixed relative order: FROM, BY, unit, sort,
// COUNT [ANY], WITH flags (search) or STOREDIST (store).
func appendGeoSearch(a *Args, q *GeoSearchQuery, store bool) error {
	if q == nil {
		return ErrSearchFrom
	}
	switch {
	case q.FromMember != "" && q.FromCoord == nil:
		a.Literal("FROMMEMBER").Key(q.FromMember)
	case q.FromMember == "" && q.FromCoord != nil:
		a.Literal("FROMLONLAT").Float(q.FromCoord.Longitude).Float(q.FromCoord.Latitude)
	default:
		return ErrSearchFrom
	}

	switch {
	case q.Radius > 0 && q.Box == nil:
		a.Literal("BYRADIUS").Float(q.Radius)
	case q.Radius == 0 && q.Box != nil:
		a.Literal("BYBOX").Float(q.Box.Width).Float(q.Box.Height)
	default:
		return ErrSearchBy
	}

	if q.Unit == "" {
		return ErrNoUnit
	}
	a.Key(q.Unit)

	if q.Sort != "" {
		a.Literal(q.Sort)
	}
	if q.Count > 0 {
		a.Literal("COUNT").Int(q.Count)
		if q.Any {
			a.Literal("ANY")
		}
	}

	if store {
		if q.StoreDist {
			a.Literal("STOREDIST")
		}
		return nil
	}
	if q.WithCoord {
		a.Literal("WITHCOORD")
	}
	if q.WithDist {
		a.Literal("WITHDIST")
	}
	if q.WithHash {
		a.Literal("WITHHASH")
	}
	return nil
}
