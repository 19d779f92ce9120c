package command

// RequestType identifies a command understood by the glide core. The
// core receives this tag alongside the prepared argument vector; it never
// parses the command name out of the vector itself.
type RequestType int

// Commands covered by this binding
const (
	Unknown RequestType = iota

	// geo
	GeoAdd
	GeoDist
	GeoHash
	GeoPos
	GeoSearch
	GeoSearchStore

	// sets
	SAdd
	SCard
	SIsMember
	SMIsMember
	SMembers
	SMove
	SPop
	SRandMember
	SRem
	SInter
	SInterCard
	SInterStore
	SUnion
	SUnionStore
	SDiff
	SDiffStore

	// scan family
	Scan
	SScan
	HScan
	ZScan
)

// Shape describes which decoder family a command's reply belongs to
type Shape int

// Reply shapes
const (
	ShapeInt Shape = iota
	ShapeBool
	ShapeFloat
	ShapeCollection
	ShapeMixed
	ShapeScan
	ShapeGeoHash
	ShapeGeoPos
	ShapeGeoSearch
)

// Desc is the static description of a command: its wire name, argument
// vector arity and reply shape. Arity counts vector entries, it is
// possible to use -N to say >= N.
type Desc struct {
	Name  string
	Arity int
	Shape Shape
}

var commands = map[RequestType]Desc{
	GeoAdd:         {Name: "GEOADD", Arity: -4, Shape: ShapeInt},
	GeoDist:        {Name: "GEODIST", Arity: -3, Shape: ShapeFloat},
	GeoHash:        {Name: "GEOHASH", Arity: -2, Shape: ShapeGeoHash},
	GeoPos:         {Name: "GEOPOS", Arity: -2, Shape: ShapeGeoPos},
	GeoSearch:      {Name: "GEOSEARCH", Arity: -7, Shape: ShapeGeoSearch},
	GeoSearchStore: {Name: "GEOSEARCHSTORE", Arity: -8, Shape: ShapeInt},

	SAdd:        {Name: "SADD", Arity: -2, Shape: ShapeInt},
	SCard:       {Name: "SCARD", Arity: 1, Shape: ShapeInt},
	SIsMember:   {Name: "SISMEMBER", Arity: 2, Shape: ShapeBool},
	SMIsMember:  {Name: "SMISMEMBER", Arity: -2, Shape: ShapeCollection},
	SMembers:    {Name: "SMEMBERS", Arity: 1, Shape: ShapeCollection},
	SMove:       {Name: "SMOVE", Arity: 3, Shape: ShapeBool},
	SPop:        {Name: "SPOP", Arity: -1, Shape: ShapeMixed},
	SRandMember: {Name: "SRANDMEMBER", Arity: -1, Shape: ShapeMixed},
	SRem:        {Name: "SREM", Arity: -2, Shape: ShapeInt},
	SInter:      {Name: "SINTER", Arity: -1, Shape: ShapeCollection},
	SInterCard:  {Name: "SINTERCARD", Arity: -2, Shape: ShapeInt},
	SInterStore: {Name: "SINTERSTORE", Arity: -2, Shape: ShapeInt},
	SUnion:      {Name: "SUNION", Arity: -1, Shape: ShapeCollection},
	SUnionStore: {Name: "SUNIONSTORE", Arity: -2, Shape: ShapeInt},
	SDiff:       {Name: "SDIFF", Arity: -1, Shape: ShapeCollection},
	SDiffStore:  {Name: "SDIFFSTORE", Arity: -2, Shape: ShapeInt},

	Scan:  {Name: "SCAN", Arity: -1, Shape: ShapeScan},
	SScan: {Name: "SSCAN", Arity: -2, Shape: ShapeScan},
	HScan: {Name: "HSCAN", Arity: -2, Shape: ShapeScan},
	ZScan: {Name: "ZSCAN", Arity: -2, Shape: ShapeScan},
}

// Lookup returns the static description of a command
func Lookup(t RequestType) (Desc, bool) {
	d, ok := commands[t]
	return d, ok
}

// String returns the wire name of the command
func (t RequestType) String() string {
	if d, ok := commands[t]; ok {
		return d.Name
	}
	return "UNKNOWN"
}

// CheckArity verifies an argument vector length against the command's
// declared arity
func CheckArity(t RequestType, n int) error {
	d, ok := commands[t]
	if !ok {
		return ErrUnKnownCommand(t.String())
	}
	if d.Arity < 0 {
		if n < -d.Arity {
			return ErrWrongArgs(d.Name)
		}
		return nil
	}
	if n != d.Arity {
		return ErrWrongArgs(d.Name)
	}
	return nil
}
