package glide

import (
	"github.com/jamesx-improving/valkey-glide-go/command"
)

// GeoMember is one longitude/latitude/name triplet for GeoAdd.
type GeoMember = command.GeoMember

// GeoCoord is a search center expressed as a coordinate pair.
type GeoCoord = command.GeoCoord

// GeoBox is a rectangular search area, width then height.
type GeoBox = command.GeoBox

// GeoSearchQuery describes one GEOSEARCH or GEOSEARCHSTORE invocation.
type GeoSearchQuery = command.GeoSearchQuery

// GeoPos is a decoded member position.
type GeoPos = command.Position

// GeoLocation is one decoded search hit, populated according to the
// WITH flags the query carried.
type GeoLocation = command.GeoLocation

// GeoAdd adds the given members to the geospatial index at key and
// returns the number of newly added members.
func (c *Client) GeoAdd(key string, members []GeoMember) (int64, error) {
	args, err := command.GeoAddArgs(key, members)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.GeoAdd, args)
	if err != nil {
		return 0, err
	}
	return command.DecodeInt(v)
}

// GeoDist returns the distance between two members in the given unit.
// An empty unit means meters. The boolean reports whether both members
// existed in the index.
func (c *Client) GeoDist(key, src, dst, unit string) (float64, bool, error) {
	args, err := command.GeoDistArgs(key, src, dst, unit)
	if err != nil {
		return 0, false, err
	}
	v, err := c.dispatch(command.GeoDist, args)
	if err != nil {
		return 0, false, err
	}
	if v.IsNull() {
		return 0, false, nil
	}
	d, err := command.DecodeFloat(v)
	if err != nil {
		c.noteMismatch(command.GeoDist, err)
		return 0, false, err
	}
	return d, true, nil
}

// GeoHash returns the geohash string of each requested member, nil for
// members absent from the index.
func (c *Client) GeoHash(key string, members []string) ([]*string, error) {
	args, err := command.GeoMembersArgs(key, members)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.GeoHash, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeGeoHash(v)
	c.noteMismatch(command.GeoHash, err)
	return out, err
}

// GeoPos returns the position of each requested member, nil for
// members absent from the index.
func (c *Client) GeoPos(key string, members []string) ([]*GeoPos, error) {
	args, err := command.GeoMembersArgs(key, members)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.GeoPos, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeGeoPos(v)
	c.noteMismatch(command.GeoPos, err)
	return out, err
}

// GeoSearch queries the index at key and returns matching members.
// Attribute presence on each GeoLocation follows the WITH flags set on
// the query.
func (c *Client) GeoSearch(key string, q *GeoSearchQuery) ([]GeoLocation, error) {
	args, err := command.GeoSearchArgs(key, q)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(command.GeoSearch, args)
	if err != nil {
		return nil, err
	}
	out, err := command.DecodeGeoSearch(v, q.Flags())
	c.noteMismatch(command.GeoSearch, err)
	return out, err
}

// GeoSearchStore runs the search against src and stores the result set
// at dst, returning the number of stored members. WITH flags are not
// valid here, only StoreDist.
func (c *Client) GeoSearchStore(dst, src string, q *GeoSearchQuery) (int64, error) {
	args, err := command.GeoSearchStoreArgs(dst, src, q)
	if err != nil {
		return 0, err
	}
	v, err := c.dispatch(command.GeoSearchStore, args)
	if err != nil {
		return 0, err
	}
	n, err := command.DecodeInt(v)
	c.noteMismatch(command.GeoSearchStore, err)
	return n, err
}
