package compat

import (
	gocontext "context"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
	"github.com/shafreeck/retry"
	"github.com/sirupsen/logrus"

	glide "github.com/jamesx-improving/valkey-glide-go"
	"github.com/jamesx-improving/valkey-glide-go/conf"
	"github.com/jamesx-improving/valkey-glide-go/engine"
)

// Harness drives the binding against a live server and cross-checks the
// decoded results. Every vector travels through the same encode and
// decode path an embedded core call would, so a mismatch here points at
// the binding, not the server.
type Harness struct {
	conf   *conf.Compat
	client *conf.Client
}

// New creates a harness from the compat and client config sections
func New(cc *conf.Compat, client *conf.Client) *Harness {
	return &Harness{conf: cc, client: client}
}

// Run dials the target, runs every family scenario under the configured
// key prefix and cleans up after itself.
func (h *Harness) Run() error {
	var conn redis.Conn
	ctx, cancel := gocontext.WithTimeout(gocontext.Background(), 30*time.Second)
	defer cancel()
	err := retry.Ensure(ctx, func() error {
		c, err := redis.Dial("tcp", h.conf.Addr)
		if err != nil {
			logrus.WithError(err).Warn("dial failed, retrying")
			return retry.Retriable(err)
		}
		conn = c
		return nil
	})
	if err != nil {
		return err
	}
	if h.conf.Auth != "" {
		if _, err := conn.Do("AUTH", h.conf.Auth); err != nil {
			conn.Close()
			return err
		}
	}

	cli := glide.New(engine.NewRedis(conn))
	defer cli.Close()
	defer h.cleanup(conn)

	steps := []struct {
		name string
		fn   func(*glide.Client) error
	}{
		{"geo", h.geoCase},
		{"sets", h.setCase},
		{"scan", h.scanCase},
		{"batch", h.batchCase},
	}
	for _, s := range steps {
		logrus.WithField("case", s.name).Info("running")
		if err := s.fn(cli); err != nil {
			logrus.WithField("case", s.name).WithError(err).Error("failed")
			return err
		}
	}
	return nil
}

func (h *Harness) key(name string) string {
	return h.conf.KeySpace + ":" + name
}

func (h *Harness) cleanup(conn redis.Conn) {
	keys, err := redis.Strings(conn.Do("KEYS", h.conf.KeySpace+":*"))
	if err != nil {
		return
	}
	for _, k := range keys {
		conn.Do("DEL", k)
	}
}

func (h *Harness) geoCase(cli *glide.Client) error {
	key := h.key("geo")
	added, err := cli.GeoAdd(key, []glide.GeoMember{
		{Longitude: 13.361389, Latitude: 38.115556, Member: "Palermo"},
		{Longitude: 15.087269, Latitude: 37.502669, Member: "Catania"},
	})
	if err != nil {
		return err
	}
	if added != 2 {
		return fmt.Errorf("geoadd: want 2 new members, got %d", added)
	}

	dist, ok, err := cli.GeoDist(key, "Palermo", "Catania", "km")
	if err != nil {
		return err
	}
	if !ok || dist < 160 || dist > 170 {
		return fmt.Errorf("geodist: unexpected result %v %v", dist, ok)
	}

	hashes, err := cli.GeoHash(key, []string{"Palermo", "nosuch"})
	if err != nil {
		return err
	}
	if len(hashes) != 2 || hashes[0] == nil || hashes[1] != nil {
		return fmt.Errorf("geohash: unexpected slots %v", hashes)
	}

	locs, err := cli.GeoSearch(key, &glide.GeoSearchQuery{
		FromCoord: &glide.GeoCoord{Longitude: 15, Latitude: 37},
		Radius:    200,
		Unit:      "km",
		Sort:      "ASC",
		WithDist:  true,
		WithCoord: true,
	})
	if err != nil {
		return err
	}
	if len(locs) == 0 || locs[0].Coord == nil {
		return fmt.Errorf("geosearch: empty or coordless result %v", locs)
	}

	stored, err := cli.GeoSearchStore(h.key("geo-out"), key, &glide.GeoSearchQuery{
		FromMember: "Palermo",
		Radius:     200,
		Unit:       "km",
		StoreDist:  true,
	})
	if err != nil {
		return err
	}
	if stored == 0 {
		return fmt.Errorf("geosearchstore: nothing stored")
	}
	return nil
}

func (h *Harness) setCase(cli *glide.Client) error {
	a, b := h.key("set-a"), h.key("set-b")
	if _, err := cli.SAdd(a, []interface{}{"x", "y", "z", 1}); err != nil {
		return err
	}
	if _, err := cli.SAdd(b, []interface{}{"y", "z", "w"}); err != nil {
		return err
	}

	card, err := cli.SCard(a)
	if err != nil {
		return err
	}
	if card != 4 {
		return fmt.Errorf("scard: want 4, got %d", card)
	}

	flags, err := cli.SMIsMember(a, []interface{}{"x", "nope"})
	if err != nil {
		return err
	}
	if len(flags) != 2 || !flags[0] || flags[1] {
		return fmt.Errorf("smismember: unexpected flags %v", flags)
	}

	inter, err := cli.SInter([]string{a, b})
	if err != nil {
		return err
	}
	if len(inter) != 2 {
		return fmt.Errorf("sinter: want 2 members, got %v", inter)
	}

	n, err := cli.SInterCard([]string{a, b}, 1)
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("sintercard limit 1: got %d", n)
	}

	moved, err := cli.SMove(a, b, "x")
	if err != nil {
		return err
	}
	if !moved {
		return fmt.Errorf("smove: member not moved")
	}

	if _, err := cli.SDiffStore(h.key("set-out"), []string{b, a}); err != nil {
		return err
	}
	return nil
}

func (h *Harness) scanCase(cli *glide.Client) error {
	key := h.key("scan-set")
	members := make([]interface{}, 0, 100)
	for i := 0; i < 100; i++ {
		members = append(members, fmt.Sprintf("m%03d", i))
	}
	if _, err := cli.SAdd(key, members); err != nil {
		return err
	}

	seen := make(map[string]bool)
	cursor := glide.NewScanCursor()
	opts := &glide.ScanOptions{Count: h.client.ScanCount, HasCount: true}
	for !cursor.Finished() {
		batch, err := cli.SScan(key, cursor, opts)
		if err != nil {
			return err
		}
		for _, m := range batch {
			seen[m] = true
		}
	}
	if len(seen) != 100 {
		return fmt.Errorf("sscan: walked %d of 100 members", len(seen))
	}

	ccursor := glide.NewClusterScanCursor()
	pages := 0
	for !ccursor.Finished() {
		if _, err := cli.ClusterScan(ccursor, &glide.ScanOptions{Match: h.conf.KeySpace + ":*"}); err != nil {
			return err
		}
		pages++
		if pages > 10000 {
			return fmt.Errorf("cluster scan did not terminate")
		}
	}
	ccursor.Release()
	return nil
}

func (h *Harness) batchCase(cli *glide.Client) error {
	key := h.key("batch-set")
	batch := glide.NewBatch().
		SAdd(key, []interface{}{"a", "b", "c"}).
		SCard(key).
		SMembers(key)
	if batch.Len() > h.client.BatchLimit {
		return fmt.Errorf("batch: %d entries exceeds configured limit %d", batch.Len(), h.client.BatchLimit)
	}
	results, err := cli.Exec(batch)
	if err != nil {
		return err
	}
	if len(results) != 3 {
		return fmt.Errorf("batch: want 3 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Err != nil {
			return fmt.Errorf("batch entry %d: %v", i, r.Err)
		}
	}
	if card, ok := results[1].Value.(int64); !ok || card != 3 {
		return fmt.Errorf("batch scard: unexpected %v", results[1].Value)
	}
	return nil
}
