package glide

import (
	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/engine"
	"github.com/jamesx-improving/valkey-glide-go/metrics"
)

// ScanOptions are the optional MATCH, COUNT and TYPE clauses of a scan
type ScanOptions = command.ScanOptions

// ScanCursor tracks the position of an iterative scan. The zero token
// marks both a scan that has not started and one that has finished, so
// the cursor carries an explicit started flag to tell the two apart.
// Once the terminal token is reached the cursor stays complete and
// further steps yield empty batches without touching the engine; a new
// walk needs a fresh cursor.
type ScanCursor struct {
	token   string
	started bool
}

// NewScanCursor returns a cursor positioned at the start of a scan
func NewScanCursor() *ScanCursor {
	return &ScanCursor{token: command.TerminalCursor}
}

// Token returns the raw continuation token
func (s *ScanCursor) Token() string { return s.token }

// Finished reports whether the scan has walked the whole collection
func (s *ScanCursor) Finished() bool {
	return s.started && s.token == command.TerminalCursor
}

func (s *ScanCursor) advance(token string) {
	s.token = token
	s.started = true
}

// Scan runs one step of a keyspace scan and returns the batch of key
// names. The batch accompanying the terminal cursor may be non-empty
// and is returned like any other.
func (c *Client) Scan(cursor *ScanCursor, opts *ScanOptions) ([]string, error) {
	page, err := c.scanStep(command.Scan, "", cursor, opts)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// SScan runs one step of a set scan at key
func (c *Client) SScan(key string, cursor *ScanCursor, opts *ScanOptions) ([]string, error) {
	page, err := c.scanStep(command.SScan, key, cursor, opts)
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}

// HScan runs one step of a hash scan at key, returning the batch as
// field to value.
func (c *Client) HScan(key string, cursor *ScanCursor, opts *ScanOptions) (map[string]string, error) {
	page, err := c.scanStep(command.HScan, key, cursor, opts)
	if err != nil {
		return nil, err
	}
	return page.Pairs, nil
}

// ZScan runs one step of a sorted-set scan at key, returning the batch
// as member to score text.
func (c *Client) ZScan(key string, cursor *ScanCursor, opts *ScanOptions) (map[string]string, error) {
	page, err := c.scanStep(command.ZScan, key, cursor, opts)
	if err != nil {
		return nil, err
	}
	return page.Pairs, nil
}

func (c *Client) scanStep(t command.RequestType, key string, cursor *ScanCursor, opts *ScanOptions) (*command.ScanPage, error) {
	if cursor == nil {
		return nil, command.ErrSyntax
	}
	if cursor.Finished() {
		return &command.ScanPage{Cursor: command.TerminalCursor}, nil
	}
	args, err := command.ScanArgs(t, key, cursor.token, opts)
	if err != nil {
		return nil, err
	}
	v, err := c.dispatch(t, args)
	if err != nil {
		return nil, err
	}
	page, err := command.DecodeScan(t, v)
	if err != nil {
		c.noteMismatch(t, err)
		cursor.advance(page.Cursor)
		return nil, err
	}
	cursor.advance(page.Cursor)
	metrics.GetMetrics().ScanPagesCounterVec.WithLabelValues(t.String()).Inc()
	return page, nil
}

// ClusterScanCursor tracks a cluster-wide keyspace scan. The underlying
// cursor is an opaque id held by the core; the handle releases it back
// to the core exactly once, either when the scan reaches its natural
// end or through an explicit Release of an abandoned scan.
type ClusterScanCursor struct {
	id       string
	started  bool
	finished bool
	released bool
	exec     engine.Executor
}

// NewClusterScanCursor returns a cursor positioned at the start of a
// cluster scan.
func NewClusterScanCursor() *ClusterScanCursor {
	return &ClusterScanCursor{id: command.TerminalCursor}
}

// ID returns the opaque core cursor id, normalized to the terminal
// token once the scan is done.
func (s *ClusterScanCursor) ID() string { return s.id }

// Finished reports whether the cluster scan has walked every node
func (s *ClusterScanCursor) Finished() bool { return s.finished }

// Release returns the underlying core cursor without finishing the
// scan. Safe to call any number of times; once the terminal state
// released the id the call is a no-op.
func (s *ClusterScanCursor) Release() {
	if s.released || !s.started {
		s.released = true
		return
	}
	s.released = true
	if s.exec != nil && s.id != command.TerminalCursor {
		s.exec.ReleaseClusterCursor(s.id)
	}
}

// ClusterScan runs one step of a cluster-wide keyspace scan. The cursor
// travels out of band: the core returns a fresh opaque id each step and
// the finished sentinel is normalized to the terminal token. A finished
// or released cursor yields an empty batch without touching the core.
func (c *Client) ClusterScan(cursor *ClusterScanCursor, opts *ScanOptions) ([]string, error) {
	if cursor == nil {
		return nil, command.ErrSyntax
	}
	if cursor.finished || cursor.released {
		return nil, nil
	}
	args, err := command.ClusterScanArgs(opts)
	if err != nil {
		return nil, err
	}
	v, err := c.exec.ClusterScan(cursor.id, args)
	if err != nil {
		return nil, err
	}
	page, err := command.DecodeScan(command.Scan, v)
	if err != nil {
		c.noteMismatch(command.Scan, err)
		c.releaseClusterCursor(cursor)
		cursor.finished = true
		return nil, err
	}
	cursor.exec = c.exec
	cursor.started = true
	if page.Cursor == engine.FinishedScanCursor || page.Cursor == command.TerminalCursor {
		c.releaseClusterCursor(cursor)
		cursor.id = command.TerminalCursor
		cursor.finished = true
	} else {
		cursor.id = page.Cursor
	}
	metrics.GetMetrics().ScanPagesCounterVec.WithLabelValues("CLUSTERSCAN").Inc()
	return page.Items, nil
}

// releaseClusterCursor frees the live core id held by the cursor, at
// most once. A cursor still on the initial token holds no core state,
// so nothing is released for it.
func (c *Client) releaseClusterCursor(cursor *ClusterScanCursor) {
	if cursor.released || cursor.id == command.TerminalCursor {
		cursor.released = true
		return
	}
	cursor.released = true
	c.exec.ReleaseClusterCursor(cursor.id)
}
