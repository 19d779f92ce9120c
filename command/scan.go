package command

// ScanOptions are the optional clauses of the SCAN family. Type is only
// meaningful for the keyspace SCAN, the per-key scans reject it.
type ScanOptions struct {
	Match    string
	Count    int64
	HasCount bool
	Type     string
}

// ScanArgs builds the vector for a scan step. key is empty for the
// keyspace SCAN and names the container for SSCAN, HSCAN and ZSCAN. The
// cursor token always rides in the vector right after the optional key.
func ScanArgs(t RequestType, key, cursor string, opts *ScanOptions) ([][]byte, error) {
	if t != Scan && key == "" {
		return nil, ErrNoKey
	}
	if cursor == "" {
		return nil, ErrSyntax
	}
	if opts == nil {
		opts = &ScanOptions{}
	}
	if opts.Type != "" && t != Scan {
		return nil, ErrSyntax
	}

	n := 2
	if opts.Match != "" {
		n += 2
	}
	if opts.HasCount {
		n += 2
	}
	if opts.Type != "" {
		n += 2
	}
	a := NewArgs(n)
	if key != "" {
		a.Key(key)
	}
	a.Key(cursor)
	if opts.Match != "" {
		a.Literal("MATCH").Key(opts.Match)
	}
	if opts.HasCount {
		a.Literal("COUNT").Int(opts.Count)
	}
	if opts.Type != "" {
		a.Literal("TYPE").Key(opts.Type)
	}
	return a.Vector(), nil
}

// ClusterScanArgs builds the option-only vector of a cluster scan step.
// The cursor travels out of band through the dedicated core entry point,
// so the vector carries just MATCH, COUNT and TYPE.
func ClusterScanArgs(opts *ScanOptions) ([][]byte, error) {
	if opts == nil {
		opts = &ScanOptions{}
	}
	n := 0
	if opts.Match != "" {
		n += 2
	}
	if opts.HasCount {
		n += 2
	}
	if opts.Type != "" {
		n += 2
	}
	a := NewArgs(n)
	if opts.Match != "" {
		a.Literal("MATCH").Key(opts.Match)
	}
	if opts.HasCount {
		a.Literal("COUNT").Int(opts.Count)
	}
	if opts.Type != "" {
		a.Literal("TYPE").Key(opts.Type)
	}
	return a.Vector(), nil
}
