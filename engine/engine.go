package engine

import (
	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

// FinishedScanCursor is the distinguished sentinel the core hands back
// when a cluster scan has visited every node. The binding normalizes it
// to the plain terminal marker before the caller sees it.
const FinishedScanCursor = "finished"

// Executor is the boundary to the glide command core. Everything behind
// it (transport, connection lifecycle, TLS, auth, slot routing, retries)
// is the core's business; the binding only prepares argument vectors and
// decodes replies. Calls are synchronous and blocking. A handle wraps
// one connection context and assumes single-writer discipline.
type Executor interface {
	// Execute runs one command built from the prepared argument vector
	Execute(cmd command.RequestType, args [][]byte) (resp.Value, error)

	// ClusterScan runs one cluster-aware scan step. The cursor travels
	// outside the argument vector; the updated cursor (possibly the
	// finished sentinel) comes back as element 0 of the reply.
	ClusterScan(cursor string, args [][]byte) (resp.Value, error)

	// ReleaseClusterCursor frees the core-side state keyed by a cluster
	// cursor id. Safe to call with an id the core no longer tracks.
	ReleaseClusterCursor(id string)

	Close() error
}
