package engine

import (
	"github.com/jamesx-improving/valkey-glide-go/command"
	"github.com/jamesx-improving/valkey-glide-go/resp"
)

// Call records one invocation observed by the mock
type Call struct {
	Cmd     command.RequestType
	Args    [][]byte
	Cursor  string
	Cluster bool
}

type scripted struct {
	value resp.Value
	err   error
}

// Mock is a scripted Executor for tests. Replies are consumed in FIFO
// order; running past the script yields null replies.
type Mock struct {
	script   []scripted
	Calls    []Call
	Released []string
}

// NewMock creates an empty scripted executor
func NewMock() *Mock {
	return &Mock{}
}

// WillReturn appends a successful reply to the script
func (m *Mock) WillReturn(v resp.Value) *Mock {
	m.script = append(m.script, scripted{value: v})
	return m
}

// WillFail appends an engine error to the script
func (m *Mock) WillFail(err error) *Mock {
	m.script = append(m.script, scripted{err: err})
	return m
}

func (m *Mock) next() scripted {
	if len(m.script) == 0 {
		return scripted{value: resp.NullValue()}
	}
	s := m.script[0]
	m.script = m.script[1:]
	return s
}

// Execute pops the next scripted reply
func (m *Mock) Execute(cmd command.RequestType, args [][]byte) (resp.Value, error) {
	m.Calls = append(m.Calls, Call{Cmd: cmd, Args: args})
	s := m.next()
	return s.value, s.err
}

// ClusterScan pops the next scripted reply, recording the cursor it was
// called with
func (m *Mock) ClusterScan(cursor string, args [][]byte) (resp.Value, error) {
	m.Calls = append(m.Calls, Call{Cmd: command.Scan, Args: args, Cursor: cursor, Cluster: true})
	s := m.next()
	return s.value, s.err
}

// ReleaseClusterCursor records the released id
func (m *Mock) ReleaseClusterCursor(id string) {
	m.Released = append(m.Released, id)
}

// Close resets the script
func (m *Mock) Close() error {
	m.script = nil
	return nil
}
