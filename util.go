package glide

import (
	"fmt"
	"sync/atomic"

	"github.com/twinj/uuid"
	"go.uber.org/zap"

	"github.com/jamesx-improving/valkey-glide-go/context"
)

func logVersionInfo() {
	zap.L().Info("Welcome to valkey-glide.")
	zap.L().Info("Binding info", zap.String("Release Version", context.ReleaseVersion))
	zap.L().Info("Binding info", zap.String("Git Commit Hash", context.GitHash))
	zap.L().Info("Binding info", zap.String("Git Branch", context.GitBranch))
	zap.L().Info("Binding info", zap.String("UTC Build Time", context.BuildTS))
	zap.L().Info("Binding info", zap.String("Golang compiler Version", context.GolangVersion))
}

// PrintVersionInfo prints the binding version info
func PrintVersionInfo() {
	fmt.Println("Welcome to valkey-glide.")
	fmt.Println("Release Version: ", context.ReleaseVersion)
	fmt.Println("Git Commit Hash: ", context.GitHash)
	fmt.Println("Git Branch: ", context.GitBranch)
	fmt.Println("UTC Build Time:  ", context.BuildTS)
	fmt.Println("Golang compiler Version: ", context.GolangVersion)
}

//GetClientID starts with 1 and allocates clientID incrementally
func GetClientID() func() int64 {
	var id int64 = 1
	return func() int64 {
		return atomic.AddInt64(&id, 1)
	}
}

//GenerateTraceID grenerates a traceid for a client handle
func GenerateTraceID() string { return uuid.NewV4().String() }
