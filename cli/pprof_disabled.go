//go:build !pprof

package cli

// startProfiling is a no-op when built without the pprof tag.
func startProfiling() (stop func()) { return func() {} }
