package main

import (
	certgen "github.com/avezina/go-certgen"
	"go.uber.org/zap"
)

// buildLogger creates the progress logger for the run. Progress is only
// interesting with --verbose; otherwise the pipeline stays silent and
// per-certificate lines come from printResults. The returned flush
// function must be called before exit.
func buildLogger(verbose bool) (certgen.Logger, func()) {
	if !verbose {
		return certgen.NewNopLogger(), func() {}
	}

	zl, err := zap.NewDevelopment()
	if err != nil {
		return certgen.NewNopLogger(), func() {}
	}

	return certgen.NewZapLogger(zl.Sugar()), func() { _ = zl.Sync() }
}
