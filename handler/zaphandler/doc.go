// Package zaphandler adapts go.uber.org/zap as a dbglog output, so a
// program that already configures zap can route dbglog streams into the
// same encoders and sinks.
package zaphandler
