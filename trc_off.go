//go:build !der_debug

package der

/*
trc_off.go is the no-op counterpart to trc_on.go, compiled in whenever
the der_debug build tag is absent so trace calls cost nothing in normal
builds.
*/

func trace(event string, args ...any) {}
