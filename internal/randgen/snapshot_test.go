package randgen_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/pushlang/go-push/internal/instr"
	"github.com/pushlang/go-push/internal/interp"
	"github.com/pushlang/go-push/internal/randgen"
)

// TestRandomCodeSampleSnapshot pins the exact tree RandomCode produces for
// a fixed seed and instruction set, the way the teacher's fixture_test.go
// pins expected interpreter output: a change to the generation algorithm
// (weighting between atoms and sub-lists, instruction selection, name
// alphabet) shows up as a snapshot diff instead of silently reshaping the
// population every GP run starts from.
func TestRandomCodeSampleSnapshot(t *testing.T) {
	ip := interp.New()
	instr.RegisterAll(ip)
	ip.SeedRand(42)

	sample := randgen.RandomCode(ip, 12)
	snaps.MatchSnapshot(t, sample.String())
}
