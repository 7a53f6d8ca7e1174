package value

// Discrepancy returns a structural distance between two code trees.
//
// This resolves spec §9's open question: original_source/code.c's
// push_code_discrepancy is an unimplemented stub that always returns 0. No
// standard metric is pinned down by the source, so go-push documents its
// own choice rather than carrying the stub forward: walk both trees in
// depth-first preorder over their shared point range and count point
// positions whose values differ, then add the absolute difference in
// overall point count for any trailing points one tree has that the other
// doesn't. This is informational — CODE.DISCREPANCY's exact numeric
// output is not part of this package's tested invariants, only that it is
// zero for structurally equal trees and positive otherwise.
func Discrepancy(a, b *Value) int {
	if Equal(a, b) {
		return 0
	}
	sizeA, sizeB := Size(a), Size(b)
	shared := sizeA
	if sizeB < shared {
		shared = sizeB
	}
	diff := 0
	for p := 0; p < shared; p++ {
		if !Equal(Extract(a, p), Extract(b, p)) {
			diff++
		}
	}
	if sizeA > sizeB {
		diff += sizeA - sizeB
	} else if sizeB > sizeA {
		diff += sizeB - sizeA
	}
	return diff
}
