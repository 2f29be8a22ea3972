package slippi

import "testing"

func TestIsDamagedRange(t *testing.T) {
	in := &PostFrame{ActionState: uint16(DamageStart)}
	out := &PostFrame{ActionState: uint16(DamageEnd) + 1}
	if !isDamaged(in) {
		t.Error("isDamaged should be true at DamageStart")
	}
	if isDamaged(out) {
		t.Error("isDamaged should be false just past DamageEnd")
	}
}

func TestIsInHitlagRequiresExtra2(t *testing.T) {
	post := &PostFrame{}
	if isInHitlag(post) {
		t.Error("isInHitlag should be false without an Extra2 block (pre-2.0.0 replay)")
	}
	post.Extra2 = &PostFrameExtra2{Flags: StateFlags{0, 1 << 5, 0, 0, 0}}
	if !isInHitlag(post) {
		t.Error("isInHitlag should be true once the hitlag bit is set")
	}
}

func TestDidLoseStock(t *testing.T) {
	prev := &PostFrame{StocksRemaining: 3}
	same := &PostFrame{StocksRemaining: 3}
	lost := &PostFrame{StocksRemaining: 2}
	if didLoseStock(same, prev) {
		t.Error("didLoseStock should be false when stock count is unchanged")
	}
	if !didLoseStock(lost, prev) {
		t.Error("didLoseStock should be true when stock count decreases")
	}
}
