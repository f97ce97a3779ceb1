package models

import "testing"

func TestSrunCallAffinity(t *testing.T) {
	s := DefaultSrunCall()
	if s.AffinityRequested() {
		t.Error("default call must not request affinity")
	}

	s.L3Size = 4
	if !s.AffinityRequested() || s.AffinityComplete() {
		t.Error("partial triple must be requested but not complete")
	}

	s.L3Cores = 2
	s.NodeSize = 128
	if !s.AffinityComplete() {
		t.Error("full triple must be complete")
	}
}
