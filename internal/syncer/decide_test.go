package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name        string
		remote      int64
		local       int64
		localExists bool
		want        Decision
	}{
		{
			name:        "no local file downloads regardless of times",
			remote:      100,
			localExists: false,
			want:        Download,
		},
		{
			name:        "remote newer downloads",
			remote:      100,
			local:       50,
			localExists: true,
			want:        Download,
		},
		{
			name:        "local newer uploads",
			remote:      50,
			local:       100,
			localExists: true,
			want:        Upload,
		},
		{
			name:        "equal to the second is a no-op",
			remote:      100,
			local:       100,
			localExists: true,
			want:        NoOp,
		},
		{
			name:        "one second apart still transfers",
			remote:      101,
			local:       100,
			localExists: true,
			want:        Download,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.remote, tt.local, tt.localExists))
		})
	}
}

// Swapping the timestamps flips the direction except at equality.
func TestDecide_Antisymmetric(t *testing.T) {
	pairs := [][2]int64{{0, 1}, {50, 100}, {100, 50}, {100, 100}, {1747077600, 1747077601}}

	for _, p := range pairs {
		forward := Decide(p[0], p[1], true)
		backward := Decide(p[1], p[0], true)

		if p[0] == p[1] {
			assert.Equal(t, NoOp, forward)
			assert.Equal(t, NoOp, backward)

			continue
		}

		switch forward {
		case Download:
			assert.Equal(t, Upload, backward)
		case Upload:
			assert.Equal(t, Download, backward)
		default:
			t.Fatalf("unexpected decision %v for unequal times %v", forward, p)
		}
	}
}

func TestDecision_String(t *testing.T) {
	assert.Equal(t, "download", Download.String())
	assert.Equal(t, "upload", Upload.String())
	assert.Equal(t, "no-op", NoOp.String())
}
