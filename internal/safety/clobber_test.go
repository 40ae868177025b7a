package safety

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentsync/agentsync/internal/fsops"
	"github.com/agentsync/agentsync/internal/manifest"
)

// stubOracle reports a fixed recoverability answer.
type stubOracle struct {
	safe bool
}

func (o *stubOracle) SafeToOverwrite(path string) bool {
	return o.safe
}

func TestCheckClobberManagedIsSafe(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()

	m := manifest.Empty()
	m.Upsert("x.txt", "claude", "h")

	// Even with drifted on-disk content, manifest presence wins.
	if err := os.WriteFile(filepath.Join(dir, "x.txt"), []byte("drift"), 0644); err != nil {
		t.Fatal(err)
	}

	v := CheckClobber(fs, "x.txt", dir, m, nil)
	if v.Action != Safe {
		t.Errorf("Action = %s, want %s", v.Action, Safe)
	}
	if !v.IsSafe() {
		t.Error("Safe verdict must report IsSafe")
	}
}

func TestCheckClobberMissingFileIsNew(t *testing.T) {
	fs := fsops.NewRealFS()

	v := CheckClobber(fs, "new.txt", t.TempDir(), manifest.Empty(), nil)
	if v.Action != NewFile {
		t.Errorf("Action = %s, want %s", v.Action, NewFile)
	}
	if !v.IsSafe() {
		t.Error("NewFile verdict must report IsSafe")
	}
}

func TestCheckClobberUnmanagedRecoverable(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "exist.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	v := CheckClobber(fs, "exist.txt", dir, manifest.Empty(), &stubOracle{safe: true})
	if v.Action != ClobberRecoverable {
		t.Errorf("Action = %s, want %s", v.Action, ClobberRecoverable)
	}
	if v.IsSafe() {
		t.Error("clobber must not report IsSafe")
	}
}

func TestCheckClobberUnmanagedRisky(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "exist.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	v := CheckClobber(fs, "exist.txt", dir, manifest.Empty(), &stubOracle{safe: false})
	if v.Action != ClobberRisky {
		t.Errorf("Action = %s, want %s", v.Action, ClobberRisky)
	}
}

func TestCheckClobberNoOracleIsRisky(t *testing.T) {
	fs := fsops.NewRealFS()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "exist.txt"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	v := CheckClobber(fs, "exist.txt", dir, manifest.Empty(), nil)
	if v.Action != ClobberRisky {
		t.Errorf("Action = %s, want %s", v.Action, ClobberRisky)
	}
}

func TestShouldWritePolicyMatrix(t *testing.T) {
	tests := []struct {
		name           string
		action         Action
		force          bool
		nonInteractive bool
		want           bool
	}{
		{"safe default", Safe, false, false, true},
		{"safe non-interactive", Safe, false, true, true},
		{"new file default", NewFile, false, false, true},
		{"recoverable default", ClobberRecoverable, false, false, false},
		{"recoverable forced", ClobberRecoverable, true, false, true},
		{"risky default", ClobberRisky, false, false, false},
		{"risky non-interactive", ClobberRisky, false, true, false},
		{"risky forced", ClobberRisky, true, false, true},
		{"risky forced non-interactive", ClobberRisky, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Verdict{Action: tt.action, Path: "f.txt"}
			if got := ShouldWrite(v, tt.force, tt.nonInteractive); got != tt.want {
				t.Errorf("ShouldWrite(%s, force=%v, nonInteractive=%v) = %v, want %v",
					tt.action, tt.force, tt.nonInteractive, got, tt.want)
			}
		})
	}
}

// Verdict totality: every combination of manifest state, disk state, and
// oracle answer yields exactly one of the four actions.
func TestVerdictTotality(t *testing.T) {
	fs := fsops.NewRealFS()

	for _, managed := range []bool{false, true} {
		for _, onDisk := range []bool{false, true} {
			for _, recoverable := range []bool{false, true} {
				dir := t.TempDir()
				m := manifest.Empty()
				if managed {
					m.Upsert("f.txt", "a", "h")
				}
				if onDisk {
					if err := os.WriteFile(filepath.Join(dir, "f.txt"), []byte("x"), 0644); err != nil {
						t.Fatal(err)
					}
				}

				v := CheckClobber(fs, "f.txt", dir, m, &stubOracle{safe: recoverable})

				var want Action
				switch {
				case managed:
					want = Safe
				case !onDisk:
					want = NewFile
				case recoverable:
					want = ClobberRecoverable
				default:
					want = ClobberRisky
				}
				if v.Action != want {
					t.Errorf("managed=%v onDisk=%v recoverable=%v: Action = %s, want %s",
						managed, onDisk, recoverable, v.Action, want)
				}
			}
		}
	}
}
