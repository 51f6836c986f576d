package metrics

import "testing"

func TestLinesOfCode(t *testing.T) {
	src := []byte("const a = 1;\n\n// just a comment\nfunction f() {\n  return a;\n}\n")
	if got := LinesOfCode(src); got != 4 {
		t.Fatalf("LinesOfCode() = %d, want 4", got)
	}
}

func TestLinesOfCodeMinimumOne(t *testing.T) {
	if got := LinesOfCode([]byte("   \n\n")); got != 1 {
		t.Fatalf("LinesOfCode() = %d, want 1 (minimum)", got)
	}
}

func TestHalsteadVolumeMinimumOne(t *testing.T) {
	if got := HalsteadVolume([]byte("")); got != 1 {
		t.Fatalf("HalsteadVolume() = %v, want 1", got)
	}
}

func TestHalsteadVolumeIgnoresComments(t *testing.T) {
	withComment := HalsteadVolume([]byte("a + b; // trailing commentary that should not count"))
	without := HalsteadVolume([]byte("a + b;"))
	if withComment != without {
		t.Fatalf("HalsteadVolume should ignore comment text: %v != %v", withComment, without)
	}
}

func TestMaintainabilityIndexBounded(t *testing.T) {
	src := []byte(`
function complex(a, b, c) {
  if (a) {
    if (b) {
      for (let i = 0; i < c; i++) {
        if (i % 2 === 0 && b) {
          return i;
        }
      }
    }
  }
  return 0;
}
`)
	mi := MaintainabilityIndex(src, 6)
	if mi < 0 || mi > 100 {
		t.Fatalf("MaintainabilityIndex() = %d, out of [0,100]", mi)
	}
}
