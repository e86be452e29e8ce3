package mandel

import (
	"image"
	"testing"
)

func TestSplitRows(t *testing.T) {
	tests := []struct {
		height, seg int
		want        []image.Rectangle
	}{
		{10, 5, []image.Rectangle{image.Rect(0, 0, 8, 5), image.Rect(0, 5, 8, 10)}},
		{10, 4, []image.Rectangle{image.Rect(0, 0, 8, 4), image.Rect(0, 4, 8, 8), image.Rect(0, 8, 8, 10)}},
		{3, 10, []image.Rectangle{image.Rect(0, 0, 8, 3)}},
	}
	for _, tt := range tests {
		got := SplitRows(8, tt.height, tt.seg)
		if len(got) != len(tt.want) {
			t.Errorf("SplitRows(8, %d, %d) = %v, want %v", tt.height, tt.seg, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("SplitRows(8, %d, %d)[%d] = %v, want %v", tt.height, tt.seg, i, got[i], tt.want[i])
			}
		}
	}
}

func TestSplitRowsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SplitRows with zero segment height did not panic")
		}
	}()
	SplitRows(8, 8, 0)
}

func TestSplitForWorkers(t *testing.T) {
	for _, workers := range []int{1, 3, 4, 16} {
		for _, align := range []int{1, 4, 5} {
			segs := SplitForWorkers(100, 97, workers, align)
			if len(segs) > workers {
				t.Errorf("%d workers, align %d: %d segments", workers, align, len(segs))
			}
			next := 0
			for _, s := range segs {
				if s.Min.Y != next {
					t.Fatalf("%d workers, align %d: gap before %v", workers, align, s)
				}
				if s.Min.Y%align != 0 {
					t.Errorf("%d workers, align %d: segment %v is not block aligned", workers, align, s)
				}
				next = s.Max.Y
			}
			if next != 97 {
				t.Errorf("%d workers, align %d: segments end at %d, want 97", workers, align, next)
			}
		}
	}
}
