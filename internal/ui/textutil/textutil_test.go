package textutil

import "testing"

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"photo.jpg", 20, "photo.jpg"},
		{"photo-1506744038136", 10, "photo-150…"},
		{"abc", 0, ""},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.max); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
		if w := VisualWidth(Truncate(tt.in, tt.max)); w > tt.max {
			t.Errorf("Truncate(%q, %d) width %d", tt.in, tt.max, w)
		}
	}
}

func TestTruncateMiddle(t *testing.T) {
	got := TruncateMiddle("images.unsplash.com", 9)
	if VisualWidth(got) > 9 {
		t.Errorf("TruncateMiddle width = %d (%q)", VisualWidth(got), got)
	}
	if got := TruncateMiddle("abcdefghij", 7); got != "abc…hij" {
		t.Errorf("TruncateMiddle = %q, want %q", got, "abc…hij")
	}
	if got := TruncateMiddle("short", 10); got != "short" {
		t.Errorf("TruncateMiddle = %q", got)
	}
}
