package download

import (
	"testing"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s", "dQw4w9WgXcQ"},
		{"https://www.example.com", ""},
		{"", ""},
	}

	for _, c := range cases {
		if got := ExtractVideoID(c.url); got != c.want {
			t.Errorf("ExtractVideoID(%q) = %q, want %q", c.url, got, c.want)
		}
	}
}

func TestSplitTitle(t *testing.T) {
	t.Run("ArtistDashTitle", func(t *testing.T) {
		title, artist := SplitTitle("Radiohead - Creep")
		if title != "Creep" || artist != "Radiohead" {
			t.Errorf("got (%q, %q), want (Creep, Radiohead)", title, artist)
		}
	})

	t.Run("NoConvention", func(t *testing.T) {
		title, artist := SplitTitle("Creep (Official Video)")
		if title != "Creep (Official Video)" || artist != "" {
			t.Errorf("got (%q, %q), want full title and no artist", title, artist)
		}
	})

	t.Run("OnlyFirstDashSplits", func(t *testing.T) {
		title, artist := SplitTitle("AC/DC - Back - In Black")
		if artist != "AC/DC" || title != "Back - In Black" {
			t.Errorf("got (%q, %q)", title, artist)
		}
	})
}
