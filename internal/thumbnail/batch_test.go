package thumbnail

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.mp4", true},
		{"MOVIE.MKV", true},
		{"/videos/clip.webm", true},
		{"photo.jpg", false},
		{"notes.txt", false},
		{"noextension", false},
	}

	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestListVideos(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.mp4", "a.mkv", "skip.txt", "c.MOV"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.mp4"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := ListVideos(dir)
	if err != nil {
		t.Fatalf("ListVideos returned error: %v", err)
	}

	want := []string{
		filepath.Join(dir, "a.mkv"),
		filepath.Join(dir, "b.mp4"),
		filepath.Join(dir, "c.MOV"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("video %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListVideosMissingDir(t *testing.T) {
	if _, err := ListVideos(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestVideoStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/movie.mp4", "movie"},
		{"clip.tar.mkv", "clip.tar"},
		{"plain", "plain"},
	}
	for _, tt := range tests {
		if got := videoStem(tt.path); got != tt.want {
			t.Errorf("videoStem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
