package upstream

import "testing"

func TestResolveLocationAbsolute(t *testing.T) {
	got, err := ResolveLocation("http://example.com/a/b.m3u", "https://mirror.example.com/c.m3u")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "https://mirror.example.com/c.m3u" {
		t.Errorf("Unexpected URL. Expected: %s, Got: %s", "https://mirror.example.com/c.m3u", got)
	}
}

func TestResolveLocationRelative(t *testing.T) {
	got, err := ResolveLocation("http://example.com/a/b.m3u", "c.m3u")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "http://example.com/a/c.m3u" {
		t.Errorf("Unexpected URL. Expected: %s, Got: %s", "http://example.com/a/c.m3u", got)
	}
}

func TestResolveLocationRooted(t *testing.T) {
	got, err := ResolveLocation("http://example.com/a/b.m3u", "/index.m3u")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got != "http://example.com/index.m3u" {
		t.Errorf("Unexpected URL. Expected: %s, Got: %s", "http://example.com/index.m3u", got)
	}
}
