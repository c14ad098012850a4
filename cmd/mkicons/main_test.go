//go:build !noraster

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestGenerateWritesAllSizes(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := generate(&out, dir, plainGlyphs); err != nil {
		t.Fatalf("generate: %v", err)
	}

	for _, size := range sizes {
		p := filepath.Join(dir, "icon-"+strconv.Itoa(size)+".png")
		f, err := os.Open(p)
		if err != nil {
			t.Fatalf("open %s: %v", p, err)
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", p, err)
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s is %dx%d, want %dx%d", p, cfg.Width, cfg.Height, size, size)
		}
	}

	got := out.String()
	if n := strings.Count(got, "[ok] Created "); n != len(sizes) {
		t.Errorf("got %d created lines, want %d:\n%s", n, len(sizes), got)
	}
	if !strings.Contains(got, "(128x128)") {
		t.Errorf("output missing 128x128 line:\n%s", got)
	}
	if !strings.Contains(got, "[done] All icons generated successfully!") {
		t.Errorf("output missing summary:\n%s", got)
	}
	if !strings.Contains(got, "Icons are in "+dir) {
		t.Errorf("output does not name the output directory %s:\n%s", dir, got)
	}
}

func TestGenerateIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	if err := generate(&out, dir, plainGlyphs); err != nil {
		t.Fatalf("first generate: %v", err)
	}
	first := readAll(t, dir)

	if err := generate(&out, dir, plainGlyphs); err != nil {
		t.Fatalf("second generate: %v", err)
	}
	second := readAll(t, dir)

	for name, data := range first {
		if !bytes.Equal(data, second[name]) {
			t.Errorf("%s changed between runs", name)
		}
	}
}

func TestGenerateUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the output directory should be.
	blocker := filepath.Join(dir, "icons")
	if err := os.WriteFile(blocker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := generate(&out, blocker, plainGlyphs); err == nil {
		t.Fatal("generate into a file path succeeded, want error")
	}
	if strings.Contains(out.String(), "successfully") {
		t.Errorf("summary printed after failure:\n%s", out.String())
	}
}

func TestGenerateEmojiGlyphs(t *testing.T) {
	var out bytes.Buffer
	if err := generate(&out, t.TempDir(), emojiGlyphs); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(out.String(), "✅ Created ") {
		t.Errorf("expected emoji status lines:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "🎉 All icons generated successfully!") {
		t.Errorf("expected emoji summary:\n%s", out.String())
	}
}

func readAll(t *testing.T, dir string) map[string][]byte {
	t.Helper()
	files := make(map[string][]byte)
	for _, size := range sizes {
		name := "icon-" + strconv.Itoa(size) + ".png"
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		files[name] = data
	}
	return files
}
