package scanner

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/allenv0/snowball/internal/catalog"
)

func writeJPEG(t *testing.T, path string, width, height int) {
	t.Helper()
	writeFixture(t, path, width, height, func(f *os.File, img image.Image) error {
		return jpeg.Encode(f, img, nil)
	})
}

func writePNG(t *testing.T, path string, width, height int) {
	t.Helper()
	writeFixture(t, path, width, height, func(f *os.File, img image.Image) error {
		return png.Encode(f, img)
	})
}

func writeFixture(t *testing.T, path string, width, height int, encode func(f *os.File, img image.Image) error) {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	img.Set(0, 0, color.RGBA{G: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create %s: %v", path, err)
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		t.Fatalf("Failed to encode %s: %v", path, err)
	}
}

func TestSelectRoot(t *testing.T) {
	workDir := t.TempDir()
	t.Chdir(workDir)

	if err := os.Mkdir("media", 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	if err := os.WriteFile("plainfile", []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	tests := []struct {
		name         string
		dir          string
		wantRoot     string
		wantPrefixed bool
	}{
		{name: "existing subdirectory", dir: "media", wantRoot: "media", wantPrefixed: true},
		{name: "missing subdirectory", dir: "photos", wantRoot: ".", wantPrefixed: false},
		{name: "regular file is not a root", dir: "plainfile", wantRoot: ".", wantPrefixed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, prefixed := SelectRoot(tt.dir)
			if root != tt.wantRoot || prefixed != tt.wantPrefixed {
				t.Errorf("SelectRoot(%q) = (%q, %v), want (%q, %v)",
					tt.dir, root, prefixed, tt.wantRoot, tt.wantPrefixed)
			}
		})
	}
}

func TestScanPrefersMediaSubdir(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.MkdirAll(filepath.Join("media", "nested"), 0755); err != nil {
		t.Fatalf("MkdirAll failed: %v", err)
	}
	writeJPEG(t, filepath.Join("media", "a.jpg"), 100, 50)
	writePNG(t, filepath.Join("media", "b.png"), 10, 10)
	if err := os.WriteFile(filepath.Join("media", "notes.txt"), []byte("not an image"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	// An image inside a nested directory must not be picked up.
	writePNG(t, filepath.Join("media", "nested", "deep.png"), 4, 4)

	cat, err := Scan("media")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := catalog.Catalog{
		{Path: filepath.Join("media", "a.jpg"), Width: 100, Height: 50},
		{Path: filepath.Join("media", "b.png"), Width: 10, Height: 10},
	}
	if !reflect.DeepEqual(cat, expected) {
		t.Errorf("Expected %+v, got %+v", expected, cat)
	}
}

func TestScanWritesExpectedJSON(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.Mkdir("media", 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	writeJPEG(t, filepath.Join("media", "a.jpg"), 100, 50)
	writePNG(t, filepath.Join("media", "b.png"), 10, 10)
	if err := os.WriteFile(filepath.Join("media", "notes.txt"), []byte("notes"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Scan("media")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if err := catalog.Write("out.json", cat); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile("out.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	expected := `[["media/a.jpg",[100,50]],["media/b.png",[10,10]]]`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestScanFallsBackToWorkingDir(t *testing.T) {
	t.Chdir(t.TempDir())

	writePNG(t, "c.png", 8, 6)
	if err := os.WriteFile("calculator.py", []byte("print()"), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cat, err := Scan("media")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	expected := catalog.Catalog{{Path: "c.png", Width: 8, Height: 6}}
	if !reflect.DeepEqual(cat, expected) {
		t.Errorf("Expected %+v, got %+v", expected, cat)
	}
}

func TestScanEmptyRoot(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.Mkdir("media", 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}

	cat, err := Scan("media")
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(cat) != 0 {
		t.Errorf("Expected empty catalog, got %+v", cat)
	}

	if err := catalog.Write("out.json", cat); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := os.ReadFile("out.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Expected [], got %s", data)
	}
}

func TestScanIsIdempotent(t *testing.T) {
	t.Chdir(t.TempDir())

	if err := os.Mkdir("media", 0755); err != nil {
		t.Fatalf("Mkdir failed: %v", err)
	}
	writeJPEG(t, filepath.Join("media", "x.jpg"), 20, 30)
	writePNG(t, filepath.Join("media", "y.png"), 3, 9)

	for _, out := range []string{"first.json", "second.json"} {
		cat, err := Scan("media")
		if err != nil {
			t.Fatalf("Scan failed: %v", err)
		}
		if err := catalog.Write(out, cat); err != nil {
			t.Fatalf("Write failed: %v", err)
		}
	}

	first, err := os.ReadFile("first.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	second, err := os.ReadFile("second.json")
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("Runs differ:\n%s\n%s", first, second)
	}
}
