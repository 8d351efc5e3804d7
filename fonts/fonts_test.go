package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadFontWithSize(t *testing.T) {
	if err := LoadFontWithSize(Small, goregular.TTF, 10); err != nil {
		t.Fatalf("LoadFontWithSize: %v", err)
	}
	face := Small.Get()
	if face == nil {
		t.Fatal("Small.Get() returned nil")
	}
	if h := face.Metrics().Height.Ceil(); h <= 0 {
		t.Errorf("face height = %d, want > 0", h)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Error("LoadFont with garbage data should fail")
	}
}

func TestGetMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("getting an unloaded font should panic")
		}
	}()
	FontName("missing").Get()
}
