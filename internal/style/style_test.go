package style

import (
	"testing"
)

func TestFromHex(t *testing.T) {
	tests := []struct {
		hex     string
		r, g, b uint8
		wantErr bool
	}{
		{"#FF8040", 255, 128, 64, false},
		{"#ff8040", 255, 128, 64, false},
		{"FF8040", 255, 128, 64, false},
		{"#FFF", 255, 255, 255, false},
		{"#1e1e1e", 30, 30, 30, false},
		{"invalid", 0, 0, 0, true},
		{"#GGG", 0, 0, 0, true},
		{"", 0, 0, 0, true},
	}

	for _, tt := range tests {
		c, err := FromHex(tt.hex)
		if tt.wantErr {
			if err == nil {
				t.Errorf("FromHex(%q) expected error, got nil", tt.hex)
			}
			continue
		}
		if err != nil {
			t.Errorf("FromHex(%q) unexpected error: %v", tt.hex, err)
			continue
		}
		if c.R != tt.r || c.G != tt.g || c.B != tt.b {
			t.Errorf("FromHex(%q) = (%d,%d,%d), want (%d,%d,%d)",
				tt.hex, c.R, c.G, c.B, tt.r, tt.g, tt.b)
		}
	}
}

func TestColorEquals(t *testing.T) {
	c1 := RGB(255, 128, 64)
	c2 := RGB(255, 128, 64)
	c3 := RGB(255, 128, 65)
	c4 := Indexed(10)
	c5 := Indexed(10)

	if !c1.Equals(c2) {
		t.Error("identical RGB colors should be equal")
	}
	if c1.Equals(c3) {
		t.Error("different RGB colors should not be equal")
	}
	if !c4.Equals(c5) {
		t.Error("identical indexed colors should be equal")
	}
	if c1.Equals(c4) {
		t.Error("RGB and indexed colors should not be equal")
	}
	if !ColorDefault.Equals(Color{}) {
		t.Error("default colors should compare equal")
	}
}

func TestZeroColorIsDefault(t *testing.T) {
	var c Color
	if !c.IsDefault() {
		t.Error("zero Color should read as the terminal default")
	}
	if !c.Equals(ColorDefault) {
		t.Error("zero Color should equal ColorDefault")
	}
	if black := RGB(0, 0, 0); black.IsDefault() {
		t.Error("explicit black should not read as default")
	}
	if ColorDefault.Equals(RGB(0, 0, 0)) {
		t.Error("default should not equal explicit black")
	}
}

func TestDarkenReducesLightness(t *testing.T) {
	bg := RGB(40, 44, 52)
	darker := bg.Darken(0.05)

	sum := int(darker.R) + int(darker.G) + int(darker.B)
	orig := int(bg.R) + int(bg.G) + int(bg.B)
	if sum >= orig {
		t.Errorf("Darken did not darken: %v -> %v", bg, darker)
	}

	// Indexed and default colors are untouched.
	idx := Indexed(7)
	if !idx.Darken(0.5).Equals(idx) {
		t.Error("Darken should not modify indexed colors")
	}
	if !ColorDefault.Darken(0.5).Equals(ColorDefault) {
		t.Error("Darken should not modify the default color")
	}
}

func TestLightenRaisesLightness(t *testing.T) {
	bg := RGB(40, 44, 52)
	lighter := bg.Lighten(0.1)

	sum := int(lighter.R) + int(lighter.G) + int(lighter.B)
	orig := int(bg.R) + int(bg.G) + int(bg.B)
	if sum <= orig {
		t.Errorf("Lighten did not lighten: %v -> %v", bg, lighter)
	}

	white := ColorWhite.Lighten(0.5)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("lightening white should stay white, got %v", white)
	}
}

func TestBlend(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	mid := black.Blend(white, 0.5)
	if mid.R < 100 || mid.R > 155 {
		t.Errorf("50%% blend of black/white should be mid gray, got %v", mid)
	}
	if got := black.Blend(white, 0); !got.Equals(black) {
		t.Errorf("blend amount 0 should return receiver, got %v", got)
	}
	if got := black.Blend(white, 1); !got.Equals(white) {
		t.Errorf("blend amount 1 should return other, got %v", got)
	}

	// Non-RGB operands degrade to nearest endpoint.
	if got := ColorDefault.Blend(white, 0.4); !got.Equals(ColorDefault) {
		t.Errorf("blend with default receiver at 0.4 should keep receiver, got %v", got)
	}
	if got := ColorDefault.Blend(white, 0.6); !got.Equals(white) {
		t.Errorf("blend with default receiver at 0.6 should take other, got %v", got)
	}
}

func TestAttributeOps(t *testing.T) {
	a := AttrBold | AttrItalic

	if !a.Has(AttrBold) {
		t.Error("should have bold")
	}
	if !a.Has(AttrItalic) {
		t.Error("should have italic")
	}
	if a.Has(AttrUnderline) {
		t.Error("should not have underline")
	}

	b := a.With(AttrUnderline)
	if !b.Has(AttrUnderline) {
		t.Error("With should add underline")
	}

	c := b.Without(AttrBold)
	if c.Has(AttrBold) {
		t.Error("Without should remove bold")
	}
	if !c.Has(AttrItalic) {
		t.Error("Without should keep other attributes")
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(RGB(1, 2, 3)).Bold().Italic().WithBackground(RGB(9, 9, 9))

	if !s.Foreground.Equals(RGB(1, 2, 3)) {
		t.Errorf("foreground = %v", s.Foreground)
	}
	if !s.Background.Equals(RGB(9, 9, 9)) {
		t.Errorf("background = %v", s.Background)
	}
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrItalic) {
		t.Errorf("attributes = %v", s.Attributes)
	}

	// Builders return copies.
	base := DefaultStyle()
	_ = base.Underline()
	if base.Attributes.Has(AttrUnderline) {
		t.Error("builder mutated its receiver")
	}
}

func TestStyleMerge(t *testing.T) {
	base := NewStyle(RGB(1, 1, 1))
	overlay := DefaultStyle().Bold().WithBackground(RGB(2, 2, 2))

	merged := base.Merge(overlay)
	if !merged.Foreground.Equals(RGB(1, 1, 1)) {
		t.Error("default overlay foreground should not replace base")
	}
	if !merged.Background.Equals(RGB(2, 2, 2)) {
		t.Error("overlay background should replace base")
	}
	if !merged.Attributes.Has(AttrBold) {
		t.Error("attributes should union")
	}
}

func TestStyleInvert(t *testing.T) {
	s := Style{Foreground: RGB(1, 2, 3), Background: RGB(4, 5, 6), Attributes: AttrBold}
	inv := s.Invert()

	if !inv.Foreground.Equals(RGB(4, 5, 6)) || !inv.Background.Equals(RGB(1, 2, 3)) {
		t.Errorf("Invert = %+v", inv)
	}
	if inv.Attributes != AttrBold {
		t.Error("Invert should keep attributes")
	}
}

func TestDefaultStyleIsDefault(t *testing.T) {
	if !DefaultStyle().IsDefault() {
		t.Error("DefaultStyle should be default")
	}
	if NewStyle(RGB(1, 2, 3)).IsDefault() {
		t.Error("styled text should not be default")
	}
}
