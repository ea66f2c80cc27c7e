package figure

import "testing"

func TestFromHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want Color
	}{
		{name: "rgb", hex: "3498db", want: RGBA(0x34, 0x98, 0xdb, 255)},
		{name: "rgb with hash", hex: "#3498db", want: RGBA(0x34, 0x98, 0xdb, 255)},
		{name: "rgba", hex: "11223344", want: RGBA(0x11, 0x22, 0x33, 0x44)},
		{name: "rgba with hash", hex: "#80808080", want: RGBA(128, 128, 128, 128)},
		{name: "uppercase", hex: "FF00FF", want: RGBA(255, 0, 255, 255)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromHex(tt.hex)
			if err != nil {
				t.Fatalf("FromHex(%q) error: %v", tt.hex, err)
			}
			if got != tt.want {
				t.Errorf("FromHex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestFromHex_Invalid(t *testing.T) {
	tests := []struct {
		name string
		hex  string
	}{
		{name: "empty", hex: ""},
		{name: "hash only", hex: "#"},
		{name: "short", hex: "fff"},
		{name: "odd length", hex: "1234567"},
		{name: "too long", hex: "1122334455"},
		{name: "bad digits", hex: "gg0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromHex(tt.hex); err == nil {
				t.Errorf("FromHex(%q) succeeded, want error", tt.hex)
			}
		})
	}
}

func TestColor_Darker(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{name: "white", c: White, want: RGBA(178, 178, 178, 255)},
		{name: "mid grey", c: RGBA(100, 100, 100, 255), want: RGBA(70, 70, 70, 255)},
		{name: "black stays black", c: Black, want: Black},
		{name: "alpha preserved", c: RGBA(200, 0, 50, 128), want: RGBA(140, 0, 35, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Darker(); got != tt.want {
				t.Errorf("Darker() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_Brighter(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		want Color
	}{
		{name: "mid grey", c: RGBA(70, 70, 70, 255), want: RGBA(100, 100, 100, 255)},
		{name: "clamps at white", c: RGBA(200, 200, 200, 255), want: White},
		{name: "black lifts to dark grey", c: Black, want: RGBA(3, 3, 3, 255)},
		{name: "transparent black keeps alpha", c: Transparent, want: RGBA(3, 3, 3, 0)},
		{name: "tiny channels raised to floor", c: RGBA(1, 2, 0, 255), want: RGBA(4, 4, 0, 255)},
		{name: "alpha preserved", c: RGBA(70, 0, 140, 128), want: RGBA(100, 0, 200, 128)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Brighter(); got != tt.want {
				t.Errorf("Brighter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestColor_DarkerBrighterRoundtrip(t *testing.T) {
	// One shade step down then up lands back on the original for channels
	// that divide cleanly.
	c := RGBA(100, 70, 0, 255)
	if got := c.Darker().Brighter(); got != c {
		t.Errorf("Darker().Brighter() = %v, want %v", got, c)
	}
}
