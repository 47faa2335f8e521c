package paint

import (
	"encoding/json"
	"errors"
	"image/color"
	"testing"
)

func TestColorNRGBA(t *testing.T) {
	tests := []struct {
		c    Color
		want color.NRGBA
	}{
		{Black, color.NRGBA{0, 0, 0, 0xff}},
		{Red, color.NRGBA{0xff, 0, 0, 0xff}},
		{Green, color.NRGBA{0, 0xff, 0, 0xff}},
		{Blue, color.NRGBA{0, 0, 0xff, 0xff}},
		{Color(42), color.NRGBA{0, 0, 0, 0xff}},
	}
	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			if got := tt.c.NRGBA(); got != tt.want {
				t.Errorf("NRGBA() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"Black", Black, false},
		{"red", Red, false},
		{"GREEN", Green, false},
		{"bLuE", Blue, false},
		{"purple", Black, true},
		{"", Black, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownColor) {
					t.Fatalf("ParseColor(%q) error = %v, want ErrUnknownColor", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorStringRoundTrip(t *testing.T) {
	for _, c := range Colors() {
		if !c.Valid() {
			t.Errorf("%v.Valid() = false", c)
		}
		got, err := ParseColor(c.String())
		if err != nil || got != c {
			t.Errorf("ParseColor(%q) = %v, %v", c.String(), got, err)
		}
	}
	if Color(9).Valid() {
		t.Error("Color(9).Valid() = true")
	}
	if got := Color(9).String(); got != "Color(9)" {
		t.Errorf("Color(9).String() = %q", got)
	}
	if _, err := Color(9).MarshalText(); !errors.Is(err, ErrUnknownColor) {
		t.Errorf("MarshalText on invalid color: err = %v", err)
	}
}

func TestShapeKindParse(t *testing.T) {
	tests := []struct {
		in      string
		want    ShapeKind
		wantErr bool
	}{
		{"line", Line, false},
		{"Circle", Circle, false},
		{"ELLIPSE", Ellipse, false},
		{"rectangle", Rectangle, false},
		{"rect", Rectangle, false},
		{"Polygon", Polygon, false},
		{"polyline", Polyline, false},
		{"Polylines", Polyline, false},
		{"spline", Line, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseShapeKind(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Fatalf("ParseShapeKind(%q) error = %v, want ErrUnknownKind", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseShapeKind(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseShapeKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestShapeKindMultiVertex(t *testing.T) {
	for _, k := range ShapeKinds() {
		want := k == Polygon || k == Polyline
		if got := k.MultiVertex(); got != want {
			t.Errorf("%v.MultiVertex() = %v, want %v", k, got, want)
		}
	}
}

func TestShapeJSON(t *testing.T) {
	s := Shape{Kind: Polygon, Color: Blue, Points: []Point{{10, 10}, {20, 10}, {20, 20}}}

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	const want = `{"kind":"Polygon","color":"Blue","points":[{"x":10,"y":10},{"x":20,"y":10},{"x":20,"y":20}]}`
	if string(data) != want {
		t.Errorf("Marshal = %s\nwant      %s", data, want)
	}

	var back Shape
	if err := json.Unmarshal([]byte(`{"kind":"polygon","color":"blue","points":[{"x":10,"y":10},{"x":20,"y":10},{"x":20,"y":20}]}`), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(s) {
		t.Errorf("Unmarshal = %v, want %v", back, s)
	}

	err = json.Unmarshal([]byte(`{"kind":"spline"}`), &back)
	if !errors.Is(err, ErrUnknownKind) {
		t.Errorf("Unmarshal unknown kind: err = %v, want ErrUnknownKind", err)
	}
}

func TestShapeWithDoesNotAlias(t *testing.T) {
	base := Shape{Kind: Polyline, Points: make([]Point, 2, 8)}
	a := base.With(Pt(1, 1))
	b := base.With(Pt(2, 2))

	if a.Points[2] != Pt(1, 1) || b.Points[2] != Pt(2, 2) {
		t.Errorf("With() shared backing storage: a=%v b=%v", a.Points, b.Points)
	}
	if len(base.Points) != 2 {
		t.Errorf("With() changed receiver length to %d", len(base.Points))
	}
}

func TestShapeString(t *testing.T) {
	s := Shape{Kind: Circle, Color: Red, Points: []Point{{10, 10}, {20, 10}}}
	if got, want := s.String(), "Circle[Red](10,10)-(20,10)"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
