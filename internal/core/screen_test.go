package core

import (
	"strings"
	"testing"
)

// rows splits the plain text of a screen into its lines.
func rows(s *Screen) []string {
	return strings.Split(s.String(), "\n")
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(12, 4)

	if s.Width() != 12 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, want 12x4", s.Width(), s.Height())
	}
	if b := s.Bounds(); b != NewRect(0, 0, 12, 4) {
		t.Errorf("Bounds() = %+v", b)
	}
	for y, line := range rows(s) {
		if line != strings.Repeat(" ", 12) {
			t.Errorf("row %d = %q, want blanks", y, line)
		}
	}
}

func TestNewScreenNegativeSize(t *testing.T) {
	s := NewScreen(-3, -1)
	if s.Width() != 0 || s.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", s.Width(), s.Height())
	}
	if s.String() != "" {
		t.Errorf("String() = %q, want empty", s.String())
	}
}

func TestScreenCellAccess(t *testing.T) {
	s := NewScreen(6, 3)
	s.SetCell(1, 1, '█', ColorCyan)
	s.Set(4, 2, '.')

	tests := []struct {
		name string
		x, y int
		want Cell
	}{
		{"colored", 1, 1, Cell{Rune: '█', Color: ColorCyan}},
		{"plain", 4, 2, Cell{Rune: '.'}},
		{"untouched", 0, 0, blank},
		{"left of screen", -1, 1, blank},
		{"below screen", 1, 3, blank},
		{"right of screen", 6, 0, blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.GetCell(tt.x, tt.y); got != tt.want {
				t.Errorf("GetCell(%d, %d) = %+v, want %+v", tt.x, tt.y, got, tt.want)
			}
			if got := s.Get(tt.x, tt.y); got != tt.want.Rune {
				t.Errorf("Get(%d, %d) = %q, want %q", tt.x, tt.y, got, tt.want.Rune)
			}
		})
	}
}

func TestScreenOutOfBoundsWritesIgnored(t *testing.T) {
	s := NewScreen(3, 2)
	before := s.String()

	s.SetCell(-1, 0, 'X', ColorRed)
	s.SetCell(3, 0, 'X', ColorRed)
	s.Set(0, -1, 'X')
	s.Set(0, 2, 'X')

	if s.String() != before {
		t.Errorf("out-of-bounds writes changed the screen:\n%s", s.String())
	}
}

func TestScreenFillAndClear(t *testing.T) {
	s := NewScreen(4, 2)
	s.SetCell(0, 0, 'T', ColorMagenta)
	s.Fill('.')

	if got := s.GetCell(0, 0); got != (Cell{Rune: '.'}) {
		t.Errorf("Fill should reset color too, got %+v", got)
	}
	if got := s.String(); got != "....\n...." {
		t.Errorf("after Fill = %q", got)
	}

	s.Clear()
	if got := s.String(); got != "    \n    " {
		t.Errorf("after Clear = %q", got)
	}
}

func TestScreenText(t *testing.T) {
	tests := []struct {
		name  string
		width int
		draw  func(s *Screen)
		want  string
	}{
		{
			name:  "plain",
			width: 10,
			draw:  func(s *Screen) { s.DrawText(2, 0, "SCORE") },
			want:  "  SCORE   ",
		},
		{
			name:  "clipped right",
			width: 6,
			draw:  func(s *Screen) { s.DrawText(3, 0, "LEVEL") },
			want:  "   LEV",
		},
		{
			name:  "clipped left",
			width: 6,
			draw:  func(s *Screen) { s.DrawText(-2, 0, "LINES") },
			want:  "NES   ",
		},
		{
			name:  "centered",
			width: 11,
			draw:  func(s *Screen) { s.DrawTextCentered(0, "PAUSED") },
			want:  "  PAUSED   ",
		},
		{
			name:  "centered multibyte",
			width: 7,
			draw:  func(s *Screen) { s.DrawTextCentered(0, "░█░") },
			want:  "  ░█░  ",
		},
		{
			name:  "wider than screen",
			width: 4,
			draw:  func(s *Screen) { s.DrawTextCentered(0, "GAME OVER") },
			want:  "ME O",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(tt.width, 1)
			tt.draw(s)
			if got := s.Row(0); got != tt.want {
				t.Errorf("Row(0) = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestScreenTextColor(t *testing.T) {
	s := NewScreen(12, 2)
	s.DrawTextColor(0, 0, "HOLD", ColorDarkGray)
	s.DrawTextCenteredColor(1, "NEXT", ColorYellow)

	for x := 0; x < 4; x++ {
		if c := s.GetCell(x, 0).Color; c != ColorDarkGray {
			t.Errorf("cell (%d, 0) color = %d, want dark gray", x, c)
		}
	}
	if c := s.GetCell(4, 0).Color; c != ColorDefault {
		t.Errorf("cell after text should keep default color, got %d", c)
	}
	if got := s.Row(1); got != "    NEXT    " {
		t.Errorf("Row(1) = %q", got)
	}
	if c := s.GetCell(4, 1).Color; c != ColorYellow {
		t.Errorf("centered text color = %d, want yellow", c)
	}
}

func TestScreenBox(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBoxColor(NewRect(0, 0, 6, 4), ColorGray)

	want := []string{
		"┌────┐",
		"│    │",
		"│    │",
		"└────┘",
	}
	got := rows(s)
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], want[y])
		}
	}
	if c := s.GetCell(5, 3).Color; c != ColorGray {
		t.Errorf("border color = %d, want gray", c)
	}
	if c := s.GetCell(2, 1).Color; c != ColorDefault {
		t.Errorf("interior should be untouched, color = %d", c)
	}
}

func TestScreenBoxTooSmall(t *testing.T) {
	for _, r := range []Rect{NewRect(0, 0, 1, 3), NewRect(0, 0, 3, 1)} {
		s := NewScreen(4, 4)
		s.DrawBox(r)
		if strings.TrimSpace(s.String()) != "" {
			t.Errorf("DrawBox(%+v) drew something:\n%s", r, s.String())
		}
	}
}

func TestScreenBoxClipped(t *testing.T) {
	s := NewScreen(4, 3)
	s.DrawBox(NewRect(1, 1, 6, 5))

	if got := s.Row(1); got != " ┌──" {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.Row(2); got != " │  " {
		t.Errorf("Row(2) = %q", got)
	}
}

func TestScreenFillRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '█', ColorRed)
	s.DrawRect(NewRect(4, 3, 3, 3), '#')

	want := []string{
		"     ",
		" ██  ",
		" ██  ",
		"    #",
	}
	got := rows(s)
	for y := range want {
		if got[y] != want[y] {
			t.Errorf("row %d = %q, want %q", y, got[y], want[y])
		}
	}
	if c := s.GetCell(2, 2).Color; c != ColorRed {
		t.Errorf("filled color = %d, want red", c)
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(1, 0, 3, '-')
	s.DrawVLine(4, 1, 10, '|')

	if got := s.Row(0); got != " --- " {
		t.Errorf("Row(0) = %q", got)
	}
	for y := 1; y < 5; y++ {
		if got := s.Get(4, y); got != '|' {
			t.Errorf("Get(4, %d) = %q, want '|'", y, got)
		}
	}
}

func TestScreenResize(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		want string
	}{
		{"grow", 4, 3, "AB  \nCD  \n    "},
		{"shrink", 1, 1, "A"},
		{"same", 2, 2, "AB\nCD"},
		{"negative", -1, 2, "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewScreen(2, 2)
			s.DrawText(0, 0, "AB")
			s.DrawText(0, 1, "CD")

			s.Resize(tt.w, tt.h)
			if got := s.String(); got != tt.want {
				t.Errorf("after Resize(%d, %d) = %q, want %q", tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestScreenResizeKeepsColor(t *testing.T) {
	s := NewScreen(3, 3)
	s.SetCell(2, 2, 'O', ColorYellow)
	s.Resize(8, 8)

	if got := s.GetCell(2, 2); got != (Cell{Rune: 'O', Color: ColorYellow}) {
		t.Errorf("cell after resize = %+v", got)
	}
	if got := s.GetCell(7, 7); got != blank {
		t.Errorf("new cell = %+v, want blank", got)
	}
}

func TestScreenRowOutOfRange(t *testing.T) {
	s := NewScreen(3, 1)
	s.DrawText(0, 0, "abc")

	for _, y := range []int{-1, 1, 9} {
		if got := s.Row(y); got != "   " {
			t.Errorf("Row(%d) = %q, want blanks", y, got)
		}
	}
}
