package sanitize

import "testing"

func TestTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"plain", "My Video", "My Video"},
		{"accents and punctuation", "Título: Test/Video?", "Ttulo TestVideo"},
		{"surrounding whitespace", "  spaced out  ", "spaced out"},
		{"hyphen and underscore kept", "part-1_final", "part-1_final"},
		{"all symbols", "?!@#$%^&*()", DefaultName},
		{"empty", "", DefaultName},
		{"quotes removed", `say "hi"`, "say hi"},
		{"newline becomes space", "Line one\nLine two", "Line one Line two"},
		{"whitespace runs collapsed", "tab\t\tand   spaces\r\n", "tab and spaces"},
		{"gap left by removed symbols", "Rock & Roll", "Rock Roll"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Title(tt.title); got != tt.want {
				t.Fatalf("Title(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFilename(t *testing.T) {
	if got := Filename("Hello: World"); got != "Hello World.mp4" {
		t.Fatalf("got %q", got)
	}
	if got := Filename("???"); got != "video.mp4" {
		t.Fatalf("got %q", got)
	}
}

func TestContentDisposition(t *testing.T) {
	got := ContentDisposition("Clip #1")
	want := `attachment; filename="Clip 1.mp4"`
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestContentDispositionControlWhitespace(t *testing.T) {
	got := ContentDisposition("Line one\nLine two\tend")
	want := `attachment; filename="Line one Line two end.mp4"`
	if got != want {
		t.Fatalf("ContentDisposition() = %q, want %q", got, want)
	}
}
