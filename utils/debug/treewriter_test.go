package debug

import "testing"

func TestTreeWriter(t *testing.T) {
	tests := []struct {
		name  string
		write func(tw *TreeWriter)
		want  string
	}{
		{
			name:  "empty",
			write: func(*TreeWriter) {},
			want:  "",
		},
		{
			name: "nested lines",
			write: func(tw *TreeWriter) {
				tw.Line(0, "Document %q", "On Things")
				tw.Line(1, "blocks[%d]", 3)
				tw.Line(2, "leaf")
			},
			want: "Document \"On Things\"\n  blocks[3]\n    leaf\n",
		},
		{
			name: "negative depth is left margin",
			write: func(tw *TreeWriter) {
				tw.Line(-1, "x")
			},
			want: "x\n",
		},
		{
			name: "text blocks",
			write: func(tw *TreeWriter) {
				tw.TextBlock(1, "Paragraph", "line one\nline two")
				tw.TextBlock(1, "Header", "")
			},
			want: "  Paragraph: \"line one\\nline two\"\n  Header: \n",
		},
		{
			name: "rule",
			write: func(tw *TreeWriter) {
				tw.Rule(1, "page break")
			},
			want: "  ---- page break ----\n",
		},
		{
			name: "list",
			write: func(tw *TreeWriter) {
				tw.List(0, "Media", []string{"image1.png", "image2.jpg"})
			},
			want: "Media: 2\n  image1.png\n  image2.jpg\n",
		},
		{
			name: "empty list keeps count",
			write: func(tw *TreeWriter) {
				tw.List(2, "Media", nil)
			},
			want: "    Media: 0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tt.write(tw)
			if got := tw.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeText(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{"plain", `"plain"`},
		{"tab\there", `"tab\there"`},
		{`quote "x"`, `"quote \"x\""`},
	}
	for _, tt := range tests {
		if got := encodeText(tt.in); got != tt.want {
			t.Errorf("encodeText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
