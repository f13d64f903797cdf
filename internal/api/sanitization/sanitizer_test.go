package sanitization

import "testing"

func TestEscapeHTML(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "hello world", "hello world"},
		{"empty", "", ""},
		{"script tag", `<script>"x"</script>`, "&lt;script&gt;&quot;x&quot;&lt;/script&gt;"},
		{"ampersand", "fish & chips", "fish &amp; chips"},
		{"single quote", "it's fine", "it&#39;s fine"},
		{"existing entity is re-escaped", "&amp;", "&amp;amp;"},
		{"all five", `&<>"'`, "&amp;&lt;&gt;&quot;&#39;"},
		{"unicode untouched", "héllo → wörld", "héllo → wörld"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EscapeHTML(tt.input); got != tt.want {
				t.Errorf("EscapeHTML(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
