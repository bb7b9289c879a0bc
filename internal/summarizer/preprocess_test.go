package summarizer

import "testing"

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "collapses whitespace runs",
			in:   "Hello   world,\tthis  is\n\n a   document",
			want: "Hello world, this is a document",
		},
		{
			name: "strips special characters keeps punctuation",
			in:   "Price: $100 (net) for #2 items today!",
			want: "Price: 100 net for 2 items today!",
		},
		{
			name: "keeps accented and non-latin letters",
			in:   "Le café sert des pâtisseries fraîches chaque matin, c'est vrai.",
			want: "Le café sert des pâtisseries fraîches chaque matin, cest vrai.",
		},
		{
			name: "drops short artifact text",
			in:   "one two three",
			want: "",
		},
		{
			name: "keeps four tokens",
			in:   "one two three four",
			want: "one two three four",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := preprocess(tt.in)
			if got != tt.want {
				t.Errorf("preprocess(%q) = %q, want %q", tt.in, got, tt.want)
			}

			// Preprocessing an already-preprocessed text yields the same text.
			if again := preprocess(got); again != got {
				t.Errorf("preprocess not idempotent: %q -> %q", got, again)
			}
		})
	}
}
