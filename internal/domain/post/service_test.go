package post

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Home Loan Basics", "home-loan-basics"},
		{"  Top 5 Tips!  ", "top-5-tips"},
		{"What's New?", "what-s-new"},
		{"---", ""},
		{"Already-Slugged", "already-slugged"},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
