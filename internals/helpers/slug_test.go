package helper

import "testing"

func TestGenerateSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Rumah Mewah di Serpong", "rumah-mewah-di-serpong"},
		{"  Cluster   Premium!  ", "cluster-premium"},
		{"Tipe 45/90", "tipe-45-90"},
		{"---", ""},
		{"Villa (Baru) - Siap Huni", "villa-baru-siap-huni"},
		{"ALL CAPS", "all-caps"},
	}
	for _, tc := range cases {
		if got := GenerateSlug(tc.in); got != tc.want {
			t.Errorf("GenerateSlug(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
