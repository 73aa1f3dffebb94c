package validator

import "testing"

func TestIsDateValid(t *testing.T) {
	cases := map[string]bool{
		"":           true,
		"2024-01-19": true,
		"2024/01/19": false,
		"2024-13-01": false,
		"未知日期":       false,
	}
	for in, want := range cases {
		if got := IsDateValid(in); got != want {
			t.Errorf("IsDateValid(%q) = %v, want %v", in, got, want)
		}
	}
}
