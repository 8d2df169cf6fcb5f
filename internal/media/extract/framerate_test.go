package extract

import "testing"

func TestParseFrameRate(t *testing.T) {
	cases := map[string]string{
		"30000/1001": "29.97",
		"30":         "30.00",
		"30/1":       "30.00",
		"25/0":       "0.00",
		"30/0":       "0.00",
		"":           "0.00",
		"abc":        "0.00",
		"abc/def":    "0.00",
		"24000/1001": "23.98",
		"29.97":      "29.97",
		"-30":        "0.00",
		" 30 ":       "30.00",
	}
	for input, want := range cases {
		if got := ParseFrameRate(input); got != want {
			t.Errorf("ParseFrameRate(%q) = %q, want %q", input, got, want)
		}
	}
}
