package crcfast

import "testing"

func TestTierStringFormat(t *testing.T) {
	cases := []struct {
		tier Tier
		want string
	}{
		{Tier{Arch: "software", Family: "table", Features: []string{"portable"}}, "software-table-portable"},
		{Tier{Arch: "amd64", Family: "clmul", Features: []string{"avx512vl", "vpclmulqdq"}}, "amd64-clmul-avx512vl+vpclmulqdq"},
		{Tier{Arch: "arm64", Family: "pmull", Features: []string{"aes", "sha3"}}, "arm64-pmull-aes+sha3"},
	}
	for _, c := range cases {
		if got := c.tier.String(); got != c.want {
			t.Errorf("Tier.String() = %q, want %q", got, c.want)
		}
	}
}

func TestGetCalculatorTargetNonEmpty(t *testing.T) {
	if GetCalculatorTarget() == "" {
		t.Fatal("GetCalculatorTarget returned an empty string")
	}
}

func TestGetCalculatorTargetStable(t *testing.T) {
	first := GetCalculatorTarget()
	second := GetCalculatorTarget()
	if first != second {
		t.Fatalf("dispatch target changed across calls: %q vs %q", first, second)
	}
}
