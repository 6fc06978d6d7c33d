package walletdex

import (
	"strings"
	"testing"
)

func TestDecodeJSONBareArray(t *testing.T) {
	input := `[
	  {
	    "name": "Bare One",
	    "category": "major",
	    "custodyModel": "self-custody",
	    "platforms": ["ios"],
	    "version": "1.0.0",
	    "lastTested": "2025-06-01",
	    "website": "https://bare.example.com"
	  }
	]`
	result, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if len(result.Wallets) != 1 {
		t.Fatalf("got %d wallets want 1", len(result.Wallets))
	}
	// The id was absent and is derived from the name.
	if got := result.Wallets[0].ID; got != "bare-one" {
		t.Errorf("derived id = %q want bare-one", got)
	}
}

func TestDecodeJSONSkipsInvalidRecords(t *testing.T) {
	input := `{
	  "wallets": [
	    {
	      "name": "Valid",
	      "category": "major",
	      "custodyModel": "mpc",
	      "platforms": ["web"],
	      "version": "2.0.0",
	      "lastTested": "2025-05-01",
	      "website": "https://valid.example.com"
	    },
	    {"name": "Missing Everything Else"}
	  ]
	}`
	result, err := DecodeJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeJSON error: %v", err)
	}
	if !sameIDs(ids(result.Wallets), []string{"valid"}) {
		t.Errorf("wallets = %v want [valid]", ids(result.Wallets))
	}
	if len(result.Warnings) != 1 || !strings.HasPrefix(result.Warnings[0], "wallet 1:") {
		t.Errorf("warnings = %v want one for wallet 1", result.Warnings)
	}
}

func TestDecodeJSONRejectsGarbage(t *testing.T) {
	for _, input := range []string{"not json at all", `{"unrelated": true}`, `[]`} {
		_, err := DecodeJSON(strings.NewReader(input))
		if _, ok := err.(*DecodeError); !ok {
			t.Errorf("DecodeJSON(%q) error = %v want *DecodeError", input, err)
		}
	}
}
