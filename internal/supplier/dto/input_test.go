package dto

import (
	"encoding/json"
	"testing"
)

func TestExtractAttributes(t *testing.T) {
	payload := []byte(`{
		"id": 3,
		"name": "540W Mono PERC",
		"category": "module",
		"price_ex_factory": 11.5,
		"locations": [{"state":"MH","city":"Pune","price":10}],
		"warranty": "25 years",
		"cellType": "M10"
	}`)

	got := ExtractAttributes(payload)

	var attrs map[string]interface{}
	if err := json.Unmarshal(got, &attrs); err != nil {
		t.Fatalf("result is not valid JSON: %v", err)
	}
	if len(attrs) != 2 {
		t.Errorf("len(attrs) = %d, want 2 (%v)", len(attrs), attrs)
	}
	if attrs["warranty"] != "25 years" || attrs["cellType"] != "M10" {
		t.Errorf("attrs = %v", attrs)
	}
	for _, reserved := range []string{"id", "name", "category", "price_ex_factory", "locations"} {
		if _, ok := attrs[reserved]; ok {
			t.Errorf("reserved key %q leaked into attributes", reserved)
		}
	}
}

func TestExtractAttributesMalformed(t *testing.T) {
	for _, raw := range []string{`{broken`, `null`, `"a string"`, ``} {
		got := ExtractAttributes([]byte(raw))
		if string(got) != "{}" {
			t.Errorf("ExtractAttributes(%q) = %s, want {}", raw, got)
		}
	}
}

func TestExtractAttributesEmptyObject(t *testing.T) {
	got := ExtractAttributes([]byte(`{"name":"only named fields"}`))
	if string(got) != "{}" {
		t.Errorf("got %s, want {}", got)
	}
}
