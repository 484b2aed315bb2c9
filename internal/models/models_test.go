package models

import (
	"encoding/json"
	"testing"
)

func TestMinutesUnmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want Minutes
	}{
		{`5`, Minutes{Known: true, Value: 5}},
		{`"12"`, Minutes{Known: true, Value: 12}},
		{`0`, Minutes{Known: true, Value: 0}},
		{`"N/A"`, Minutes{}},
		{`null`, Minutes{}},
		{`"soon"`, Minutes{}},
	}
	for _, c := range cases {
		var m Minutes
		if err := json.Unmarshal([]byte(c.in), &m); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", c.in, err)
			continue
		}
		if m != c.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", c.in, m, c.want)
		}
	}
}

func TestMinutesString(t *testing.T) {
	if got := (Minutes{Known: true, Value: 7}).String(); got != "7" {
		t.Errorf("String() = %q, want 7", got)
	}
	if got := (Minutes{}).String(); got != "N/A" {
		t.Errorf("String() = %q, want N/A", got)
	}
}

func TestStopRecordRoundTrip(t *testing.T) {
	in := `{"code":214,"name":"Πλατεία","latitude":"38.2466","longitude":21.7346}`

	var rec StopRecord
	if err := json.Unmarshal([]byte(in), &rec); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if rec.Code != 214 || rec.Name != "Πλατεία" {
		t.Errorf("identity fields wrong: %+v", rec)
	}
	if !rec.HasCoordinates() {
		t.Fatal("coordinates lost")
	}
	if float64(*rec.Latitude) != 38.2466 || float64(*rec.Longitude) != 21.7346 {
		t.Errorf("coordinates wrong: %v, %v", *rec.Latitude, *rec.Longitude)
	}

	out, err := json.Marshal(rec)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	var again StopRecord
	if err := json.Unmarshal(out, &again); err != nil {
		t.Fatalf("re-Unmarshal error: %v", err)
	}
	if !again.HasCoordinates() || again.Code != rec.Code {
		t.Errorf("round trip lost data: %+v", again)
	}
}

func TestStopRecordMalformedCoordinates(t *testing.T) {
	cases := []string{
		`{"code":1,"name":"a"}`,
		`{"code":1,"name":"a","latitude":null,"longitude":null}`,
		`{"code":1,"name":"a","latitude":"x","longitude":"y"}`,
		`{"code":1,"name":"a","latitude":38.2}`,
	}
	for _, in := range cases {
		var rec StopRecord
		if err := json.Unmarshal([]byte(in), &rec); err != nil {
			t.Errorf("Unmarshal(%s) error: %v", in, err)
			continue
		}
		if rec.HasCoordinates() {
			t.Errorf("Unmarshal(%s): HasCoordinates() = true, want false", in)
		}
	}
}
