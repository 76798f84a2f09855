package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Thommy-String/preventivo-pro-casa-parquet/internal/quote"
)

func TestEncodeDayKeys(t *testing.T) {
	in := map[int]quote.DaySettings{
		1:  {ArrivalTime: "07:30"},
		12: {ArrivalTime: "08:15"},
	}
	want := map[string]quote.DaySettings{
		"1":  {ArrivalTime: "07:30"},
		"12": {ArrivalTime: "08:15"},
	}
	if diff := cmp.Diff(want, encodeDayKeys(in)); diff != "" {
		t.Errorf("encodeDayKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDayKeys_SkipsNonNumericKeys(t *testing.T) {
	in := map[string]quote.DaySettings{
		"2":    {ArrivalTime: "09:00"},
		"oops": {ArrivalTime: "10:00"},
	}
	want := map[int]quote.DaySettings{
		2: {ArrivalTime: "09:00"},
	}
	if diff := cmp.Diff(want, decodeDayKeys(in)); diff != "" {
		t.Errorf("decodeDayKeys mismatch (-want +got):\n%s", diff)
	}
}

func TestDayKeysRoundTrip(t *testing.T) {
	in := map[int]quote.DaySettings{1: {ArrivalTime: "06:45"}, 3: {}}
	if diff := cmp.Diff(in, decodeDayKeys(encodeDayKeys(in))); diff != "" {
		t.Errorf("round trip mismatch (-in +out):\n%s", diff)
	}
}
