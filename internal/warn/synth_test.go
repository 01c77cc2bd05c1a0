package warn

import "testing"

func TestSynthesizeDeprecation(t *testing.T) {
	cases := []struct {
		data Data
		want string
	}{
		{Data{"subject": "Parse"}, "Parse is deprecated"},
		{Data{"subject": "Parse", "replacement": "ParseAll"}, "Parse is deprecated, use ParseAll instead"},
		{
			Data{"subject": "Parse", "replacement": "ParseAll", "removal": "v2.0"},
			"Parse is deprecated, use ParseAll instead (removal planned for v2.0)",
		},
		{nil, "this feature is deprecated"},
	}
	for _, tc := range cases {
		rec, ok := FromData(KindDeprecation, tc.data)
		if !ok {
			t.Fatalf("FromData(Deprecation, %v) rejected", tc.data)
		}
		if rec.Message != tc.want {
			t.Fatalf("message = %q, want %q", rec.Message, tc.want)
		}
	}
}

func TestSynthesizePendingDeprecation(t *testing.T) {
	rec, ok := FromData(KindPendingDeprecation, Data{"subject": "Parse"})
	if !ok {
		t.Fatal("FromData(PendingDeprecation) rejected")
	}
	if rec.Message != "Parse will be deprecated in a future release" {
		t.Fatalf("message = %q", rec.Message)
	}
}

func TestSynthesizeFuture(t *testing.T) {
	rec, ok := FromData(KindFuture, Data{"feature": "sorting", "change": "order becomes stable"})
	if !ok {
		t.Fatal("FromData(Future) rejected")
	}
	want := "behaviour of sorting will change in a future release: order becomes stable"
	if rec.Message != want {
		t.Fatalf("message = %q, want %q", rec.Message, want)
	}
	rec, _ = FromData(KindFuture, nil)
	if rec.Message != "behaviour will change in a future release" {
		t.Fatalf("fallback message = %q", rec.Message)
	}
}

func TestSynthesizeStability(t *testing.T) {
	rec, ok := FromData(KindStability, Data{"feature": "browse UI", "level": "unstable"})
	if !ok {
		t.Fatal("FromData(Stability) rejected")
	}
	if rec.Message != "browse UI is unstable and may change without notice" {
		t.Fatalf("message = %q", rec.Message)
	}
	rec, _ = FromData(KindStability, Data{"feature": "browse UI"})
	if rec.Message != "browse UI is experimental and may change without notice" {
		t.Fatalf("default level message = %q", rec.Message)
	}
}

func TestFromDataKeepsPayload(t *testing.T) {
	data := Data{"subject": "Parse", "count": 3}
	rec, ok := FromData(KindDeprecation, data)
	if !ok {
		t.Fatal("FromData rejected")
	}
	if rec.Data["count"] != 3 {
		t.Fatalf("payload not preserved: %v", rec.Data)
	}
	if rec.Code != DeprecationCode {
		t.Fatalf("code = %v, want %v", rec.Code, DeprecationCode)
	}
}
