package nameindex

import (
	"sort"
	"testing"
)

func TestAddAndLookupByName(t *testing.T) {
	d := New()
	d.Add(42, "Sirius", true)

	idx, ok := d.LookupByName("sirius", false)
	if !ok || idx != 42 {
		t.Fatalf("LookupByName(sirius) = (%v, %v), want (42, true)", idx, ok)
	}
	if _, ok := d.LookupByName("SIRIUS", false); !ok {
		t.Fatal("expected case-insensitive lookup to succeed")
	}
	if _, ok := d.LookupByName("Vega", false); ok {
		t.Fatal("expected lookup of unregistered name to fail")
	}
}

func TestLookupByIndexReturnsPrimaryName(t *testing.T) {
	d := New()
	d.Add(1, "Rigel", false)
	d.Add(1, "Beta Orionis", false)

	if got := d.LookupByIndex(1); got != "Rigel" {
		t.Errorf("LookupByIndex(1) = %q, want %q", got, "Rigel")
	}
	if got := d.LookupByIndex(999); got != "" {
		t.Errorf("LookupByIndex(unregistered) = %q, want empty", got)
	}
}

func TestIterateNamesForIndexPreservesOrder(t *testing.T) {
	d := New()
	d.Add(7, "Alpha Centauri", false)
	d.Add(7, "Rigil Kentaurus", false)

	var got []string
	for n := range d.IterateNamesForIndex(7) {
		got = append(got, n)
	}
	want := []string{"Alpha Centauri", "Rigil Kentaurus"}
	if len(got) != len(want) {
		t.Fatalf("got %v names, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestEraseRemovesAllNamesForIndex(t *testing.T) {
	d := New()
	d.Add(3, "Procyon", false)
	d.Erase(3)

	if _, ok := d.LookupByName("Procyon", false); ok {
		t.Fatal("expected lookup to fail after Erase")
	}
	if got := d.LookupByIndex(3); got != "" {
		t.Errorf("LookupByIndex(3) after Erase = %q, want empty", got)
	}
}

func TestAddParsesGreekAbbreviation(t *testing.T) {
	d := New()
	d.Add(10, "Alf Cen", true)

	if idx, ok := d.LookupByName("alf cen", false); !ok || idx != 10 {
		t.Errorf("LookupByName(alf cen) = (%v, %v), want (10, true)", idx, ok)
	}
	if idx, ok := d.LookupByName("α Cen", false); !ok || idx != 10 {
		t.Errorf("LookupByName(α Cen) = (%v, %v), want (10, true)", idx, ok)
	}
}

func TestAddWithoutGreekParsingSkipsExpansion(t *testing.T) {
	d := New()
	d.Add(11, "Alf Cen", false)

	if _, ok := d.LookupByName("α Cen", false); ok {
		t.Fatal("expected no Greek expansion when parseGreek is false")
	}
}

func TestLocalizedOverlayConsultedFirst(t *testing.T) {
	d := New()
	d.Add(5, "Polaris", false)
	d.AddLocalized(5, "Etoile Polaire")

	if idx, ok := d.LookupByName("etoile polaire", true); !ok || idx != 5 {
		t.Errorf("LookupByName(localized, i18n) = (%v, %v), want (5, true)", idx, ok)
	}
	if _, ok := d.LookupByName("etoile polaire", false); ok {
		t.Fatal("expected localized name to be invisible without i18n")
	}
}

func TestGetCompletionSortsAndDeduplicates(t *testing.T) {
	d := New()
	d.Add(1, "Antares", false)
	d.Add(2, "Aldebaran", false)
	d.Add(3, "Altair", false)
	d.Add(4, "Vega", false)

	got := d.GetCompletion("Al", false, true)
	want := []string{"Aldebaran", "Altair"}
	if len(got) != len(want) {
		t.Fatalf("GetCompletion(Al) = %v, want %v", got, want)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("expected sorted results, got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("result[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestGetCompletionExpandsGreekQuery(t *testing.T) {
	d := New()
	d.Add(1, "Alf Cen", true)

	got := d.GetCompletion("alf", false, true)
	found := false
	for _, n := range got {
		if n == "Alf Cen" || n == "α Cen" {
			found = true
		}
	}
	if !found {
		t.Errorf("GetCompletion(alf) = %v, want a match for the Alf Cen entry", got)
	}
}

func TestZeroValueDatabaseUsable(t *testing.T) {
	var d Database
	d.Add(1, "Vega", false)
	if _, ok := d.LookupByName("vega", false); !ok {
		t.Fatal("expected zero-value Database to lazily initialize on first use")
	}
}
