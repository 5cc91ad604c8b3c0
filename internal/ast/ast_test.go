package ast

import (
	"strings"
	"testing"
)

func TestLinkedTextConcat(t *testing.T) {
	a := LinkedText{Text: "clear", Links: []EdgeInfo{Simple("fr", "eau")}}
	b := LinkedText{Text: "liquid", Links: []EdgeInfo{Simple("de", "Wasser")}}

	got := a.Concat(b)

	if got.Text != "clear liquid" {
		t.Errorf("Concat text = %q, want %q", got.Text, "clear liquid")
	}
	if len(got.Links) != 2 || got.Links[0].Target != "eau" || got.Links[1].Target != "Wasser" {
		t.Errorf("Concat links = %+v, want eau then Wasser in order", got.Links)
	}
}

func TestFromLinkedTextPrefixesLinks(t *testing.T) {
	inner := LinkedText{Text: "mammal", Links: []EdgeInfo{Simple("en", "animal")}}
	outer := FromLinkedText(inner, []EdgeInfo{Simple("en", "dog")})

	if outer.Text != "mammal" {
		t.Errorf("Text = %q, want %q", outer.Text, "mammal")
	}
	if len(outer.Links) != 2 || outer.Links[0].Target != "animal" || outer.Links[1].Target != "dog" {
		t.Errorf("Links = %+v, want [animal dog]", outer.Links)
	}
}

func TestEdgeInfoSetDefaultLanguageIdentity(t *testing.T) {
	e := Simple("fr", "eau")
	got := e.SetDefaultLanguage("en")
	if got.Language == nil || *got.Language != "fr" {
		t.Errorf("SetDefaultLanguage should be identity when language already set, got %+v", got)
	}
}

func TestEdgeInfoSetDefaultLanguageFillsNil(t *testing.T) {
	e := NewEdgeInfo(nil, "eau", nil, nil)
	got := e.SetDefaultLanguage("fr")
	if got.Language == nil || *got.Language != "fr" {
		t.Errorf("SetDefaultLanguage should fill nil language, got %+v", got)
	}
}

func TestNewEdgeInfoPanicsOnEmptyTarget(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic constructing EdgeInfo with empty target")
		}
	}()
	NewEdgeInfo(nil, "", nil, nil)
}

func TestCompleteEdgeBasic(t *testing.T) {
	e := Simple("fr", "eau").SetRelation("TranslationOf")
	edge := e.CompleteEdge("translation_section", "en", "water", nil)

	if edge.RelationURI != "/r/TranslationOf" {
		t.Errorf("RelationURI = %q", edge.RelationURI)
	}
	if edge.StartURI != "/c/en/water" {
		t.Errorf("StartURI = %q", edge.StartURI)
	}
	if edge.EndURI != "/c/fr/eau" {
		t.Errorf("EndURI = %q", edge.EndURI)
	}
	if edge.Dataset != "/d/wiktionary/en/en" {
		t.Errorf("Dataset = %q", edge.Dataset)
	}
	found := false
	for _, s := range edge.Sources {
		if strings.Contains(s, "translation_section") {
			found = true
		}
	}
	if !found {
		t.Errorf("Sources should contain a rule source, got %v", edge.Sources)
	}
}

func TestCompleteEdgeInversion(t *testing.T) {
	e := Simple("en", "poodle").SetRelation("~IsA")
	edge := e.CompleteEdge("link_section", "en", "dog", nil)

	if edge.RelationURI != "/r/IsA" {
		t.Errorf("RelationURI = %q, want /r/IsA", edge.RelationURI)
	}
	if edge.StartURI != "/c/en/poodle" || edge.EndURI != "/c/en/dog" {
		t.Errorf("inversion should swap endpoints, got start=%q end=%q", edge.StartURI, edge.EndURI)
	}
}

func TestCompleteEdgeDropsSenseWithoutPOS(t *testing.T) {
	sense := "1"
	e := Simple("fr", "eau").SetSense(&sense)
	edge := e.CompleteEdge("translation_section", "en", "water", nil)

	if edge.StartURI != "/c/en/water" {
		t.Errorf("sense should be dropped when headPos is nil, got %q", edge.StartURI)
	}
}

func TestCompleteEdgeKeepsSenseWithPOS(t *testing.T) {
	sense := "1"
	pos := "n"
	e := Simple("fr", "eau").SetSense(&sense)
	edge := e.CompleteEdge("translation_section", "en", "water", &pos)

	if edge.StartURI != "/c/en/water/n/1" {
		t.Errorf("StartURI = %q, want /c/en/water/n/1", edge.StartURI)
	}
}

func TestJoinText(t *testing.T) {
	items := []AstValue{
		Text("hello "),
		Linked(LinkedText{Text: "world", Links: []EdgeInfo{Simple("en", "world")}}),
		Args(nil),
	}
	got := JoinText(items)
	if got.Text != "hello world" {
		t.Errorf("Text = %q, want %q", got.Text, "hello world")
	}
	if len(got.Links) != 1 || got.Links[0].Target != "world" {
		t.Errorf("Links = %+v", got.Links)
	}
}

func TestJoinTextSingleRoundTrip(t *testing.T) {
	lt := LinkedText{Text: "mammal", Links: []EdgeInfo{Simple("en", "mammal")}}
	got := JoinText([]AstValue{Linked(lt)})
	if got.Text != lt.Text || len(got.Links) != len(lt.Links) {
		t.Errorf("JoinText([lt]) = %+v, want %+v", got, lt)
	}
}
