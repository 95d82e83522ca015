package tui

import (
	"testing"

	"github.com/theirongolddev/gizi/internal/config"
	"github.com/theirongolddev/gizi/internal/presets"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"130", 130, false},
		{" 2.7 ", 2.7, false},
		{"0,3", 0.3, false},
		{"0", 0, false},
		{"", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-infinity", 0, true},
		{"1e400", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAmount(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParsePortion("0"); err == nil {
		t.Error("ParsePortion(0) should fail")
	}
}

func TestFoodInputParse(t *testing.T) {
	in := FoodInput{Name: "  Apple ", Portion: "150", Calories: "52", Protein: "0.3", Carbs: "14", Fat: "0.2"}
	name, portion, per100, err := in.Parse()
	if err != nil {
		t.Fatal(err)
	}
	if name != "Apple" || portion != 150 || per100.Calories != 52 || per100.Carbs != 14 {
		t.Errorf("Parse() = %q, %v, %+v", name, portion, per100)
	}

	bad := []FoodInput{
		{Name: "", Portion: "150", Calories: "1", Protein: "1", Carbs: "1", Fat: "1"},
		{Name: "X", Portion: "0", Calories: "1", Protein: "1", Carbs: "1", Fat: "1"},
		{Name: "X", Portion: "100", Calories: "-5", Protein: "1", Carbs: "1", Fat: "1"},
		{Name: "X", Portion: "100", Calories: "1", Protein: "lots", Carbs: "1", Fat: "1"},
		{Name: "X", Portion: "100", Calories: "NaN", Protein: "1", Carbs: "1", Fat: "1"},
		{Name: "X", Portion: "Inf", Calories: "1", Protein: "1", Carbs: "1", Fat: "1"},
	}
	for _, b := range bad {
		if _, _, _, err := b.Parse(); err == nil {
			t.Errorf("Parse(%+v) should fail", b)
		}
	}
}

func TestPresetInputParse(t *testing.T) {
	set := presets.Builtin()

	p, portion, err := PresetInput{Slug: "rice"}.Parse(set)
	if err != nil || p.Slug != "rice" || portion != 0 {
		t.Errorf("Parse(rice) = %+v, %v, %v", p, portion, err)
	}

	_, portion, err = PresetInput{Slug: "rice", Portion: "200"}.Parse(set)
	if err != nil || portion != 200 {
		t.Errorf("Parse(rice, 200) = %v, %v", portion, err)
	}

	if _, _, err := (PresetInput{Slug: "pizza"}).Parse(set); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestSetupInputApply(t *testing.T) {
	cfg := config.DefaultConfig()
	in := NewSetupInput(cfg)
	if in.Calories != "2000" || in.Theme != "flexoki-dark" {
		t.Fatalf("seeded input = %+v", in)
	}

	in.Protein = "120"
	in.Theme = "terminal"
	if err := in.Apply(&cfg); err != nil {
		t.Fatal(err)
	}
	if cfg.Targets.Protein != 120 || cfg.Appearance.Theme != "terminal" {
		t.Errorf("applied config = %+v", cfg)
	}

	in.Fat = "-3"
	if err := in.Apply(&cfg); err == nil {
		t.Error("negative target should fail")
	}
}
