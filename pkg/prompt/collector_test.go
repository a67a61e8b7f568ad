package prompt_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/esnalabu/opencast/pkg/listprovider"
	"github.com/esnalabu/opencast/pkg/metadata"
	"github.com/esnalabu/opencast/pkg/prompt"
)

// fakeDriver replays scripted answers and records the prompts it served.
type fakeDriver struct {
	inputs       []string
	confirms     []bool
	selections   []int
	multiPicks   [][]int
	textAreas    []string
	promptedWith []string
}

func (d *fakeDriver) Input(_ context.Context, cfg prompt.InputConfig) (string, error) {
	d.promptedWith = append(d.promptedWith, "input:"+cfg.Message)
	out := d.inputs[0]
	d.inputs = d.inputs[1:]
	return out, nil
}

func (d *fakeDriver) Confirm(_ context.Context, cfg prompt.ConfirmConfig) (bool, error) {
	d.promptedWith = append(d.promptedWith, "confirm:"+cfg.Message)
	out := d.confirms[0]
	d.confirms = d.confirms[1:]
	return out, nil
}

func (d *fakeDriver) Select(_ context.Context, cfg prompt.SelectConfig) (int, error) {
	d.promptedWith = append(d.promptedWith, "select:"+cfg.Message)
	out := d.selections[0]
	d.selections = d.selections[1:]
	return out, nil
}

func (d *fakeDriver) MultiSelect(_ context.Context, cfg prompt.SelectConfig) ([]int, error) {
	d.promptedWith = append(d.promptedWith, "multiselect:"+cfg.Message)
	out := d.multiPicks[0]
	d.multiPicks = d.multiPicks[1:]
	return out, nil
}

func (d *fakeDriver) TextArea(_ context.Context, cfg prompt.TextAreaConfig) (string, error) {
	d.promptedWith = append(d.promptedWith, "textarea:"+cfg.Message)
	out := d.textAreas[0]
	d.textAreas = d.textAreas[1:]
	return out, nil
}

func TestCollectDispatchesPerType(t *testing.T) {
	registry := listprovider.NewRegistry()
	if err := registry.Register("LANGUAGES", listprovider.StaticProvider{
		Options: map[string]string{"eng": "English", "ger": "German"},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	language := metadata.NewTextField("language")
	language.ListProvider = "LANGUAGES"
	language.Label = "Language"

	templates := []*metadata.Field{
		metadata.NewTextField("title"),
		metadata.NewBooleanField("live"),
		language,
		metadata.NewTextLongField("description"),
		metadata.NewIterableTextField("subjects", ","),
	}

	driver := &fakeDriver{
		inputs:    []string{"A Talk", "math,physics"},
		confirms:  []bool{true},
		textAreas: []string{"Long text"},
		// English sorts before German; index 0 picks key "eng".
		selections: []int{0},
	}

	values, err := prompt.NewCollector(driver, registry).Collect(context.Background(), templates)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}

	want := map[string][]string{
		"title":       {"A Talk"},
		"live":        {"true"},
		"language":    {"eng"},
		"description": {"Long text"},
		"subjects":    {"math", "physics"},
	}
	if diff := cmp.Diff(want, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	wantPrompts := []string{
		"input:title",
		"confirm:live",
		"select:Language",
		"textarea:description",
		"input:subjects",
	}
	if diff := cmp.Diff(wantPrompts, driver.promptedWith); diff != "" {
		t.Fatalf("prompt sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectSkipsReadOnlyAndBlank(t *testing.T) {
	readOnly := metadata.NewTextField("identifier")
	readOnly.ReadOnly = true

	driver := &fakeDriver{inputs: []string{"   "}}
	values, err := prompt.NewCollector(driver, nil).Collect(context.Background(), []*metadata.Field{
		readOnly,
		metadata.NewTextField("title"),
	})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if len(values) != 0 {
		t.Fatalf("values = %v, want none", values)
	}
	if diff := cmp.Diff([]string{"input:title"}, driver.promptedWith); diff != "" {
		t.Fatalf("prompt sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectMultiSelectFromVocabulary(t *testing.T) {
	registry := listprovider.NewRegistry()
	if err := registry.Register("SUBJECTS", listprovider.StaticProvider{
		Options: map[string]string{"m": "Mathematics", "p": "Physics"},
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	subjects := metadata.NewMixedTextField("subjects", ",")
	subjects.ListProvider = "SUBJECTS"

	driver := &fakeDriver{multiPicks: [][]int{{0, 1}}}
	values, err := prompt.NewCollector(driver, registry).Collect(context.Background(), []*metadata.Field{subjects})
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if diff := cmp.Diff(map[string][]string{"subjects": {"m", "p"}}, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
}
