package prompt

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/esnalabu/opencast/pkg/listprovider"
	"github.com/esnalabu/opencast/pkg/metadata"
)

// Collector walks field templates and prompts for their raw values.
type Collector struct {
	driver    Driver
	providers listprovider.Service
}

// NewCollector builds a collector. A nil driver falls back to the survey
// terminal driver; providers may be nil.
func NewCollector(driver Driver, providers listprovider.Service) *Collector {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Collector{driver: driver, providers: providers}
}

// Collect prompts for every writable template in order and returns the raw
// string values keyed by field input id. Read-only fields are skipped.
// Blank answers yield no entry, leaving the materializer free to apply
// provider defaults.
func (c *Collector) Collect(ctx context.Context, templates []*metadata.Field) (map[string][]string, error) {
	values := make(map[string][]string)
	for _, template := range templates {
		if template == nil || template.ReadOnly {
			continue
		}
		raw, err := c.collectField(ctx, template)
		if err != nil {
			return nil, fmt.Errorf("prompt: field %q: %w", template.InputID, err)
		}
		raw = trimBlank(raw)
		if len(raw) > 0 {
			values[template.InputID] = raw
		}
	}
	return values, nil
}

func (c *Collector) collectField(ctx context.Context, template *metadata.Field) ([]string, error) {
	message := template.Label
	if message == "" {
		message = template.InputID
	}

	keys, labels := c.resolveOptions(template)

	switch {
	case template.Type == metadata.FieldTypeBoolean:
		answer, err := c.driver.Confirm(ctx, ConfirmConfig{Message: message})
		if err != nil {
			return nil, err
		}
		return []string{fmt.Sprintf("%t", answer)}, nil

	case template.Type.MultiValued() && len(keys) > 0:
		picked, err := c.driver.MultiSelect(ctx, SelectConfig{Message: message, Options: labels})
		if err != nil {
			return nil, err
		}
		out := make([]string, 0, len(picked))
		for _, idx := range picked {
			out = append(out, keys[idx])
		}
		return out, nil

	case len(keys) > 0:
		idx, err := c.driver.Select(ctx, SelectConfig{Message: message, Options: labels, DefaultIndex: -1})
		if err != nil {
			return nil, err
		}
		if idx < 0 {
			return nil, nil
		}
		return []string{keys[idx]}, nil

	case template.Type == metadata.FieldTypeTextLong:
		answer, err := c.driver.TextArea(ctx, TextAreaConfig{Message: message})
		if err != nil {
			return nil, err
		}
		return []string{answer}, nil

	default:
		help := inputHelp(template)
		answer, err := c.driver.Input(ctx, InputConfig{Message: message, Help: help})
		if err != nil {
			return nil, err
		}
		if template.Type.MultiValued() && template.Delimiter != "" {
			return strings.Split(answer, template.Delimiter), nil
		}
		return []string{answer}, nil
	}
}

// resolveOptions fetches the template's vocabulary, returning parallel key
// and label slices sorted by label. Lookup failures degrade to free input.
func (c *Collector) resolveOptions(template *metadata.Field) ([]string, []string) {
	if c.providers == nil || template.ListProvider == "" {
		return nil, nil
	}
	options, err := c.providers.GetList(template.ListProvider, listprovider.Query{}, true)
	if err != nil {
		logger.Verbose(fmt.Sprintf("prompt: field %q: options unavailable from %q: %v",
			template.InputID, template.ListProvider, err))
		return nil, nil
	}
	if len(options) == 0 {
		return nil, nil
	}
	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool { return options[keys[i]] < options[keys[j]] })
	labels := make([]string, len(keys))
	for i, key := range keys {
		labels[i] = options[key]
	}
	return keys, labels
}

func inputHelp(template *metadata.Field) string {
	switch template.Type {
	case metadata.FieldTypeDate:
		return "W3C-DTF timestamp, e.g. 2014-06-05T09:15:56.000Z"
	case metadata.FieldTypeStartDate:
		pattern := template.Pattern
		if pattern == "" {
			pattern = metadata.DefaultDatePattern
		}
		return "start date in layout " + pattern
	case metadata.FieldTypeDuration:
		return "H:M:S, a period, or milliseconds"
	case metadata.FieldTypeLong:
		return "base-10 integer"
	case metadata.FieldTypeIterableText, metadata.FieldTypeMixedText:
		if template.Delimiter != "" {
			return "multiple values separated by " + strconv.Quote(template.Delimiter)
		}
	}
	return ""
}

func trimBlank(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}
