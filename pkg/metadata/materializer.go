package metadata

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/esnalabu/opencast/pkg/dublincore"
	"github.com/esnalabu/opencast/pkg/listprovider"
)

// ErrUnsupportedType signals a field type outside the closed set. It marks a
// schema or programming error, not bad input data.
var ErrUnsupportedType = errors.New("metadata: unsupported field type")

// Materializer builds fully populated fields from templates and raw string
// values and appends them to a target collection.
//
// List provider lookups are best effort: a failed default, translatable or
// option-list lookup is logged and the field proceeds without that
// attribute. Malformed values for long fields are the one data error that
// aborts the call; duration and boolean coercion never fail.
type Materializer struct {
	collection *Collection
}

// NewMaterializer targets the given collection, allocating one if nil.
func NewMaterializer(collection *Collection) *Materializer {
	if collection == nil {
		collection = NewCollection()
	}
	return &Materializer{collection: collection}
}

// Collection returns the target collection.
func (m *Materializer) Collection() *Collection {
	return m.collection
}

// AddEmptyField materializes the template with no raw values. The resulting
// field may still receive a value through the provider default.
func (m *Materializer) AddEmptyField(template *Field, providers listprovider.Service) error {
	return m.AddField(template, nil, providers)
}

// AddFieldValue materializes the template from a single raw value.
func (m *Materializer) AddFieldValue(template *Field, value string, providers listprovider.Service) error {
	return m.AddField(template, []string{value}, providers)
}

// AddField materializes the template from raw string values and appends the
// resulting field to the collection. The template and the values slice are
// never modified. providers may be nil.
func (m *Materializer) AddField(template *Field, values []string, providers listprovider.Service) error {
	if template == nil {
		return errors.New("metadata: nil field template")
	}
	if !template.Type.Valid() {
		return fmt.Errorf("%w: %q (field %q)", ErrUnsupportedType, template.Type, template.InputID)
	}

	filtered := filterBlank(values)

	if def := m.providerDefault(template, providers); def != "" && len(filtered) == 0 {
		filtered = []string{def}
	}

	kept, truncated := TruncateSingleValued(template.Type, filtered)
	if truncated {
		logger.Warning(fmt.Sprintf(
			"metadata: field %q holds a single value, keeping only the last of %v",
			template.InputID, filtered))
	}
	filtered = kept

	out := template.copyDescriptor()
	switch out.Type {
	case FieldTypeDate, FieldTypeStartDate:
		if out.Pattern == "" {
			out.Pattern = DefaultDatePattern
		}
	}
	m.enrich(out, providers)

	if len(filtered) > 0 {
		if err := coerceValue(out, filtered); err != nil {
			return err
		}
	}

	m.collection.Add(out)
	return nil
}

// coerceValue assigns the filtered raw values to the output field according
// to its type. filtered is non-empty.
func coerceValue(out *Field, filtered []string) error {
	last := filtered[len(filtered)-1]

	switch out.Type {
	case FieldTypeBoolean:
		out.Value = BoolValue(strings.EqualFold(last, "true"))

	case FieldTypeDate:
		t, err := dublincore.DecodeDate(last)
		if err != nil {
			logger.Verbose(fmt.Sprintf("metadata: field %q: undecodable date %q", out.InputID, last))
			return nil
		}
		out.Value = DateValue{t}

	case FieldTypeStartDate:
		out.Value = StringValue(last)

	case FieldTypeDuration:
		millis, ok := parseDurationMillis(last)
		if !ok || millis <= 0 {
			logger.Verbose(fmt.Sprintf(
				"metadata: field %q: %q is neither an H:M:S duration, a period nor a millisecond count",
				out.InputID, last))
			return nil
		}
		out.Value = MillisValue(millis)

	case FieldTypeIterableText, FieldTypeMixedText:
		out.Value = StringListValue(filtered)

	case FieldTypeLong:
		n, err := strconv.ParseInt(last, 10, 64)
		if err != nil {
			return fmt.Errorf("metadata: field %q: parse long value: %w", out.InputID, err)
		}
		out.Value = LongValue(n)

	case FieldTypeText, FieldTypeTextLong, FieldTypeOrderedText:
		out.Value = StringValue(last)

	default:
		return fmt.Errorf("%w: %q (field %q)", ErrUnsupportedType, out.Type, out.InputID)
	}
	return nil
}

// providerDefault resolves the template's default value from its list
// provider. Lookup failures are swallowed; the field simply has no default.
func (m *Materializer) providerDefault(template *Field, providers listprovider.Service) string {
	if providers == nil || template.ListProvider == "" {
		return ""
	}
	def, err := providers.GetDefault(template.ListProvider)
	if err != nil {
		logger.Verbose(fmt.Sprintf("metadata: field %q: no default from list provider %q: %v",
			template.InputID, template.ListProvider, err))
		return ""
	}
	return strings.TrimSpace(def)
}

// enrich populates the translatable flag and option set from the field's
// list provider. Each lookup fails independently and independently degrades
// to "absent".
func (m *Materializer) enrich(out *Field, providers listprovider.Service) {
	if providers == nil || out.ListProvider == "" {
		return
	}

	if translatable, err := providers.IsTranslatable(out.ListProvider); err != nil {
		logger.Verbose(fmt.Sprintf("metadata: field %q: translatable flag unavailable for list provider %q: %v",
			out.InputID, out.ListProvider, err))
	} else {
		out.Translatable = &translatable
	}

	if options, err := providers.GetList(out.ListProvider, listprovider.Query{}, true); err != nil {
		logger.Warning(fmt.Sprintf("metadata: field %q: option list unavailable for list provider %q: %v",
			out.InputID, out.ListProvider, err))
	} else if options != nil {
		out.Options = options
	}
}
