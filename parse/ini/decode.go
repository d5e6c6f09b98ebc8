package ini

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode copies the keys of section into out, which must be a pointer to a
// struct or a map. Fields are matched by their `ini` tag or, failing that,
// by name ignoring case. Values are converted with weak typing, so "8080"
// fills an int field and "1" a bool field.
func (d *Document) Decode(section string, out any) error {
	i, err := d.sectionIndex(section)
	if err != nil {
		return err
	}

	s := &d.sections[i]
	input := make(map[string]any, s.Len())
	for _, r := range s.Ranges {
		for k := r.Start; k < r.End; k++ {
			input[d.text(d.keyNames[k])] = d.text(d.keyValues[k])
		}
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
		Result: out,
	})
	if err != nil {
		return fmt.Errorf("ini: decode section '%s': %w", section, err)
	}
	if err := dec.Decode(input); err != nil {
		return d.fail(KindConversion, err, "decode section '%s': %v", section, err)
	}

	d.clearError()
	return nil
}
