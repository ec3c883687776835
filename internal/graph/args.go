package graph

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// decodeInput copies a GraphQL input object into a typed struct using its
// mapstructure tags.
func decodeInput(raw any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

func int64Arg(args map[string]any, name string) int64 {
	v, _ := args[name].(int)
	return int64(v)
}

func intArg(args map[string]any, name string, def int) int {
	if v, ok := args[name].(int); ok {
		return v
	}
	return def
}

func optionalInt64Arg(args map[string]any, name string) *int64 {
	v, ok := args[name].(int)
	if !ok {
		return nil
	}
	out := int64(v)
	return &out
}

func optionalStringArg(args map[string]any, name string) *string {
	v, ok := args[name].(string)
	if !ok {
		return nil
	}
	return &v
}

func stringArg(args map[string]any, name string) string {
	v, _ := args[name].(string)
	return v
}

func boolArg(args map[string]any, name string) bool {
	v, _ := args[name].(bool)
	return v
}
