package gql

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"

	"github.com/teamreg/backend/internal/apperr"
)

// decodeInput converts a GraphQL argument map into a typed input struct.
// DateTime scalars arrive already parsed, so no string-to-time hooks are
// needed.
func decodeInput(arg interface{}, out interface{}) error {
	raw, ok := arg.(map[string]interface{})
	if !ok {
		return apperr.Validation(fmt.Sprintf("expected an input object, got %T", arg))
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  out,
		TagName: "mapstructure",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return apperr.Validation(err.Error())
	}
	return nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func boolArg(args map[string]interface{}, name string) bool {
	b, _ := args[name].(bool)
	return b
}

func intArg(args map[string]interface{}, name string) int {
	i, _ := args[name].(int)
	return i
}
