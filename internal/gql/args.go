package gql

import "github.com/graphql-go/graphql"

func idArg() graphql.FieldConfigArgument {
	return graphql.FieldConfigArgument{
		"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
	}
}

func idAnd(extra graphql.FieldConfigArgument) graphql.FieldConfigArgument {
	args := idArg()
	for name, cfg := range extra {
		args[name] = cfg
	}
	return args
}

// filterArg reads an optional filter argument as a plain map; missing or
// mistyped filters read as empty.
func filterArg(args map[string]interface{}) map[string]interface{} {
	m, _ := args["filter"].(map[string]interface{})
	return m
}

func optBool(m map[string]interface{}, name string) *bool {
	if v, ok := m[name].(bool); ok {
		return &v
	}
	return nil
}

func optString(m map[string]interface{}, name string) *string {
	if v, ok := m[name].(string); ok {
		return &v
	}
	return nil
}

func stringList(m map[string]interface{}, name string) []string {
	raw, ok := m[name].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
