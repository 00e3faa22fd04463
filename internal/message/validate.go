package message

import (
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
)

// Settlement payload schemas. Inbound settlement data is validated before a
// pending request is settled; invalid payloads are ignored by the caller
// instead of corrupting a future's outcome.
var settlementSchemas = map[string]*jsonschema.Schema{
	KindHideConfirmationModal: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"confirmed": {Type: "boolean"},
		},
	},
	KindHideAlert: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"id":         {Type: "string"},
			"dismissKey": {Type: "string"},
		},
		Required: []string{"id"},
	},
	KindLocaleChanged: {
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"currentLocale": {Type: "string"},
		},
		Required: []string{"currentLocale"},
	},
}

var resolvedSchemas = resolveSettlementSchemas()

func resolveSettlementSchemas() map[string]*jsonschema.Resolved {
	resolved := make(map[string]*jsonschema.Resolved, len(settlementSchemas))

	for kind, schema := range settlementSchemas {
		rs, err := schema.Resolve(nil)
		if err != nil {
			// Schemas are static; a resolve failure is a programming error.
			panic(fmt.Sprintf("resolve schema for %s: %v", kind, err))
		}

		resolved[kind] = rs
	}

	return resolved
}

// ValidateSettlement checks an inbound settlement payload against the schema
// for its message kind. Kinds without a registered schema pass validation.
func ValidateSettlement(kind string, data map[string]any) error {
	rs, ok := resolvedSchemas[kind]
	if !ok {
		return nil
	}

	if data == nil {
		data = map[string]any{}
	}

	if err := rs.Validate(data); err != nil {
		return fmt.Errorf("settlement payload for %s: %w", kind, err)
	}

	return nil
}
