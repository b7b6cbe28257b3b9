package app

import "testing"

func TestRequestSchemas_CoversAllMutations(t *testing.T) {
	schemas := buildRequestSchemas()

	procedures := []string{
		"createCustomer",
		"updateCustomer",
		"createProduct",
		"updateProduct",
		"createStockMovement",
		"createService",
		"updateService",
		"createTransaction",
		"createTransactionItem",
		"createUser",
		"getFinancialReport",
	}
	for _, name := range procedures {
		schema, ok := schemas[name]
		if !ok {
			t.Errorf("Missing schema for %s", name)
			continue
		}
		if schema == nil || schema.Properties == nil || schema.Properties.Len() == 0 {
			t.Errorf("Schema for %s has no properties", name)
		}
	}
	if len(schemas) != len(procedures) {
		t.Errorf("Expected %d schemas, got %d", len(procedures), len(schemas))
	}
}

func TestRequestSchemas_FieldNamesFollowJSONTags(t *testing.T) {
	schemas := buildRequestSchemas()

	product := schemas["createProduct"]
	for _, field := range []string{"name", "type", "price", "stock_quantity", "minimum_stock"} {
		if _, ok := product.Properties.Get(field); !ok {
			t.Errorf("createProduct schema missing %q property", field)
		}
	}
	if _, ok := product.Properties.Get("Name"); ok {
		t.Error("Schema must use JSON tag names, not Go field names")
	}
}
