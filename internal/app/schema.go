package app

import "github.com/invopop/jsonschema"

// buildRequestSchemas reflects a JSON Schema for every mutation request type.
// The map key is the procedure name as it appears on the RPC route table.
func buildRequestSchemas() map[string]*jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	return map[string]*jsonschema.Schema{
		"createCustomer":        r.Reflect(&CreateCustomerRequest{}),
		"updateCustomer":        r.Reflect(&UpdateCustomerRequest{}),
		"createProduct":         r.Reflect(&CreateProductRequest{}),
		"updateProduct":         r.Reflect(&UpdateProductRequest{}),
		"createStockMovement":   r.Reflect(&CreateStockMovementRequest{}),
		"createService":         r.Reflect(&CreateServiceRequest{}),
		"updateService":         r.Reflect(&UpdateServiceRequest{}),
		"createTransaction":     r.Reflect(&CreateTransactionRequest{}),
		"createTransactionItem": r.Reflect(&CreateTransactionItemRequest{}),
		"createUser":            r.Reflect(&CreateUserRequest{}),
		"getFinancialReport":    r.Reflect(&FinancialReportRequest{}),
	}
}
