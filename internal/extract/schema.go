package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/steuertools/invoice-extractor/constants"
	"github.com/steuertools/invoice-extractor/internal/entity"
)

// BuildRecordJSONSchema returns the JSON-Schema (draft 2020-12 subset) that
// every finalized record must satisfy before it reaches the ledger. The
// ledger is user-editable, so the shapes here double as the workbook's
// contract: German date format, two-decimal amounts, the fixed status
// vocabulary.
func BuildRecordJSONSchema() map[string]any {
	statuses := make([]string, len(constants.AllStatuses))
	for i, s := range constants.AllStatuses {
		statuses[i] = string(s)
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"filename":       map[string]any{"type": "string", "minLength": 1},
			"date":           map[string]any{"type": "string", "pattern": `^\d{2}\.\d{2}\.\d{4}$`},
			"vendor":         map[string]any{"type": "string"},
			"invoice_number": map[string]any{"type": "string"},
			"net":            decimalProp(),
			"vat_rate":       map[string]any{"type": "string", "pattern": `^\d{1,2}%$`},
			"vat_amount":     decimalProp(),
			"gross":          decimalProp(),
			"category":       map[string]any{"type": "string"},
			"status":         map[string]any{"type": "string", "enum": statuses},
			"notes":          map[string]any{"type": "string"},
		},
		"required": []string{"filename", "status"},
	}
}

func decimalProp() map[string]any {
	return map[string]any{"type": "string", "pattern": `^\d+\.\d{2}$`}
}

// RecordJSON renders a result in the persisted shape: only present fields,
// amounts with two decimals, the date in DD.MM.YYYY.
func RecordJSON(r entity.ExtractionResult) ([]byte, error) {
	m := map[string]any{
		"filename": r.Filename,
		"status":   string(r.Status),
		"vendor":   r.DisplayVendor(),
		"notes":    r.Notes,
	}
	if r.InvoiceNumber != "" {
		m["invoice_number"] = r.InvoiceNumber
	}
	if r.Date != nil {
		m["date"] = r.Date.Format("02.01.2006")
	}
	if r.Net != nil {
		m["net"] = r.Net.StringFixed(2)
	}
	if r.VATRate != nil {
		m["vat_rate"] = r.VATRate.String() + "%"
	}
	if r.VATAmount != nil {
		m["vat_amount"] = r.VATAmount.StringFixed(2)
	}
	if r.Gross != nil {
		m["gross"] = r.Gross.StringFixed(2)
	}
	if r.Category != "" {
		m["category"] = r.Category
	}
	return json.Marshal(m)
}

// ValidateResult checks a finalized record against the schema. A failure here
// is a programming error in the matchers, not bad input.
func ValidateResult(r entity.ExtractionResult) error {
	data, err := RecordJSON(r)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	b, err := json.Marshal(BuildRecordJSONSchema())
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("record.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("record.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal record: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
