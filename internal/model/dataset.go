package model

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/Veraticus/securebank-console/internal/common"
)

// Dataset parameter keys, in display order.
const (
	FieldVersion         = "version"
	FieldNumCustomers    = "num_customers"
	FieldNumTransactions = "num_transactions"
	FieldFraudRatio      = "fraud_ratio"
)

// DatasetFields lists every DatasetParams key in display order.
var DatasetFields = []string{
	FieldVersion,
	FieldNumCustomers,
	FieldNumTransactions,
	FieldFraudRatio,
}

// jsonNumber matches a JSON number literal.
var jsonNumber = regexp.MustCompile(`^-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?$`)

// DatasetParams holds the synthetic dataset generation parameters as the operator typed them.
// Version doubles as the console's active dataset version.
type DatasetParams struct {
	Version         string
	NumCustomers    string
	NumTransactions string
	FraudRatio      string
}

// DefaultDatasetParams returns the parameters a fresh console starts with.
func DefaultDatasetParams() DatasetParams {
	return DatasetParams{
		NumCustomers:    "100",
		NumTransactions: "1000",
		FraudRatio:      "0.01",
	}
}

// Get returns the value stored under key.
func (p DatasetParams) Get(key string) (string, error) {
	f, err := p.field(key)
	if err != nil {
		return "", err
	}
	return *f, nil
}

// Set stores value under key.
func (p *DatasetParams) Set(key, value string) error {
	f, err := p.field(key)
	if err != nil {
		return err
	}
	*f = value
	return nil
}

func (p *DatasetParams) field(key string) (*string, error) {
	switch key {
	case FieldVersion:
		return &p.Version, nil
	case FieldNumCustomers:
		return &p.NumCustomers, nil
	case FieldNumTransactions:
		return &p.NumTransactions, nil
	case FieldFraudRatio:
		return &p.FraudRatio, nil
	default:
		return nil, fmt.Errorf("dataset field %q: %w", key, common.ErrUnknownField)
	}
}

// MarshalJSON emits the numeric parameters as JSON numbers when the text is a number literal
// and as the raw string otherwise. Nothing is range checked.
func (p DatasetParams) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Version         string          `json:"version"`
		NumCustomers    json.RawMessage `json:"num_customers"`
		NumTransactions json.RawMessage `json:"num_transactions"`
		FraudRatio      json.RawMessage `json:"fraud_ratio"`
	}{
		Version:         p.Version,
		NumCustomers:    numericOrString(p.NumCustomers),
		NumTransactions: numericOrString(p.NumTransactions),
		FraudRatio:      numericOrString(p.FraudRatio),
	})
}

func numericOrString(text string) json.RawMessage {
	if jsonNumber.MatchString(text) {
		return json.RawMessage(text)
	}
	quoted, _ := json.Marshal(text)
	return quoted
}

// DatasetSummary is one entry of the backend's dataset listing. The console does not
// interpret its shape.
type DatasetSummary json.RawMessage

// MarshalJSON returns the record unchanged.
func (d DatasetSummary) MarshalJSON() ([]byte, error) {
	if len(d) == 0 {
		return []byte("null"), nil
	}
	return d, nil
}

// UnmarshalJSON keeps a copy of the raw record.
func (d *DatasetSummary) UnmarshalJSON(data []byte) error {
	*d = append((*d)[:0], data...)
	return nil
}

// String renders the record for listing: bare strings unquoted, anything else as compact JSON.
func (d DatasetSummary) String() string {
	var s string
	if err := json.Unmarshal(d, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(d))
}

// Version extracts a dataset version from the record: the record itself when it is a
// string, or its "version" member when it is an object.
func (d DatasetSummary) Version() (string, bool) {
	var s string
	if err := json.Unmarshal(d, &s); err == nil {
		return s, true
	}
	var obj struct {
		Version *string `json:"version"`
	}
	if err := json.Unmarshal(d, &obj); err == nil && obj.Version != nil {
		return *obj.Version, true
	}
	return "", false
}
