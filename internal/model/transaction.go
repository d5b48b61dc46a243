// Package model defines the core domain models used throughout the application.
package model

import (
	"fmt"

	"github.com/Veraticus/securebank-console/internal/common"
)

// Transaction field keys, in the order the console renders them.
const (
	FieldTransDateTransTime = "trans_date_trans_time"
	FieldCCNum              = "cc_num"
	FieldUnixTime           = "unix_time"
	FieldMerchant           = "merchant"
	FieldCategory           = "category"
	FieldAmount             = "amt"
	FieldMerchLat           = "merch_lat"
	FieldMerchLong          = "merch_long"
)

// TransactionFields lists every TransactionInput key in display order.
var TransactionFields = []string{
	FieldTransDateTransTime,
	FieldCCNum,
	FieldUnixTime,
	FieldMerchant,
	FieldCategory,
	FieldAmount,
	FieldMerchLat,
	FieldMerchLong,
}

// TransactionInput is a transaction record submitted for scoring.
// Every field is free text and is sent exactly as typed.
type TransactionInput struct {
	TransDateTransTime string `json:"trans_date_trans_time"`
	CCNum              string `json:"cc_num"`
	UnixTime           string `json:"unix_time"`
	Merchant           string `json:"merchant"`
	Category           string `json:"category"`
	Amount             string `json:"amt"`
	MerchLat           string `json:"merch_lat"`
	MerchLong          string `json:"merch_long"`
}

// Get returns the value stored under key.
func (t TransactionInput) Get(key string) (string, error) {
	p, err := t.field(key)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// Set stores value under key. Unknown keys are rejected so the field set never changes.
func (t *TransactionInput) Set(key, value string) error {
	p, err := t.field(key)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

func (t *TransactionInput) field(key string) (*string, error) {
	switch key {
	case FieldTransDateTransTime:
		return &t.TransDateTransTime, nil
	case FieldCCNum:
		return &t.CCNum, nil
	case FieldUnixTime:
		return &t.UnixTime, nil
	case FieldMerchant:
		return &t.Merchant, nil
	case FieldCategory:
		return &t.Category, nil
	case FieldAmount:
		return &t.Amount, nil
	case FieldMerchLat:
		return &t.MerchLat, nil
	case FieldMerchLong:
		return &t.MerchLong, nil
	default:
		return nil, fmt.Errorf("transaction field %q: %w", key, common.ErrUnknownField)
	}
}
