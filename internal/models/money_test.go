package models

import (
	"encoding/json"
	"testing"
)

func TestMoneyUnmarshalString(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"50.005"`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.String() != "50.01" {
		t.Fatalf("expected 50.01, got %s", m.String())
	}
}

func TestMoneyUnmarshalNumber(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`199.9`), &m); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if m.String() != "199.90" {
		t.Fatalf("expected 199.90, got %s", m.String())
	}
}

func TestMoneyMarshalFixedTwoDecimals(t *testing.T) {
	m, err := NewMoneyFromString("7")
	if err != nil {
		t.Fatalf("new money: %v", err)
	}
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"7.00"` {
		t.Fatalf("expected \"7.00\", got %s", data)
	}
}

func TestCartItemLineTotal(t *testing.T) {
	price, _ := NewMoneyFromString("49.99")
	item := CartItem{ProductID: "p1", UnitPrice: price, Quantity: 3}
	if got := item.LineTotal().String(); got != "149.97" {
		t.Fatalf("expected 149.97, got %s", got)
	}
}
