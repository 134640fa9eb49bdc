package service

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestParseVendorContacts_SingleValidRow(t *testing.T) {
	payload := "Name,Business Name,Email\nJane Doe,Acme,jane@acme.com"

	contacts, err := parseVendorContacts(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(contacts) != 1 {
		t.Fatalf("expected 1 contact, got %d", len(contacts))
	}

	c := contacts[0]
	if c.Name != "Jane Doe" || c.BusinessName != "Acme" || c.Email != "jane@acme.com" {
		t.Errorf("unexpected contact fields: %+v", c)
	}
	if c.Id == uuid.Nil {
		t.Error("expected a freshly assigned id")
	}
}

func TestParseVendorContacts_HeaderWithoutRequiredColumns(t *testing.T) {
	_, err := parseVendorContacts("Foo,Bar\nsomething,else")
	if !errors.Is(err, ErrMalformedHeader) {
		t.Errorf("expected ErrMalformedHeader, got %v", err)
	}
}

func TestParseVendorContacts_EmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "\n\n  \n"} {
		_, err := parseVendorContacts(payload)
		if !errors.Is(err, ErrEmptyImportPayload) {
			t.Errorf("payload %q: expected ErrEmptyImportPayload, got %v", payload, err)
		}
	}
}

func TestParseVendorContacts_AllRowsInvalid(t *testing.T) {
	payload := "Name,Business Name,Email\n,Acme,jane@acme.com\nJane,,jane@acme.com\nJane,Acme,"

	_, err := parseVendorContacts(payload)
	if !errors.Is(err, ErrNoValidContacts) {
		t.Errorf("expected ErrNoValidContacts, got %v", err)
	}
}

func TestParseVendorContacts_InvalidRowsDroppedSilently(t *testing.T) {
	payload := "Contact Name,Company,Email Address\n" +
		"Jane Doe,Acme,jane@acme.com\n" +
		",MissingName,missing@name.com\n" +
		"Bob Smith,Globex,bob@globex.com\n"

	contacts, err := parseVendorContacts(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].Name != "Jane Doe" || contacts[1].Name != "Bob Smith" {
		t.Errorf("unexpected contacts: %+v", contacts)
	}
}

func TestParseVendorContacts_FieldsAreTrimmed(t *testing.T) {
	payload := "Name, Business Name , Email\n  Jane Doe , Acme ,  jane@acme.com  "

	contacts, err := parseVendorContacts(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contacts[0].Name != "Jane Doe" || contacts[0].BusinessName != "Acme" || contacts[0].Email != "jane@acme.com" {
		t.Errorf("expected trimmed fields, got %+v", contacts[0])
	}
}

func TestParseVendorContacts_BusinessNameColumnNotPickedAsName(t *testing.T) {
	// "Business Name" contains "name" but must resolve as the business column.
	payload := "Business Name,Name,Email\nAcme,Jane Doe,jane@acme.com"

	contacts, err := parseVendorContacts(payload)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if contacts[0].Name != "Jane Doe" || contacts[0].BusinessName != "Acme" {
		t.Errorf("column resolution wrong: %+v", contacts[0])
	}
}
