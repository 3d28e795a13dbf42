package service

import (
	"reflect"
	"testing"
)

func TestAggregate_GroupsPaymentAccountsPerBank(t *testing.T) {
	records := []Record{
		{"bank": "Lafise", "tipo": "Cuenta Córdobas", "cuenta": "110223344", "orden": float64(2)},
		{"bank": "Banpro", "tipo": "Cuenta Córdobas", "cuenta": "10010987654321", "orden": float64(1)},
		{"bank": "Banpro", "tipo": "Cuenta Dólares", "cuenta": "10010123456789", "orden": float64(1)},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(entries))
	}
	if entries[0].Name != "Banpro" || entries[1].Name != "Lafise" {
		t.Fatalf("expected order Banpro, Lafise, got %q, %q", entries[0].Name, entries[1].Name)
	}
	if entries[0].ID != 1 || entries[1].ID != 2 {
		t.Fatalf("expected dense ids 1, 2, got %d, %d", entries[0].ID, entries[1].ID)
	}
	if len(entries[0].Accounts) != 2 {
		t.Fatalf("expected 2 Banpro accounts, got %d", len(entries[0].Accounts))
	}
	if entries[0].Accounts[0].Symbol != "C$" {
		t.Fatalf("expected córdoba symbol C$, got %q", entries[0].Accounts[0].Symbol)
	}
	if entries[0].Accounts[1].Symbol != "$" {
		t.Fatalf("expected dollar symbol $, got %q", entries[0].Accounts[1].Symbol)
	}
	if entries[0].Logo != "🏦" {
		t.Fatalf("expected default bank icon, got %q", entries[0].Logo)
	}
}

func TestAggregate_ComingSoonTypeYieldsEmptyGroup(t *testing.T) {
	records := []Record{
		{"bank": "BAC", "tipo": "Próximamente Disponible", "cuenta": "123"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 1 {
		t.Fatalf("expected 1 group, got %d", len(entries))
	}
	if !entries[0].ComingSoon {
		t.Fatal("expected comingSoon group")
	}
	if len(entries[0].Accounts) != 0 {
		t.Fatalf("expected no accounts, got %d", len(entries[0].Accounts))
	}
}

func TestAggregate_ComingSoonMessageMatchesWithoutAccents(t *testing.T) {
	records := []Record{
		{"bank": "BAC", "tipo": "Cuenta", "cuenta": "123", "mensaje": "proximamente en linea"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 1 || !entries[0].ComingSoon {
		t.Fatalf("expected accent-insensitive comingSoon match, got %+v", entries)
	}
	if entries[0].Message != "proximamente en linea" {
		t.Fatalf("expected message carried over, got %q", entries[0].Message)
	}
}

func TestAggregate_PlaceholderNumbersExcludedWithoutComingSoon(t *testing.T) {
	records := []Record{
		{"bank": "Ficohsa", "tipo": "Cuenta Córdobas", "cuenta": "-"},
		{"bank": "Ficohsa", "tipo": "Cuenta Dólares", "cuenta": ""},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 1 {
		t.Fatalf("expected 1 group, got %d", len(entries))
	}
	if entries[0].ComingSoon {
		t.Fatal("placeholder numbers must not mark the group comingSoon")
	}
	if len(entries[0].Accounts) != 0 {
		t.Fatalf("expected placeholder accounts excluded, got %d", len(entries[0].Accounts))
	}
}

func TestAggregate_InactiveRecordsFilteredAbsentFlagIsActive(t *testing.T) {
	records := []Record{
		{"bank": "Activo", "tipo": "Cuenta", "cuenta": "1"},
		{"bank": "Inactivo", "tipo": "Cuenta", "cuenta": "2", "activo": false},
		{"bank": "Estado", "tipo": "Cuenta", "cuenta": "3", "estado": "inactivo"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 1 || entries[0].Name != "Activo" {
		t.Fatalf("expected only the active group, got %+v", entries)
	}
}

func TestAggregate_AliasDriftAcrossRecords(t *testing.T) {
	records := []Record{
		{"bankName": "Banpro", "accountType": "Cuenta Córdobas", "accountNumber": "111"},
		{"nombre": "Banpro", "tipoCuenta": "Cuenta Dólares", "numero": "222"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if len(entries) != 1 {
		t.Fatalf("expected alias drift to fold into 1 group, got %d", len(entries))
	}
	if len(entries[0].Accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(entries[0].Accounts))
	}
}

func TestAggregate_WalletTypeGetsMobileSymbol(t *testing.T) {
	records := []Record{
		{"bank": "Claro", "tipo": "Billetera Móvil", "cuenta": "88887777"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if entries[0].Accounts[0].Symbol != "📱" {
		t.Fatalf("expected wallet symbol, got %q", entries[0].Accounts[0].Symbol)
	}
}

func TestAggregate_ExplicitSymbolWins(t *testing.T) {
	records := []Record{
		{"bank": "Banpro", "tipo": "Cuenta Dólares", "cuenta": "1", "simbolo": "C$"},
	}

	entries := Aggregate(records, PaymentsProfile)

	if entries[0].Accounts[0].Symbol != "C$" {
		t.Fatalf("expected explicit symbol to win, got %q", entries[0].Accounts[0].Symbol)
	}
}

func TestAggregate_ServicePlansFormatIntegralPrices(t *testing.T) {
	records := []Record{
		{"categoria": "Internet", "nombre": "Plan Hogar", "precio": float64(920), "orden": float64(1)},
		{"categoria": "Streaming", "nombre": "TV Plus", "precio": float64(12.5), "orden": float64(2)},
	}

	entries := Aggregate(records, ServicesProfile)

	if len(entries) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(entries))
	}
	if entries[0].Accounts[0].Number != "920" {
		t.Fatalf("expected integral price without decimals, got %q", entries[0].Accounts[0].Number)
	}
	if entries[1].Accounts[0].Number != "12.50" {
		t.Fatalf("expected two-decimal price, got %q", entries[1].Accounts[0].Number)
	}
	if entries[1].Logo != "📡" {
		t.Fatalf("expected default service icon, got %q", entries[1].Logo)
	}
}

func TestAggregate_AccountsSortedWithinGroup(t *testing.T) {
	records := []Record{
		{"bank": "Banpro", "tipo": "B", "cuenta": "2", "orden": float64(5)},
		{"bank": "Banpro", "tipo": "A", "cuenta": "1", "orden": float64(1)},
	}

	entries := Aggregate(records, PaymentsProfile)

	if entries[0].Accounts[0].Type != "A" || entries[0].Accounts[1].Type != "B" {
		t.Fatalf("expected accounts sorted by order, got %+v", entries[0].Accounts)
	}
}

func TestAggregate_Idempotent(t *testing.T) {
	records := []Record{
		{"bank": "Lafise", "tipo": "Cuenta Córdobas", "cuenta": "110", "orden": float64(2)},
		{"bank": "Banpro", "tipo": "Próximamente", "orden": float64(1)},
		{"bank": "Banpro", "tipo": "Cuenta Dólares", "cuenta": "-", "orden": float64(1)},
	}

	first := Aggregate(records, PaymentsProfile)
	second := Aggregate(records, PaymentsProfile)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical output across runs:\n%+v\n%+v", first, second)
	}
}

func TestAggregate_RecordsWithoutGroupNameSkipped(t *testing.T) {
	records := []Record{
		{"tipo": "Cuenta", "cuenta": "1"},
	}

	if entries := Aggregate(records, PaymentsProfile); len(entries) != 0 {
		t.Fatalf("expected nameless records skipped, got %+v", entries)
	}
}
