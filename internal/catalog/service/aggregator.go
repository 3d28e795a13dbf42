package service

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"emsinet_landing_backend/internal/catalog/transport"
	"emsinet_landing_backend/platform/textutil"
)

// Record is one loosely-typed row as returned by the upstream backend. Field
// names have drifted across backend versions, so every logical field is
// resolved through an ordered alias list rather than a fixed key.
type Record map[string]interface{}

// Profile describes how to read one collection's records: the alias list per
// logical field and the fallback icon for groups without one.
type Profile struct {
	GroupKeys   []string
	TypeKeys    []string
	NumberKeys  []string
	SymbolKeys  []string
	ActiveKeys  []string
	OrderKeys   []string
	MessageKeys []string
	IconKeys    []string
	DefaultIcon string
}

// PaymentsProfile reads payment-account records grouped per bank.
// The full alias lists are part of the upstream contract: older aliases are
// kept until the backend owner confirms they are dead.
var PaymentsProfile = Profile{
	GroupKeys:   []string{"bankName", "bank", "businessName", "nombre", "name"},
	TypeKeys:    []string{"tipo", "type", "accountType", "tipoCuenta"},
	NumberKeys:  []string{"cuenta", "numero", "number", "accountNumber"},
	SymbolKeys:  []string{"simbolo", "symbol"},
	ActiveKeys:  []string{"activo", "active", "estado", "status"},
	OrderKeys:   []string{"orden", "order"},
	MessageKeys: []string{"mensaje", "message"},
	IconKeys:    []string{"logo", "icono", "icon"},
	DefaultIcon: "🏦",
}

// ServicesProfile reads service-plan records grouped per category
// (Internet, Streaming).
var ServicesProfile = Profile{
	GroupKeys:   []string{"categoria", "category"},
	TypeKeys:    []string{"nombre", "name", "plan"},
	NumberKeys:  []string{"precio", "price"},
	SymbolKeys:  []string{"moneda", "currency", "simbolo", "symbol"},
	ActiveKeys:  []string{"activo", "active", "estado", "status"},
	OrderKeys:   []string{"orden", "order"},
	MessageKeys: []string{"mensaje", "message"},
	IconKeys:    []string{"logo", "icono", "icon"},
	DefaultIcon: "📡",
}

// Currency symbols shown on the landing cards.
const (
	localSymbol   = "C$"
	foreignSymbol = "$"
	mobileSymbol  = "📱"
)

// comingSoonToken marks placeholder records; matched accent- and
// case-insensitively so both "Próximamente" and "proximamente" hit.
const comingSoonToken = "proximamente"

// Aggregate groups raw upstream records into presentational entries.
// Records are filtered to active (absence of the flag counts as active),
// sorted by order before grouping so insertion order inside each group is
// already final, and folded into groups keyed by resolved name. The output is
// deterministic: the same input always yields byte-identical output.
func Aggregate(records []Record, profile Profile) []transport.GroupedEntry {
	ordered := make([]Record, 0, len(records))
	for _, record := range records {
		if isActive(record, profile) {
			ordered = append(ordered, record)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return resolveOrder(ordered[i], profile) < resolveOrder(ordered[j], profile)
	})

	groups := make(map[string]*transport.GroupedEntry)
	names := make([]string, 0, len(ordered))

	for _, record := range ordered {
		name := resolveString(record, profile.GroupKeys)
		if name == "" {
			continue
		}

		group, seen := groups[name]
		if !seen {
			group = &transport.GroupedEntry{
				Name:     name,
				Logo:     resolveIcon(record, profile),
				Accounts: []transport.Account{},
				Order:    resolveOrder(record, profile),
			}
			groups[name] = group
			names = append(names, name)
		}

		accountType := resolveString(record, profile.TypeKeys)
		message := resolveString(record, profile.MessageKeys)

		if isComingSoon(accountType, message) {
			group.ComingSoon = true
			group.Message = message
			continue
		}

		number := resolveString(record, profile.NumberKeys)
		if isPlaceholder(number) {
			continue
		}

		group.Accounts = append(group.Accounts, transport.Account{
			Type:   accountType,
			Symbol: resolveSymbol(record, profile, accountType, number),
			Number: number,
			Order:  resolveOrder(record, profile),
		})
	}

	entries := make([]transport.GroupedEntry, 0, len(names))
	for _, name := range names {
		group := groups[name]
		sort.SliceStable(group.Accounts, func(i, j int) bool {
			return group.Accounts[i].Order < group.Accounts[j].Order
		})
		entries = append(entries, *group)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Order < entries[j].Order
	})
	for i := range entries {
		entries[i].ID = i + 1
	}

	return entries
}

func isComingSoon(accountType, message string) bool {
	return textutil.ContainsFold(accountType, comingSoonToken) ||
		textutil.ContainsFold(message, comingSoonToken)
}

func isPlaceholder(number string) bool {
	trimmed := strings.TrimSpace(number)
	return trimmed == "" || trimmed == "-"
}

// resolveSymbol picks the currency symbol: explicit field first, then
// currency keywords in the type, then the number's own prefix, defaulting to
// the local currency.
func resolveSymbol(record Record, profile Profile, accountType, number string) string {
	if explicit := resolveString(record, profile.SymbolKeys); explicit != "" {
		return explicit
	}

	foldedType := textutil.Fold(accountType)
	switch {
	case strings.Contains(foldedType, "cordoba"):
		return localSymbol
	case strings.Contains(foldedType, "dolar") || strings.Contains(foldedType, "dollar"):
		return foreignSymbol
	case strings.Contains(foldedType, "billetera") || strings.Contains(foldedType, "movil") || strings.Contains(foldedType, "wallet"):
		return mobileSymbol
	}

	trimmed := strings.TrimSpace(number)
	switch {
	case strings.HasPrefix(trimmed, localSymbol):
		return localSymbol
	case strings.HasPrefix(trimmed, "US$"), strings.HasPrefix(trimmed, "$"):
		return foreignSymbol
	}

	return localSymbol
}

// isActive treats a missing or null flag as active; only an explicit
// negative excludes the record.
func isActive(record Record, profile Profile) bool {
	value, ok := firstPresent(record, profile.ActiveKeys)
	if !ok {
		return true
	}

	switch typed := value.(type) {
	case bool:
		return typed
	case string:
		folded := textutil.Fold(typed)
		switch folded {
		case "", "activo", "active", "true", "1", "si":
			return true
		default:
			return false
		}
	case float64:
		return typed != 0
	case int:
		return typed != 0
	default:
		return true
	}
}

// resolveOrder reads the ordering field, falling back to the identity field,
// falling back to zero.
func resolveOrder(record Record, profile Profile) int {
	if value, ok := firstPresent(record, profile.OrderKeys); ok {
		if order, ok := toInt(value); ok {
			return order
		}
	}
	if value, ok := firstPresent(record, []string{"id"}); ok {
		if order, ok := toInt(value); ok {
			return order
		}
	}
	return 0
}

func resolveIcon(record Record, profile Profile) string {
	if icon := resolveString(record, profile.IconKeys); icon != "" {
		return icon
	}
	return profile.DefaultIcon
}

// resolveString probes the alias list and stringifies the first present,
// non-null value.
func resolveString(record Record, keys []string) string {
	value, ok := firstPresent(record, keys)
	if !ok {
		return ""
	}

	switch typed := value.(type) {
	case string:
		return strings.TrimSpace(typed)
	case float64:
		return formatNumber(typed)
	case int:
		return strconv.Itoa(typed)
	case bool:
		return strconv.FormatBool(typed)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", typed))
	}
}

func firstPresent(record Record, keys []string) (interface{}, bool) {
	for _, key := range keys {
		if value, ok := record[key]; ok && value != nil {
			return value, true
		}
	}
	return nil, false
}

func toInt(value interface{}) (int, bool) {
	switch typed := value.(type) {
	case float64:
		return int(typed), true
	case int:
		return typed, true
	case string:
		if parsed, err := strconv.Atoi(strings.TrimSpace(typed)); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// formatNumber renders prices without a spurious fraction: 920.0 -> "920",
// 45.5 -> "45.50".
func formatNumber(value float64) string {
	if value == math.Trunc(value) {
		return strconv.FormatFloat(value, 'f', 0, 64)
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}
