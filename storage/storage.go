// Package storage provides the durable local key-value storage the
// stores persist user state to. Fixed keys are part of the external
// boundary: existing persisted user state must survive upgrades.
package storage

// Well-known storage keys.
const (
	CartItemsKey = "soldy_cart_items_v1"
	ThemeKey     = "theme"
	LanguageKey  = "language"
	AuthTokenKey = "auth_token"
)

// Store is a minimal durable key-value store. Get reports presence
// explicitly so callers can distinguish "absent" from "empty string".
type Store interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
}
