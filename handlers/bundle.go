package handlers

// HandlerBundle groups the handlers the route registry wires up.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Auth    *AuthHandler
}
