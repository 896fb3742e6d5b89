package business

// CatalogSnapshot is the read-only reference data fetched once per operator
// session: the target member, the offerable plans and add-ons, the discount
// definitions, and the staff who may be assigned as executors.
type CatalogSnapshot struct {
	Member    Member               `json:"member"`
	Plans     []Plan               `json:"plans"`
	Products  []Product            `json:"products"`
	Discounts []DiscountDefinition `json:"discounts"`
	Executors []Member             `json:"executors"`
}

// FindPlan looks up a plan by id.
func (c *CatalogSnapshot) FindPlan(id string) (Plan, bool) {
	for _, p := range c.Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// FindProduct looks up a product by id.
func (c *CatalogSnapshot) FindProduct(id string) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// FindDiscount looks up a discount definition by id.
func (c *CatalogSnapshot) FindDiscount(id string) (DiscountDefinition, bool) {
	for _, d := range c.Discounts {
		if d.ID == id {
			return d, true
		}
	}
	return DiscountDefinition{}, false
}
