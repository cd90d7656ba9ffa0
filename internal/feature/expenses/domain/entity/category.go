// Package entity defines the domain entities for the expenses feature.
package entity

// Category is one value from the closed set of expense categories.
// Any value outside the set is rejected at creation and update time.
type Category string

// The closed category enumeration. The values are display strings.
const (
	CategoryBills          Category = "Bills"
	CategoryFood           Category = "Food"
	CategoryPersonalCare   Category = "Personal Care"
	CategoryPurchases      Category = "Purchases"
	CategoryTransportation Category = "Transportation"
	CategoryHousing        Category = "Housing"
	CategoryUtilities      Category = "Utilities"
	CategoryEntertainment  Category = "Entertainment"
	CategoryGroceries      Category = "Groceries"
	CategoryHealth         Category = "Health"
	CategoryInvestments    Category = "Investments"
	CategoryKids           Category = "Kids"
	CategoryPets           Category = "Pets"
	CategoryShopping       Category = "Shopping"
	CategorySubscriptions  Category = "Subscriptions"
	CategoryTaxes          Category = "Taxes"
	CategoryTravel         Category = "Travel"
	CategoryOther          Category = "Other"
)

// allCategories lists the enumeration in declaration order.
var allCategories = []Category{
	CategoryBills, CategoryFood, CategoryPersonalCare,
	CategoryPurchases, CategoryTransportation, CategoryHousing,
	CategoryUtilities, CategoryEntertainment, CategoryGroceries,
	CategoryHealth, CategoryInvestments, CategoryKids,
	CategoryPets, CategoryShopping, CategorySubscriptions,
	CategoryTaxes, CategoryTravel, CategoryOther,
}

// categories is the membership set backing Valid.
var categories = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(allCategories))
	for _, c := range allCategories {
		m[c] = struct{}{}
	}
	return m
}()

// AllCategories returns the enumeration in declaration order.
// The returned slice is a copy.
func AllCategories() []Category {
	out := make([]Category, len(allCategories))
	copy(out, allCategories)
	return out
}

// Valid reports whether c is a member of the closed enumeration.
func (c Category) Valid() bool {
	_, ok := categories[c]
	return ok
}

// String returns the display string of the category.
func (c Category) String() string {
	return string(c)
}
