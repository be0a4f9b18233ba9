package domain

import "fmt"

// Category is the name of a catalog category.
type Category string

// Expense categories.
const (
	CategoryFood      Category = "Food"
	CategoryTransport Category = "Transport"
	CategoryRent      Category = "Rent"
	CategoryShopping  Category = "Shopping"
	CategoryHealth    Category = "Health"
	CategoryEducation Category = "Education"
)

// Income categories.
const (
	CategorySalary    Category = "Salary"
	CategoryFreelance Category = "Freelance"
	CategoryShopSale  Category = "Shop Sale"
	CategoryGift      Category = "Gift"
)

// CategoryOther exists in both partitions.
const CategoryOther Category = "Other"

// Display fallback for names that are not in the catalog of their type.
const (
	FallbackColor = "#8884d8"
	FallbackIcon  = "question"
)

// CategoryInfo is a catalog entry with its display metadata.
type CategoryInfo struct {
	Name  Category
	Type  TransactionType
	Color string
	Icon  string
}

var expenseCatalog = []CategoryInfo{
	{Name: CategoryFood, Type: TransactionTypeExpense, Color: "#ef4444", Icon: "utensils"},
	{Name: CategoryTransport, Type: TransactionTypeExpense, Color: "#f59e0b", Icon: "bus"},
	{Name: CategoryRent, Type: TransactionTypeExpense, Color: "#6366f1", Icon: "home"},
	{Name: CategoryShopping, Type: TransactionTypeExpense, Color: "#ec4899", Icon: "shopping-bag"},
	{Name: CategoryHealth, Type: TransactionTypeExpense, Color: "#10b981", Icon: "heartbeat"},
	{Name: CategoryEducation, Type: TransactionTypeExpense, Color: "#8b5cf6", Icon: "book"},
	{Name: CategoryOther, Type: TransactionTypeExpense, Color: "#6b7280", Icon: "ellipsis-h"},
}

var incomeCatalog = []CategoryInfo{
	{Name: CategorySalary, Type: TransactionTypeIncome, Color: "#22c55e", Icon: "money-check-alt"},
	{Name: CategoryFreelance, Type: TransactionTypeIncome, Color: "#3b82f6", Icon: "laptop-code"},
	{Name: CategoryShopSale, Type: TransactionTypeIncome, Color: "#f97316", Icon: "store"},
	{Name: CategoryGift, Type: TransactionTypeIncome, Color: "#a855f7", Icon: "gift"},
	{Name: CategoryOther, Type: TransactionTypeIncome, Color: "#6b7280", Icon: "ellipsis-h"},
}

// Catalog returns the categories of the given type.
func Catalog(t TransactionType) []CategoryInfo {
	var src []CategoryInfo
	switch t {
	case TransactionTypeExpense:
		src = expenseCatalog
	case TransactionTypeIncome:
		src = incomeCatalog
	default:
		return nil
	}
	out := make([]CategoryInfo, len(src))
	copy(out, src)
	return out
}

// LookupCategory finds a category in the catalog partition of t.
func LookupCategory(t TransactionType, name Category) (CategoryInfo, bool) {
	for _, c := range Catalog(t) {
		if c.Name == name {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// DisplayCategory returns catalog metadata for name, or the fallback
// metadata when name is not part of t's partition.
func DisplayCategory(t TransactionType, name Category) CategoryInfo {
	if c, ok := LookupCategory(t, name); ok {
		return c
	}
	return CategoryInfo{Name: name, Type: t, Color: FallbackColor, Icon: FallbackIcon}
}

// CategoryNames returns unique category names across both partitions,
// expense categories first.
func CategoryNames() []Category {
	seen := make(map[Category]bool)
	var names []Category
	for _, c := range append(Catalog(TransactionTypeExpense), Catalog(TransactionTypeIncome)...) {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		names = append(names, c.Name)
	}
	return names
}

// IsKnownCategory reports whether name appears in any partition.
func IsKnownCategory(name Category) bool {
	for _, n := range CategoryNames() {
		if n == name {
			return true
		}
	}
	return false
}

// ValidateCategory checks that name belongs to the partition of t.
func ValidateCategory(t TransactionType, name Category) error {
	if name == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidCategory)
	}
	if _, ok := LookupCategory(t, name); ok {
		return nil
	}
	if IsKnownCategory(name) {
		return fmt.Errorf("%w: %s is not a %s category", ErrCategoryTypeMismatch, name, t)
	}
	return fmt.Errorf("%w: %s", ErrInvalidCategory, name)
}
