package domain

// Strings holds the localized labels used outside of the client UI.
type Strings struct {
	Balance  string
	Income   string
	Expense  string
	Reports  string
	Currency string

	InsightsNeedEntries string
	InsightsUnavailable string
	InsightsEmpty       string
}

var translations = map[Language]Strings{
	LanguageEnglish: {
		Balance:             "Total Balance",
		Income:              "Income",
		Expense:             "Expense",
		Reports:             "Financial Reports",
		Currency:            "",
		InsightsNeedEntries: "Add at least 3 entries to get smart insights.",
		InsightsUnavailable: "Insights unavailable at the moment.",
		InsightsEmpty:       "Unavailable.",
	},
	LanguageUrdu: {
		Balance:             "Kul Balance",
		Income:              "Kamai",
		Expense:             "Kharcha",
		Reports:             "Maloomat",
		Currency:            "Rs.",
		InsightsNeedEntries: "Insights ke liye kam az kam 3 transactions add karen.",
		InsightsUnavailable: "Maaf kijiye, mashwaray abhi dastyab nahi.",
		InsightsEmpty:       "Abhi dastyab nahi.",
	},
}

// StringsFor returns the labels for lang. Unknown codes get the Urdu labels.
func StringsFor(lang Language) Strings {
	if s, ok := translations[lang]; ok {
		return s
	}
	return translations[LanguageUrdu]
}
