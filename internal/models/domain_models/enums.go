package domain_models

type TourCategory string

const (
	CategoryAdventure TourCategory = "adventure"
	CategoryLuxury    TourCategory = "luxury"
	CategoryFamily    TourCategory = "family"
	CategoryHoneymoon TourCategory = "honeymoon"
	CategorySolo      TourCategory = "solo"
	CategoryCultural  TourCategory = "cultural"
	CategoryWildlife  TourCategory = "wildlife"
	CategoryBeach     TourCategory = "beach"
)

func (c TourCategory) Valid() bool {
	switch c {
	case CategoryAdventure, CategoryLuxury, CategoryFamily, CategoryHoneymoon,
		CategorySolo, CategoryCultural, CategoryWildlife, CategoryBeach:
		return true
	}
	return false
}

type Continent string

const (
	ContinentAsia         Continent = "asia"
	ContinentEurope       Continent = "europe"
	ContinentAfrica       Continent = "africa"
	ContinentNorthAmerica Continent = "north-america"
	ContinentSouthAmerica Continent = "south-america"
	ContinentOceania      Continent = "oceania"
	ContinentAntarctica   Continent = "antarctica"
)

func (c Continent) Valid() bool {
	switch c {
	case ContinentAsia, ContinentEurope, ContinentAfrica, ContinentNorthAmerica,
		ContinentSouthAmerica, ContinentOceania, ContinentAntarctica:
		return true
	}
	return false
}

type ContactPreference string

const (
	ContactByEmail    ContactPreference = "email"
	ContactByPhone    ContactPreference = "phone"
	ContactByWhatsApp ContactPreference = "whatsapp"
)

func (p ContactPreference) Valid() bool {
	switch p {
	case ContactByEmail, ContactByPhone, ContactByWhatsApp:
		return true
	}
	return false
}
