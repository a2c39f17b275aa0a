// Package catalog ships the static timezone catalog the search and
// add-timezone features draw from. The data is read-only input; nothing in
// the application mutates it after startup.
package catalog

import (
	"github.com/zoneboard/zoneboard/domain/repository"
)

// StaticCatalog implements CatalogRepository over the compiled-in entry list
type StaticCatalog struct {
	entries []repository.CatalogEntry
}

// NewStaticCatalog creates the catalog repository
func NewStaticCatalog() *StaticCatalog {
	return &StaticCatalog{entries: entries}
}

// All returns every catalog entry in catalog order. The returned slice is a
// copy; callers may reorder or filter it freely.
func (c *StaticCatalog) All() []repository.CatalogEntry {
	out := make([]repository.CatalogEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

var entries = []repository.CatalogEntry{
	// Americas
	{Name: "New York", IANAZone: "America/New_York", FlagGlyph: "🇺🇸"},
	{Name: "Los Angeles", IANAZone: "America/Los_Angeles", FlagGlyph: "🇺🇸"},
	{Name: "Chicago", IANAZone: "America/Chicago", FlagGlyph: "🇺🇸"},
	{Name: "Denver", IANAZone: "America/Denver", FlagGlyph: "🇺🇸"},
	{Name: "Phoenix", IANAZone: "America/Phoenix", FlagGlyph: "🇺🇸"},
	{Name: "Anchorage", IANAZone: "America/Anchorage", FlagGlyph: "🇺🇸"},
	{Name: "Honolulu", IANAZone: "Pacific/Honolulu", FlagGlyph: "🇺🇸"},
	{Name: "Detroit", IANAZone: "America/Detroit", FlagGlyph: "🇺🇸"},
	{Name: "Boise", IANAZone: "America/Boise", FlagGlyph: "🇺🇸"},
	{Name: "Toronto", IANAZone: "America/Toronto", FlagGlyph: "🇨🇦"},
	{Name: "Vancouver", IANAZone: "America/Vancouver", FlagGlyph: "🇨🇦"},
	{Name: "Edmonton", IANAZone: "America/Edmonton", FlagGlyph: "🇨🇦"},
	{Name: "Winnipeg", IANAZone: "America/Winnipeg", FlagGlyph: "🇨🇦"},
	{Name: "Halifax", IANAZone: "America/Halifax", FlagGlyph: "🇨🇦"},
	{Name: "St. John's", IANAZone: "America/St_Johns", FlagGlyph: "🇨🇦"},
	{Name: "Mexico City", IANAZone: "America/Mexico_City", FlagGlyph: "🇲🇽"},
	{Name: "Cancún", IANAZone: "America/Cancun", FlagGlyph: "🇲🇽"},
	{Name: "Tijuana", IANAZone: "America/Tijuana", FlagGlyph: "🇲🇽"},
	{Name: "Monterrey", IANAZone: "America/Monterrey", FlagGlyph: "🇲🇽"},
	{Name: "Guatemala City", IANAZone: "America/Guatemala", FlagGlyph: "🇬🇹"},
	{Name: "San Salvador", IANAZone: "America/El_Salvador", FlagGlyph: "🇸🇻"},
	{Name: "Tegucigalpa", IANAZone: "America/Tegucigalpa", FlagGlyph: "🇭🇳"},
	{Name: "Managua", IANAZone: "America/Managua", FlagGlyph: "🇳🇮"},
	{Name: "San José", IANAZone: "America/Costa_Rica", FlagGlyph: "🇨🇷"},
	{Name: "Panama City", IANAZone: "America/Panama", FlagGlyph: "🇵🇦"},
	{Name: "Havana", IANAZone: "America/Havana", FlagGlyph: "🇨🇺"},
	{Name: "Kingston", IANAZone: "America/Jamaica", FlagGlyph: "🇯🇲"},
	{Name: "Port-au-Prince", IANAZone: "America/Port-au-Prince", FlagGlyph: "🇭🇹"},
	{Name: "Santo Domingo", IANAZone: "America/Santo_Domingo", FlagGlyph: "🇩🇴"},
	{Name: "San Juan", IANAZone: "America/Puerto_Rico", FlagGlyph: "🇵🇷"},
	{Name: "Bridgetown", IANAZone: "America/Barbados", FlagGlyph: "🇧🇧"},
	{Name: "Bogotá", IANAZone: "America/Bogota", FlagGlyph: "🇨🇴"},
	{Name: "Caracas", IANAZone: "America/Caracas", FlagGlyph: "🇻🇪"},
	{Name: "Quito", IANAZone: "America/Guayaquil", FlagGlyph: "🇪🇨"},
	{Name: "Lima", IANAZone: "America/Lima", FlagGlyph: "🇵🇪"},
	{Name: "La Paz", IANAZone: "America/La_Paz", FlagGlyph: "🇧🇴"},
	{Name: "Asunción", IANAZone: "America/Asuncion", FlagGlyph: "🇵🇾"},
	{Name: "Santiago", IANAZone: "America/Santiago", FlagGlyph: "🇨🇱"},
	{Name: "Buenos Aires", IANAZone: "America/Argentina/Buenos_Aires", FlagGlyph: "🇦🇷"},
	{Name: "Córdoba", IANAZone: "America/Argentina/Cordoba", FlagGlyph: "🇦🇷"},
	{Name: "Mendoza", IANAZone: "America/Argentina/Mendoza", FlagGlyph: "🇦🇷"},
	{Name: "Montevideo", IANAZone: "America/Montevideo", FlagGlyph: "🇺🇾"},
	{Name: "São Paulo", IANAZone: "America/Sao_Paulo", FlagGlyph: "🇧🇷"},
	{Name: "Rio Branco", IANAZone: "America/Rio_Branco", FlagGlyph: "🇧🇷"},
	{Name: "Manaus", IANAZone: "America/Manaus", FlagGlyph: "🇧🇷"},
	{Name: "Fortaleza", IANAZone: "America/Fortaleza", FlagGlyph: "🇧🇷"},
	{Name: "Recife", IANAZone: "America/Recife", FlagGlyph: "🇧🇷"},
	{Name: "Belém", IANAZone: "America/Belem", FlagGlyph: "🇧🇷"},
	{Name: "Cuiabá", IANAZone: "America/Cuiaba", FlagGlyph: "🇧🇷"},
	{Name: "Noronha", IANAZone: "America/Noronha", FlagGlyph: "🇧🇷"},
	{Name: "Paramaribo", IANAZone: "America/Paramaribo", FlagGlyph: "🇸🇷"},
	{Name: "Georgetown", IANAZone: "America/Guyana", FlagGlyph: "🇬🇾"},
	{Name: "Nuuk", IANAZone: "America/Nuuk", FlagGlyph: "🇬🇱"},

	// Europe
	{Name: "London", IANAZone: "Europe/London", FlagGlyph: "🇬🇧"},
	{Name: "Dublin", IANAZone: "Europe/Dublin", FlagGlyph: "🇮🇪"},
	{Name: "Lisbon", IANAZone: "Europe/Lisbon", FlagGlyph: "🇵🇹"},
	{Name: "Madrid", IANAZone: "Europe/Madrid", FlagGlyph: "🇪🇸"},
	{Name: "Paris", IANAZone: "Europe/Paris", FlagGlyph: "🇫🇷"},
	{Name: "Brussels", IANAZone: "Europe/Brussels", FlagGlyph: "🇧🇪"},
	{Name: "Amsterdam", IANAZone: "Europe/Amsterdam", FlagGlyph: "🇳🇱"},
	{Name: "Luxembourg", IANAZone: "Europe/Luxembourg", FlagGlyph: "🇱🇺"},
	{Name: "Berlin", IANAZone: "Europe/Berlin", FlagGlyph: "🇩🇪"},
	{Name: "Zurich", IANAZone: "Europe/Zurich", FlagGlyph: "🇨🇭"},
	{Name: "Vienna", IANAZone: "Europe/Vienna", FlagGlyph: "🇦🇹"},
	{Name: "Rome", IANAZone: "Europe/Rome", FlagGlyph: "🇮🇹"},
	{Name: "Malta", IANAZone: "Europe/Malta", FlagGlyph: "🇲🇹"},
	{Name: "Monaco", IANAZone: "Europe/Monaco", FlagGlyph: "🇲🇨"},
	{Name: "Oslo", IANAZone: "Europe/Oslo", FlagGlyph: "🇳🇴"},
	{Name: "Stockholm", IANAZone: "Europe/Stockholm", FlagGlyph: "🇸🇪"},
	{Name: "Copenhagen", IANAZone: "Europe/Copenhagen", FlagGlyph: "🇩🇰"},
	{Name: "Helsinki", IANAZone: "Europe/Helsinki", FlagGlyph: "🇫🇮"},
	{Name: "Reykjavik", IANAZone: "Atlantic/Reykjavik", FlagGlyph: "🇮🇸"},
	{Name: "Warsaw", IANAZone: "Europe/Warsaw", FlagGlyph: "🇵🇱"},
	{Name: "Prague", IANAZone: "Europe/Prague", FlagGlyph: "🇨🇿"},
	{Name: "Bratislava", IANAZone: "Europe/Bratislava", FlagGlyph: "🇸🇰"},
	{Name: "Budapest", IANAZone: "Europe/Budapest", FlagGlyph: "🇭🇺"},
	{Name: "Ljubljana", IANAZone: "Europe/Ljubljana", FlagGlyph: "🇸🇮"},
	{Name: "Zagreb", IANAZone: "Europe/Zagreb", FlagGlyph: "🇭🇷"},
	{Name: "Sarajevo", IANAZone: "Europe/Sarajevo", FlagGlyph: "🇧🇦"},
	{Name: "Belgrade", IANAZone: "Europe/Belgrade", FlagGlyph: "🇷🇸"},
	{Name: "Skopje", IANAZone: "Europe/Skopje", FlagGlyph: "🇲🇰"},
	{Name: "Tirana", IANAZone: "Europe/Tirane", FlagGlyph: "🇦🇱"},
	{Name: "Athens", IANAZone: "Europe/Athens", FlagGlyph: "🇬🇷"},
	{Name: "Sofia", IANAZone: "Europe/Sofia", FlagGlyph: "🇧🇬"},
	{Name: "Bucharest", IANAZone: "Europe/Bucharest", FlagGlyph: "🇷🇴"},
	{Name: "Chișinău", IANAZone: "Europe/Chisinau", FlagGlyph: "🇲🇩"},
	{Name: "Kyiv", IANAZone: "Europe/Kyiv", FlagGlyph: "🇺🇦"},
	{Name: "Minsk", IANAZone: "Europe/Minsk", FlagGlyph: "🇧🇾"},
	{Name: "Vilnius", IANAZone: "Europe/Vilnius", FlagGlyph: "🇱🇹"},
	{Name: "Riga", IANAZone: "Europe/Riga", FlagGlyph: "🇱🇻"},
	{Name: "Tallinn", IANAZone: "Europe/Tallinn", FlagGlyph: "🇪🇪"},
	{Name: "Moscow", IANAZone: "Europe/Moscow", FlagGlyph: "🇷🇺"},
	{Name: "Kaliningrad", IANAZone: "Europe/Kaliningrad", FlagGlyph: "🇷🇺"},
	{Name: "Samara", IANAZone: "Europe/Samara", FlagGlyph: "🇷🇺"},
	{Name: "Istanbul", IANAZone: "Europe/Istanbul", FlagGlyph: "🇹🇷"},
	{Name: "Gibraltar", IANAZone: "Europe/Gibraltar", FlagGlyph: "🇬🇮"},
	{Name: "Andorra", IANAZone: "Europe/Andorra", FlagGlyph: "🇦🇩"},
	{Name: "Azores", IANAZone: "Atlantic/Azores", FlagGlyph: "🇵🇹"},
	{Name: "Madeira", IANAZone: "Atlantic/Madeira", FlagGlyph: "🇵🇹"},
	{Name: "Canary Islands", IANAZone: "Atlantic/Canary", FlagGlyph: "🇪🇸"},

	// Africa
	{Name: "Casablanca", IANAZone: "Africa/Casablanca", FlagGlyph: "🇲🇦"},
	{Name: "Algiers", IANAZone: "Africa/Algiers", FlagGlyph: "🇩🇿"},
	{Name: "Tunis", IANAZone: "Africa/Tunis", FlagGlyph: "🇹🇳"},
	{Name: "Tripoli", IANAZone: "Africa/Tripoli", FlagGlyph: "🇱🇾"},
	{Name: "Cairo", IANAZone: "Africa/Cairo", FlagGlyph: "🇪🇬"},
	{Name: "Khartoum", IANAZone: "Africa/Khartoum", FlagGlyph: "🇸🇩"},
	{Name: "Addis Ababa", IANAZone: "Africa/Addis_Ababa", FlagGlyph: "🇪🇹"},
	{Name: "Nairobi", IANAZone: "Africa/Nairobi", FlagGlyph: "🇰🇪"},
	{Name: "Kampala", IANAZone: "Africa/Kampala", FlagGlyph: "🇺🇬"},
	{Name: "Dar es Salaam", IANAZone: "Africa/Dar_es_Salaam", FlagGlyph: "🇹🇿"},
	{Name: "Dakar", IANAZone: "Africa/Dakar", FlagGlyph: "🇸🇳"},
	{Name: "Abidjan", IANAZone: "Africa/Abidjan", FlagGlyph: "🇨🇮"},
	{Name: "Accra", IANAZone: "Africa/Accra", FlagGlyph: "🇬🇭"},
	{Name: "Lagos", IANAZone: "Africa/Lagos", FlagGlyph: "🇳🇬"},
	{Name: "Douala", IANAZone: "Africa/Douala", FlagGlyph: "🇨🇲"},
	{Name: "Kinshasa", IANAZone: "Africa/Kinshasa", FlagGlyph: "🇨🇩"},
	{Name: "Luanda", IANAZone: "Africa/Luanda", FlagGlyph: "🇦🇴"},
	{Name: "Lusaka", IANAZone: "Africa/Lusaka", FlagGlyph: "🇿🇲"},
	{Name: "Harare", IANAZone: "Africa/Harare", FlagGlyph: "🇿🇼"},
	{Name: "Maputo", IANAZone: "Africa/Maputo", FlagGlyph: "🇲🇿"},
	{Name: "Johannesburg", IANAZone: "Africa/Johannesburg", FlagGlyph: "🇿🇦"},
	{Name: "Gaborone", IANAZone: "Africa/Gaborone", FlagGlyph: "🇧🇼"},
	{Name: "Windhoek", IANAZone: "Africa/Windhoek", FlagGlyph: "🇳🇦"},
	{Name: "Antananarivo", IANAZone: "Indian/Antananarivo", FlagGlyph: "🇲🇬"},
	{Name: "Port Louis", IANAZone: "Indian/Mauritius", FlagGlyph: "🇲🇺"},
	{Name: "Victoria", IANAZone: "Indian/Mahe", FlagGlyph: "🇸🇨"},

	// Middle East & Central Asia
	{Name: "Jerusalem", IANAZone: "Asia/Jerusalem", FlagGlyph: "🇮🇱"},
	{Name: "Beirut", IANAZone: "Asia/Beirut", FlagGlyph: "🇱🇧"},
	{Name: "Damascus", IANAZone: "Asia/Damascus", FlagGlyph: "🇸🇾"},
	{Name: "Amman", IANAZone: "Asia/Amman", FlagGlyph: "🇯🇴"},
	{Name: "Baghdad", IANAZone: "Asia/Baghdad", FlagGlyph: "🇮🇶"},
	{Name: "Kuwait City", IANAZone: "Asia/Kuwait", FlagGlyph: "🇰🇼"},
	{Name: "Riyadh", IANAZone: "Asia/Riyadh", FlagGlyph: "🇸🇦"},
	{Name: "Doha", IANAZone: "Asia/Qatar", FlagGlyph: "🇶🇦"},
	{Name: "Manama", IANAZone: "Asia/Bahrain", FlagGlyph: "🇧🇭"},
	{Name: "Dubai", IANAZone: "Asia/Dubai", FlagGlyph: "🇦🇪"},
	{Name: "Muscat", IANAZone: "Asia/Muscat", FlagGlyph: "🇴🇲"},
	{Name: "Sanaa", IANAZone: "Asia/Aden", FlagGlyph: "🇾🇪"},
	{Name: "Tehran", IANAZone: "Asia/Tehran", FlagGlyph: "🇮🇷"},
	{Name: "Baku", IANAZone: "Asia/Baku", FlagGlyph: "🇦🇿"},
	{Name: "Tbilisi", IANAZone: "Asia/Tbilisi", FlagGlyph: "🇬🇪"},
	{Name: "Yerevan", IANAZone: "Asia/Yerevan", FlagGlyph: "🇦🇲"},
	{Name: "Ashgabat", IANAZone: "Asia/Ashgabat", FlagGlyph: "🇹🇲"},
	{Name: "Tashkent", IANAZone: "Asia/Tashkent", FlagGlyph: "🇺🇿"},
	{Name: "Dushanbe", IANAZone: "Asia/Dushanbe", FlagGlyph: "🇹🇯"},
	{Name: "Bishkek", IANAZone: "Asia/Bishkek", FlagGlyph: "🇰🇬"},
	{Name: "Almaty", IANAZone: "Asia/Almaty", FlagGlyph: "🇰🇿"},
	{Name: "Kabul", IANAZone: "Asia/Kabul", FlagGlyph: "🇦🇫"},

	// South & East Asia
	{Name: "Karachi", IANAZone: "Asia/Karachi", FlagGlyph: "🇵🇰"},
	{Name: "Mumbai", IANAZone: "Asia/Kolkata", FlagGlyph: "🇮🇳"},
	{Name: "Kolkata", IANAZone: "Asia/Kolkata", FlagGlyph: "🇮🇳"},
	{Name: "Colombo", IANAZone: "Asia/Colombo", FlagGlyph: "🇱🇰"},
	{Name: "Kathmandu", IANAZone: "Asia/Kathmandu", FlagGlyph: "🇳🇵"},
	{Name: "Dhaka", IANAZone: "Asia/Dhaka", FlagGlyph: "🇧🇩"},
	{Name: "Thimphu", IANAZone: "Asia/Thimphu", FlagGlyph: "🇧🇹"},
	{Name: "Yangon", IANAZone: "Asia/Yangon", FlagGlyph: "🇲🇲"},
	{Name: "Bangkok", IANAZone: "Asia/Bangkok", FlagGlyph: "🇹🇭"},
	{Name: "Vientiane", IANAZone: "Asia/Vientiane", FlagGlyph: "🇱🇦"},
	{Name: "Phnom Penh", IANAZone: "Asia/Phnom_Penh", FlagGlyph: "🇰🇭"},
	{Name: "Ho Chi Minh City", IANAZone: "Asia/Ho_Chi_Minh", FlagGlyph: "🇻🇳"},
	{Name: "Jakarta", IANAZone: "Asia/Jakarta", FlagGlyph: "🇮🇩"},
	{Name: "Makassar", IANAZone: "Asia/Makassar", FlagGlyph: "🇮🇩"},
	{Name: "Jayapura", IANAZone: "Asia/Jayapura", FlagGlyph: "🇮🇩"},
	{Name: "Kuala Lumpur", IANAZone: "Asia/Kuala_Lumpur", FlagGlyph: "🇲🇾"},
	{Name: "Singapore", IANAZone: "Asia/Singapore", FlagGlyph: "🇸🇬"},
	{Name: "Manila", IANAZone: "Asia/Manila", FlagGlyph: "🇵🇭"},
	{Name: "Brunei", IANAZone: "Asia/Brunei", FlagGlyph: "🇧🇳"},
	{Name: "Hong Kong", IANAZone: "Asia/Hong_Kong", FlagGlyph: "🇭🇰"},
	{Name: "Macau", IANAZone: "Asia/Macau", FlagGlyph: "🇲🇴"},
	{Name: "Taipei", IANAZone: "Asia/Taipei", FlagGlyph: "🇹🇼"},
	{Name: "Shanghai", IANAZone: "Asia/Shanghai", FlagGlyph: "🇨🇳"},
	{Name: "Ürümqi", IANAZone: "Asia/Urumqi", FlagGlyph: "🇨🇳"},
	{Name: "Ulaanbaatar", IANAZone: "Asia/Ulaanbaatar", FlagGlyph: "🇲🇳"},
	{Name: "Seoul", IANAZone: "Asia/Seoul", FlagGlyph: "🇰🇷"},
	{Name: "Pyongyang", IANAZone: "Asia/Pyongyang", FlagGlyph: "🇰🇵"},
	{Name: "Tokyo", IANAZone: "Asia/Tokyo", FlagGlyph: "🇯🇵"},

	// Russia (Asia)
	{Name: "Yekaterinburg", IANAZone: "Asia/Yekaterinburg", FlagGlyph: "🇷🇺"},
	{Name: "Omsk", IANAZone: "Asia/Omsk", FlagGlyph: "🇷🇺"},
	{Name: "Novosibirsk", IANAZone: "Asia/Novosibirsk", FlagGlyph: "🇷🇺"},
	{Name: "Krasnoyarsk", IANAZone: "Asia/Krasnoyarsk", FlagGlyph: "🇷🇺"},
	{Name: "Irkutsk", IANAZone: "Asia/Irkutsk", FlagGlyph: "🇷🇺"},
	{Name: "Yakutsk", IANAZone: "Asia/Yakutsk", FlagGlyph: "🇷🇺"},
	{Name: "Vladivostok", IANAZone: "Asia/Vladivostok", FlagGlyph: "🇷🇺"},
	{Name: "Magadan", IANAZone: "Asia/Magadan", FlagGlyph: "🇷🇺"},
	{Name: "Kamchatka", IANAZone: "Asia/Kamchatka", FlagGlyph: "🇷🇺"},

	// Oceania & Pacific
	{Name: "Perth", IANAZone: "Australia/Perth", FlagGlyph: "🇦🇺"},
	{Name: "Darwin", IANAZone: "Australia/Darwin", FlagGlyph: "🇦🇺"},
	{Name: "Adelaide", IANAZone: "Australia/Adelaide", FlagGlyph: "🇦🇺"},
	{Name: "Brisbane", IANAZone: "Australia/Brisbane", FlagGlyph: "🇦🇺"},
	{Name: "Sydney", IANAZone: "Australia/Sydney", FlagGlyph: "🇦🇺"},
	{Name: "Melbourne", IANAZone: "Australia/Melbourne", FlagGlyph: "🇦🇺"},
	{Name: "Hobart", IANAZone: "Australia/Hobart", FlagGlyph: "🇦🇺"},
	{Name: "Lord Howe Island", IANAZone: "Australia/Lord_Howe", FlagGlyph: "🇦🇺"},
	{Name: "Port Moresby", IANAZone: "Pacific/Port_Moresby", FlagGlyph: "🇵🇬"},
	{Name: "Guadalcanal", IANAZone: "Pacific/Guadalcanal", FlagGlyph: "🇸🇧"},
	{Name: "Nouméa", IANAZone: "Pacific/Noumea", FlagGlyph: "🇳🇨"},
	{Name: "Suva", IANAZone: "Pacific/Fiji", FlagGlyph: "🇫🇯"},
	{Name: "Auckland", IANAZone: "Pacific/Auckland", FlagGlyph: "🇳🇿"},
	{Name: "Chatham Islands", IANAZone: "Pacific/Chatham", FlagGlyph: "🇳🇿"},
	{Name: "Nuku'alofa", IANAZone: "Pacific/Tongatapu", FlagGlyph: "🇹🇴"},
	{Name: "Apia", IANAZone: "Pacific/Apia", FlagGlyph: "🇼🇸"},
	{Name: "Pago Pago", IANAZone: "Pacific/Pago_Pago", FlagGlyph: "🇦🇸"},
	{Name: "Tarawa", IANAZone: "Pacific/Tarawa", FlagGlyph: "🇰🇮"},
	{Name: "Majuro", IANAZone: "Pacific/Majuro", FlagGlyph: "🇲🇭"},
	{Name: "Guam", IANAZone: "Pacific/Guam", FlagGlyph: "🇬🇺"},
	{Name: "Palau", IANAZone: "Pacific/Palau", FlagGlyph: "🇵🇼"},
	{Name: "Tahiti", IANAZone: "Pacific/Tahiti", FlagGlyph: "🇵🇫"},
	{Name: "Rarotonga", IANAZone: "Pacific/Rarotonga", FlagGlyph: "🇨🇰"},
	{Name: "Easter Island", IANAZone: "Pacific/Easter", FlagGlyph: "🇨🇱"},
	{Name: "Galápagos", IANAZone: "Pacific/Galapagos", FlagGlyph: "🇪🇨"},

	// Reference zones
	{Name: "UTC", IANAZone: "UTC", FlagGlyph: "🌐"},
}
