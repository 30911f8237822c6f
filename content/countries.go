package content

// CountryCode is an entry of the fixed country-code list offered by the
// phone field of the application form.
type CountryCode struct {
	Code    string `json:"code"`
	Country string `json:"country"`
	Flag    string `json:"flag"`
}

// DefaultCountryCode is Belgium, where the company is based.
const DefaultCountryCode = "+32"

var CountryCodes = []CountryCode{
	{Code: "+32", Country: "Belgium", Flag: "🇧🇪"},
	{Code: "+33", Country: "France", Flag: "🇫🇷"},
	{Code: "+31", Country: "Netherlands", Flag: "🇳🇱"},
	{Code: "+49", Country: "Germany", Flag: "🇩🇪"},
	{Code: "+44", Country: "United Kingdom", Flag: "🇬🇧"},
	{Code: "+352", Country: "Luxembourg", Flag: "🇱🇺"},
	{Code: "+41", Country: "Switzerland", Flag: "🇨🇭"},
	{Code: "+34", Country: "Spain", Flag: "🇪🇸"},
	{Code: "+39", Country: "Italy", Flag: "🇮🇹"},
	{Code: "+351", Country: "Portugal", Flag: "🇵🇹"},
	{Code: "+48", Country: "Poland", Flag: "🇵🇱"},
	{Code: "+43", Country: "Austria", Flag: "🇦🇹"},
	{Code: "+1", Country: "USA/Canada", Flag: "🇺🇸"},
	{Code: "+212", Country: "Morocco", Flag: "🇲🇦"},
	{Code: "+90", Country: "Turkey", Flag: "🇹🇷"},
}

func IsValidCountryCode(code string) bool {
	for _, c := range CountryCodes {
		if c.Code == code {
			return true
		}
	}
	return false
}
