package timezone

// Long names for zone abbreviations reported by the tz database.
var zoneNames = map[string]string{
	"UTC":  "Coordinated Universal Time",
	"GMT":  "Greenwich Mean Time",
	"BST":  "British Summer Time",
	"WET":  "Western European Standard Time",
	"WEST": "Western European Summer Time",
	"CET":  "Central European Standard Time",
	"CEST": "Central European Summer Time",
	"EET":  "Eastern European Standard Time",
	"EEST": "Eastern European Summer Time",
	"MSK":  "Moscow Standard Time",
	"EST":  "Eastern Standard Time",
	"EDT":  "Eastern Daylight Time",
	"CST":  "Central Standard Time",
	"CDT":  "Central Daylight Time",
	"MST":  "Mountain Standard Time",
	"MDT":  "Mountain Daylight Time",
	"PST":  "Pacific Standard Time",
	"PDT":  "Pacific Daylight Time",
	"AKST": "Alaska Standard Time",
	"AKDT": "Alaska Daylight Time",
	"HST":  "Hawaii-Aleutian Standard Time",
	"AST":  "Atlantic Standard Time",
	"ADT":  "Atlantic Daylight Time",
	"NST":  "Newfoundland Standard Time",
	"NDT":  "Newfoundland Daylight Time",
	"JST":  "Japan Standard Time",
	"KST":  "Korean Standard Time",
	"HKT":  "Hong Kong Standard Time",
	"PKT":  "Pakistan Standard Time",
	"WIB":  "Western Indonesia Time",
	"AEST": "Australian Eastern Standard Time",
	"AEDT": "Australian Eastern Daylight Time",
	"ACST": "Australian Central Standard Time",
	"ACDT": "Australian Central Daylight Time",
	"AWST": "Australian Western Standard Time",
	"NZST": "New Zealand Standard Time",
	"NZDT": "New Zealand Daylight Time",
	"SAST": "South Africa Standard Time",
	"CAT":  "Central Africa Time",
	"EAT":  "East Africa Time",
	"WAT":  "West Africa Standard Time",
}

// Abbreviations that mean different zones in different regions,
// keyed by "<location> <abbreviation>".
var regionalZoneNames = map[string]string{
	"Asia/Shanghai CST":  "China Standard Time",
	"Asia/Taipei CST":    "Taipei Standard Time",
	"Asia/Kolkata IST":   "India Standard Time",
	"Asia/Jerusalem IST": "Israel Standard Time",
	"Europe/Dublin IST":  "Irish Standard Time",
}
