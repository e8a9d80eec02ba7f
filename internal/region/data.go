package region

// Built-in reference data: canonical states and union territories with 2011
// census populations, plus the raw spellings the source tables are known to
// use for them.

var defaultEntries = []Entry{
	{Name: "Andaman and Nicobar Islands", Population: 380581},
	{Name: "Andhra Pradesh", Population: 49577103},
	{Name: "Arunachal Pradesh", Population: 1383727},
	{Name: "Assam", Population: 31205576},
	{Name: "Bihar", Population: 104099452},
	{Name: "Chandigarh", Population: 1055450},
	{Name: "Chhattisgarh", Population: 25545198},
	{Name: "Dadra and Nagar Haveli", Population: 343709},
	{Name: "Daman and Diu", Population: 243247},
	{Name: "Delhi", Population: 16787941},
	{Name: "Goa", Population: 1458545},
	{Name: "Gujarat", Population: 60439692},
	{Name: "Haryana", Population: 25351462},
	{Name: "Himachal Pradesh", Population: 6864602},
	{Name: "Jammu and Kashmir", Population: 12267013},
	{Name: "Jharkhand", Population: 32988134},
	{Name: "Karnataka", Population: 61095297},
	{Name: "Kerala", Population: 33406061},
	{Name: "Ladakh", Population: 274289},
	{Name: "Lakshadweep", Population: 64473},
	{Name: "Madhya Pradesh", Population: 72626809},
	{Name: "Maharashtra", Population: 112374333},
	{Name: "Manipur", Population: 2855794},
	{Name: "Meghalaya", Population: 2966889},
	{Name: "Mizoram", Population: 1097206},
	{Name: "Nagaland", Population: 1978502},
	{Name: "Odisha", Population: 41974219},
	{Name: "Puducherry", Population: 1247953},
	{Name: "Punjab", Population: 27743338},
	{Name: "Rajasthan", Population: 68548437},
	{Name: "Sikkim", Population: 610577},
	{Name: "Tamil Nadu", Population: 72147030},
	{Name: "Telangana", Population: 35003674},
	{Name: "Tripura", Population: 3673917},
	{Name: "Uttar Pradesh", Population: 199812341},
	{Name: "Uttarakhand", Population: 10086292},
	{Name: "West Bengal", Population: 91276115},
}

var defaultAliases = map[string]string{
	"Andaman & Nicobar":                    "Andaman and Nicobar Islands",
	"Andaman & Nicobar Islands":            "Andaman and Nicobar Islands",
	"Andaman and Nicobar":                  "Andaman and Nicobar Islands",
	"Chattisgarh":                          "Chhattisgarh",
	"Chhatisgarh":                          "Chhattisgarh",
	"Dadra & Nagar Haveli":                 "Dadra and Nagar Haveli",
	"Daman & Diu":                          "Daman and Diu",
	"Jammu & Kashmir":                      "Jammu and Kashmir",
	"NCT of Delhi":                         "Delhi",
	"National Capital Territory of Delhi":  "Delhi",
	"New Delhi":                            "Delhi",
	"Orissa":                               "Odisha",
	"Pondicherry":                          "Puducherry",
	"Tamilnadu":                            "Tamil Nadu",
	"Telengana":                            "Telangana",
	"Uttaranchal":                          "Uttarakhand",
}
