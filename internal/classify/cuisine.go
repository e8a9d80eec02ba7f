package classify

import "strings"

type cuisineRule struct {
	pattern string
	region  string
}

// cuisineRules map normalized cuisine labels to canonical regions. Checked
// in order, first match wins, so narrow patterns sit above the short
// generic ones they overlap with ("malwani" above "malwa", "nagaland"
// above "naga"). Pan-Indian labels like "north indian" or "mughlai" are
// deliberately absent; they name no single region.
var cuisineRules = []cuisineRule{
	{"uttarakhand", "Uttarakhand"},
	{"kumaon", "Uttarakhand"},
	{"garhwal", "Uttarakhand"},
	{"pahadi", "Uttarakhand"},
	{"uttar pradesh", "Uttar Pradesh"},
	{"awadhi", "Uttar Pradesh"},
	{"lucknowi", "Uttar Pradesh"},
	{"banarasi", "Uttar Pradesh"},
	{"malvani", "Maharashtra"},
	{"malwani", "Maharashtra"},
	{"kolhapuri", "Maharashtra"},
	{"maharashtrian", "Maharashtra"},
	{"maharashtra", "Maharashtra"},
	{"konkan", "Maharashtra"},
	{"madhya pradesh", "Madhya Pradesh"},
	{"malwa", "Madhya Pradesh"},
	{"himachal", "Himachal Pradesh"},
	{"arunachal", "Arunachal Pradesh"},
	{"rayalaseema", "Andhra Pradesh"},
	{"andhra", "Andhra Pradesh"},
	{"hyderabad", "Telangana"},
	{"telangana", "Telangana"},
	{"chettinad", "Tamil Nadu"},
	{"kongunadu", "Tamil Nadu"},
	{"tamil", "Tamil Nadu"},
	{"udupi", "Karnataka"},
	{"mangalore", "Karnataka"},
	{"coorg", "Karnataka"},
	{"kodava", "Karnataka"},
	{"karnataka", "Karnataka"},
	{"malabar", "Kerala"},
	{"kerala", "Kerala"},
	{"goa", "Goa"},
	{"kathiyawadi", "Gujarat"},
	{"kathiawadi", "Gujarat"},
	{"gujarat", "Gujarat"},
	{"marwari", "Rajasthan"},
	{"rajasthan", "Rajasthan"},
	{"amritsari", "Punjab"},
	{"punjab", "Punjab"},
	{"kashmir", "Jammu and Kashmir"},
	{"jammu", "Jammu and Kashmir"},
	{"ladakh", "Ladakh"},
	{"bihar", "Bihar"},
	{"jharkhand", "Jharkhand"},
	{"bengal", "West Bengal"},
	{"assam", "Assam"},
	{"sikkim", "Sikkim"},
	{"manipur", "Manipur"},
	{"mizo", "Mizoram"},
	{"tripur", "Tripura"},
	{"khasi", "Meghalaya"},
	{"meghalaya", "Meghalaya"},
	{"nagaland", "Nagaland"},
	{"naga", "Nagaland"},
	{"odia", "Odisha"},
	{"odisha", "Odisha"},
	{"oriya", "Odisha"},
	{"orissa", "Odisha"},
	{"chhattisgarh", "Chhattisgarh"},
	{"chattisgarh", "Chhattisgarh"},
	{"haryan", "Haryana"},
	{"delhi", "Delhi"},
	{"pondicherry", "Puducherry"},
	{"puducherry", "Puducherry"},
	{"andaman", "Andaman and Nicobar Islands"},
	{"lakshadweep", "Lakshadweep"},
}

// cuisineStopWords are filler words the recipe portal appends to its
// cuisine labels.
var cuisineStopWords = map[string]bool{
	"recipe":  true,
	"recipes": true,
	"cuisine": true,
}

// NormalizeCuisineLabel reduces a cuisine label to lowercase collapsed
// letters with the filler words removed.
func NormalizeCuisineLabel(label string) string {
	words := strings.Fields(lettersOnly(label))
	kept := make([]string, 0, len(words))
	for _, w := range words {
		if cuisineStopWords[w] {
			continue
		}
		kept = append(kept, w)
	}
	return strings.Join(kept, " ")
}

// InferRegion maps a free-text cuisine label to a canonical region. Labels
// naming no recognizable region return false; callers drop those
// observations.
func InferRegion(label string) (string, bool) {
	s := NormalizeCuisineLabel(label)
	if s == "" {
		return "", false
	}
	for _, r := range cuisineRules {
		if strings.Contains(s, r.pattern) {
			return r.region, true
		}
	}
	return "", false
}
