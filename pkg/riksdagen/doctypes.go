package riksdagen

import "maps"

// documentTypes maps the archive's document type codes to English labels.
// The set is fixed at build time and never mutated.
var documentTypes = map[string]string{
	"prop": "Government Bill (Proposition)",
	"mot":  "Motion",
	"bet":  "Committee Report (Betänkande)",
	"prot": "Protocol",
	"skr":  "Government Communication (Skrivelse)",
	"sou":  "Official Government Report (Statens offentliga utredningar)",
	"ds":   "Ministry Publication (Departementsserien)",
	"fpm":  "Factual Memorandum (Faktapromemoria)",
	"utl":  "Statement (Utlåtande)",
	"dir":  "Committee Directive (Kommittédirektiv)",
	"rskr": "Parliamentary Communication (Riksdagsskrivelse)",
	"ip":   "Interpellation",
	"fr":   "Question (Fråga)",
	"EU":   "EU Document",
}

// DocumentTypes returns the document type catalog. The returned map is a
// copy; callers may mutate it freely.
func DocumentTypes() map[string]string {
	return maps.Clone(documentTypes)
}
