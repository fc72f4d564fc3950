package roots

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"wordtower/internal/models"
)

// Family is one root family: a root label and its known member words. A
// label may carry spelling variants joined by "/" ("vis/vid"); only the
// primary (first) label is ever stored on an entry.
type Family struct {
	Root  string   `yaml:"root"`
	Words []string `yaml:"words"`
}

// DefaultFamilies is the built-in root table. Order matters: when a word
// appears in more than one family, the family listed later wins. That is a
// property of the configured table, not something the identifier tries to
// resolve.
var DefaultFamilies = []Family{
	{Root: "act", Words: []string{"act", "action", "active", "activity", "actor", "actress", "actually", "react", "interaction"}},
	{Root: "port", Words: []string{"port", "import", "export", "transport", "portable", "report", "support", "airport"}},
	{Root: "dict", Words: []string{"dictionary", "predict", "contradict", "indicate"}},
	{Root: "ject", Words: []string{"project", "reject", "inject", "object", "subject"}},
	{Root: "spect", Words: []string{"respect", "expect", "inspect", "aspect", "spectator"}},
	{Root: "struct", Words: []string{"structure", "construct", "instruct", "destroy"}},
	{Root: "vis/vid", Words: []string{"visible", "visit", "vision", "video", "provide", "divide"}},
	{Root: "aud", Words: []string{"audience", "audio", "auditorium"}},
	{Root: "scrib/script", Words: []string{"describe", "subscribe", "script", "prescription"}},
	{Root: "duc/duct", Words: []string{"produce", "reduce", "introduce", "conduct", "educate"}},
	{Root: "form", Words: []string{"form", "inform", "perform", "transform", "uniform"}},
	{Root: "mit/mis", Words: []string{"permit", "submit", "admit", "promise", "mission"}},
	{Root: "vent/ven", Words: []string{"event", "prevent", "invent", "adventure", "avenue"}},
	{Root: "tend/tens", Words: []string{"attend", "extend", "intend", "tension"}},
	{Root: "cess/ced", Words: []string{"process", "success", "access", "proceed"}},
	{Root: "press", Words: []string{"express", "impress", "pressure", "depress"}},
	{Root: "serve", Words: []string{"serve", "reserve", "preserve", "observe", "service"}},
	{Root: "sist", Words: []string{"assist", "consist", "insist", "resist", "exist"}},
	{Root: "cap/cep/ceiv", Words: []string{"accept", "receive", "capable", "capture"}},
	{Root: "cred", Words: []string{"credit", "incredible", "credible"}},
}

// LoadFamilies reads a root table from a YAML file.
func LoadFamilies(path string) ([]Family, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read root table: %w", err)
	}

	var families []Family
	if err := yaml.Unmarshal(data, &families); err != nil {
		return nil, fmt.Errorf("failed to parse root table: %w", err)
	}
	return families, nil
}

// Identifier assigns roots to parsed entries from a static family table.
type Identifier struct {
	families []Family
}

// NewIdentifier creates an identifier over the given table; a nil table
// means DefaultFamilies.
func NewIdentifier(families []Family) *Identifier {
	if families == nil {
		families = DefaultFamilies
	}
	return &Identifier{families: families}
}

// Identify sets the Root field of every entry whose headword appears in
// the table, matching lower-cased exact headwords. Entries matching no
// family are left untouched.
func (id *Identifier) Identify(entries []models.WordEntry) {
	byWord := make(map[string]*models.WordEntry, len(entries))
	for i := range entries {
		byWord[strings.ToLower(entries[i].Word)] = &entries[i]
	}

	for _, family := range id.families {
		label := primaryLabel(family.Root)
		for _, member := range family.Words {
			if entry, ok := byWord[strings.ToLower(member)]; ok {
				entry.Root = label
			}
		}
	}
}

// primaryLabel strips spelling variants from a combined root label.
func primaryLabel(root string) string {
	return strings.SplitN(root, "/", 2)[0]
}
