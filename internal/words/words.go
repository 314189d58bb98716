// Package words holds the fixed word lists the generator draws from.
package words

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	ideaerrors "github.com/alexisbeaulieu97/ideaslot/pkg/errors"
)

//go:embed words.yaml
var defaultWords []byte

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Lists is the static word-list data source. The three lists are never
// mutated after loading.
type Lists struct {
	Subjects        []string `yaml:"subjects" validate:"min=1,unique,dive,word"`
	Forms           []string `yaml:"forms" validate:"min=1,unique,dive,word"`
	TargetAudiences []string `yaml:"targetAudiences" validate:"min=1,unique,dive,word"`
}

// Default returns the embedded word lists.
func Default() Lists {
	lists, err := Parse("words.yaml", defaultWords)
	if err != nil {
		panic(fmt.Sprintf("embedded word lists are invalid: %v", err))
	}
	return lists
}

// Load reads and validates a word-list file from disk.
func Load(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, ideaerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes and validates word lists. name is only used in errors.
func Parse(name string, data []byte) (Lists, error) {
	var lists Lists
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return Lists{}, ideaerrors.NewParseError(name, extractLine(err), err)
	}
	if err := Validate(lists); err != nil {
		return Lists{}, err
	}
	return lists.clone(), nil
}

// Names of the three lists, in sentence order.
const (
	SubjectList  = "subject"
	FormList     = "form"
	AudienceList = "audience"
)

// For returns a copy of the list named key.
func (l Lists) For(key string) ([]string, bool) {
	switch key {
	case SubjectList:
		return slices.Clone(l.Subjects), true
	case FormList:
		return slices.Clone(l.Forms), true
	case AudienceList:
		return slices.Clone(l.TargetAudiences), true
	}
	return nil, false
}

// Len returns the total number of words across the three lists.
func (l Lists) Len() int {
	return len(l.Subjects) + len(l.Forms) + len(l.TargetAudiences)
}

func (l Lists) clone() Lists {
	return Lists{
		Subjects:        slices.Clone(l.Subjects),
		Forms:           slices.Clone(l.Forms),
		TargetAudiences: slices.Clone(l.TargetAudiences),
	}
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
