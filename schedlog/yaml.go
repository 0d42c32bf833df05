package schedlog

import "gopkg.in/yaml.v3"

// ToYAML renders doc as the structured YAML document. Writing the bytes to
// disk is dagio's job: result serialization is an external collaborator,
// not core engine logic.
func (doc *Document) ToYAML() ([]byte, error) {
	return yaml.Marshal(doc)
}
