package template

import "regexp"

// tagPattern matches {{module.function}} placeholders. A single leading
// Mustache control character (#, /, ^, !) is tolerated and stripped so block
// markers still surface the path they reference; block semantics are not
// implemented.
var tagPattern = regexp.MustCompile(`\{\{\s*[#/^!]?\s*([\w.]+)\s*\}\}`)

// ExtractTags scans template text and returns the set of distinct dotted
// placeholder paths it references. Duplicate tags collapse into a single
// entry. Extraction never fails; text that does not match the placeholder
// shape is simply skipped.
func ExtractTags(template string) map[string]struct{} {
	tags := make(map[string]struct{})
	for _, match := range tagPattern.FindAllStringSubmatch(template, -1) {
		if match[1] == "" {
			continue
		}
		tags[match[1]] = struct{}{}
	}
	return tags
}
