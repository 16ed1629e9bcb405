package resources

import "bytes"

// FindReferences returns the names, in input order, that content refers to
// through either the code accessor R.<category>.<name> or the markup
// accessor <category>/<name>. Matching is plain substring containment.
func FindReferences(content []byte, names []string, category Category) ([]string, error) {
	code, markup, err := category.ReferencePatterns()
	if err != nil {
		return nil, err
	}

	var used []string
	for _, name := range names {
		if bytes.Contains(content, []byte(code+name)) || bytes.Contains(content, []byte(markup+name)) {
			used = append(used, name)
		}
	}
	return used, nil
}
